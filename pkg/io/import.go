package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackview/pkg/errors"
	"github.com/matzehuels/stackview/pkg/stackup"
)

// rawLayer mirrors stackup.Layer but keeps kind as a free string so
// unknown kinds can be normalized instead of rejected.
type rawLayer struct {
	Name        string  `json:"name" toml:"name"`
	Material    string  `json:"material" toml:"material"`
	Kind        string  `json:"kind" toml:"kind"`
	ThicknessMM float64 `json:"thickness_mm" toml:"thickness_mm"`
}

type rawStack struct {
	Name   string     `json:"name" toml:"name"`
	Layers []rawLayer `json:"layers" toml:"layers"`
}

func (r rawStack) toStack() *stackup.Stack {
	s := &stackup.Stack{Name: r.Name, Layers: make([]stackup.Layer, len(r.Layers))}
	for i, l := range r.Layers {
		s.Layers[i] = stackup.Layer{
			Name:        l.Name,
			Material:    l.Material,
			Kind:        stackup.ParseKind(l.Kind),
			ThicknessMM: l.ThicknessMM,
		}
	}
	return s
}

// ReadJSON decodes a JSON stack definition from r.
//
// ReadJSON returns an error if the JSON is malformed or if the decoded
// stack fails validation (negative or non-finite thickness, empty layer
// names). An empty layer list is valid. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*stackup.Stack, error) {
	var data rawStack
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidStack, err, "decode json stack")
	}
	s := data.toStack()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadTOML decodes a TOML stack definition from r. Validation matches
// [ReadJSON].
func ReadTOML(r io.Reader) (*stackup.Stack, error) {
	var data rawStack
	if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidStack, err, "decode toml stack")
	}
	s := data.toStack()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ImportStack reads a stack definition file, choosing the decoder by
// file extension (.toml or .json).
//
// The error wraps the underlying cause with the file path for context.
func ImportStack(path string) (*stackup.Stack, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ReadTOML(f)
	case ".json":
		return ReadJSON(f)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported stack file extension %q (use .toml or .json)", filepath.Ext(path))
	}
}

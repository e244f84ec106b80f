package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/stackview/pkg/errors"
	"github.com/matzehuels/stackview/pkg/stackup"
)

// WriteJSON encodes a stack as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip
// processing.
func WriteJSON(s *stackup.Stack, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode stack")
	}
	return nil
}

// ExportJSON writes a stack to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(s *stackup.Stack, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(s, f)
}

package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/stackview/pkg/errors"
	"github.com/matzehuels/stackview/pkg/stackup"
)

func sampleStack() *stackup.Stack {
	return &stackup.Stack{
		Name: "2-layer",
		Layers: []stackup.Layer{
			{Name: "F.Cu", Material: "Copper", Kind: stackup.KindCopper, ThicknessMM: 0.035},
			{Name: "Core", Material: "FR4", Kind: stackup.KindDielectric, ThicknessMM: 1.51},
			{Name: "B.Cu", Material: "Copper", Kind: stackup.KindCopper, ThicknessMM: 0.035},
		},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	orig := sampleStack()

	var buf bytes.Buffer
	if err := WriteJSON(orig, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if got.Name != orig.Name {
		t.Errorf("Name = %q, want %q", got.Name, orig.Name)
	}
	if len(got.Layers) != len(orig.Layers) {
		t.Fatalf("len(Layers) = %d, want %d", len(got.Layers), len(orig.Layers))
	}
	for i := range got.Layers {
		if got.Layers[i] != orig.Layers[i] {
			t.Errorf("layer %d = %+v, want %+v", i, got.Layers[i], orig.Layers[i])
		}
	}
}

func TestReadTOML(t *testing.T) {
	input := `
name = "4-layer controller"

[[layers]]
name = "F.Mask"
material = "Soldermask"
kind = "soldermask"
thickness_mm = 0.015

[[layers]]
name = "F.Cu"
material = "Copper"
kind = "copper"
thickness_mm = 0.035

[[layers]]
name = "F.SilkS"
material = "Silkscreen"
kind = "silkscreen"
thickness_mm = 0.01
`
	s, err := ReadTOML(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}

	if s.Name != "4-layer controller" {
		t.Errorf("Name = %q", s.Name)
	}
	if len(s.Layers) != 3 {
		t.Fatalf("len(Layers) = %d, want 3", len(s.Layers))
	}
	if s.Layers[0].Kind != stackup.KindSoldermask {
		t.Errorf("layer 0 kind = %v, want soldermask", s.Layers[0].Kind)
	}
	// Unknown kinds normalize to other instead of failing.
	if s.Layers[2].Kind != stackup.KindOther {
		t.Errorf("layer 2 kind = %v, want other", s.Layers[2].Kind)
	}
}

func TestReadJSONInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{
			name:  "malformed json",
			input: `{"name": `,
			code:  errors.ErrCodeInvalidStack,
		},
		{
			name:  "negative thickness",
			input: `{"layers": [{"name": "F.Cu", "kind": "copper", "thickness_mm": -1}]}`,
			code:  errors.ErrCodeInvalidStack,
		},
		{
			name:  "empty layer name",
			input: `{"layers": [{"name": "", "kind": "copper", "thickness_mm": 0.035}]}`,
			code:  errors.ErrCodeInvalidStack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestImportStack(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "stack.json")
	if err := ExportJSON(sampleStack(), jsonPath); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	s, err := ImportStack(jsonPath)
	if err != nil {
		t.Fatalf("ImportStack(json): %v", err)
	}
	if len(s.Layers) != 3 {
		t.Errorf("len(Layers) = %d, want 3", len(s.Layers))
	}

	tomlPath := filepath.Join(dir, "stack.toml")
	tomlBody := "name = \"t\"\n\n[[layers]]\nname = \"F.Cu\"\nkind = \"copper\"\nthickness_mm = 0.035\n"
	if err := os.WriteFile(tomlPath, []byte(tomlBody), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ImportStack(tomlPath); err != nil {
		t.Fatalf("ImportStack(toml): %v", err)
	}
}

func TestImportStackErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := ImportStack(filepath.Join(dir, "missing.json"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "stack.yaml")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := ImportStack(path)
		if !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
	})
}

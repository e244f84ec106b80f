// Package stackup defines the PCB stackup model: an ordered sequence of
// physical layers from the top of the board to the bottom, each with a
// material kind and a thickness in millimeters.
package stackup

import (
	"math"
	"strings"

	"github.com/matzehuels/stackview/pkg/errors"
)

// Kind classifies a layer by its material role in the board.
type Kind string

// Layer kinds.
const (
	KindCopper     Kind = "copper"
	KindDielectric Kind = "dielectric"
	KindSoldermask Kind = "soldermask"
	KindOther      Kind = "other"
)

// ParseKind maps a kind string to a Kind. Unknown strings map to
// KindOther so imported stack definitions never fail on exotic layers
// (silkscreen, solder paste, adhesives).
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "copper", "cu":
		return KindCopper
	case "dielectric", "core", "prepreg":
		return KindDielectric
	case "soldermask", "solder_mask", "mask":
		return KindSoldermask
	default:
		return KindOther
	}
}

// String returns the canonical kind name.
func (k Kind) String() string {
	return string(k)
}

// Layer is a single physical layer of the stackup.
type Layer struct {
	Name        string  `json:"name" toml:"name"`
	Material    string  `json:"material" toml:"material"`
	Kind        Kind    `json:"kind" toml:"kind"`
	ThicknessMM float64 `json:"thickness_mm" toml:"thickness_mm"`
}

// Stack is an ordered stackup, index 0 at the top of the board.
type Stack struct {
	Name   string  `json:"name" toml:"name"`
	Layers []Layer `json:"layers" toml:"layers"`
}

// TotalThicknessMM returns the summed physical thickness of all layers.
func (s *Stack) TotalThicknessMM() float64 {
	var total float64
	for _, l := range s.Layers {
		total += l.ThicknessMM
	}
	return total
}

// CopperCount returns the number of copper layers.
func (s *Stack) CopperCount() int {
	n := 0
	for _, l := range s.Layers {
		if l.Kind == KindCopper {
			n++
		}
	}
	return n
}

// Validate checks the stack for data that the layout engine cannot
// represent. An empty stack is valid; it produces an empty layout.
func (s *Stack) Validate() error {
	for i, l := range s.Layers {
		if err := errors.ValidateLayerName(l.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidStack, err, "layer %d", i)
		}
		if math.IsNaN(l.ThicknessMM) || math.IsInf(l.ThicknessMM, 0) {
			return errors.New(errors.ErrCodeInvalidStack,
				"layer %q thickness must be a finite number, got %v", l.Name, l.ThicknessMM)
		}
		if l.ThicknessMM < 0 {
			return errors.New(errors.ErrCodeInvalidStack,
				"layer %q thickness cannot be negative, got %v", l.Name, l.ThicknessMM)
		}
	}
	return nil
}

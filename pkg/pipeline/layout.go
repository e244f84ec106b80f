package pipeline

import (
	"github.com/matzehuels/stackview/pkg/layout"
	"github.com/matzehuels/stackview/pkg/stackup"
)

// GenerateLayout computes the cross-section layout for a stack.
// Options must have layout defaults applied (see ValidateForLayout).
func GenerateLayout(stack *stackup.Stack, opts Options) (*layout.Layout, error) {
	return layout.Compute(stack, opts.Layout)
}

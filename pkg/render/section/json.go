package section

import (
	"encoding/json"

	"github.com/matzehuels/stackview/pkg/errors"
	"github.com/matzehuels/stackview/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact bool
}

// WithJSONCompact emits compact JSON without indentation.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// RenderJSON exports the complete layout as a JSON document. This is
// the primary data interchange format, enabling:
//
//   - Integration with external drawing tools
//   - Caching computed layouts for fast re-rendering
//   - Inspecting exact coordinates in tests and reviews
//
// Every field of the layout is included: boxes, callouts, leaders,
// hatch segments, diagnostics and the effective config, so nothing is
// lost between computation and consumption.
func RenderJSON(l *layout.Layout, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var (
		data []byte
		err  error
	)
	if r.compact {
		data, err = json.Marshal(l)
	} else {
		data, err = json.MarshalIndent(l, "", "  ")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "marshal layout")
	}
	return data, nil
}

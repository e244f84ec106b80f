package layout

import (
	"github.com/matzehuels/stackview/pkg/geom"
	"github.com/matzehuels/stackview/pkg/stackup"
)

// LeaderStyle describes the shape of a routed leader line.
type LeaderStyle string

// Leader styles.
const (
	StyleStraight   LeaderStyle = "straight"
	StyleAngledUp   LeaderStyle = "angled_up"
	StyleAngledDown LeaderStyle = "angled_down"
)

// LayerBox is one drawn layer rectangle.
type LayerBox struct {
	Index    int           `json:"index"`
	Layer    stackup.Layer `json:"layer"`
	Rect     geom.Rect     `json:"rect"`
	HeightMM float64       `json:"height_mm"`
}

// Callout is the text label for one layer. AnchorY is the rectangle's
// vertical center; TextY may be displaced from it by the collision
// resolver. TextX is finalized by the leader router so all callouts
// share one column.
type Callout struct {
	Index   int     `json:"index"`
	Text    string  `json:"text"`
	AnchorY float64 `json:"anchor_y"`
	TextX   float64 `json:"text_x"`
	TextY   float64 `json:"text_y"`
}

// Leader is the routed connector between a rectangle and its callout.
type Leader struct {
	Index    int            `json:"index"`
	Style    LeaderStyle    `json:"style"`
	Segments []geom.Segment `json:"segments"`
}

// Diagnostic codes.
const (
	DiagZeroThickness     = "ZERO_THICKNESS"
	DiagSpacingViolation  = "SPACING_VIOLATION"
	DiagDegenerateScaling = "DEGENERATE_SCALING"
)

// Diagnostic records a data-quality or layout-quality condition that is
// worth surfacing but does not invalidate the layout.
type Diagnostic struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Layer   int    `json:"layer,omitempty"`
}

// Layout is the complete computed cross-section diagram.
type Layout struct {
	Stack    *stackup.Stack `json:"stack"`
	Boxes    []LayerBox     `json:"boxes"`
	Callouts []Callout      `json:"callouts"`
	Leaders  []Leader       `json:"leaders"`

	// Hatches maps a box index to its clipped hatch segments. Only
	// copper boxes are hatched, and only when hatching is enabled.
	Hatches map[int][]geom.Segment `json:"hatches,omitempty"`

	// Config is the effective configuration after scaling. Callers
	// doing further geometry work must use it, not their original.
	Config Config `json:"config"`

	// Direction is the resolved leader direction (never auto).
	Direction LeaderDirection `json:"direction"`

	// EffectiveLeaderLengthMM is the uniform leader length applied to
	// every callout so the text column aligns.
	EffectiveLeaderLengthMM float64 `json:"effective_leader_length_mm"`

	TotalWidthMM  float64 `json:"total_width_mm"`
	TotalHeightMM float64 `json:"total_height_mm"`

	// ScaleFactor is target/natural height, or 1 when no target height
	// was requested.
	ScaleFactor float64 `json:"scale_factor"`

	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Empty reports whether the layout contains no layers.
func (l *Layout) Empty() bool {
	return len(l.Boxes) == 0
}

// Package layout computes cross-section diagram layouts for PCB
// stackups: one rectangle per layer stacked from a drawing origin, with
// collision-free callout labels connected by straight or elbow leader
// lines. The computation is pure; rendering is left to the sinks in
// pkg/render.
package layout

import (
	"strings"

	"github.com/matzehuels/stackview/pkg/errors"
	"github.com/matzehuels/stackview/pkg/stackup"
)

// ThicknessMode selects how physical thickness maps to drawn height.
type ThicknessMode string

// Thickness modes.
const (
	// ModeUniform draws every layer with the same height.
	ModeUniform ThicknessMode = "uniform"

	// ModeProportional draws each layer at its kind ratio times the
	// base height, ignoring physical thickness.
	ModeProportional ThicknessMode = "proportional"

	// ModeScaled draws layers proportional to physical thickness,
	// normalized so the stack fills the configured maximum height.
	ModeScaled ThicknessMode = "scaled"
)

// ParseThicknessMode parses a mode string.
func ParseThicknessMode(s string) (ThicknessMode, error) {
	switch ThicknessMode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeUniform:
		return ModeUniform, nil
	case ModeProportional:
		return ModeProportional, nil
	case ModeScaled:
		return ModeScaled, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidConfig,
			"unknown thickness mode %q (use uniform, proportional or scaled)", s)
	}
}

// LeaderDirection selects which side of the stack the callout column
// sits on.
type LeaderDirection string

// Leader directions.
const (
	DirectionAuto    LeaderDirection = "auto"
	DirectionOutward LeaderDirection = "outward"
	DirectionInward  LeaderDirection = "inward"
)

// ParseLeaderDirection parses a direction string.
func ParseLeaderDirection(s string) (LeaderDirection, error) {
	switch LeaderDirection(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionAuto:
		return DirectionAuto, nil
	case DirectionOutward:
		return DirectionOutward, nil
	case DirectionInward:
		return DirectionInward, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidConfig,
			"unknown leader direction %q (use auto, outward or inward)", s)
	}
}

// Fixed layout constants.
const (
	// MinFinalSegmentMM is the guaranteed horizontal run after an
	// elbow's diagonal segment, independent of displacement size.
	MinFinalSegmentMM = 5.0

	// maxResolveIterations caps the collision-resolution loop. The
	// symmetric placement converges in one pass; hitting the cap means
	// the geometry math is broken.
	maxResolveIterations = 50

	// leadInFraction is the share of the configured leader length used
	// for an elbow's first horizontal run.
	leadInFraction = 0.4

	// fontWidthFactor estimates glyph width as a fraction of the text
	// size for column width calculations.
	fontWidthFactor = 0.6
)

// Default configuration values, all in millimeters.
const (
	DefaultUniformLayerHeightMM = 3.0
	DefaultLayerWidthMM         = 50.0
	DefaultMaxTotalHeightMM     = 100.0
	DefaultCopperRatio          = 1.0
	DefaultDielectricRatio      = 1.55
	DefaultSoldermaskRatio      = 0.5
	DefaultBaseHeightMM         = 3.0
	DefaultSoldermaskGapMM      = 1.0
	DefaultHatchSpacingMM       = 1.0
	DefaultHatchAngleDeg        = 45.0
	DefaultLeaderLineLengthMM   = 20.0
	DefaultLeaderLineWidthMM    = 0.15
	DefaultMinCalloutSpacingMM  = 2.0
	DefaultMinElbowHeightMM     = 0.5
	DefaultCalloutTextSizeMM    = 1.5
	DefaultTextPaddingMM        = 1.0
	DefaultOriginXMM            = 50.0
	DefaultOriginYMM            = 50.0
)

// Config holds every tunable of the layout computation. It is a value
// type: stages derive adjusted copies and never mutate a caller's
// config in place.
type Config struct {
	Mode            ThicknessMode   `json:"mode" toml:"mode"`
	LeaderDirection LeaderDirection `json:"leader_direction" toml:"leader_direction"`

	UniformLayerHeightMM float64 `json:"uniform_layer_height_mm" toml:"uniform_layer_height_mm"`
	LayerWidthMM         float64 `json:"layer_width_mm" toml:"layer_width_mm"`
	MaxTotalHeightMM     float64 `json:"max_total_height_mm" toml:"max_total_height_mm"`

	CopperRatio     float64 `json:"copper_ratio" toml:"copper_ratio"`
	DielectricRatio float64 `json:"dielectric_ratio" toml:"dielectric_ratio"`
	SoldermaskRatio float64 `json:"soldermask_ratio" toml:"soldermask_ratio"`
	BaseHeightMM    float64 `json:"base_height_mm" toml:"base_height_mm"`
	SoldermaskGapMM float64 `json:"soldermask_gap_mm" toml:"soldermask_gap_mm"`

	HatchEnabled   bool    `json:"hatch_enabled" toml:"hatch_enabled"`
	HatchSpacingMM float64 `json:"hatch_spacing_mm" toml:"hatch_spacing_mm"`
	HatchAngleDeg  float64 `json:"hatch_angle_deg" toml:"hatch_angle_deg"`

	LeaderLineLengthMM  float64 `json:"leader_line_length_mm" toml:"leader_line_length_mm"`
	LeaderLineWidthMM   float64 `json:"leader_line_width_mm" toml:"leader_line_width_mm"`
	MinCalloutSpacingMM float64 `json:"min_callout_spacing_mm" toml:"min_callout_spacing_mm"`
	MinElbowHeightMM    float64 `json:"min_elbow_height_mm" toml:"min_elbow_height_mm"`
	CalloutTextSizeMM   float64 `json:"callout_text_size_mm" toml:"callout_text_size_mm"`
	TextPaddingMM       float64 `json:"text_padding_mm" toml:"text_padding_mm"`

	OriginXMM float64 `json:"origin_x_mm" toml:"origin_x_mm"`
	OriginYMM float64 `json:"origin_y_mm" toml:"origin_y_mm"`

	// TargetHeightMM requests a scaled drawing of exactly this total
	// height. Zero leaves the natural height untouched.
	TargetHeightMM float64 `json:"target_height_mm" toml:"target_height_mm"`
}

// DefaultConfig returns a config with every field at its default.
func DefaultConfig() Config {
	return Config{
		Mode:                 ModeProportional,
		LeaderDirection:      DirectionAuto,
		UniformLayerHeightMM: DefaultUniformLayerHeightMM,
		LayerWidthMM:         DefaultLayerWidthMM,
		MaxTotalHeightMM:     DefaultMaxTotalHeightMM,
		CopperRatio:          DefaultCopperRatio,
		DielectricRatio:      DefaultDielectricRatio,
		SoldermaskRatio:      DefaultSoldermaskRatio,
		BaseHeightMM:         DefaultBaseHeightMM,
		SoldermaskGapMM:      DefaultSoldermaskGapMM,
		HatchEnabled:         true,
		HatchSpacingMM:       DefaultHatchSpacingMM,
		HatchAngleDeg:        DefaultHatchAngleDeg,
		LeaderLineLengthMM:   DefaultLeaderLineLengthMM,
		LeaderLineWidthMM:    DefaultLeaderLineWidthMM,
		MinCalloutSpacingMM:  DefaultMinCalloutSpacingMM,
		MinElbowHeightMM:     DefaultMinElbowHeightMM,
		CalloutTextSizeMM:    DefaultCalloutTextSizeMM,
		TextPaddingMM:        DefaultTextPaddingMM,
		OriginXMM:            DefaultOriginXMM,
		OriginYMM:            DefaultOriginYMM,
	}
}

// ApplyDefaults fills zero-valued fields with defaults. It is
// idempotent, so it is safe to call on an already-defaulted config.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if c.Mode == "" {
		c.Mode = d.Mode
	}
	if c.LeaderDirection == "" {
		c.LeaderDirection = d.LeaderDirection
	}
	if c.UniformLayerHeightMM == 0 {
		c.UniformLayerHeightMM = d.UniformLayerHeightMM
	}
	if c.LayerWidthMM == 0 {
		c.LayerWidthMM = d.LayerWidthMM
	}
	if c.MaxTotalHeightMM == 0 {
		c.MaxTotalHeightMM = d.MaxTotalHeightMM
	}
	if c.CopperRatio == 0 {
		c.CopperRatio = d.CopperRatio
	}
	if c.DielectricRatio == 0 {
		c.DielectricRatio = d.DielectricRatio
	}
	if c.SoldermaskRatio == 0 {
		c.SoldermaskRatio = d.SoldermaskRatio
	}
	if c.BaseHeightMM == 0 {
		c.BaseHeightMM = d.BaseHeightMM
	}
	if c.HatchSpacingMM == 0 {
		c.HatchSpacingMM = d.HatchSpacingMM
	}
	if c.HatchAngleDeg == 0 {
		c.HatchAngleDeg = d.HatchAngleDeg
	}
	if c.LeaderLineLengthMM == 0 {
		c.LeaderLineLengthMM = d.LeaderLineLengthMM
	}
	if c.LeaderLineWidthMM == 0 {
		c.LeaderLineWidthMM = d.LeaderLineWidthMM
	}
	if c.MinCalloutSpacingMM == 0 {
		c.MinCalloutSpacingMM = d.MinCalloutSpacingMM
	}
	if c.MinElbowHeightMM == 0 {
		c.MinElbowHeightMM = d.MinElbowHeightMM
	}
	if c.CalloutTextSizeMM == 0 {
		c.CalloutTextSizeMM = d.CalloutTextSizeMM
	}
	if c.TextPaddingMM == 0 {
		c.TextPaddingMM = d.TextPaddingMM
	}
}

// Validate checks the config and returns an ErrCodeInvalidConfig error
// describing the first problem found. Validation runs before any layout
// work so a bad value is never silently clamped.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeUniform, ModeProportional, ModeScaled:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown thickness mode %q", c.Mode)
	}
	switch c.LeaderDirection {
	case DirectionAuto, DirectionOutward, DirectionInward:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown leader direction %q", c.LeaderDirection)
	}

	positives := []struct {
		name  string
		value float64
	}{
		{"uniform_layer_height_mm", c.UniformLayerHeightMM},
		{"layer_width_mm", c.LayerWidthMM},
		{"max_total_height_mm", c.MaxTotalHeightMM},
		{"copper_ratio", c.CopperRatio},
		{"dielectric_ratio", c.DielectricRatio},
		{"soldermask_ratio", c.SoldermaskRatio},
		{"base_height_mm", c.BaseHeightMM},
		{"hatch_spacing_mm", c.HatchSpacingMM},
		{"leader_line_length_mm", c.LeaderLineLengthMM},
		{"leader_line_width_mm", c.LeaderLineWidthMM},
		{"min_callout_spacing_mm", c.MinCalloutSpacingMM},
		{"min_elbow_height_mm", c.MinElbowHeightMM},
		{"callout_text_size_mm", c.CalloutTextSizeMM},
	}
	for _, p := range positives {
		if err := errors.ValidatePositive(p.name, p.value); err != nil {
			return err
		}
	}

	nonNegatives := []struct {
		name  string
		value float64
	}{
		{"soldermask_gap_mm", c.SoldermaskGapMM},
		{"text_padding_mm", c.TextPaddingMM},
		{"target_height_mm", c.TargetHeightMM},
		{"hatch_angle_deg", c.HatchAngleDeg},
	}
	for _, p := range nonNegatives {
		if err := errors.ValidateNonNegative(p.name, p.value); err != nil {
			return err
		}
	}

	if err := errors.ValidateFinite("origin_x_mm", c.OriginXMM); err != nil {
		return err
	}
	if err := errors.ValidateFinite("origin_y_mm", c.OriginYMM); err != nil {
		return err
	}

	return nil
}

// scaled returns a copy of c with every linear content dimension
// multiplied by factor. Callout spacing, leader length and the elbow
// unit are held at their configured values so spacing reads as a
// constant physical distance at any drawing scale. Origin coordinates
// are never scaled.
func (c Config) scaled(factor float64) Config {
	out := c
	out.UniformLayerHeightMM *= factor
	out.LayerWidthMM *= factor
	out.MaxTotalHeightMM *= factor
	out.BaseHeightMM *= factor
	out.SoldermaskGapMM *= factor
	out.HatchSpacingMM *= factor
	out.LeaderLineWidthMM *= factor
	out.CalloutTextSizeMM *= factor
	out.TextPaddingMM *= factor
	return out
}

// ratioFor returns the proportional-mode ratio for a layer kind.
// Unknown kinds draw at half the base height.
func (c Config) ratioFor(kind stackup.Kind) float64 {
	switch kind {
	case stackup.KindCopper:
		return c.CopperRatio
	case stackup.KindDielectric:
		return c.DielectricRatio
	case stackup.KindSoldermask:
		return c.SoldermaskRatio
	default:
		return 0.5
	}
}

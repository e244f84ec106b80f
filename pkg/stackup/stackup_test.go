package stackup

import (
	"math"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"copper", KindCopper},
		{"Cu", KindCopper},
		{"COPPER", KindCopper},
		{"dielectric", KindDielectric},
		{"core", KindDielectric},
		{"prepreg", KindDielectric},
		{"soldermask", KindSoldermask},
		{"solder_mask", KindSoldermask},
		{" mask ", KindSoldermask},
		{"silkscreen", KindOther},
		{"", KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseKind(tt.input); got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStackTotals(t *testing.T) {
	s := &Stack{
		Layers: []Layer{
			{Name: "F.Cu", Kind: KindCopper, ThicknessMM: 0.035},
			{Name: "Core", Kind: KindDielectric, ThicknessMM: 1.51},
			{Name: "B.Cu", Kind: KindCopper, ThicknessMM: 0.035},
		},
	}

	if got, want := s.TotalThicknessMM(), 1.58; math.Abs(got-want) > 1e-9 {
		t.Errorf("TotalThicknessMM() = %v, want %v", got, want)
	}
	if got := s.CopperCount(); got != 2 {
		t.Errorf("CopperCount() = %d, want 2", got)
	}
}

func TestStackValidate(t *testing.T) {
	tests := []struct {
		name    string
		stack   Stack
		wantErr bool
	}{
		{
			name:    "empty stack is valid",
			stack:   Stack{},
			wantErr: false,
		},
		{
			name: "valid layers",
			stack: Stack{Layers: []Layer{
				{Name: "F.Cu", Kind: KindCopper, ThicknessMM: 0.035},
			}},
			wantErr: false,
		},
		{
			name: "zero thickness is valid",
			stack: Stack{Layers: []Layer{
				{Name: "F.Cu", Kind: KindCopper, ThicknessMM: 0},
			}},
			wantErr: false,
		},
		{
			name: "negative thickness",
			stack: Stack{Layers: []Layer{
				{Name: "F.Cu", Kind: KindCopper, ThicknessMM: -0.1},
			}},
			wantErr: true,
		},
		{
			name: "NaN thickness",
			stack: Stack{Layers: []Layer{
				{Name: "F.Cu", Kind: KindCopper, ThicknessMM: math.NaN()},
			}},
			wantErr: true,
		},
		{
			name: "missing name",
			stack: Stack{Layers: []Layer{
				{Name: "", Kind: KindCopper, ThicknessMM: 0.035},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.stack.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnits(t *testing.T) {
	if got, want := MilsToMM(10), 0.254; math.Abs(got-want) > 1e-9 {
		t.Errorf("MilsToMM(10) = %v, want %v", got, want)
	}
	if got, want := OzToMM(1), 0.035; math.Abs(got-want) > 1e-9 {
		t.Errorf("OzToMM(1) = %v, want %v", got, want)
	}
	if got, want := Tolerance(1.5), 0.15; math.Abs(got-want) > 1e-9 {
		t.Errorf("Tolerance(1.5) = %v, want %v", got, want)
	}
}

func TestFormatThickness(t *testing.T) {
	tests := []struct {
		mm   float64
		want string
	}{
		{0.035, "35 µm"},
		{0.0175, "17.5 µm"},
		{1.51, "1.51 mm"},
		{1.5, "1.5 mm"},
		{3, "3 mm"},
		{0, "0 µm"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatThickness(tt.mm); got != tt.want {
				t.Errorf("FormatThickness(%v) = %q, want %q", tt.mm, got, tt.want)
			}
		})
	}
}

func TestCalloutText(t *testing.T) {
	l := Layer{Name: "F.Cu", Material: "Copper", Kind: KindCopper, ThicknessMM: 0.035}
	if got, want := CalloutText(l), "Copper - 35 µm ±3.5 µm"; got != want {
		t.Errorf("CalloutText() = %q, want %q", got, want)
	}

	// Falls back to the layer name when no material is given.
	l = Layer{Name: "Core", ThicknessMM: 1.5}
	if got, want := CalloutText(l), "Core - 1.5 mm ±150 µm"; got != want {
		t.Errorf("CalloutText() = %q, want %q", got, want)
	}
}

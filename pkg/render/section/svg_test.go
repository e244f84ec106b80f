package section

import (
	"strings"
	"testing"

	"github.com/matzehuels/stackview/pkg/layout"
	"github.com/matzehuels/stackview/pkg/stackup"
)

func testStackLayout(t *testing.T) *layout.Layout {
	t.Helper()
	stack := &stackup.Stack{
		Name: "2-layer",
		Layers: []stackup.Layer{
			{Name: "F.Cu", Material: "Copper", Kind: stackup.KindCopper, ThicknessMM: 0.035},
			{Name: "Core", Material: "FR4", Kind: stackup.KindDielectric, ThicknessMM: 1.51},
			{Name: "B.Cu", Material: "Copper", Kind: stackup.KindCopper, ThicknessMM: 0.035},
		},
	}
	l, err := layout.Compute(stack, layout.DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return l
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testStackLayout(t)))

	if !strings.HasPrefix(svg, "<svg xmlns=") {
		t.Error("missing svg opening tag")
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("missing closing tag")
	}

	// One rect per layer.
	if got := strings.Count(svg, "<rect "); got != 3 {
		t.Errorf("rect count = %d, want 3", got)
	}
	// Copper layers are filled with the copper color and hatched.
	if !strings.Contains(svg, colorCopper) {
		t.Error("missing copper fill")
	}
	if !strings.Contains(svg, colorHatch) {
		t.Error("missing hatch lines")
	}
	// One callout per layer.
	if got := strings.Count(svg, "<text "); got != 3 {
		t.Errorf("text count = %d, want 3", got)
	}
	if !strings.Contains(svg, "Copper - 35 µm") {
		t.Error("missing callout text")
	}
}

func TestRenderSVGTitle(t *testing.T) {
	svg := string(RenderSVG(testStackLayout(t), WithTitle("4-layer <board> & more")))
	if !strings.Contains(svg, "4-layer &lt;board&gt; &amp; more") {
		t.Error("title not escaped and rendered")
	}
}

func TestRenderSVGEmptyLayout(t *testing.T) {
	l, err := layout.Compute(&stackup.Stack{}, layout.DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	svg := string(RenderSVG(l))
	if !strings.Contains(svg, "<svg ") || !strings.Contains(svg, "</svg>") {
		t.Error("empty layout should still produce a valid document")
	}
	if strings.Contains(svg, "<rect ") {
		t.Error("empty layout should contain no rects")
	}
}

func TestEscapeText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"a < b", "a &lt; b"},
		{"a & b > c", "a &amp; b &gt; c"},
	}
	for _, tt := range tests {
		if got := escapeText(tt.in); got != tt.want {
			t.Errorf("escapeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

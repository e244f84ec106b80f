package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/stackview/pkg/layout"
	"github.com/matzehuels/stackview/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg,png,json", []string{"svg", "png", "json"}},
	}

	for _, tt := range tests {
		got := parseFormats(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output string
		input  string
		want   string
	}{
		{"", "board.toml", "board"},
		{"", "dir/board.json", "dir/board"},
		{"out.svg", "board.toml", "out"},
		{"out.pdf", "board.toml", "out"},
		{"custom", "board.toml", "custom"},
		{"archive.bak", "board.toml", "archive.bak"}, // unknown ext kept
	}

	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestApplyLayoutFlags(t *testing.T) {
	opts := pipeline.Options{}
	vals := layoutFlagValues{mode: "scaled", direction: "inward"}

	if err := applyLayoutFlags(&opts, vals); err != nil {
		t.Fatalf("applyLayoutFlags: %v", err)
	}
	if opts.Layout.Mode != layout.ModeScaled {
		t.Errorf("Mode = %s, want scaled", opts.Layout.Mode)
	}
	if opts.Layout.LeaderDirection != layout.DirectionInward {
		t.Errorf("LeaderDirection = %s, want inward", opts.Layout.LeaderDirection)
	}
}

func TestApplyLayoutFlagsInvalid(t *testing.T) {
	opts := pipeline.Options{}
	if err := applyLayoutFlags(&opts, layoutFlagValues{mode: "exponential"}); err == nil {
		t.Error("invalid mode should fail")
	}
	if err := applyLayoutFlags(&opts, layoutFlagValues{direction: "sideways"}); err == nil {
		t.Error("invalid direction should fail")
	}
}

func TestApplyLayoutFlagsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.toml")
	content := "mode = \"uniform\"\nlayer_width_mm = 42.0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	opts := pipeline.Options{}
	if err := applyLayoutFlags(&opts, layoutFlagValues{configPath: path}); err != nil {
		t.Fatalf("applyLayoutFlags: %v", err)
	}
	if opts.Layout.Mode != layout.ModeUniform {
		t.Errorf("Mode = %s, want uniform", opts.Layout.Mode)
	}
	if opts.Layout.LayerWidthMM != 42.0 {
		t.Errorf("LayerWidthMM = %f, want 42", opts.Layout.LayerWidthMM)
	}

	// Explicit flags override the file.
	opts = pipeline.Options{}
	opts.Layout.LayerWidthMM = 55.0
	if err := applyLayoutFlags(&opts, layoutFlagValues{configPath: path}); err != nil {
		t.Fatalf("applyLayoutFlags: %v", err)
	}
	if opts.Layout.LayerWidthMM != 55.0 {
		t.Errorf("flag should override config file, got %f", opts.Layout.LayerWidthMM)
	}
}

func TestLoadLayoutConfigMissing(t *testing.T) {
	_, err := loadLayoutConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("missing config file should fail")
	}
}

package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/stackview/pkg/cache"
	"github.com/matzehuels/stackview/pkg/layout"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsValidateForLoad(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateForLoad(); err == nil {
		t.Error("Missing stack path should fail")
	}

	opts = Options{StackPath: "board.toml"}
	if err := opts.ValidateForLoad(); err != nil {
		t.Errorf("Valid options should pass: %v", err)
	}
	if opts.Logger == nil {
		t.Error("Logger default should be set")
	}
}

func TestSetLayoutDefaults(t *testing.T) {
	opts := Options{}
	opts.SetLayoutDefaults()

	if opts.Layout.LayerWidthMM != layout.DefaultLayerWidthMM {
		t.Errorf("LayerWidthMM should be %f, got %f", layout.DefaultLayerWidthMM, opts.Layout.LayerWidthMM)
	}
	if opts.Layout.Mode != layout.ModeProportional {
		t.Errorf("Mode should default to proportional, got %s", opts.Layout.Mode)
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{StackPath: "board.toml"}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalWidth := opts.Layout.LayerWidthMM
	originalFormats := len(opts.Formats)

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if opts.Layout.LayerWidthMM != originalWidth {
		t.Error("LayerWidthMM changed on second call")
	}
	if len(opts.Formats) != originalFormats {
		t.Error("Formats changed on second call")
	}
}

func TestOptionsValidateAndSetDefaultsRejectsBadFormat(t *testing.T) {
	opts := Options{StackPath: "board.toml", Formats: []string{"bmp"}}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("Unsupported format should fail")
	}
}

const testStackTOML = `name = "Test Board"

[[layers]]
name = "Top Copper"
material = "Copper"
kind = "copper"
thickness_mm = 0.035

[[layers]]
name = "Core"
material = "FR-4"
kind = "dielectric"
thickness_mm = 1.5

[[layers]]
name = "Bottom Copper"
material = "Copper"
kind = "copper"
thickness_mm = 0.035
`

func writeTestStack(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.toml")
	if err := os.WriteFile(path, []byte(testStackTOML), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunnerExecute(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(cache.NewNullCache(), nil, nil)
	defer runner.Close()

	opts := Options{
		StackPath: writeTestStack(t),
		Formats:   []string{"svg", "json"},
	}

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.LayerCount != 3 {
		t.Errorf("LayerCount = %d, want 3", result.Stats.LayerCount)
	}
	if result.Stats.CalloutCount != 3 {
		t.Errorf("CalloutCount = %d, want 3", result.Stats.CalloutCount)
	}
	if result.StackHash == "" {
		t.Error("StackHash should be set")
	}
	if len(result.Artifacts["svg"]) == 0 {
		t.Error("svg artifact should not be empty")
	}
	if len(result.Artifacts["json"]) == 0 {
		t.Error("json artifact should not be empty")
	}
	if result.CacheInfo.LoadHit || result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Error("NullCache should never report hits")
	}
}

func TestRunnerExecuteCaching(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(c, nil, nil)
	defer runner.Close()

	opts := Options{
		StackPath: writeTestStack(t),
		Formats:   []string{"svg"},
	}

	first, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.LoadHit {
		t.Error("first run should miss")
	}

	second, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.LoadHit || !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit all stages: %+v", second.CacheInfo)
	}
	if string(first.Artifacts["svg"]) != string(second.Artifacts["svg"]) {
		t.Error("cached svg should match the rendered one")
	}

	// Refresh bypasses the cache
	opts.Refresh = true
	third, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.LoadHit {
		t.Error("refresh should not hit the load cache")
	}
}

func TestRunnerLoadMissingFile(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	_, err := runner.Load(ctx, Options{StackPath: filepath.Join(t.TempDir(), "missing.toml")})
	if err == nil {
		t.Error("missing stack file should fail")
	}
}

func TestRunnerLoadPercentInPath(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	// Paths with printf verbs must come through the error verbatim.
	path := filepath.Join(t.TempDir(), "rev%d.toml")
	_, err := runner.Load(ctx, Options{StackPath: path})
	if err == nil {
		t.Fatal("missing stack file should fail")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should contain path %q", err, path)
	}
}

func TestRunnerLoadBadExtension(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	path := filepath.Join(t.TempDir(), "board.yaml")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := runner.Load(ctx, Options{StackPath: path})
	if err == nil {
		t.Error("unsupported extension should fail")
	}
}

func TestRunnerStages(t *testing.T) {
	ctx := context.Background()
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	opts := Options{StackPath: writeTestStack(t)}

	stack, err := runner.Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	l, err := runner.ComputeLayout(ctx, stack, opts)
	if err != nil {
		t.Fatalf("ComputeLayout: %v", err)
	}
	if len(l.Boxes) != 3 {
		t.Fatalf("boxes = %d, want 3", len(l.Boxes))
	}

	artifacts, err := runner.Render(ctx, l, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(artifacts) != 1 {
		t.Errorf("artifacts = %d, want 1 (default svg)", len(artifacts))
	}
}

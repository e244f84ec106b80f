package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackview/pkg/cache"
	"github.com/matzehuels/stackview/pkg/layout"
	"github.com/matzehuels/stackview/pkg/stackup"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	stack, stackHash, loadHit, err := r.LoadWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Stack = stack
	result.StackHash = stackHash
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.LayerCount = len(stack.Layers)
	result.CacheInfo.LoadHit = loadHit

	r.Logger.Info("loaded stack",
		"layers", len(stack.Layers),
		"thickness", stack.TotalThicknessMM(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	l, layoutHit, err := r.ComputeLayoutWithCacheInfo(ctx, stack, stackHash, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.CalloutCount = len(l.Callouts)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Info("computed layout",
		"boxes", len(l.Boxes),
		"direction", l.Direction,
		"duration", result.Stats.LayoutTime)

	for _, d := range l.Diagnostics {
		r.Logger.Warn("layout diagnostic", "code", d.Code, "message", d.Message)
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo loads a stack with caching and returns the source
// content hash plus cache hit info.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, opts Options) (*stackup.Stack, string, bool, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, "", false, err
	}
	r.applyLogger(&opts)

	content, err := readStackFile(opts.StackPath)
	if err != nil {
		return nil, "", false, err
	}
	stackHash := cache.Hash(content)
	cacheKey := r.Keyer.StackKey(opts.StackPath, content)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached stackup.Stack
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, stackHash, true, nil // Cache hit
			}
		}
	}

	stack, err := parseStack(opts.StackPath, content)
	if err != nil {
		return nil, "", false, err
	}

	// Cache the result
	if data, err := json.Marshal(stack); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLStack)
	}

	return stack, stackHash, false, nil // Cache miss
}

// Load is a convenience wrapper that calls LoadWithCacheInfo and discards the cache info.
func (r *Runner) Load(ctx context.Context, opts Options) (*stackup.Stack, error) {
	stack, _, _, err := r.LoadWithCacheInfo(ctx, opts)
	return stack, err
}

// ComputeLayoutWithCacheInfo computes a layout with caching and returns cache hit info.
// stackHash identifies the source content; pass "" to derive it from the stack itself.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, stack *stackup.Stack, stackHash string, opts Options) (*layout.Layout, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	if stackHash == "" {
		if data, err := json.Marshal(stack); err == nil {
			stackHash = cache.Hash(data)
		}
	}
	cacheKey := r.Keyer.LayoutKey(stackHash, opts.Layout)

	// Try cache first
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached layout.Layout
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
	}

	l, err := GenerateLayout(stack, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if data, err := json.Marshal(l); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
	}

	return l, false, nil // Cache miss
}

// ComputeLayout is a convenience wrapper that calls ComputeLayoutWithCacheInfo and
// discards the cache info.
func (r *Runner) ComputeLayout(ctx context.Context, stack *stackup.Stack, opts Options) (*layout.Layout, error) {
	l, _, err := r.ComputeLayoutWithCacheInfo(ctx, stack, "", opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l *layout.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from layout data
	layoutData, err := json.Marshal(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(layoutHash, format, opts.ArtifactKeyOpts())
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	// Render all formats
	rendered, err := RenderFromLayout(l, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(layoutHash, format, opts.ArtifactKeyOpts())
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache info.
func (r *Runner) Render(ctx context.Context, l *layout.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/cansdash/pkg/cache"
	"github.com/matzehuels/cansdash/pkg/observability"
)

const artifactKind = "artifact"

// Runner executes the pipeline with caching. It holds no per-run state, so
// one Runner may serve concurrent runs.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	// TTL is how long rendered artifacts stay cached.
	TTL time.Duration
}

// NewRunner returns a runner. A nil cache disables caching, a nil keyer
// selects [cache.DefaultKeyer] and a nil logger the default logger.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger, TTL: cache.TTLArtifact}
}

// Execute lays out and renders one view.
//
// Cached artifacts are returned unless opts.Refresh is set. Formats the
// view cannot produce are listed in Result.Skipped rather than failing the
// run.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	dataHash, err := cache.HashValue(opts.Data)
	if err != nil {
		return nil, fmt.Errorf("hash data: %w", err)
	}
	result := &Result{
		ID:        uuid.NewString(),
		View:      opts.View,
		DataHash:  dataHash,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
	}

	layoutStart := time.Now()
	chart, err := Layout(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Chart = chart
	result.Stats.Primitives = len(chart.Primitives)
	result.Stats.LayoutTime = time.Since(layoutStart)

	renderStart := time.Now()
	if err := r.render(ctx, opts, result); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = result.CacheInfo.Misses == 0 && result.CacheInfo.Hits > 0

	r.Logger.Info("rendered view",
		"view", opts.View,
		"formats", opts.Formats,
		"primitives", result.Stats.Primitives,
		"cached", result.CacheInfo.Hits,
		"duration", result.Stats.LayoutTime+result.Stats.RenderTime)
	return result, nil
}

func (r *Runner) render(ctx context.Context, opts Options, result *Result) (err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.View, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.View, opts.Formats, time.Since(start), err) }()

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return err
		}

		key := r.Keyer.ArtifactKey(result.DataHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, artifactKind)
				result.Artifacts[format] = data
				result.CacheInfo.Hits++
				continue
			} else if err != nil {
				r.Logger.Warn("cache read failed", "key", key, "err", err)
			}
			observability.Cache().OnCacheMiss(ctx, artifactKind)
		}
		result.CacheInfo.Misses++

		data, err := RenderFormat(result.Chart, opts, format)
		if IsSkipped(err) {
			r.Logger.Debug("skipping format", "view", opts.View, "format", format)
			result.Skipped = append(result.Skipped, format)
			result.CacheInfo.Misses--
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
		result.Artifacts[format] = data

		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			r.Logger.Warn("cache write failed", "key", key, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, artifactKind, len(data))
	}
	return nil
}

// RenderAll executes opts once per view, at most GOMAXPROCS at a time.
// Results are returned in view order. The first failure cancels the
// remaining views.
func (r *Runner) RenderAll(ctx context.Context, views []string, opts Options) ([]*Result, error) {
	results := make([]*Result, len(views))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, view := range views {
		o := opts
		o.View = view
		o.validated = false
		o.Formats = append([]string(nil), opts.Formats...)
		g.Go(func() error {
			res, err := r.Execute(ctx, o)
			if err != nil {
				return fmt.Errorf("%s: %w", view, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/venooo/dailybouquet/pkg/bouquet"
	"github.com/venooo/dailybouquet/pkg/cache"
	"github.com/venooo/dailybouquet/pkg/message"
	"github.com/venooo/dailybouquet/pkg/observability"
	"github.com/venooo/dailybouquet/pkg/palette"
	"github.com/venooo/dailybouquet/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
// Both the CLI and the daily mail job use it.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache      cache.Cache
	Keyer      cache.Keyer
	Logger     *log.Logger
	Rasterizer render.Rasterizer
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// The rasterizer defaults to rsvg-convert on a cream background.
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
		Cache:      c,
		Keyer:      keyer,
		Logger:     logger,
		Rasterizer: render.RSVG{Background: palette.Background},
	}
}

// Execute runs the complete generate → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{Seed: opts.Seed}

	hooks := observability.Pipeline()

	// Stage 1: Generate
	hooks.OnGenerateStart(ctx, opts.Seed)
	genStart := time.Now()
	result.Bouquet = bouquet.Generate(opts.Seed, opts.BouquetOptions()...)
	result.Message = opts.Message()
	result.Stats.GenerateTime = time.Since(genStart)
	result.Stats.Blooms = len(result.Bouquet.Placements)
	hooks.OnGenerateComplete(ctx, opts.Seed, result.Stats.Blooms, result.Stats.GenerateTime)

	opts.Logger.Debug("generated bouquet",
		"seed", opts.Seed,
		"blooms", result.Stats.Blooms,
		"fauna", len(result.Bouquet.Fauna),
		"duration", result.Stats.GenerateTime)

	// Stage 2: Render
	hooks.OnRenderStart(ctx, opts.Seed, opts.Formats)
	renderStart := time.Now()
	artifacts, info, err := r.RenderWithCacheInfo(ctx, result.Bouquet, result.Message, opts)
	hooks.OnRenderComplete(ctx, opts.Seed, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.CacheInfo = info
	result.Stats.RenderTime = time.Since(renderStart)
	for _, data := range artifacts {
		result.Stats.Bytes += len(data)
	}

	opts.Logger.Info("rendered bouquet",
		"seed", opts.Seed,
		"formats", opts.Formats,
		"cached", len(info.Hits),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo renders every requested format. Raster formats are
// looked up in the cache first unless opts.Refresh is set, and stored after
// rendering.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, b *bouquet.Bouquet, msg message.Message, opts Options) (map[string][]byte, CacheInfo, error) {
	var info CacheInfo
	hooks := observability.Cache()
	artifacts := make(map[string][]byte, len(opts.Formats))

	var missing []string
	cacheable := 0
	for _, format := range opts.Formats {
		if !Cacheable(format) {
			missing = append(missing, format)
			continue
		}
		cacheable++
		if opts.Refresh {
			missing = append(missing, format)
			continue
		}
		key := r.Keyer.ArtifactKey(opts.Seed, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			artifacts[format] = data
			info.Hits = append(info.Hits, format)
			hooks.OnCacheHit(ctx, format)
			continue
		}
		hooks.OnCacheMiss(ctx, format)
		missing = append(missing, format)
	}
	info.RenderHit = cacheable > 0 && len(info.Hits) == cacheable

	if len(missing) == 0 {
		return artifacts, info, nil
	}

	sub := opts
	sub.Formats = missing
	rendered, err := Render(ctx, r.Rasterizer, b, msg, sub)
	if err != nil {
		return nil, info, err
	}
	for format, data := range rendered {
		artifacts[format] = data
		if Cacheable(format) {
			key := r.Keyer.ArtifactKey(opts.Seed, opts.ArtifactKeyOpts(format))
			if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
				r.Logger.Warn("cache write failed", "format", format, "error", err)
				continue
			}
			hooks.OnCacheSet(ctx, format, len(data))
		}
	}
	return artifacts, info, nil
}

// ExecuteBatch runs the pipeline for each seed with at most jobs concurrent
// runs. Results are returned in seed order. The first error cancels the
// remaining runs.
func (r *Runner) ExecuteBatch(ctx context.Context, seeds []string, opts Options, jobs int) ([]*Result, error) {
	if jobs <= 0 {
		jobs = DefaultJobs
	}
	results := make([]*Result, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, s := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o := opts
			o.Seed = s
			o.Formats = append([]string(nil), opts.Formats...)
			o.validated = false
			res, err := r.Execute(ctx, o)
			if err != nil {
				return fmt.Errorf("seed %q: %w", s, err)
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

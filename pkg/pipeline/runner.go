package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/facetplot/pkg/cache"
	"github.com/matzehuels/facetplot/pkg/errors"
	fpio "github.com/matzehuels/facetplot/pkg/io"
	"github.com/matzehuels/facetplot/pkg/observability"
	"github.com/matzehuels/facetplot/pkg/plot"
	"github.com/matzehuels/facetplot/pkg/style"
	"github.com/matzehuels/facetplot/pkg/table"
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

// Execute runs the complete load → reshape → style → render pipeline and
// writes the image to opts.OutputPath.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:      uuid.NewString(),
		InputPath:  opts.InputPath,
		OutputPath: opts.OutputPath,
		Kind:       plot.Kind(opts.Kind),
	}
	logger := opts.Logger.With("run", result.RunID[:8], "input", filepath.Base(opts.InputPath))

	// Stage 1 + 2: Load and reshape
	tidy, hash, err := r.reshape(ctx, opts, &result.Stats)
	if err != nil {
		return nil, err
	}
	result.Table = tidy
	result.InputHash = hash

	logger.Info("reshaped table",
		"subjects", result.Stats.Subjects,
		"categories", result.Stats.Categories,
		"rows", result.Stats.Rows,
		"missing", result.Stats.Missing)

	// Stage 3: Style
	styles, err := style.Build(tidy.Categories, opts.Styles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.InputPath, err)
	}
	result.Styles = styles
	for _, e := range styles.Entries() {
		if e.Fallback {
			logger.Warn("no style for category, using fallback", "category", e.Category, "color", e.Name)
		}
	}

	// Stage 4: Render
	renderStart := time.Now()
	data, hit, err := r.RenderWithCacheInfo(ctx, tidy, styles, hash, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.InputPath, err)
	}
	result.PNG = data
	result.Stats.Bytes = len(data)
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = hit

	logger.Info("rendered figure",
		"kind", opts.Kind,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	// Write
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	writeStart := time.Now()
	if err := writeFile(opts.OutputPath, data); err != nil {
		return nil, err
	}
	result.Stats.WriteTime = time.Since(writeStart)

	logger.Info("wrote output", "path", opts.OutputPath, "bytes", len(data))
	return result, nil
}

// Reshape loads the input and returns its tidy form without rendering.
func (r *Runner) Reshape(ctx context.Context, opts Options) (*table.TidyTable, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForReshape(); err != nil {
		return nil, err
	}
	tidy, _, err := r.reshape(ctx, opts, &Stats{})
	return tidy, err
}

func (r *Runner) reshape(ctx context.Context, opts Options, stats *Stats) (*table.TidyTable, string, error) {
	hooks := observability.Pipeline()

	loadStart := time.Now()
	hooks.OnLoadStart(ctx, opts.InputPath)
	hash, raw, err := load(opts)
	stats.LoadTime = time.Since(loadStart)
	rows := 0
	if raw != nil {
		rows = raw.Len()
	}
	hooks.OnLoadComplete(ctx, opts.InputPath, rows, stats.LoadTime, err)
	if err != nil {
		return nil, "", err
	}

	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	reshapeStart := time.Now()
	hooks.OnReshapeStart(ctx, opts.Prefix)
	tidy, err := table.Reshape(raw, opts.Prefix, opts.Drop)
	stats.ReshapeTime = time.Since(reshapeStart)
	if err != nil {
		hooks.OnReshapeComplete(ctx, opts.Prefix, 0, stats.ReshapeTime, err)
		return nil, "", fmt.Errorf("%s: %w", opts.InputPath, err)
	}
	hooks.OnReshapeComplete(ctx, opts.Prefix, tidy.Len(), stats.ReshapeTime, nil)

	stats.Subjects = tidy.Subjects()
	stats.Categories = len(tidy.Categories)
	stats.Rows = tidy.Len()
	stats.Missing = 0
	for _, row := range tidy.Rows {
		if math.IsNaN(row.Value) {
			stats.Missing++
		}
	}
	return tidy, hash, nil
}

// load hashes and reads the input file.
func load(opts Options) (string, *table.Table, error) {
	hash, err := cache.HashFile(opts.InputPath)
	if err != nil {
		return "", nil, errors.Wrap(errors.ErrCodeIO, err, "read %s", opts.InputPath)
	}

	format, err := fpio.DetectFormat(opts.InputPath)
	if err != nil {
		return "", nil, err
	}
	if format == fpio.FormatXLSX && opts.Sheet != "" {
		raw, err := fpio.ReadXLSX(opts.InputPath, opts.Sheet)
		if err != nil {
			return "", nil, fmt.Errorf("%s: %w", opts.InputPath, err)
		}
		return hash, raw, nil
	}

	raw, err := fpio.ImportTable(opts.InputPath)
	if err != nil {
		return "", nil, err
	}
	return hash, raw, nil
}

// RenderWithCacheInfo draws and encodes the figure, consulting the cache
// first. It returns the PNG bytes and whether they came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, tidy *table.TidyTable, styles *style.Map, inputHash string, opts Options) ([]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	hooks := observability.Cache()

	cacheKey := r.Keyer.ArtifactKey(inputHash, opts.ArtifactKeyOpts())
	if !opts.Refresh && inputHash != "" {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			hooks.OnCacheHit(ctx, "png")
			return data, true, nil
		}
		hooks.OnCacheMiss(ctx, "png")
	}

	data, err := Render(ctx, tidy, styles, opts)
	if err != nil {
		return nil, false, err
	}

	if inputHash != "" {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err != nil {
			opts.Logger.Debug("cache write failed", "error", err)
		} else {
			hooks.OnCacheSet(ctx, "png", len(data))
		}
	}
	return data, false, nil
}

// Render draws the figure selected by opts.Kind and encodes it as PNG.
func Render(ctx context.Context, tidy *table.TidyTable, styles *style.Map, opts Options) ([]byte, error) {
	kind, err := plot.ParseKind(opts.Kind)
	if err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()

	start := time.Now()
	hooks.OnRenderStart(ctx, string(kind), len(tidy.Categories))
	img, err := plot.Render(kind, tidy, styles, opts.Plot)
	if err != nil {
		hooks.OnRenderComplete(ctx, string(kind), time.Since(start), err)
		return nil, err
	}

	var buf bytes.Buffer
	err = plot.EncodePNG(&buf, img, opts.Plot.DPI)
	hooks.OnRenderComplete(ctx, string(kind), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RunAll executes independent runs concurrently, at most jobs at a time.
// Results are returned in input order. The first failure cancels runs that
// have not started and is returned.
func (r *Runner) RunAll(ctx context.Context, runs []Options, jobs int) ([]*Result, error) {
	if jobs < 1 {
		jobs = DefaultJobs
	}
	results := make([]*Result, len(runs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, opts := range runs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.Execute(ctx, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
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

func writeFile(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}

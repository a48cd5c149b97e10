// Package pipeline provides the load → reshape → style → render pipeline
// shared by every facetplot command.
//
// # Architecture
//
// A run consists of four stages:
//
//  1. Load: read the wide table (tsv, csv or xlsx)
//  2. Reshape: pivot measurement columns into a tidy long table
//  3. Style: resolve a color for every category
//  4. Render: draw the figure and write it as PNG
//
// The [Runner] wraps the stages with timing, logging, observability hooks
// and an artifact cache keyed by the input's content hash.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    InputPath: "wide.tsv",
//	    Kind:      "facet",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.OutputPath)
package pipeline

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/facetplot/pkg/cache"
	"github.com/matzehuels/facetplot/pkg/errors"
	fpio "github.com/matzehuels/facetplot/pkg/io"
	"github.com/matzehuels/facetplot/pkg/plot"
	"github.com/matzehuels/facetplot/pkg/style"
	"github.com/matzehuels/facetplot/pkg/table"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultPrefix selects the measurement columns.
	DefaultPrefix = "Sample"

	// DefaultKind is the figure drawn when none is configured.
	DefaultKind = string(plot.KindFacet)

	// DefaultJobs bounds concurrent runs in RunAll.
	DefaultJobs = 4
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// Zero fields take defaults; the struct decodes from a TOML config file.
type Options struct {
	// Input options
	InputPath string   `toml:"input"`
	Sheet     string   `toml:"sheet"` // xlsx only; empty selects the first sheet
	Prefix    string   `toml:"prefix"`
	Drop      []string `toml:"drop"`

	// Output options
	OutputPath string `toml:"output"`
	Kind       string `toml:"kind"`

	// Styles maps categories to colors. Entries are laid over the
	// built-in sample palette; styles.fallback colors anything unlisted.
	Styles style.Assignment `toml:"styles"`

	// Plot controls figure geometry and marks.
	Plot plot.Options `toml:"plot"`

	// Runtime options (not serialized)
	Logger  *log.Logger `toml:"-"`
	Refresh bool        `toml:"-"` // skip cache lookups

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs.
	RunID string

	// InputPath and OutputPath are the files read and written.
	InputPath  string
	OutputPath string

	// InputHash is the content hash of the input file.
	InputHash string

	// Kind is the figure that was drawn.
	Kind plot.Kind

	// Table is the reshaped input.
	Table *table.TidyTable

	// Styles is the resolved style map.
	Styles *style.Map

	// PNG is the encoded image written to OutputPath.
	PNG []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Subjects    int
	Categories  int
	Rows        int
	Missing     int // NaN cells carried through the reshape
	Bytes       int
	LoadTime    time.Duration
	ReshapeTime time.Duration
	RenderTime  time.Duration
	WriteTime   time.Duration
}

// Total returns the summed stage durations.
func (s Stats) Total() time.Duration {
	return s.LoadTime + s.ReshapeTime + s.RenderTime + s.WriteTime
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether the image came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForReshape(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForReshape checks the fields needed to load and reshape the input.
func (o *Options) ValidateForReshape() error {
	if strings.TrimSpace(o.InputPath) == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input path is required")
	}
	o.SetReshapeDefaults()
	if err := errors.ValidatePrefix(o.Prefix); err != nil {
		return err
	}
	for _, col := range o.Drop {
		if err := errors.ValidateColumnName(col); err != nil {
			return err
		}
	}
	return nil
}

// SetReshapeDefaults sets default values for loading and reshaping.
func (o *Options) SetReshapeDefaults() {
	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for styling and rendering.
func (o *Options) SetRenderDefaults() {
	if o.Kind == "" {
		o.Kind = DefaultKind
	}
	o.Styles = style.Merge(style.DefaultAssignment(), o.Styles)
	o.Plot.SetDefaults()
	if o.OutputPath == "" && o.InputPath != "" {
		o.OutputPath = DefaultOutputPath(o.InputPath, o.Kind)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if _, err := plot.ParseKind(o.Kind); err != nil {
		return err
	}
	if err := errors.ValidateOutputPath(o.OutputPath); err != nil {
		return err
	}
	if o.Plot.GroupColumn != "" {
		if err := errors.ValidateColumnName(o.Plot.GroupColumn); err != nil {
			return err
		}
	}
	return o.Plot.Validate()
}

// DefaultOutputPath derives "<dir>/<base>_<kind>.png" from an input path.
func DefaultOutputPath(input, kind string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "_" + kind + ".png"
}

// ArtifactKeyOpts returns cache key options for the rendered image. The
// input format is part of the key: the same bytes parse differently as
// .csv and .tsv.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	format, _ := fpio.DetectFormat(o.InputPath)
	return cache.ArtifactKeyOpts{
		Format:     string(format),
		Sheet:      o.Sheet,
		Prefix:     o.Prefix,
		Drop:       slices.Clone(o.Drop),
		Kind:       o.Kind,
		Styles:     o.Styles.Colors,
		Fallback:   o.Styles.Fallback,
		Width:      o.Plot.Width,
		Height:     o.Plot.Height,
		DPI:        o.Plot.DPI,
		Wrap:       o.Plot.Wrap,
		ShareY:     o.Plot.ShareY,
		BoxColor:   o.Plot.BoxColor,
		PointColor: o.Plot.PointColor,
		PointSize:  o.Plot.PointSize,
		Jitter:     o.Plot.Jitter,
		Seed:       o.Plot.Seed,
		Group:      o.Plot.GroupColumn,
		Bins:       o.Plot.Bins,
		Title:      o.Plot.Title,
	}
}

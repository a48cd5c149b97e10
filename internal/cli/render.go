package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/facetplot/pkg/errors"
	"github.com/matzehuels/facetplot/pkg/pipeline"
	"github.com/matzehuels/facetplot/pkg/plot"
)

// inputFlags are the flags shared by every command that reads a wide table.
type inputFlags struct {
	config string   // explicit TOML config path
	prefix string   // measurement column prefix
	sheet  string   // xlsx sheet name
	drop   []string // columns removed before reshaping
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.config, "config", "", "TOML config file (default: ./"+pipeline.DefaultConfigFile+" if present)")
	cmd.Flags().StringVarP(&f.prefix, "prefix", "p", pipeline.DefaultPrefix, "prefix of the measurement columns")
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "worksheet to read from an xlsx input (default: first)")
	cmd.Flags().StringSliceVar(&f.drop, "drop", nil, "columns to remove before reshaping (comma-separated)")
	completeInputs(cmd)
}

// options builds pipeline options for input: defaults, then the config
// file, then any flag set on the command line.
func (f *inputFlags) options(cmd *cobra.Command, input string) (pipeline.Options, error) {
	var opts pipeline.Options
	path, err := pipeline.FindConfig(f.config)
	if err != nil {
		return opts, err
	}
	if path != "" {
		if err := pipeline.LoadConfig(path, &opts); err != nil {
			return opts, err
		}
		loggerFromContext(cmd.Context()).Debug("loaded config", "path", path)
	}

	changed := cmd.Flags().Changed
	if changed("prefix") {
		opts.Prefix = f.prefix
	}
	if changed("sheet") {
		opts.Sheet = f.sheet
	}
	if changed("drop") {
		opts.Drop = f.drop
	}
	opts.InputPath = input
	return opts, nil
}

// renderFlags holds the command-line flags for the render command.
type renderFlags struct {
	inputFlags

	output   string            // output file (single input only)
	kind     string            // facet or pairs
	group    string            // pairs point coloring column
	title    string            // figure title
	fallback string            // color for categories without a style
	styles   map[string]string // category=color overrides
	width    float64           // inches
	height   float64           // inches
	dpi      int
	wrap     int
	shareY   bool
	noCache  bool
	refresh  bool
	jobs     int
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render <input-file>...",
		Short: "Render wide tables to PNG figures",
		Long: `Render reshapes each input and draws it as a PNG figure.

Kinds:
  facet   one boxplot-with-jitter panel per measurement column
  pairs   pairwise scatter/correlation matrix with histograms

Settings are taken from defaults, then the config file, then flags.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.output != "" && len(args) > 1 {
				return errors.New(errors.ErrCodeInvalidInput, "--output cannot be used with more than one input")
			}
			runs := make([]pipeline.Options, 0, len(args))
			for _, input := range args {
				opts, err := f.options(cmd, input)
				if err != nil {
					return err
				}
				runs = append(runs, opts)
			}
			return c.runRender(cmd.Context(), runs, f.noCache, f.jobs)
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output PNG (default: <input>_<kind>.png)")
	cmd.Flags().StringVarP(&f.kind, "kind", "k", pipeline.DefaultKind, "figure kind: facet, pairs")
	cmd.Flags().StringVarP(&f.group, "group-column", "g", "", "column used to color points in pairs plots")
	cmd.Flags().StringVar(&f.title, "title", "", "figure title")
	cmd.Flags().StringVar(&f.fallback, "fallback", "", "color for categories without a style (default: fail)")
	cmd.Flags().StringToStringVar(&f.styles, "style", nil, "category colors, e.g. Sample_9=red,Sample_10=#336699")
	cmd.Flags().Float64Var(&f.width, "width", plot.DefaultWidth, "figure width in inches")
	cmd.Flags().Float64Var(&f.height, "height", plot.DefaultHeight, "figure height in inches")
	cmd.Flags().IntVar(&f.dpi, "dpi", plot.DefaultDPI, "resolution in dots per inch")
	cmd.Flags().IntVar(&f.wrap, "wrap", plot.DefaultWrap, "facet panels per row")
	cmd.Flags().BoolVar(&f.shareY, "share-y", false, "use one y range for all facet panels")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "redraw even when a cached image exists")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", pipeline.DefaultJobs, "inputs rendered concurrently")
	completeKind(cmd)

	return cmd
}

// options layers render flags over the shared input options.
func (f *renderFlags) options(cmd *cobra.Command, input string) (pipeline.Options, error) {
	opts, err := f.inputFlags.options(cmd, input)
	if err != nil {
		return opts, err
	}

	changed := cmd.Flags().Changed
	if changed("output") {
		opts.OutputPath = f.output
	}
	if changed("kind") {
		opts.Kind = f.kind
	}
	if changed("group-column") {
		opts.Plot.GroupColumn = f.group
	}
	if changed("title") {
		opts.Plot.Title = f.title
	}
	if changed("fallback") {
		opts.Styles.Fallback = f.fallback
	}
	if changed("style") {
		if opts.Styles.Colors == nil {
			opts.Styles.Colors = make(map[string]string, len(f.styles))
		}
		for k, v := range f.styles {
			opts.Styles.Colors[k] = v
		}
	}
	if changed("width") {
		opts.Plot.Width = f.width
	}
	if changed("height") {
		opts.Plot.Height = f.height
	}
	if changed("dpi") {
		opts.Plot.DPI = f.dpi
	}
	if changed("wrap") {
		opts.Plot.Wrap = f.wrap
	}
	if changed("share-y") {
		opts.Plot.ShareY = f.shareY
	}
	opts.Refresh = f.refresh
	return opts, nil
}

// runRender executes every run and reports the written files.
func (c *CLI) runRender(ctx context.Context, runs []pipeline.Options, noCache bool, jobs int) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	msg := "Rendering " + filepath.Base(runs[0].InputPath)
	if len(runs) > 1 {
		msg = fmt.Sprintf("Rendering %d files", len(runs))
	}
	spinner := newSpinnerWithContext(ctx, msg)
	spinner.Start()

	results, err := runner.RunAll(ctx, runs, jobs)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	for _, res := range results {
		printSuccess("Rendered %s %s", StyleHighlight.Render(string(res.Kind)), StyleValue.Render(filepath.Base(res.InputPath)))
		printFile(res.OutputPath)
		printStats(res.Stats, res.CacheInfo.RenderHit)
	}
	return nil
}

// Package pkg provides the libraries behind the facetplot command.
//
// # Overview
//
// facetplot turns a wide table of measurements (one row per subject, one
// column per sample) into figures: a grid of boxplot-with-jitter panels, one
// per measurement column, or a pairwise matrix of scatter plots, histograms
// and correlation coefficients. The pkg directory is organized into three
// areas:
//
//  1. Data - [table], [io], [describe]
//  2. Drawing - [style], [plot], [fonts]
//  3. Orchestration - [pipeline], [cache], [observability], [errors]
//
// # Architecture
//
// The data flow of one run:
//
//	TSV / CSV / XLSX file
//	         ↓
//	    [io] package (import into a raw table)
//	         ↓
//	    [table] package (reshape wide → tidy long form)
//	         ↓
//	    [style] package (resolve a color per category)
//	         ↓
//	    [plot] package (facet grid or pairs matrix)
//	         ↓
//	    PNG with embedded resolution
//
// [pipeline] runs these steps with caching, hooks and logging, and is what
// the CLI calls.
//
// # Quick Start
//
// Render a facet figure from a TSV file:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/facetplot/pkg/cache"
//	    "github.com/matzehuels/facetplot/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	defer runner.Close()
//
//	res, err := runner.Execute(context.Background(), pipeline.Options{
//	    InputPath: "measurements.tsv",
//	    Kind:      "facet",
//	})
//	// res.OutputPath is measurements_facet.png
//
// Or drive the steps by hand:
//
//	raw, _ := io.ImportTable("measurements.tsv")
//	tidy, _ := table.Reshape(raw, "Sample", []string{"VALUE"})
//	styles, _ := style.Build(tidy.Categories, style.DefaultAssignment())
//	img, _ := plot.Render(plot.KindFacet, tidy, styles, plot.Options{})
//	_ = plot.EncodePNG(w, img, plot.DefaultDPI)
//
// # Main Packages
//
// [table] - Raw string tables and their tidy long form. [table.Reshape]
// unpivots every column starting with a prefix; missing values become NaN.
//
// [io] - Delimited and Excel import, tidy TSV export.
//
// [describe] - Box statistics, per-category summaries, Pearson correlation
// with significance stars, and histograms.
//
// [style] - Category → color assignment. [style.Build] fails on categories
// without a color unless a fallback is configured.
//
// [plot] - Raster figure rendering. Facet grids share layout code with the
// pairs matrix; [plot.EncodePNG] writes the DPI into the file.
//
// [fonts] - Embedded fonts and cached faces for labels.
//
// [pipeline] - Options, TOML config loading, and the [pipeline.Runner] that
// ties everything together with concurrent multi-file runs.
//
// [cache] - Content-addressed figure cache (file and null backends).
//
// [observability] - Hooks for pipeline and cache events.
//
// [errors] - Coded errors and input validation.
//
// # Testing
//
// Run tests:
//
//	go test ./...                  # All tests
//	go test ./pkg/plot/...         # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [table]: https://pkg.go.dev/github.com/matzehuels/facetplot/pkg/table
// [io]: https://pkg.go.dev/github.com/matzehuels/facetplot/pkg/io
// [describe]: https://pkg.go.dev/github.com/matzehuels/facetplot/pkg/describe
// [style]: https://pkg.go.dev/github.com/matzehuels/facetplot/pkg/style
// [plot]: https://pkg.go.dev/github.com/matzehuels/facetplot/pkg/plot
// [fonts]: https://pkg.go.dev/github.com/matzehuels/facetplot/pkg/fonts
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/facetplot/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/facetplot/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/facetplot/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/facetplot/pkg/errors
package pkg

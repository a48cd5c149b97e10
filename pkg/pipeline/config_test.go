package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/facetplot/pkg/errors"
)

const sampleConfig = `
prefix = "Replicate"
kind   = "pairs"
output = "wide_facets_plot.png"
drop   = ["VALUE"]

[styles]
fallback = "gray"

[styles.colors]
Replicate_1 = "#336699"

[plot]
dpi      = 150
wrap     = 3
share_y  = true
group_column = "Group"
`

func TestDecodeConfig(t *testing.T) {
	var opts Options
	if err := DecodeConfig(sampleConfig, &opts); err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}

	if opts.Prefix != "Replicate" || opts.Kind != "pairs" || opts.OutputPath != "wide_facets_plot.png" {
		t.Errorf("top-level keys not decoded: %+v", opts)
	}
	if len(opts.Drop) != 1 || opts.Drop[0] != "VALUE" {
		t.Errorf("Drop = %v", opts.Drop)
	}
	if opts.Styles.Fallback != "gray" || opts.Styles.Colors["Replicate_1"] != "#336699" {
		t.Errorf("Styles = %+v", opts.Styles)
	}
	if opts.Plot.DPI != 150 || opts.Plot.Wrap != 3 || !opts.Plot.ShareY || opts.Plot.GroupColumn != "Group" {
		t.Errorf("Plot = %+v", opts.Plot)
	}
}

func TestConfigOverridesDefaults(t *testing.T) {
	opts := Options{InputPath: "wide.tsv"}
	if err := DecodeConfig("[plot]\ndpi = 150\n", &opts); err != nil {
		t.Fatal(err)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}

	if opts.Plot.DPI != 150 {
		t.Errorf("config DPI lost: %d", opts.Plot.DPI)
	}
	// Untouched keys still take defaults
	if opts.Plot.Wrap != 4 || opts.Prefix != DefaultPrefix {
		t.Errorf("defaults not applied: wrap=%d prefix=%q", opts.Plot.Wrap, opts.Prefix)
	}
}

func TestConfigLeavesUnsetFields(t *testing.T) {
	opts := Options{InputPath: "keep.tsv", Prefix: "Sample"}
	if err := DecodeConfig("kind = \"pairs\"\n", &opts); err != nil {
		t.Fatal(err)
	}
	if opts.InputPath != "keep.tsv" || opts.Prefix != "Sample" {
		t.Errorf("fields absent from config were changed: %+v", opts)
	}
}

func TestDecodeConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "prefix = "},
		{"unknown key", "colour = \"red\"\n"},
		{"unknown nested key", "[plot]\ndpii = 3\n"},
		{"wrong type", "[plot]\ndpi = \"high\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var opts Options
			err := DecodeConfig(tt.data, &opts)
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("got %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	var opts Options
	if err := LoadConfig(path, &opts); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if opts.Kind != "pairs" {
		t.Errorf("Kind = %q", opts.Kind)
	}

	if err := LoadConfig(filepath.Join(t.TempDir(), "none.toml"), &opts); !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("missing file: got %v, want IO error", err)
	}
}

func TestFindConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	got, err := FindConfig("")
	if err != nil || got != "" {
		t.Errorf("no config: got %q, %v", got, err)
	}

	if err := os.WriteFile(DefaultConfigFile, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err = FindConfig("")
	if err != nil || got != DefaultConfigFile {
		t.Errorf("default config: got %q, %v", got, err)
	}

	if _, err := FindConfig("elsewhere.toml"); !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("explicit missing config: got %v, want IO error", err)
	}
}

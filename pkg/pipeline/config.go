package pipeline

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/facetplot/pkg/errors"
)

// DefaultConfigFile is looked up in the working directory when no config
// path is given.
const DefaultConfigFile = "facetplot.toml"

// FindConfig resolves the config file to load. An explicit path must exist;
// otherwise DefaultConfigFile is used when present. An empty result means
// there is no config.
func FindConfig(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrap(errors.ErrCodeIO, err, "config %s", explicit)
		}
		return explicit, nil
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile, nil
	}
	return "", nil
}

// LoadConfig decodes the TOML file at path over opts. Keys absent from the
// file leave the corresponding fields untouched; unknown keys are rejected.
//
//	prefix = "Sample"
//	kind   = "facet"
//	output = "wide_facets_plot.png"
//
//	[styles]
//	fallback = "gray"
//	[styles.colors]
//	Sample_9 = "#336699"
//
//	[plot]
//	dpi  = 300
//	wrap = 4
func LoadConfig(path string, opts *Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "read config %s", path)
	}
	return DecodeConfig(string(data), opts)
}

// DecodeConfig decodes TOML text over opts.
func DecodeConfig(data string, opts *Options) error {
	md, err := toml.Decode(data, opts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

package plot

import (
	"image/color"
	"math"

	"github.com/matzehuels/facetplot/pkg/errors"
	"github.com/matzehuels/facetplot/pkg/style"
)

// Default values for Options.
const (
	DefaultWidth      = 10.0 // inches
	DefaultHeight     = 6.0  // inches
	DefaultDPI        = 300
	DefaultWrap       = 4
	DefaultBoxColor   = "#96bddd"
	DefaultPointColor = "#99bee8"
	DefaultPointSize  = 4.0 // points, marker diameter
	DefaultJitter     = 0.15
	DefaultSeed       = uint64(42)
	DefaultBins       = 10
)

// Options controls figure geometry and mark styling.
type Options struct {
	Width  float64 `toml:"width"`  // figure width in inches
	Height float64 `toml:"height"` // figure height in inches
	DPI    int     `toml:"dpi"`

	Wrap   int  `toml:"wrap"`    // facet panels per row
	ShareY bool `toml:"share_y"` // one y range for all facet panels

	BoxColor   string  `toml:"box_color"`
	PointColor string  `toml:"point_color"`
	PointSize  float64 `toml:"point_size"`
	Jitter     float64 `toml:"jitter"` // horizontal jitter as a fraction of panel width
	Seed       uint64  `toml:"seed"`

	GroupColumn string `toml:"group_column"` // pairs point coloring
	Bins        int    `toml:"bins"`         // pairs histogram bins

	Title string `toml:"title"`
}

// DefaultOptions returns Options with every default applied.
func DefaultOptions() Options {
	o := Options{}
	o.SetDefaults()
	return o
}

// SetDefaults fills zero fields with defaults.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Wrap == 0 {
		o.Wrap = DefaultWrap
	}
	if o.BoxColor == "" {
		o.BoxColor = DefaultBoxColor
	}
	if o.PointColor == "" {
		o.PointColor = DefaultPointColor
	}
	if o.PointSize == 0 {
		o.PointSize = DefaultPointSize
	}
	if o.Jitter == 0 {
		o.Jitter = DefaultJitter
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Bins == 0 {
		o.Bins = DefaultBins
	}
}

// Validate checks ranges and colors. Call SetDefaults first.
func (o Options) Validate() error {
	if err := errors.ValidateDimension("width", o.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("height", o.Height); err != nil {
		return err
	}
	if err := errors.ValidateDPI(o.DPI); err != nil {
		return err
	}
	if o.Wrap < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "wrap must be at least 1, got %d", o.Wrap)
	}
	if o.PointSize < 0 || o.Jitter < 0 || o.Jitter > 0.5 {
		return errors.New(errors.ErrCodeInvalidInput, "point size must be >= 0 and jitter in [0, 0.5]")
	}
	if o.Bins < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "bins must be at least 1, got %d", o.Bins)
	}
	for _, c := range []string{o.BoxColor, o.PointColor} {
		if _, err := style.ParseColor(c); err != nil {
			return err
		}
	}
	return nil
}

// PixelSize returns the figure size in pixels.
func (o Options) PixelSize() (w, h int) {
	return int(math.Round(o.Width * float64(o.DPI))), int(math.Round(o.Height * float64(o.DPI)))
}

// px converts points to pixels at o.DPI.
func (o Options) px(pt float64) float64 { return pt * float64(o.DPI) / 72 }

func (o Options) ipx(pt float64) int { return int(math.Round(o.px(pt))) }

func (o Options) boxColor() color.RGBA   { return style.MustParseColor(o.BoxColor) }
func (o Options) pointColor() color.RGBA { return style.MustParseColor(o.PointColor) }

func (o Options) prepare() (Options, error) {
	o.SetDefaults()
	if err := o.Validate(); err != nil {
		return o, err
	}
	return o, nil
}

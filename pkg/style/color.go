package style

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/facetplot/pkg/errors"
)

// ParseColor parses an SVG color name (case-insensitive) or a #rgb / #rrggbb
// hex triplet into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, errors.New(errors.ErrCodeInvalidStyle, "empty color")
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, errors.New(errors.ErrCodeInvalidStyle, "unknown color %q", s)
}

// MustParseColor is ParseColor for compile-time constants.
func MustParseColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex accepts #rgb and #rrggbb.
func parseHex(s string) (color.RGBA, error) {
	if len(s) != 4 && len(s) != 7 {
		return color.RGBA{}, errors.New(errors.ErrCodeInvalidStyle, "invalid hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid hex color %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// ToDrawing converts to the chart library's color type.
func ToDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// palette is a qualitative palette for group levels that have no assigned
// style.
var palette = []color.RGBA{
	{0xe4, 0x1a, 0x1c, 0xff},
	{0x37, 0x7e, 0xb8, 0xff},
	{0x4d, 0xaf, 0x4a, 0xff},
	{0x98, 0x4e, 0xa3, 0xff},
	{0xff, 0x7f, 0x00, 0xff},
	{0xa6, 0x56, 0x28, 0xff},
	{0xf7, 0x81, 0xbf, 0xff},
	{0x99, 0x99, 0x99, 0xff},
}

// PaletteColor returns the i-th qualitative color, cycling.
func PaletteColor(i int) color.RGBA {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}

// GroupColors assigns a color to every group level: the map's color when
// it has one for that level, else the next palette color.
func GroupColors(levels []string, m *Map) map[string]color.RGBA {
	out := make(map[string]color.RGBA, len(levels))
	next := 0
	for _, lvl := range levels {
		if m != nil {
			if c, ok := m.Color(lvl); ok {
				out[lvl] = c
				continue
			}
		}
		out[lvl] = PaletteColor(next)
		next++
	}
	return out
}

package plot

import (
	"image/color"
	"math"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/matzehuels/facetplot/pkg/describe"
	"github.com/matzehuels/facetplot/pkg/style"
)

// mark draws into a panel's plot area. x and y are the panel axes.
type mark func(r chart.Renderer, b chart.Box, x, y axis)

var (
	black     = drawing.Color{R: 0, G: 0, B: 0, A: 255}
	white     = drawing.Color{R: 255, G: 255, B: 255, A: 255}
	frameGray = drawing.Color{R: 80, G: 80, B: 80, A: 255}
	boxLine   = drawing.Color{R: 61, G: 61, B: 61, A: 255}

	// transparent is non-zero so the chart library does not replace it with
	// a default stroke color.
	transparent = drawing.Color{R: 255, G: 255, B: 255, A: 0}
)

func px(b chart.Box, a axis, v float64) int {
	return b.Left + int(math.Round(float64(b.Width())*a.frac(v)))
}

func py(b chart.Box, a axis, v float64) int {
	return b.Bottom - int(math.Round(float64(b.Height())*a.frac(v)))
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// boxMark draws a box without fliers centered at x = 0.5, width w in axis
// units, with whiskers and caps.
func boxMark(bx describe.Box, w float64, fill drawing.Color, lineWidth float64) mark {
	return func(r chart.Renderer, b chart.Box, x, y axis) {
		if bx.N == 0 {
			return
		}
		x0, x1 := px(b, x, 0.5-w/2), px(b, x, 0.5+w/2)
		xc := px(b, x, 0.5)
		capHalf := (x1 - x0) / 4

		r.SetFillColor(fill)
		r.SetStrokeColor(boxLine)
		r.SetStrokeWidth(lineWidth)

		yq1, yq3 := py(b, y, bx.Q1), py(b, y, bx.Q3)
		r.MoveTo(x0, yq3)
		r.LineTo(x1, yq3)
		r.LineTo(x1, yq1)
		r.LineTo(x0, yq1)
		r.Close()
		r.FillStroke()

		ym := py(b, y, bx.Median)
		r.MoveTo(x0, ym)
		r.LineTo(x1, ym)
		r.Stroke()

		for _, seg := range [][2]float64{{bx.Q3, bx.HiWhisker}, {bx.Q1, bx.LowWhisker}} {
			y0, y1 := py(b, y, seg[0]), py(b, y, seg[1])
			r.MoveTo(xc, y0)
			r.LineTo(xc, y1)
			r.Stroke()
			r.MoveTo(xc-capHalf, y1)
			r.LineTo(xc+capHalf, y1)
			r.Stroke()
		}
	}
}

// point is one marker in axis coordinates.
type point struct {
	X, Y  float64
	Color drawing.Color
}

// pointsMark draws filled circles with a thin black edge. Points with a
// non-finite coordinate are skipped.
func pointsMark(pts []point, radius, edge float64) mark {
	return func(r chart.Renderer, b chart.Box, x, y axis) {
		for _, p := range pts {
			if !finite(p.X) || !finite(p.Y) {
				continue
			}
			r.SetFillColor(p.Color)
			if edge > 0 {
				r.SetStrokeColor(black)
				r.SetStrokeWidth(edge)
			} else {
				r.SetStrokeColor(p.Color)
				r.SetStrokeWidth(0.5)
			}
			r.Circle(radius, px(b, x, p.X), py(b, y, p.Y))
			r.FillStroke()
		}
	}
}

// barsMark draws a histogram from bin edges and counts.
func barsMark(edges, counts []float64, fill drawing.Color, lineWidth float64) mark {
	return func(r chart.Renderer, b chart.Box, x, y axis) {
		r.SetFillColor(fill)
		r.SetStrokeColor(white)
		r.SetStrokeWidth(lineWidth)
		for i, c := range counts {
			if c <= 0 {
				continue
			}
			x0, x1 := px(b, x, edges[i]), px(b, x, edges[i+1])
			y0, y1 := py(b, y, 0), py(b, y, c)
			r.MoveTo(x0, y0)
			r.LineTo(x0, y1)
			r.LineTo(x1, y1)
			r.LineTo(x1, y0)
			r.Close()
			r.FillStroke()
		}
	}
}

// textLine is one centered line of annotation text.
type textLine struct {
	Text  string
	Color drawing.Color
}

// textMark centers lines vertically and horizontally in the plot area.
func textMark(lines []textLine, size float64) mark {
	return func(r chart.Renderer, b chart.Box, x, y axis) {
		if len(lines) == 0 {
			return
		}
		r.SetFontSize(size)
		lineH := r.MeasureText("Hg").Height() * 3 / 2
		top := b.Top + (b.Height()-lineH*len(lines))/2
		for i, l := range lines {
			tb := r.MeasureText(l.Text)
			r.SetFontColor(l.Color)
			r.Text(l.Text, b.Left+(b.Width()-tb.Width())/2, top+lineH*i+lineH*3/4)
		}
	}
}

// frameMark outlines the plot area.
func frameMark(lineWidth float64) mark {
	return func(r chart.Renderer, b chart.Box, x, y axis) {
		r.SetFillColor(transparent)
		r.SetStrokeColor(frameGray)
		r.SetStrokeWidth(lineWidth)
		r.MoveTo(b.Left, b.Top)
		r.LineTo(b.Right, b.Top)
		r.LineTo(b.Right, b.Bottom)
		r.LineTo(b.Left, b.Bottom)
		r.Close()
		r.Stroke()
	}
}

// stripSide says where a strip sits relative to the plot area.
type stripSide int

const (
	stripTop stripSide = iota
	stripRight
)

// stripMark draws a filled label strip flush with the plot area, with the
// label centered in white bold text. Right strips read bottom to top.
func stripMark(label string, side stripSide, fill color.RGBA, thickness int, size float64, bold *truetype.Font) mark {
	return func(r chart.Renderer, b chart.Box, x, y axis) {
		var s chart.Box
		switch side {
		case stripTop:
			s = chart.Box{Top: b.Top - thickness, Left: b.Left, Right: b.Right, Bottom: b.Top}
		case stripRight:
			s = chart.Box{Top: b.Top, Left: b.Right, Right: b.Right + thickness, Bottom: b.Bottom}
		}
		r.SetFillColor(style.ToDrawing(fill))
		r.SetStrokeColor(style.ToDrawing(fill))
		r.SetStrokeWidth(1)
		r.MoveTo(s.Left, s.Top)
		r.LineTo(s.Right, s.Top)
		r.LineTo(s.Right, s.Bottom)
		r.LineTo(s.Left, s.Bottom)
		r.Close()
		r.FillStroke()

		if bold != nil {
			r.SetFont(bold)
		}
		r.SetFontSize(size)
		r.SetFontColor(white)
		text := fitText(r, label, max(s.Width(), s.Height()))
		tb := r.MeasureText(text)
		switch side {
		case stripTop:
			r.Text(text, s.Left+(s.Width()-tb.Width())/2, s.Top+(s.Height()+tb.Height())/2)
		case stripRight:
			r.SetTextRotation(-math.Pi / 2)
			r.Text(text, s.Left+(s.Width()+tb.Height())/2, s.Top+(s.Height()+tb.Width())/2)
			r.ClearTextRotation()
		}
	}
}

// fitText shortens s with an ellipsis until it fits in width pixels.
func fitText(r chart.Renderer, s string, width int) string {
	if r.MeasureText(s).Width() <= width {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		t := strings.TrimSpace(string(runes[:n])) + "…"
		if r.MeasureText(t).Width() <= width {
			return t
		}
	}
	return ""
}

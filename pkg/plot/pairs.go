package plot

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/matzehuels/facetplot/pkg/describe"
	"github.com/matzehuels/facetplot/pkg/errors"
	"github.com/matzehuels/facetplot/pkg/fonts"
	"github.com/matzehuels/facetplot/pkg/style"
	"github.com/matzehuels/facetplot/pkg/table"
)

// Pairs draws an M×M scatterplot matrix of the categories.
//
// Cell (i, j) plots category j on x against category i on y. Below the
// diagonal are scatterplots, colored by opts.GroupColumn when set; the
// diagonal holds a histogram of the category in its style color; above the
// diagonal the Pearson correlation is printed with significance stars,
// overall and then per group in the group's color.
//
// Group colors come from styles when it has an entry for the group value,
// else from a fixed qualitative palette. A GroupColumn that is not an
// identifier column of t is a schema error.
func Pairs(t *table.TidyTable, styles *style.Map, opts Options) (image.Image, error) {
	o, err := opts.prepare()
	if err != nil {
		return nil, err
	}
	if err := checkInputs(t, styles); err != nil {
		return nil, err
	}
	bold, err := fonts.Font(fonts.Bold)
	if err != nil {
		return nil, err
	}
	g, err := groupsOf(t, o.GroupColumn, styles)
	if err != nil {
		return nil, err
	}

	cats := t.Categories
	n := len(cats)
	values := make([][]float64, n)
	axes := make([]axis, n)
	for i, cat := range cats {
		values[i] = t.Values(cat)
		lo, hi, _ := describe.Range(values[i])
		axes[i] = niceAxis(lo, hi)
	}

	w, h := o.PixelSize()
	margin := o.ipx(4)
	titleH := 0
	if o.Title != "" {
		titleH = o.ipx(20)
	}
	stripH := o.ipx(12)
	axisW := o.ipx(26)
	axisH := o.ipx(14)
	cellW := (w - 2*margin - axisW - stripH) / n
	cellH := (h - 2*margin - titleH - stripH - axisH) / n
	if cellW < 1 || cellH < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"figure too small for a %d×%d matrix at %d dpi", n, n, o.DPI)
	}

	p0 := o.ipx(1)
	cv := newCanvas(w, h, float64(o.DPI))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p := panel{
				Width:   cellW,
				Height:  cellH,
				X:       axes[j],
				Y:       axes[i],
				ShowX:   i == n-1,
				ShowY:   j == 0 && i != j,
				Padding: chart.Box{Top: p0, Left: p0, Right: p0, Bottom: p0},
			}
			at := image.Pt(margin+axisW+j*cellW, margin+titleH+stripH+i*cellH)

			switch {
			case i > j:
				p.Marks = append(p.Marks, g.scatter(values[j], values[i], o))
			case i == j:
				edges, counts := describe.Histogram(values[i], o.Bins)
				p.Y = countAxis(slices.Max(append(counts, 0)))
				fill, _ := styles.Color(cats[i])
				p.Marks = append(p.Marks, barsMark(edges, counts, style.ToDrawing(fill), o.px(0.4)))
			default:
				p.Marks = append(p.Marks, textMark(g.correlations(values[j], values[i]), 8))
			}

			if j == 0 {
				p.Width += axisW
				at.X -= axisW
			}
			if i == n-1 {
				p.Height += axisH
			}
			if i == 0 {
				p.Height += stripH
				p.Padding.Top += stripH
				at.Y -= stripH
				p.Marks = append(p.Marks, categoryStrip(cats[j], stripTop, styles, stripH, bold))
			}
			if j == n-1 {
				p.Width += stripH
				p.Padding.Right += stripH
				p.Marks = append(p.Marks, categoryStrip(cats[i], stripRight, styles, stripH, bold))
			}

			img, err := o.renderPanel(p)
			if err != nil {
				return nil, err
			}
			cv.paste(img, at)
		}
	}

	if o.Title != "" {
		if err := cv.title(o.Title, 12, margin, titleH); err != nil {
			return nil, err
		}
	}
	return cv.img, nil
}

func categoryStrip(cat string, side stripSide, styles *style.Map, thickness int, bold *truetype.Font) mark {
	fill, _ := styles.Color(cat)
	return stripMark(cat, side, fill, thickness, 7, bold)
}

// grouping assigns each subject to a group level.
type grouping struct {
	ids    []string // per subject; nil when ungrouped
	levels []string
	colors map[string]color.RGBA
	single color.RGBA
}

func groupsOf(t *table.TidyTable, column string, styles *style.Map) (*grouping, error) {
	g := &grouping{single: color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}}
	if column == "" {
		return g, nil
	}
	ids, ok := t.IDs(column)
	if !ok {
		return nil, errors.New(errors.ErrCodeSchema, "group column %q not found (identifier columns: %v)", column, t.IDColumns)
	}
	g.ids = ids
	g.levels, _ = t.Levels(column)
	g.colors = style.GroupColors(g.levels, styles)
	return g, nil
}

func (g *grouping) colorOf(subject int) drawing.Color {
	if g.ids == nil {
		return style.ToDrawing(g.single)
	}
	return style.ToDrawing(g.colors[g.ids[subject]])
}

func (g *grouping) scatter(x, y []float64, o Options) mark {
	pts := make([]point, 0, len(x))
	for s := range x {
		pts = append(pts, point{X: x[s], Y: y[s], Color: g.colorOf(s)})
	}
	return pointsMark(pts, o.px(o.PointSize/2*0.75), o.px(0.3))
}

// correlations returns the annotation lines for an upper-triangle cell.
func (g *grouping) correlations(x, y []float64) []textLine {
	lines := []textLine{{Text: "Corr: " + formatCorr(describe.Pearson(x, y)), Color: black}}
	for _, lvl := range g.levels {
		var gx, gy []float64
		for s, id := range g.ids {
			if id == lvl {
				gx = append(gx, x[s])
				gy = append(gy, y[s])
			}
		}
		lines = append(lines, textLine{
			Text:  fmt.Sprintf("%s: %s", lvl, formatCorr(describe.Pearson(gx, gy))),
			Color: style.ToDrawing(g.colors[lvl]),
		})
	}
	return lines
}

func formatCorr(c describe.Correlation) string {
	if math.IsNaN(c.R) {
		return "NA"
	}
	return fmt.Sprintf("%.3f%s", c.R, describe.Stars(c.P))
}

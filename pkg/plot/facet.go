package plot

import (
	"image"
	"math/rand/v2"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/matzehuels/facetplot/pkg/describe"
	"github.com/matzehuels/facetplot/pkg/fonts"
	"github.com/matzehuels/facetplot/pkg/style"
	"github.com/matzehuels/facetplot/pkg/table"
)

// Facet draws one boxplot-with-jitter panel per category, opts.Wrap panels
// per row, in category order. Every category needs a style; its color fills
// the panel strip.
//
// Unless opts.ShareY is set each panel gets its own y range. Jitter is
// drawn from a PRNG seeded with opts.Seed, so output is reproducible.
func Facet(t *table.TidyTable, styles *style.Map, opts Options) (image.Image, error) {
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

	w, h := o.PixelSize()
	n := len(t.Categories)
	cols := min(o.Wrap, n)
	rows := ceilDiv(n, cols)

	margin := o.ipx(4)
	titleH := 0
	if o.Title != "" {
		titleH = o.ipx(20)
	}
	cellW := (w - 2*margin) / cols
	cellH := (h - 2*margin - titleH) / rows
	stripH := o.ipx(14)

	var shared axis
	if o.ShareY {
		all := make([][]float64, 0, n)
		for _, cat := range t.Categories {
			all = append(all, t.Values(cat))
		}
		lo, hi, _ := describe.Range(all...)
		shared = niceAxis(lo, hi)
	}

	boxFill := style.ToDrawing(o.boxColor())
	pointFill := style.ToDrawing(o.pointColor())
	rng := rand.New(rand.NewPCG(o.Seed, 0))

	cv := newCanvas(w, h, float64(o.DPI))
	for i, cat := range t.Categories {
		values := t.Values(cat)

		y := shared
		if !o.ShareY {
			lo, hi, _ := describe.Range(values)
			y = niceAxis(lo, hi)
		}

		pts := make([]point, 0, len(values))
		for _, v := range values {
			dx := (rng.Float64()*2 - 1) * o.Jitter
			pts = append(pts, point{X: 0.5 + dx, Y: v, Color: pointFill})
		}

		fill, _ := styles.Color(cat)
		img, err := o.renderPanel(panel{
			Width:   cellW,
			Height:  cellH,
			X:       unitAxis(),
			Y:       y,
			ShowY:   true,
			Padding: chart.Box{Top: stripH + o.ipx(2), Left: o.ipx(2), Right: o.ipx(4), Bottom: o.ipx(4)},
			Marks: []mark{
				boxMark(describe.BoxStats(values), 0.5, boxFill, o.px(0.8)),
				pointsMark(pts, o.px(o.PointSize/2), o.px(0.5)),
				stripMark(cat, stripTop, fill, stripH, 9, bold),
			},
		})
		if err != nil {
			return nil, err
		}
		r, c := i/cols, i%cols
		cv.paste(img, image.Pt(margin+c*cellW, margin+titleH+r*cellH))
	}

	if o.Title != "" {
		if err := cv.title(o.Title, 12, margin, titleH); err != nil {
			return nil, err
		}
	}
	return cv.img, nil
}

package plot

import (
	"bytes"
	"image"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/matzehuels/facetplot/pkg/errors"
)

// panel describes one chart cell of a figure.
type panel struct {
	Width, Height int
	X, Y          axis
	ShowX, ShowY  bool
	Padding       chart.Box
	Marks         []mark
}

// renderPanel draws p with go-chart and decodes the result.
//
// The y axis is drawn on the left through the secondary axis slot; the
// primary axis carries the same range and stays hidden. An invisible anchor
// series spans both ranges because the chart refuses to render without one.
// Both y axes carry the ticks: go-chart derives the secondary range from the
// primary axis ticks whenever the secondary has ticks of its own.
func (o Options) renderPanel(p panel) (image.Image, error) {
	ch := chart.Chart{
		Width:      p.Width,
		Height:     p.Height,
		DPI:        float64(o.DPI),
		Background: chart.Style{Padding: p.Padding, FillColor: white},
		Canvas:     chart.Style{FillColor: white},
		XAxis: chart.XAxis{
			Range: p.X.chartRange(),
			Ticks: p.X.Ticks,
			Style: o.axisStyle(p.ShowX),
		},
		YAxis: chart.YAxis{
			Range: p.Y.chartRange(),
			Ticks: p.Y.Ticks,
			Style: chart.Style{Hidden: true},
		},
		YAxisSecondary: chart.YAxis{
			Range: p.Y.chartRange(),
			Ticks: p.Y.Ticks,
			Style: o.axisStyle(p.ShowY),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{p.X.Min, p.X.Max},
				YValues: []float64{p.Y.Min, p.Y.Max},
				YAxis:   chart.YAxisSecondary,
				Style:   chart.Style{StrokeColor: transparent, StrokeWidth: 1},
			},
		},
	}
	marks := append(append([]mark{}, p.Marks...), frameMark(o.px(0.6)))
	for _, m := range marks {
		ch.Elements = append(ch.Elements, func(r chart.Renderer, b chart.Box, _ chart.Style) {
			m(r, b, p.X, p.Y)
		})
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render panel")
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode panel")
	}
	return img, nil
}

func (o Options) axisStyle(show bool) chart.Style {
	if !show {
		return chart.Style{Hidden: true}
	}
	return chart.Style{
		FontSize:    7,
		FontColor:   frameGray,
		StrokeColor: frameGray,
		StrokeWidth: o.px(0.6),
	}
}

// pad returns a padding box in pixels from point values.
func (o Options) pad(top, right, bottom, left float64) chart.Box {
	return chart.Box{Top: o.ipx(top), Right: o.ipx(right), Bottom: o.ipx(bottom), Left: o.ipx(left)}
}

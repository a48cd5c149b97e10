package plot

import (
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"github.com/wcharczuk/go-chart/v2"
)

const maxTicks = 6

// axis is a value range plus the tick marks drawn for it. When Ticks is
// non-empty its first and last values are Min and Max; the chart library
// derives the axis range from explicit ticks, so the two must agree.
type axis struct {
	Min, Max float64
	Ticks    []chart.Tick
}

// niceAxis widens [lo, hi] to the enclosing round tick values, leaving at
// least 5% headroom on each side.
func niceAxis(lo, hi float64) axis {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		lo, hi = 0, 1
	}
	if lo == hi {
		d := math.Max(math.Abs(lo)*0.1, 0.5)
		lo, hi = lo-d, hi+d
	}

	step := (hi - lo) / 4
	ls := scale.Linear{Min: lo, Max: hi}
	major, _ := ls.Ticks(scale.TickOptions{Max: maxTicks})
	if len(major) >= 2 {
		step = major[1] - major[0]
	}

	pad := (hi - lo) * 0.05
	a := axis{
		Min: math.Floor(lo/step) * step,
		Max: math.Ceil(hi/step) * step,
	}
	if lo-a.Min < pad {
		a.Min -= step
	}
	if a.Max-hi < pad {
		a.Max += step
	}
	a.Ticks = ticksBetween(a.Min, a.Max, step)
	return a
}

// countAxis is an axis from zero for histogram counts.
func countAxis(maxCount float64) axis {
	if maxCount <= 0 {
		maxCount = 1
	}
	step := 1.0
	ls := scale.Linear{Min: 0, Max: maxCount}
	major, _ := ls.Ticks(scale.TickOptions{Max: 4})
	if len(major) >= 2 {
		step = math.Max(1, major[1]-major[0])
	}
	a := axis{Min: 0, Max: math.Ceil(maxCount/step) * step}
	if a.Max == maxCount {
		a.Max += step
	}
	a.Ticks = ticksBetween(a.Min, a.Max, step)
	return a
}

// unitAxis is the hidden [0, 1] axis of a facet panel.
func unitAxis() axis { return axis{Min: 0, Max: 1} }

func ticksBetween(lo, hi, step float64) []chart.Tick {
	n := int(math.Round((hi - lo) / step))
	ticks := make([]chart.Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := lo + float64(i)*step
		if i == n {
			v = hi
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return ticks
}

// frac maps v into [0, 1] along a.
func (a axis) frac(v float64) float64 {
	return (v - a.Min) / (a.Max - a.Min)
}

func (a axis) chartRange() *chart.ContinuousRange {
	return &chart.ContinuousRange{Min: a.Min, Max: a.Max}
}

func formatTick(v float64) string {
	if math.Abs(v) < 1e-12 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

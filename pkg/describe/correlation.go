package describe

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Correlation is a Pearson correlation with its two-sided p-value.
type Correlation struct {
	R float64
	P float64
	N int // complete pairs used
}

// Pearson correlates x and y over the positions where both are finite.
// With fewer than three complete pairs, or zero variance on either side,
// R and P are NaN.
func Pearson(x, y []float64) Correlation {
	n := min(len(x), len(y))
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if isFinite(x[i]) && isFinite(y[i]) {
			xs = append(xs, x[i])
			ys = append(ys, y[i])
		}
	}

	c := Correlation{R: math.NaN(), P: math.NaN(), N: len(xs)}
	if c.N < 3 {
		return c
	}
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return c
	}
	c.R = math.Max(-1, math.Min(1, r))
	c.P = correlationPValue(c.R, c.N)
	return c
}

func correlationPValue(r float64, n int) float64 {
	if math.Abs(r) >= 1 {
		return 0
	}
	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * (1 - dist.CDF(math.Abs(t)))
}

// Stars returns the significance code for p:
// "***" < 0.001, "**" < 0.01, "*" < 0.05, "." < 0.1, else "".
func Stars(p float64) string {
	switch {
	case math.IsNaN(p):
		return ""
	case p < 0.001:
		return "***"
	case p < 0.01:
		return "**"
	case p < 0.05:
		return "*"
	case p < 0.1:
		return "."
	}
	return ""
}

// Histogram bins the finite values into equal-width bins and returns the
// bins+1 edges and the per-bin counts. The last bin is closed on the right.
// It returns nil slices when there are no finite values.
func Histogram(values []float64, bins int) (edges, counts []float64) {
	data := Finite(values)
	if len(data) == 0 || bins < 1 {
		return nil, nil
	}
	slices.Sort(data)
	lo, hi := data[0], data[len(data)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	edges = make([]float64, bins+1)
	floats.Span(edges, lo, hi)

	// stat.Histogram wants every value strictly below the last divider.
	dividers := slices.Clone(edges)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts = stat.Histogram(nil, dividers, data, nil)
	return edges, counts
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

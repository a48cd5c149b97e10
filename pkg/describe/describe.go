// Package describe computes the statistics drawn by the plots and printed by
// the summary command: box statistics, per-category summaries, Pearson
// correlation with a t-test p-value, and histogram bins.
//
// NaN values mark missing cells and are skipped everywhere.
package describe

import (
	"math"
	"slices"

	"github.com/montanaflynn/stats"

	"github.com/matzehuels/facetplot/pkg/table"
)

// Box holds the five-number summary drawn by a boxplot.
//
// Quartiles are Tukey hinges (medians of the lower and upper halves).
// Whiskers reach the most extreme data points within 1.5 × IQR of the box.
type Box struct {
	N          int
	Min        float64
	LowWhisker float64
	Q1         float64
	Median     float64
	Q3         float64
	HiWhisker  float64
	Max        float64
}

// IQR returns the interquartile range.
func (b Box) IQR() float64 { return b.Q3 - b.Q1 }

// BoxStats computes box statistics for values. With no finite values every
// field except N is NaN.
func BoxStats(values []float64) Box {
	data := Finite(values)
	nan := math.NaN()
	b := Box{N: len(data), Min: nan, LowWhisker: nan, Q1: nan, Median: nan, Q3: nan, HiWhisker: nan, Max: nan}
	if len(data) == 0 {
		return b
	}
	slices.Sort(data)
	b.Min, b.Max = data[0], data[len(data)-1]

	if len(data) == 1 {
		b.Q1, b.Median, b.Q3 = data[0], data[0], data[0]
	} else {
		q, err := stats.Quartile(data)
		if err != nil {
			return b
		}
		b.Q1, b.Median, b.Q3 = q.Q1, q.Q2, q.Q3
	}

	lo, hi := b.Q1-1.5*b.IQR(), b.Q3+1.5*b.IQR()
	b.LowWhisker, b.HiWhisker = b.Q1, b.Q3
	for _, v := range data {
		if v >= lo {
			b.LowWhisker = math.Min(v, b.Q1)
			break
		}
	}
	for i := len(data) - 1; i >= 0; i-- {
		if data[i] <= hi {
			b.HiWhisker = math.Max(data[i], b.Q3)
			break
		}
	}
	return b
}

// Summary describes one category.
type Summary struct {
	Category string
	N        int
	Missing  int
	Mean     float64
	StdDev   float64 // sample standard deviation; NaN when N < 2
	Min      float64
	Median   float64
	Max      float64
}

// Summarize returns one Summary per category, in category order.
func Summarize(t *table.TidyTable) []Summary {
	out := make([]Summary, 0, len(t.Categories))
	for _, cat := range t.Categories {
		out = append(out, SummarizeValues(cat, t.Values(cat)))
	}
	return out
}

// SummarizeValues describes a single sample.
func SummarizeValues(category string, values []float64) Summary {
	data := stats.Float64Data(Finite(values))
	nan := math.NaN()
	s := Summary{
		Category: category,
		N:        data.Len(),
		Missing:  len(values) - data.Len(),
		Mean:     nan, StdDev: nan, Min: nan, Median: nan, Max: nan,
	}
	if s.N == 0 {
		return s
	}
	s.Mean, _ = data.Mean()
	s.Min, _ = data.Min()
	s.Median, _ = data.Median()
	s.Max, _ = data.Max()
	if s.N > 1 {
		s.StdDev, _ = stats.StandardDeviationSample(data)
	}
	return s
}

// Finite returns the non-NaN, non-Inf values of v in order.
func Finite(v []float64) []float64 {
	out := make([]float64, 0, len(v))
	for _, x := range v {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}
	return out
}

// Range returns the min and max finite value across all inputs. ok is false
// when there are none.
func Range(values ...[]float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		for _, x := range Finite(v) {
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
	}
	return lo, hi, lo <= hi
}

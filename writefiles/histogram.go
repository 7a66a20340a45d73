package writefiles

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/notargets/gov4s/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrEmptyHistogram = errors.New("histogram needs at least one finite value")

// Histogram bins V4S values into equal width bins spanning their range.
type Histogram struct {
	Dividers []float64 // len(Counts)+1 ascending bin edges
	Counts   []float64
	N        int
	Mean     float64
	StdDev   float64
}

func NewHistogram(values []float64, bins int) (h *Histogram, err error) {
	if bins < 1 {
		return nil, fmt.Errorf("histogram bin count %d must be positive", bins)
	}
	if len(values) == 0 {
		return nil, ErrEmptyHistogram
	}
	if !utils.IsFinite(values...) {
		return nil, fmt.Errorf("%w: non-finite input", ErrEmptyHistogram)
	}
	lo, hi := floats.Min(values), floats.Max(values)
	// stat.Histogram needs sorted input
	x := append([]float64{}, values...)
	sort.Float64s(x)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	h = &Histogram{
		Dividers: floats.Span(make([]float64, bins+1), lo, hi),
		N:        len(x),
	}
	// stat.Histogram needs the last edge strictly above the largest value
	h.Dividers[bins] = math.Nextafter(hi, math.Inf(1))
	h.Counts = stat.Histogram(nil, h.Dividers, x, nil)
	h.Mean, h.StdDev = stat.MeanStdDev(x, nil)
	if h.N == 1 {
		h.StdDev = 0
	}
	return h, nil
}

// Write prints a summary header followed by "lo hi count" per bin.
func (h *Histogram) Write(w io.Writer) (err error) {
	if _, err = fmt.Fprintf(w, "# n=%d mean=%.4f std=%.4f\n", h.N, h.Mean, h.StdDev); err != nil {
		return
	}
	for i, c := range h.Counts {
		if _, err = fmt.Fprintf(w, "%12.4f %12.4f %8d\n", h.Dividers[i], h.Dividers[i+1], int(c)); err != nil {
			return
		}
	}
	return
}

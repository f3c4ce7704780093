// Package engine implements the single-row rolling moment recurrence.
//
// The primitive state for one window is its power sums S1..S4 over exactly
// the samples inside the window. Central moments are derived from the sums
// on demand; keeping them as the primitive would force an O(lag) rescan on
// every slide. Sliding a window forward by skip samples subtracts the
// powers of the samples that leave and adds the powers of the samples that
// enter, so one full row costs O(len(seq)) regardless of lag.
//
// Power-sum recurrences trade accuracy for that reuse: S2/n - mean² can
// cancel catastrophically on low-variance, large-magnitude data. Welford
// style updates avoid the cancellation but have no O(1) sample removal, so
// they cannot slide. Exact mode re-sums every window from the raw samples
// instead, an O(lag) per-window fallback for when accuracy matters more
// than the constant factor.
package engine

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/movelab/sigfeat/internal/plan"
)

// MaxOrder is the highest supported moment order (kurtosis).
const MaxOrder = 4

// Outputs receives one value per window for each computed moment. Slices
// for moments above the engine's order may be nil; the rest must have
// length plan.Windows.
type Outputs struct {
	Mean []float64
	SD   []float64
	Skew []float64
	Kurt []float64
}

// Engine rolls the moment recurrence over single rows. It is stateless
// between calls and safe for concurrent use from multiple goroutines.
type Engine struct {
	p     plan.Plan
	order int
	exact bool
}

// New creates an engine for the given plan and moment order (1..MaxOrder).
// When exact is true every window is re-summed from the raw samples
// instead of slid incrementally.
func New(p plan.Plan, order int, exact bool) Engine {
	return Engine{p: p, order: order, exact: exact}
}

// Roll computes the moments of every window of seq and writes them into
// out. seq must have length p.SeqLen; it is only read.
func (e Engine) Roll(seq []float64, out Outputs) {
	if e.exact {
		for k := 0; k < e.p.Windows; k++ {
			start := e.p.Start(k)
			s1, s2, s3, s4 := e.sum(seq[start : start+e.p.Lag])
			e.emit(out, k, s1, s2, s3, s4)
		}
		return
	}

	lag, skip := e.p.Lag, e.p.Skip
	s1, s2, s3, s4 := e.sum(seq[:lag])
	e.emit(out, 0, s1, s2, s3, s4)

	for k := 1; k < e.p.Windows; k++ {
		prev := e.p.Start(k - 1)
		// Samples leaving the window. With skip >= lag this is the whole
		// previous window and the slide degenerates to remove-all/add-all.
		drop := skip
		if drop > lag {
			drop = lag
		}
		for _, x := range seq[prev : prev+drop] {
			switch e.order {
			case 4:
				s4 -= x * x * x * x
				fallthrough
			case 3:
				s3 -= x * x * x
				fallthrough
			case 2:
				s2 -= x * x
				fallthrough
			default:
				s1 -= x
			}
		}
		// Samples entering the window.
		enter := prev + lag
		if prev+skip > enter {
			enter = prev + skip
		}
		for _, x := range seq[enter : prev+lag+skip] {
			switch e.order {
			case 4:
				s4 += x * x * x * x
				fallthrough
			case 3:
				s3 += x * x * x
				fallthrough
			case 2:
				s2 += x * x
				fallthrough
			default:
				s1 += x
			}
		}
		e.emit(out, k, s1, s2, s3, s4)
	}
}

// sum accumulates the power sums of one window up to the engine's order.
func (e Engine) sum(w []float64) (s1, s2, s3, s4 float64) {
	s1 = floats.Sum(w)
	if e.order < 2 {
		return
	}
	for _, x := range w {
		x2 := x * x
		s2 += x2
		if e.order >= 3 {
			s3 += x2 * x
		}
		if e.order >= 4 {
			s4 += x2 * x2
		}
	}
	return
}

// emit derives the central moments for window k from the power sums.
//
// All moments are population (divisor n) forms. Tiny negative variance
// from floating-point cancellation is clamped to zero, and skewness and
// kurtosis of a zero-variance window are defined as 0. Kurtosis is the raw
// fourth standardized moment, approximately 3 for normal data.
func (e Engine) emit(out Outputs, k int, s1, s2, s3, s4 float64) {
	n := float64(e.p.Lag)
	mean := s1 / n
	out.Mean[k] = mean
	if e.order < 2 {
		return
	}

	variance := s2/n - mean*mean
	if variance < 0 {
		variance = 0
	}
	sd := math.Sqrt(variance)
	out.SD[k] = sd

	if e.order >= 3 {
		if sd == 0 {
			out.Skew[k] = 0
		} else {
			out.Skew[k] = (s3/n - 3*mean*s2/n + 2*mean*mean*mean) / (sd * sd * sd)
		}
	}
	if e.order >= 4 {
		if sd == 0 {
			out.Kurt[k] = 0
		} else {
			m2 := mean * mean
			out.Kurt[k] = (s4/n - 4*mean*s3/n + 6*m2*s2/n - 3*m2*m2) / (sd * sd * sd * sd)
		}
	}
}

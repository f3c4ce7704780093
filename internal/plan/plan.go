// Package plan computes and validates rolling-window index plans.
package plan

import (
	"fmt"
)

// Plan describes the window layout for one sequence length and a
// (lag, skip) pair. It is immutable once created.
type Plan struct {
	SeqLen  int // samples per row
	Lag     int // window length
	Skip    int // stride between window starts
	Windows int // number of windows emitted per row
}

// New validates the parameters and computes the window count. All checks
// run before any allocation elsewhere in the pipeline.
func New(seqLen, lag, skip int) (Plan, error) {
	if lag < 1 {
		return Plan{}, fmt.Errorf("lag is %d, must be >= 1", lag)
	}
	if skip < 1 {
		return Plan{}, fmt.Errorf("skip is %d, must be >= 1", skip)
	}
	if seqLen < lag {
		return Plan{}, fmt.Errorf("sequence length %d is shorter than lag %d", seqLen, lag)
	}
	return Plan{
		SeqLen:  seqLen,
		Lag:     lag,
		Skip:    skip,
		Windows: (seqLen-lag)/skip + 1,
	}, nil
}

// Start returns the first sample index of window k.
func (p Plan) Start(k int) int { return k * p.Skip }

package rolling

import (
	"sync"

	"github.com/movelab/sigfeat/array"
	"github.com/movelab/sigfeat/config"
	"github.com/movelab/sigfeat/internal/plan"
	"github.com/movelab/sigfeat/logging"
)

var (
	defaultOnce   sync.Once
	defaultRoller *Roller
)

// Package-level entry points delegate to a roller built once from the
// environment, with logging discarded.
func defaults() *Roller {
	defaultOnce.Do(func() {
		defaultRoller = New(config.LoadOrDefault(), logging.NewNop())
	})
	return defaultRoller
}

// Mean computes the rolling mean with the default roller.
func Mean(data *array.Array, lag, skip int) (*array.Array, error) {
	return defaults().Mean(data, lag, skip)
}

// SD computes the rolling standard deviation with the default roller.
func SD(data *array.Array, lag, skip int, returnLower bool) (*Result, error) {
	return defaults().SD(data, lag, skip, returnLower)
}

// Skewness computes the rolling skewness with the default roller.
func Skewness(data *array.Array, lag, skip int, returnLower bool) (*Result, error) {
	return defaults().Skewness(data, lag, skip, returnLower)
}

// Kurtosis computes the rolling kurtosis with the default roller.
func Kurtosis(data *array.Array, lag, skip int, returnLower bool) (*Result, error) {
	return defaults().Kurtosis(data, lag, skip, returnLower)
}

// NumWindows returns the number of windows a (lag, skip) roll emits per
// row of seqLen samples, or ErrInvalidParameter. Useful for pre-sizing
// downstream buffers.
func NumWindows(seqLen, lag, skip int) (int, error) {
	p, err := plan.New(seqLen, lag, skip)
	if err != nil {
		return 0, wrapInvalid(err)
	}
	return p.Windows, nil
}

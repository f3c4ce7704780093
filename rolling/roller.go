package rolling

import (
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/movelab/sigfeat/array"
	"github.com/movelab/sigfeat/config"
	"github.com/movelab/sigfeat/internal/engine"
	"github.com/movelab/sigfeat/internal/plan"
	"github.com/movelab/sigfeat/logging"
)

// Roller is the batch driver: it plans the window layout, allocates the
// output arrays, and fans independent rows out over worker goroutines.
// A Roller is immutable and safe for concurrent use; it holds no state
// between calls.
type Roller struct {
	cfg config.RollingConfig
	log *logging.Logger
}

// New creates a roller from configuration. A nil cfg uses defaults; a nil
// logger discards output.
func New(cfg *config.Config, log *logging.Logger) *Roller {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &Roller{cfg: cfg.Rolling, log: log}
}

// Mean computes the rolling mean.
func (r *Roller) Mean(data *array.Array, lag, skip int) (*array.Array, error) {
	res, err := r.roll(data, lag, skip, 1, true)
	if err != nil {
		return nil, err
	}
	return res.Mean, nil
}

// SD computes the rolling population standard deviation. With returnLower
// the mean computed along the way is exposed too.
func (r *Roller) SD(data *array.Array, lag, skip int, returnLower bool) (*Result, error) {
	return r.roll(data, lag, skip, 2, returnLower)
}

// Skewness computes the rolling population skewness; zero-variance windows
// yield 0. With returnLower the sd and mean are exposed too.
func (r *Roller) Skewness(data *array.Array, lag, skip int, returnLower bool) (*Result, error) {
	return r.roll(data, lag, skip, 3, returnLower)
}

// Kurtosis computes the rolling population kurtosis (raw fourth
// standardized moment, not excess); zero-variance windows yield 0. With
// returnLower the skewness, sd, and mean are exposed too.
func (r *Roller) Kurtosis(data *array.Array, lag, skip int, returnLower bool) (*Result, error) {
	return r.roll(data, lag, skip, 4, returnLower)
}

func (r *Roller) roll(data *array.Array, lag, skip, order int, returnLower bool) (*Result, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: data array is required", ErrInvalidParameter)
	}
	if order < 1 || order > engine.MaxOrder {
		return nil, fmt.Errorf("%w: order is %d, must be in 1..%d", ErrInvalidParameter, order, engine.MaxOrder)
	}
	p, err := plan.New(data.LastDim(), lag, skip)
	if err != nil {
		return nil, wrapInvalid(err)
	}

	rows := data.NumRows()
	// The budget covers every output array of the call, so an oversized
	// request fails before anything is allocated.
	total := int64(order) * int64(rows) * int64(p.Windows)
	if r.cfg.MaxOutputElems > 0 && total > r.cfg.MaxOutputElems {
		return nil, fmt.Errorf("%w: call needs %d output elements, budget is %d",
			ErrResourceExhausted, total, r.cfg.MaxOutputElems)
	}

	outShape := data.Shape()
	outShape[len(outShape)-1] = p.Windows
	outs := make([]*array.Array, order)
	for i := range outs {
		a, err := array.Zeros(outShape...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrResourceExhausted, err)
		}
		outs[i] = a
	}

	exact := r.cfg.Exact || (r.cfg.ExactMaxLag > 0 && lag <= r.cfg.ExactMaxLag)
	eng := engine.New(p, order, exact)

	workers := r.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > rows {
		workers = rows
	}

	r.log.Debug("rolling moments",
		zap.Int("order", order),
		zap.Int("lag", lag),
		zap.Int("skip", skip),
		zap.Int("rows", rows),
		zap.Int("windows", p.Windows),
		zap.Int("workers", workers),
		zap.Bool("exact", exact),
	)

	outFor := func(i int) engine.Outputs {
		o := engine.Outputs{Mean: outs[0].Row(i)}
		if order >= 2 {
			o.SD = outs[1].Row(i)
		}
		if order >= 3 {
			o.Skew = outs[2].Row(i)
		}
		if order >= 4 {
			o.Kurt = outs[3].Row(i)
		}
		return o
	}

	if workers <= 1 {
		for i := 0; i < rows; i++ {
			eng.Roll(data.Row(i), outFor(i))
		}
	} else {
		// Each row writes only its own output slices, so the fan-out
		// needs no locking.
		var wg sync.WaitGroup
		chunk := (rows + workers - 1) / workers
		for lo := 0; lo < rows; lo += chunk {
			hi := lo + chunk
			if hi > rows {
				hi = rows
			}
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				for i := lo; i < hi; i++ {
					eng.Roll(data.Row(i), outFor(i))
				}
			}(lo, hi)
		}
		wg.Wait()
	}

	res := &Result{Order: order}
	if returnLower || order == 1 {
		res.Mean = outs[0]
	}
	if order >= 2 && (returnLower || order == 2) {
		res.SD = outs[1]
	}
	if order >= 3 && (returnLower || order == 3) {
		res.Skewness = outs[2]
	}
	if order == 4 {
		res.Kurtosis = outs[3]
	}
	return res, nil
}

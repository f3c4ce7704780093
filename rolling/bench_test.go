package rolling_test

import (
	"math/rand"
	"testing"

	"github.com/movelab/sigfeat/array"
	"github.com/movelab/sigfeat/config"
	"github.com/movelab/sigfeat/logging"
	"github.com/movelab/sigfeat/rolling"
)

func benchArray(b *testing.B, rows, n int) *array.Array {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	data := make([]float64, rows*n)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	a, err := array.New(data, rows, n)
	if err != nil {
		b.Fatal(err)
	}
	return a
}

// The incremental slide should be insensitive to lag; the exact fallback
// pays O(lag) per window.
func BenchmarkKurtosis(b *testing.B) {
	a := benchArray(b, 8, 1<<17)

	for _, lag := range []int{64, 1024} {
		for _, exact := range []bool{false, true} {
			name := "lag=64"
			if lag == 1024 {
				name = "lag=1024"
			}
			if exact {
				name += "/exact"
			}
			b.Run(name, func(b *testing.B) {
				cfg := config.Default()
				cfg.Rolling.Exact = exact
				r := rolling.New(cfg, logging.NewNop())
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := r.Kurtosis(a, lag, 16, true); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkMeanSerialVsParallel(b *testing.B) {
	a := benchArray(b, 32, 1<<15)

	for _, workers := range []int{1, 0} {
		name := "serial"
		if workers == 0 {
			name = "parallel"
		}
		b.Run(name, func(b *testing.B) {
			cfg := config.Default()
			cfg.Rolling.Workers = workers
			r := rolling.New(cfg, logging.NewNop())
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := r.Mean(a, 256, 32); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

package rolling

import "github.com/movelab/sigfeat/array"

// Result carries the moment arrays one call exposed, keyed by the
// requested order. Fields for moments above the requested order, or below
// it when lower moments were not requested, are nil. Every present array
// has the input's leading shape with the last dimension replaced by the
// window count.
type Result struct {
	Order    int // highest moment computed (2=sd, 3=skewness, 4=kurtosis)
	Kurtosis *array.Array
	Skewness *array.Array
	SD       *array.Array
	Mean     *array.Array
}

// Arrays returns the exposed arrays ordered highest moment first
// (kurtosis, skewness, sd, mean), the ordering downstream feature
// extractors rely on.
func (r *Result) Arrays() []*array.Array {
	out := make([]*array.Array, 0, 4)
	for _, a := range []*array.Array{r.Kurtosis, r.Skewness, r.SD, r.Mean} {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

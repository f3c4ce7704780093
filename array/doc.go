// Package array provides the dense N-dimensional float64 container used by
// the rolling-moment core.
//
// An Array is row-major with the rolling axis always last. All leading axes
// are batch dimensions: the array is viewed as NumRows independent rows of
// LastDim samples each, and Row(i) returns the i-th row as a subslice
// without copying.
//
// Arrays are not synchronized; callers that share an Array across
// goroutines must treat it as read-only (the rolling driver does exactly
// that).
//
// Example Usage:
//
//	a, err := array.New(samples, 3, 5, 1024)
//	for i := 0; i < a.NumRows(); i++ {
//		process(a.Row(i))
//	}
package array

package array

import (
	"fmt"
)

// Array is a dense row-major float64 array of rank >= 1.
type Array struct {
	data  []float64
	shape []int
}

// New creates an array over data with the given shape. The product of the
// shape dimensions must equal len(data), every dimension must be positive,
// and at least one dimension is required.
func New(data []float64, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("array: shape must have at least one dimension")
	}
	size := 1
	for i, d := range shape {
		if d <= 0 {
			return nil, fmt.Errorf("array: dimension %d is %d, must be positive", i, d)
		}
		size *= d
	}
	if size != len(data) {
		return nil, fmt.Errorf("array: shape %v requires %d elements, data has %d", shape, size, len(data))
	}
	s := make([]int, len(shape))
	copy(s, shape)
	return &Array{data: data, shape: s}, nil
}

// Zeros creates a zero-filled array with the given shape.
func Zeros(shape ...int) (*Array, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("array: shape must have at least one dimension")
	}
	size := 1
	for i, d := range shape {
		if d <= 0 {
			return nil, fmt.Errorf("array: dimension %d is %d, must be positive", i, d)
		}
		size *= d
	}
	s := make([]int, len(shape))
	copy(s, shape)
	return &Array{data: make([]float64, size), shape: s}, nil
}

// FromSlice wraps a 1-D slice as a rank-1 array. The slice must be
// non-empty.
func FromSlice(data []float64) (*Array, error) {
	return New(data, len(data))
}

// Shape returns a copy of the array's dimensions.
func (a *Array) Shape() []int {
	s := make([]int, len(a.shape))
	copy(s, a.shape)
	return s
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.shape) }

// Len returns the total number of elements.
func (a *Array) Len() int { return len(a.data) }

// LastDim returns the length of the rolling axis.
func (a *Array) LastDim() int { return a.shape[len(a.shape)-1] }

// NumRows returns the number of independent rows, the product of all
// leading dimensions. A rank-1 array has one row.
func (a *Array) NumRows() int { return len(a.data) / a.LastDim() }

// Row returns row i as a subslice of the underlying data, without copying.
// Rows are indexed by flattened leading-dimension order.
func (a *Array) Row(i int) []float64 {
	n := a.LastDim()
	return a.data[i*n : (i+1)*n]
}

// At returns the element at the given multi-dimensional index.
func (a *Array) At(idx ...int) float64 {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("array: index rank %d does not match array rank %d", len(idx), len(a.shape)))
	}
	flat := 0
	for i, ix := range idx {
		if ix < 0 || ix >= a.shape[i] {
			panic(fmt.Sprintf("array: index %d out of range for dimension %d (size %d)", ix, i, a.shape[i]))
		}
		flat = flat*a.shape[i] + ix
	}
	return a.data[flat]
}

// Data returns the underlying flat slice.
func (a *Array) Data() []float64 { return a.data }

package cpu

import (
	"fmt"

	"github.com/weft-ml/weft/internal/tensor"
)

// Transpose permutes the tensor's axes. An empty permutation reverses all
// axes (the standard transpose for 2-D tensors).
func (c *Backend) Transpose(t *tensor.Dense, axes ...int) *tensor.Dense {
	shape := t.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: permutation length %d != rank %d", len(axes), ndim))
	}
	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for rank-%d tensor", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	newShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		newShape[i] = shape[ax]
	}

	result, err := tensor.NewDense(newShape, t.DType())
	if err != nil {
		panic(fmt.Sprintf("transpose: %v", err))
	}

	// Walk the output in row-major order; srcStride[i] is the source stride
	// of the axis that landed at output position i.
	srcStrides := t.Strides()
	permStrides := make([]int, ndim)
	for i, ax := range axes {
		permStrides[i] = srcStrides[ax]
	}

	idx := make([]int, ndim)
	total := t.NumElements()
	switch t.DType() {
	case tensor.Float64:
		src, dst := t.AsFloat64(), result.AsFloat64()
		for flat := 0; flat < total; flat++ {
			srcOff := 0
			for i := range idx {
				srcOff += idx[i] * permStrides[i]
			}
			dst[flat] = src[srcOff]
			incrementIndex(idx, newShape)
		}
	case tensor.Complex128:
		src, dst := t.AsComplex128(), result.AsComplex128()
		for flat := 0; flat < total; flat++ {
			srcOff := 0
			for i := range idx {
				srcOff += idx[i] * permStrides[i]
			}
			dst[flat] = src[srcOff]
			incrementIndex(idx, newShape)
		}
	}
	return result
}

// incrementIndex advances a multi-axis index odometer-style through a
// row-major traversal of shape.
func incrementIndex(idx []int, shape tensor.Shape) {
	for i := len(idx) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < shape[i] {
			return
		}
		idx[i] = 0
	}
}

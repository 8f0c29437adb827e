// Package cpu implements the pure-Go compute backend for weft tensors.
package cpu

import (
	"fmt"

	"github.com/weft-ml/weft/internal/parallel"
	"github.com/weft-ml/weft/internal/tensor"
)

// Backend implements tensor.Backend with straightforward pure-Go kernels.
// Matrix multiplication parallelizes over output rows.
type Backend struct {
	par parallel.Config
}

// New creates a new CPU backend.
func New() *Backend {
	return &Backend{par: parallel.DefaultConfig()}
}

// Name returns the backend name.
func (c *Backend) Name() string {
	return "cpu"
}

// Reshape returns a tensor with identical row-major data and a new shape.
// The element count must be unchanged.
func (c *Backend) Reshape(t *tensor.Dense, shape tensor.Shape) *tensor.Dense {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: invalid shape: %v", err))
	}
	if t.NumElements() != shape.NumElements() {
		panic(fmt.Sprintf("reshape: incompatible shapes: %v -> %v (different number of elements)",
			t.Shape(), shape))
	}

	result, err := tensor.NewDense(shape, t.DType())
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	switch t.DType() {
	case tensor.Float64:
		copy(result.AsFloat64(), t.AsFloat64())
	case tensor.Complex128:
		copy(result.AsComplex128(), t.AsComplex128())
	}
	return result
}

// Add performs element-wise addition of two same-shaped tensors.
func (c *Backend) Add(a, b *tensor.Dense) *tensor.Dense {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("add: dtype mismatch (%s vs %s)", a.DType(), b.DType()))
	}
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("add: shape mismatch (%v vs %v)", a.Shape(), b.Shape()))
	}

	result, err := tensor.NewDense(a.Shape(), a.DType())
	if err != nil {
		panic(fmt.Sprintf("add: %v", err))
	}
	switch a.DType() {
	case tensor.Float64:
		out, x, y := result.AsFloat64(), a.AsFloat64(), b.AsFloat64()
		for i := range out {
			out[i] = x[i] + y[i]
		}
	case tensor.Complex128:
		out, x, y := result.AsComplex128(), a.AsComplex128(), b.AsComplex128()
		for i := range out {
			out[i] = x[i] + y[i]
		}
	}
	return result
}

// Scale multiplies every element by a scalar. Scaling a Float64 tensor by a
// scalar with a non-zero imaginary part is a programmer error.
func (c *Backend) Scale(t *tensor.Dense, v complex128) *tensor.Dense {
	result, err := tensor.NewDense(t.Shape(), t.DType())
	if err != nil {
		panic(fmt.Sprintf("scale: %v", err))
	}
	switch t.DType() {
	case tensor.Float64:
		if imag(v) != 0 {
			panic(fmt.Sprintf("scale: complex factor %v applied to float64 tensor", v))
		}
		out, x := result.AsFloat64(), t.AsFloat64()
		s := real(v)
		for i := range out {
			out[i] = x[i] * s
		}
	case tensor.Complex128:
		out, x := result.AsComplex128(), t.AsComplex128()
		for i := range out {
			out[i] = x[i] * v
		}
	}
	return result
}

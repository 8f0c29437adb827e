package tensor

import (
	"fmt"
	"math"
	"math/rand"
)

// Zeros creates a zero-filled tensor.
// Panics on an invalid shape; use NewDense to obtain the error instead.
func Zeros(shape Shape, dtype DataType) *Dense {
	d, err := NewDense(shape, dtype)
	if err != nil {
		panic(err)
	}
	return d
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, dtype DataType) *Dense {
	d := Zeros(shape, dtype)
	switch dtype {
	case Float64:
		data := d.AsFloat64()
		for i := range data {
			data[i] = 1
		}
	case Complex128:
		data := d.AsComplex128()
		for i := range data {
			data[i] = 1
		}
	}
	return d
}

// Full creates a Float64 tensor filled with a specific value.
func Full(shape Shape, value float64) *Dense {
	d := Zeros(shape, Float64)
	data := d.AsFloat64()
	for i := range data {
		data[i] = value
	}
	return d
}

// FullComplex creates a Complex128 tensor filled with a specific value.
func FullComplex(shape Shape, value complex128) *Dense {
	d := Zeros(shape, Complex128)
	data := d.AsComplex128()
	for i := range data {
		data[i] = value
	}
	return d
}

// Randn creates a tensor with entries drawn from a standard normal
// distribution, using the Box-Muller transform. Complex tensors get
// independent real and imaginary N(0, 1) parts.
// Uses math/rand intentionally: reproducibility matters more than
// cryptographic quality here.
func Randn(shape Shape, dtype DataType) *Dense {
	d := Zeros(shape, dtype)
	switch dtype {
	case Float64:
		data := d.AsFloat64()
		for i := range data {
			data[i] = normFloat64()
		}
	case Complex128:
		data := d.AsComplex128()
		for i := range data {
			data[i] = complex(normFloat64(), normFloat64())
		}
	}
	return d
}

func normFloat64() float64 {
	u1 := rand.Float64() //nolint:gosec // G404: statistical use, not security
	u2 := rand.Float64() //nolint:gosec // G404: statistical use, not security
	return math.Sqrt(-2.0*math.Log(1-u1)) * math.Cos(2.0*math.Pi*u2)
}

// Eye creates an n×n identity matrix. Self-contraction is defined as a
// contraction against exactly this tensor.
func Eye(n int, dtype DataType) *Dense {
	d := Zeros(Shape{n, n}, dtype)
	switch dtype {
	case Float64:
		data := d.AsFloat64()
		for i := 0; i < n; i++ {
			data[i*n+i] = 1
		}
	case Complex128:
		data := d.AsComplex128()
		for i := 0; i < n; i++ {
			data[i*n+i] = 1
		}
	}
	return d
}

// FromSlice creates a Float64 tensor from a row-major slice.
// The slice is copied into the tensor's own storage.
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	d, err := NewDense(shape, Float64)
	if err != nil {
		return nil, err
	}
	copy(d.AsFloat64(), data)
	return d, nil
}

// FromComplex creates a Complex128 tensor from a row-major slice.
// The slice is copied into the tensor's own storage.
func FromComplex(data []complex128, shape Shape) (*Dense, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	d, err := NewDense(shape, Complex128)
	if err != nil {
		return nil, err
	}
	copy(d.AsComplex128(), data)
	return d, nil
}

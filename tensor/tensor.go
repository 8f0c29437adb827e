// Copyright 2026 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/weft-ml/weft/internal/tensor"
)

// Type aliases for the public API.

// Dense is a dense, row-major, in-memory tensor.
type Dense = tensor.Dense

// Shape represents the per-axis dimensions of a tensor.
// Example: Shape{2, 3, 4} describes a 3-D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// DataType represents the element type of a tensor.
type DataType = tensor.DataType

// Supported data types.
const (
	Float64    DataType = tensor.Float64
	Complex128 DataType = tensor.Complex128
)

// Backend is defined in backend.go.

// Creation functions.

// NewDense allocates a zero-initialized tensor, reporting invalid shapes as
// errors. The other creation functions panic on invalid shapes instead.
func NewDense(shape Shape, dtype DataType) (*Dense, error) {
	return tensor.NewDense(shape, dtype)
}

// Zeros creates a zero-filled tensor.
func Zeros(shape Shape, dtype DataType) *Dense {
	return tensor.Zeros(shape, dtype)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, dtype DataType) *Dense {
	return tensor.Ones(shape, dtype)
}

// Full creates a Float64 tensor filled with a specific value.
func Full(shape Shape, value float64) *Dense {
	return tensor.Full(shape, value)
}

// FullComplex creates a Complex128 tensor filled with a specific value.
func FullComplex(shape Shape, value complex128) *Dense {
	return tensor.FullComplex(shape, value)
}

// Randn creates a tensor with standard-normal entries.
func Randn(shape Shape, dtype DataType) *Dense {
	return tensor.Randn(shape, dtype)
}

// Eye creates an n×n identity matrix.
//
// Example:
//
//	identity := tensor.Eye(3, tensor.Float64) // 3x3 identity matrix
func Eye(n int, dtype DataType) *Dense {
	return tensor.Eye(n, dtype)
}

// FromSlice creates a Float64 tensor from a row-major slice.
//
// Example:
//
//	data := []float64{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice(data []float64, shape Shape) (*Dense, error) {
	return tensor.FromSlice(data, shape)
}

// FromComplex creates a Complex128 tensor from a row-major slice.
func FromComplex(data []complex128, shape Shape) (*Dense, error) {
	return tensor.FromComplex(data, shape)
}

// Contraction.

// Contract performs a generalized axis-pair contraction (Einstein summation
// over the paired axes) of x and y. See the package documentation for the
// result's axis-order rule.
func Contract(b Backend, x, y *Dense, axesX, axesY []int) (*Dense, error) {
	return tensor.Contract(b, x, y, axesX, axesY)
}

// Trace contracts two equal-dimension axes of a single tensor against the
// identity matrix of that dimension, summing the diagonal along the axis
// pair and removing both axes.
func Trace(b Backend, x *Dense, ax0, ax1 int) (*Dense, error) {
	return tensor.Trace(b, x, ax0, ax1)
}

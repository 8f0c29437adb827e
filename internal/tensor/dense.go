package tensor

import (
	"fmt"
	"math"
	"math/cmplx"
	"unsafe"
)

// Dense is a dense, row-major, in-memory tensor. The element type is tagged
// at runtime by DataType; typed slice views are obtained through AsFloat64
// and AsComplex128.
//
// Dense values do not alias each other: Clone performs a deep copy, and
// every operation that returns a Dense allocates fresh storage.
type Dense struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
}

// NewDense allocates a zero-initialized tensor with the given shape and type.
func NewDense(shape Shape, dtype DataType) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Dense{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the tensor's shape. The returned slice must not be modified.
func (d *Dense) Shape() Shape {
	return d.shape
}

// Strides returns the tensor's row-major strides.
func (d *Dense) Strides() []int {
	return d.stride
}

// DType returns the tensor's data type.
func (d *Dense) DType() DataType {
	return d.dtype
}

// Rank returns the number of axes.
func (d *Dense) Rank() int {
	return len(d.shape)
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return d.shape.NumElements()
}

// AsFloat64 interprets the storage as []float64.
// Panics if the tensor's dtype is not Float64.
func (d *Dense) AsFloat64() []float64 {
	if d.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", d.dtype))
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&d.data[0])), d.NumElements())
}

// AsComplex128 interprets the storage as []complex128.
// Panics if the tensor's dtype is not Complex128.
func (d *Dense) AsComplex128() []complex128 {
	if d.dtype != Complex128 {
		panic(fmt.Sprintf("tensor dtype is %s, not complex128", d.dtype))
	}
	return unsafe.Slice((*complex128)(unsafe.Pointer(&d.data[0])), d.NumElements())
}

// offsetOf converts multi-axis indices to a flat offset, panicking on
// out-of-bounds access.
func (d *Dense) offsetOf(indices []int) int {
	if len(indices) != len(d.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(d.shape), len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= d.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for axis %d (size %d)", idx, i, d.shape[i]))
		}
		offset += idx * d.stride[i]
	}
	return offset
}

// At returns the float64 element at the given indices.
func (d *Dense) At(indices ...int) float64 {
	return d.AsFloat64()[d.offsetOf(indices)]
}

// Set stores a float64 element at the given indices.
func (d *Dense) Set(value float64, indices ...int) {
	d.AsFloat64()[d.offsetOf(indices)] = value
}

// AtC returns the complex128 element at the given indices.
func (d *Dense) AtC(indices ...int) complex128 {
	return d.AsComplex128()[d.offsetOf(indices)]
}

// SetC stores a complex128 element at the given indices.
func (d *Dense) SetC(value complex128, indices ...int) {
	d.AsComplex128()[d.offsetOf(indices)] = value
}

// Clone returns a deep copy of the tensor.
func (d *Dense) Clone() *Dense {
	clone := &Dense{
		data:   make([]byte, len(d.data)),
		shape:  d.shape.Clone(),
		stride: append([]int(nil), d.stride...),
		dtype:  d.dtype,
	}
	copy(clone.data, d.data)
	return clone
}

// Equal reports exact element-wise equality: same dtype, same shape, and
// bit-identical elements.
func (d *Dense) Equal(other *Dense) bool {
	if other == nil || d.dtype != other.dtype || !d.shape.Equal(other.shape) {
		return false
	}
	for i := range d.data {
		if d.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// AllClose reports element-wise equality within an absolute tolerance.
// Shapes and dtypes must match exactly.
func (d *Dense) AllClose(other *Dense, tol float64) bool {
	if other == nil || d.dtype != other.dtype || !d.shape.Equal(other.shape) {
		return false
	}
	switch d.dtype {
	case Float64:
		a, b := d.AsFloat64(), other.AsFloat64()
		for i := range a {
			if math.Abs(a[i]-b[i]) > tol {
				return false
			}
		}
	case Complex128:
		a, b := d.AsComplex128(), other.AsComplex128()
		for i := range a {
			if cmplx.Abs(a[i]-b[i]) > tol {
				return false
			}
		}
	}
	return true
}

// String returns a short description of the tensor.
func (d *Dense) String() string {
	return fmt.Sprintf("Dense[%s]%v", d.dtype, d.shape)
}

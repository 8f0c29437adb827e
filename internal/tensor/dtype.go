// Package tensor provides the dense tensor type and contraction primitives
// for the weft tensor-network library.
package tensor

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types. Tensor networks for quantum states use complex
// amplitudes; classical networks use real entries.
const (
	Float64 DataType = iota
	Complex128
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float64:
		return 8
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

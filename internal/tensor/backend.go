package tensor

// Backend defines the primitive dense-array operations a compute device must
// provide. The generalized contraction engine (Contract, Trace) is built
// entirely on these primitives, so a backend only has to supply matrix
// multiplication and layout operations to support arbitrary tensor-network
// reduction.
//
// Backends may panic on programmer error (mismatched shapes, wrong dtypes);
// the validated entry points in this package and in the network package
// check their inputs before reaching a backend.
type Backend interface {
	// MatMul multiplies two 2-D tensors: (M, K) @ (K, N) -> (M, N).
	MatMul(a, b *Dense) *Dense

	// Transpose permutes the tensor's axes. An empty permutation reverses
	// all axes.
	Transpose(t *Dense, axes ...int) *Dense

	// Reshape returns a tensor with identical row-major data and a new
	// shape of equal element count.
	Reshape(t *Dense, shape Shape) *Dense

	// Add performs element-wise addition of two same-shaped tensors.
	Add(a, b *Dense) *Dense

	// Scale multiplies every element by a scalar. For Float64 tensors the
	// imaginary part of the scalar must be zero.
	Scale(t *Dense, v complex128) *Dense

	// Name identifies the backend.
	Name() string
}

package tensor

import "fmt"

// Contract performs a generalized axis-pair contraction (Einstein summation
// over the paired axes) of x and y: for every i, axesX[i] of x is summed
// against axesY[i] of y. The paired axes must have equal dimensions.
//
// The result's axis order is x's uncontracted axes in their original order,
// followed by y's uncontracted axes in their original order. With empty axis
// lists the result is the outer product. A contraction that consumes every
// axis yields a rank-0 tensor holding a single element.
//
// The implementation is the standard reduction to matrix multiplication:
// permute each operand so the contracted axes are adjacent, flatten to a
// matrix, multiply, and restore the free shape.
func Contract(b Backend, x, y *Dense, axesX, axesY []int) (*Dense, error) {
	if len(axesX) != len(axesY) {
		return nil, fmt.Errorf("contract: axis lists have different lengths (%d vs %d)", len(axesX), len(axesY))
	}
	if x.DType() != y.DType() {
		return nil, fmt.Errorf("contract: operand dtypes differ (%s vs %s)", x.DType(), y.DType())
	}
	if err := checkAxes(x.Shape(), axesX); err != nil {
		return nil, fmt.Errorf("contract: %w", err)
	}
	if err := checkAxes(y.Shape(), axesY); err != nil {
		return nil, fmt.Errorf("contract: %w", err)
	}
	for i := range axesX {
		dx, dy := x.Shape()[axesX[i]], y.Shape()[axesY[i]]
		if dx != dy {
			return nil, fmt.Errorf("contract: paired axes %d and %d have unequal dimensions (%d vs %d)",
				axesX[i], axesY[i], dx, dy)
		}
	}

	freeX := freeAxes(x.Rank(), axesX)
	freeY := freeAxes(y.Rank(), axesY)

	// x: free axes first, contracted axes last -> (M, K) matrix.
	xt := b.Transpose(x, append(append([]int{}, freeX...), axesX...)...)
	// y: contracted axes first, free axes last -> (K, N) matrix.
	yt := b.Transpose(y, append(append([]int{}, axesY...), freeY...)...)

	m, n, k := 1, 1, 1
	outShape := make(Shape, 0, len(freeX)+len(freeY))
	for _, ax := range freeX {
		m *= x.Shape()[ax]
		outShape = append(outShape, x.Shape()[ax])
	}
	for _, ax := range freeY {
		n *= y.Shape()[ax]
		outShape = append(outShape, y.Shape()[ax])
	}
	for _, ax := range axesX {
		k *= x.Shape()[ax]
	}

	zm := b.MatMul(b.Reshape(xt, Shape{m, k}), b.Reshape(yt, Shape{k, n}))
	return b.Reshape(zm, outShape), nil
}

// Trace contracts two equal-dimension axes of a single tensor against the
// identity matrix of that dimension, which sums the tensor's diagonal along
// the axis pair and removes both axes. Tracing a rank-2 tensor yields a
// rank-0 result.
func Trace(b Backend, x *Dense, ax0, ax1 int) (*Dense, error) {
	if ax0 == ax1 {
		return nil, fmt.Errorf("trace: axes must be distinct, got %d twice", ax0)
	}
	if err := checkAxes(x.Shape(), []int{ax0, ax1}); err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	d0, d1 := x.Shape()[ax0], x.Shape()[ax1]
	if d0 != d1 {
		return nil, fmt.Errorf("trace: axes %d and %d have unequal dimensions (%d vs %d)", ax0, ax1, d0, d1)
	}
	return Contract(b, x, Eye(d0, x.DType()), []int{ax0, ax1}, []int{0, 1})
}

// checkAxes verifies that every axis index is a valid, non-repeated position
// for the shape.
func checkAxes(s Shape, axes []int) error {
	seen := make(map[int]bool, len(axes))
	for _, ax := range axes {
		if ax < 0 || ax >= len(s) {
			return fmt.Errorf("axis %d out of range for rank-%d tensor", ax, len(s))
		}
		if seen[ax] {
			return fmt.Errorf("axis %d listed twice", ax)
		}
		seen[ax] = true
	}
	return nil
}

// freeAxes returns the axes of a rank-r tensor not named in contracted,
// preserving their original order.
func freeAxes(r int, contracted []int) []int {
	used := make([]bool, r)
	for _, ax := range contracted {
		used[ax] = true
	}
	free := make([]int, 0, r-len(contracted))
	for ax := 0; ax < r; ax++ {
		if !used[ax] {
			free = append(free, ax)
		}
	}
	return free
}

package cpu

import (
	"fmt"

	"github.com/weft-ml/weft/internal/parallel"
	"github.com/weft-ml/weft/internal/tensor"
)

// MatMul multiplies two 2-D tensors: (M, K) @ (K, N) -> (M, N).
// Output rows are computed in parallel for large matrices.
func (c *Backend) MatMul(a, b *tensor.Dense) *tensor.Dense {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("matmul: dtype mismatch (%s vs %s)", a.DType(), b.DType()))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]
	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	result, err := tensor.NewDense(tensor.Shape{m, n}, a.DType())
	if err != nil {
		panic(fmt.Sprintf("matmul: failed to create result tensor: %v", err))
	}

	switch a.DType() {
	case tensor.Float64:
		matmulFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n, c.par)
	case tensor.Complex128:
		matmulComplex128(result.AsComplex128(), a.AsComplex128(), b.AsComplex128(), m, k, n, c.par)
	}
	return result
}

// matmulFloat64 computes C[i,j] = sum_k A[i,k] * B[k,j], one goroutine batch
// per row range.
func matmulFloat64(out, a, b []float64, m, k, n int, cfg parallel.Config) {
	parallel.For(m, func(i int) {
		row := out[i*n : (i+1)*n]
		for j := range row {
			row[j] = 0
		}
		for kk := 0; kk < k; kk++ {
			av := a[i*k+kk]
			if av == 0 {
				continue
			}
			bRow := b[kk*n : (kk+1)*n]
			for j, bv := range bRow {
				row[j] += av * bv
			}
		}
	}, cfg)
}

func matmulComplex128(out, a, b []complex128, m, k, n int, cfg parallel.Config) {
	parallel.For(m, func(i int) {
		row := out[i*n : (i+1)*n]
		for j := range row {
			row[j] = 0
		}
		for kk := 0; kk < k; kk++ {
			av := a[i*k+kk]
			if av == 0 {
				continue
			}
			bRow := b[kk*n : (kk+1)*n]
			for j, bv := range bRow {
				row[j] += av * bv
			}
		}
	}, cfg)
}

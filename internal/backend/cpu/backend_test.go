package cpu

import (
	"testing"

	"github.com/weft-ml/weft/internal/tensor"
)

func TestMatMulFloat64(t *testing.T) {
	b := New()
	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	x, _ := tensor.FromSlice([]float64{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2})

	got := b.MatMul(a, x)
	want, _ := tensor.FromSlice([]float64{58, 64, 139, 154}, tensor.Shape{2, 2})
	if !got.AllClose(want, 1e-12) {
		t.Errorf("MatMul = %v, want %v", got.AsFloat64(), want.AsFloat64())
	}
}

func TestMatMulComplex128(t *testing.T) {
	b := New()
	a, _ := tensor.FromComplex([]complex128{1i, 0, 0, 1i}, tensor.Shape{2, 2})

	got := b.MatMul(a, a)
	// (iI)·(iI) = -I
	want, _ := tensor.FromComplex([]complex128{-1, 0, 0, -1}, tensor.Shape{2, 2})
	if !got.AllClose(want, 1e-12) {
		t.Errorf("MatMul = %v, want %v", got.AsComplex128(), want.AsComplex128())
	}
}

func TestMatMulIdentity(t *testing.T) {
	b := New()
	x := tensor.Randn(tensor.Shape{4, 4}, tensor.Float64)
	got := b.MatMul(x, tensor.Eye(4, tensor.Float64))
	if !got.AllClose(x, 1e-12) {
		t.Error("X·I != X")
	}
}

func TestMatMulPanicsOnShapeMismatch(t *testing.T) {
	b := New()
	defer func() {
		if recover() == nil {
			t.Error("MatMul with mismatched inner dims did not panic")
		}
	}()
	b.MatMul(tensor.Zeros(tensor.Shape{2, 3}, tensor.Float64), tensor.Zeros(tensor.Shape{4, 2}, tensor.Float64))
}

func TestTransposeMatrix(t *testing.T) {
	b := New()
	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	got := b.Transpose(x)
	if !got.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("shape = %v, want [3 2]", got.Shape())
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if got.At(j, i) != x.At(i, j) {
				t.Errorf("transpose[%d,%d] = %v, want %v", j, i, got.At(j, i), x.At(i, j))
			}
		}
	}
}

func TestTransposePermutation(t *testing.T) {
	b := New()
	x := tensor.Randn(tensor.Shape{2, 3, 4}, tensor.Float64)

	got := b.Transpose(x, 2, 0, 1)
	if !got.Shape().Equal(tensor.Shape{4, 2, 3}) {
		t.Fatalf("shape = %v, want [4 2 3]", got.Shape())
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				if got.At(k, i, j) != x.At(i, j, k) {
					t.Fatalf("transpose[%d,%d,%d] != source[%d,%d,%d]", k, i, j, i, j, k)
				}
			}
		}
	}
}

func TestTransposeRoundTrip(t *testing.T) {
	b := New()
	x := tensor.Randn(tensor.Shape{3, 4, 5}, tensor.Float64)
	back := b.Transpose(b.Transpose(x, 1, 2, 0), 2, 0, 1)
	if !back.Equal(x) {
		t.Error("inverse permutation did not restore tensor")
	}
}

func TestReshape(t *testing.T) {
	b := New()
	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})

	got := b.Reshape(x, tensor.Shape{3, 2})
	if !got.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("shape = %v, want [3 2]", got.Shape())
	}
	// Row-major data is unchanged.
	for i, want := range []float64{1, 2, 3, 4, 5, 6} {
		if got.AsFloat64()[i] != want {
			t.Errorf("flat[%d] = %v, want %v", i, got.AsFloat64()[i], want)
		}
	}
}

func TestReshapePanicsOnElementCountChange(t *testing.T) {
	b := New()
	defer func() {
		if recover() == nil {
			t.Error("Reshape changing element count did not panic")
		}
	}()
	b.Reshape(tensor.Zeros(tensor.Shape{2, 3}, tensor.Float64), tensor.Shape{4, 2})
}

func TestAdd(t *testing.T) {
	b := New()
	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	y, _ := tensor.FromSlice([]float64{10, 20, 30, 40}, tensor.Shape{2, 2})

	got := b.Add(x, y)
	want, _ := tensor.FromSlice([]float64{11, 22, 33, 44}, tensor.Shape{2, 2})
	if !got.AllClose(want, 1e-12) {
		t.Errorf("Add = %v, want %v", got.AsFloat64(), want.AsFloat64())
	}
}

func TestScale(t *testing.T) {
	b := New()
	x, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	got := b.Scale(x, 2.5)
	want, _ := tensor.FromSlice([]float64{2.5, 5}, tensor.Shape{2})
	if !got.AllClose(want, 1e-12) {
		t.Errorf("Scale = %v, want %v", got.AsFloat64(), want.AsFloat64())
	}

	c, _ := tensor.FromComplex([]complex128{1, 1i}, tensor.Shape{2})
	gotC := b.Scale(c, 1i)
	wantC, _ := tensor.FromComplex([]complex128{1i, -1}, tensor.Shape{2})
	if !gotC.AllClose(wantC, 1e-12) {
		t.Errorf("Scale complex = %v, want %v", gotC.AsComplex128(), wantC.AsComplex128())
	}
}

func TestName(t *testing.T) {
	if got := New().Name(); got != "cpu" {
		t.Errorf("Name() = %q, want %q", got, "cpu")
	}
}

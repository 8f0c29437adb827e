package tensor

import (
	"testing"
)

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float64, 8},
		{Complex128, 16},
	}
	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestNewDense(t *testing.T) {
	d, err := NewDense(Shape{2, 3}, Float64)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	if !d.Shape().Equal(Shape{2, 3}) {
		t.Errorf("shape = %v, want [2 3]", d.Shape())
	}
	if d.NumElements() != 6 {
		t.Errorf("NumElements = %d, want 6", d.NumElements())
	}
	for _, v := range d.AsFloat64() {
		if v != 0 {
			t.Error("new tensor not zero-initialized")
			break
		}
	}

	if _, err := NewDense(Shape{2, 0}, Float64); err == nil {
		t.Error("NewDense with zero dimension: want error")
	}
}

func TestDenseAtSet(t *testing.T) {
	d := Zeros(Shape{2, 3}, Float64)
	d.Set(7.5, 1, 2)
	if got := d.At(1, 2); got != 7.5 {
		t.Errorf("At(1,2) = %v, want 7.5", got)
	}
	if got := d.At(0, 0); got != 0 {
		t.Errorf("At(0,0) = %v, want 0", got)
	}
	// Row-major layout: (1,2) is flat index 5.
	if got := d.AsFloat64()[5]; got != 7.5 {
		t.Errorf("flat[5] = %v, want 7.5", got)
	}
}

func TestDenseComplexAccess(t *testing.T) {
	d := Zeros(Shape{2, 2}, Complex128)
	d.SetC(complex(1, -1), 0, 1)
	if got := d.AtC(0, 1); got != complex(1, -1) {
		t.Errorf("AtC(0,1) = %v, want (1-1i)", got)
	}
}

func TestDenseCloneIsDeep(t *testing.T) {
	d := Full(Shape{2, 2}, 3)
	c := d.Clone()
	if !d.Equal(c) {
		t.Fatal("clone differs from original")
	}
	c.Set(99, 0, 0)
	if d.At(0, 0) != 3 {
		t.Error("mutating clone modified original")
	}
}

func TestDenseEqualAllClose(t *testing.T) {
	a := Full(Shape{2, 2}, 1)
	b := Full(Shape{2, 2}, 1)
	if !a.Equal(b) {
		t.Error("identical tensors not Equal")
	}
	b.Set(1+1e-12, 0, 0)
	if a.Equal(b) {
		t.Error("perturbed tensors reported Equal")
	}
	if !a.AllClose(b, 1e-9) {
		t.Error("perturbed tensors not AllClose at 1e-9")
	}
	if a.AllClose(Full(Shape{4}, 1), 1e-9) {
		t.Error("different shapes reported AllClose")
	}
	if a.AllClose(Ones(Shape{2, 2}, Complex128), 1e-9) {
		t.Error("different dtypes reported AllClose")
	}
}

func TestEye(t *testing.T) {
	d := Eye(3, Float64)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if got := d.At(i, j); got != want {
				t.Errorf("Eye(3)[%d,%d] = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestFromSlice(t *testing.T) {
	d, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	if got := d.At(1, 0); got != 4 {
		t.Errorf("At(1,0) = %v, want 4", got)
	}

	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2}); err == nil {
		t.Error("FromSlice with wrong length: want error")
	}
}

func TestFromComplex(t *testing.T) {
	d, err := FromComplex([]complex128{1, 2i, 3, 4i}, Shape{2, 2})
	if err != nil {
		t.Fatalf("FromComplex: %v", err)
	}
	if got := d.AtC(0, 1); got != 2i {
		t.Errorf("AtC(0,1) = %v, want 2i", got)
	}
}

func TestRandnShapeAndDType(t *testing.T) {
	d := Randn(Shape{4, 5}, Float64)
	if !d.Shape().Equal(Shape{4, 5}) {
		t.Errorf("shape = %v, want [4 5]", d.Shape())
	}
	c := Randn(Shape{3}, Complex128)
	if c.DType() != Complex128 {
		t.Errorf("dtype = %v, want Complex128", c.DType())
	}
}

package network_test

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/weft-ml/weft/backend/cpu"
	"github.com/weft-ml/weft/network"
	"github.com/weft-ml/weft/tensor"
)

// randTensor builds a deterministic pseudo-random Float64 tensor from a seed,
// so every property run is reproducible from gopter's reported inputs.
func randTensor(seed int64, shape tensor.Shape) *tensor.Dense {
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	t, err := tensor.FromSlice(data, shape)
	if err != nil {
		panic(err)
	}
	return t
}

// genDim generates a small axis dimension.
func genDim() gopter.Gen { return gen.IntRange(1, 4) }

// TestContractionProperties checks algebraic laws that must hold for any
// tensors and any valid axis pairing, not just hand-picked examples.
func TestContractionProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based tests in short mode")
	}

	b := cpu.New()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	// The merged shape is the receiver's unpaired dims followed by the
	// operand's unpaired dims.
	properties.Property("contraction shape rule", prop.ForAll(
		func(seed int64, d0, d1, d2, d3 int) bool {
			x, err := network.NewNode("x", randTensor(seed, tensor.Shape{d0, d1, d2}), b)
			if err != nil {
				return false
			}
			y, err := network.NewNode("y", randTensor(seed+1, tensor.Shape{d3, d1}), b)
			if err != nil {
				return false
			}
			z, err := x.Contract(y, []int{1}, []int{1}, "z")
			if err != nil {
				return false
			}
			return z.Shape().Equal(tensor.Shape{d0, d2, d3})
		},
		gen.Int64(), genDim(), genDim(), genDim(), genDim(),
	))

	// Full matrix trace must equal the sum of the diagonal.
	properties.Property("trace equals diagonal sum", prop.ForAll(
		func(seed int64, d int) bool {
			m := randTensor(seed, tensor.Shape{d, d})
			n, err := network.NewNode("m", m, b)
			if err != nil {
				return false
			}
			traced, err := n.Trace(0, 1, "tr")
			if err != nil {
				return false
			}
			want := 0.0
			for i := 0; i < d; i++ {
				want += m.At(i, i)
			}
			return approx(traced.Tensor().At(0), want)
		},
		gen.Int64(), genDim(),
	))

	// Matrix-chain contraction is associative: (A·B)·C == A·(B·C).
	properties.Property("contraction associativity", prop.ForAll(
		func(seed int64, d0, d1, d2, d3 int) bool {
			ta := randTensor(seed, tensor.Shape{d0, d1})
			tb := randTensor(seed+1, tensor.Shape{d1, d2})
			tc := randTensor(seed+2, tensor.Shape{d2, d3})

			ab, err := tensor.Contract(b, ta, tb, []int{1}, []int{0})
			if err != nil {
				return false
			}
			left, err := tensor.Contract(b, ab, tc, []int{1}, []int{0})
			if err != nil {
				return false
			}
			bc, err := tensor.Contract(b, tb, tc, []int{1}, []int{0})
			if err != nil {
				return false
			}
			right, err := tensor.Contract(b, ta, bc, []int{1}, []int{0})
			if err != nil {
				return false
			}
			return left.AllClose(right, 1e-9)
		},
		gen.Int64(), genDim(), genDim(), genDim(), genDim(),
	))

	// Contraction is linear in each slot: (A+A')·C == A·C + A'·C and
	// (s·A)·C == s·(A·C).
	properties.Property("contraction bilinearity", prop.ForAll(
		func(seed int64, d0, d1, d2 int, scale float64) bool {
			ta := randTensor(seed, tensor.Shape{d0, d1})
			ta2 := randTensor(seed+1, tensor.Shape{d0, d1})
			tc := randTensor(seed+2, tensor.Shape{d1, d2})

			sum, err := tensor.Contract(b, b.Add(ta, ta2), tc, []int{1}, []int{0})
			if err != nil {
				return false
			}
			p1, err := tensor.Contract(b, ta, tc, []int{1}, []int{0})
			if err != nil {
				return false
			}
			p2, err := tensor.Contract(b, ta2, tc, []int{1}, []int{0})
			if err != nil {
				return false
			}
			if !sum.AllClose(b.Add(p1, p2), 1e-9) {
				return false
			}

			scaled, err := tensor.Contract(b, b.Scale(ta, complex(scale, 0)), tc, []int{1}, []int{0})
			if err != nil {
				return false
			}
			return scaled.AllClose(b.Scale(p1, complex(scale, 0)), 1e-9)
		},
		gen.Int64(), genDim(), genDim(), genDim(), gen.Float64Range(-10, 10),
	))

	// Contracting a matrix against the identity leaves it unchanged.
	properties.Property("identity is neutral", prop.ForAll(
		func(seed int64, d0, d1 int) bool {
			m := randTensor(seed, tensor.Shape{d0, d1})
			got, err := tensor.Contract(b, m, tensor.Eye(d1, tensor.Float64), []int{1}, []int{0})
			if err != nil {
				return false
			}
			return got.AllClose(m, 1e-12)
		},
		gen.Int64(), genDim(), genDim(),
	))

	properties.TestingRun(t)
}

// TestChainReductionProperties checks that full chain reduction agrees with
// explicit pairwise contraction regardless of order.
func TestChainReductionProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping property-based tests in short mode")
	}

	b := cpu.New()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	// An open chain contracted front-to-back equals the same chain contracted
	// in reverse order up to axis permutation; with scalar-valued closed
	// chains the two are numerically identical.
	properties.Property("ring reduction is order independent", prop.ForAll(
		func(seed int64, bond int) bool {
			sites := []*tensor.Dense{
				randTensor(seed, tensor.Shape{1, bond, bond}),
				randTensor(seed+1, tensor.Shape{1, bond, bond}),
				randTensor(seed+2, tensor.Shape{1, bond, bond}),
			}
			nw, err := network.NewMPS(sites, b)
			if err != nil {
				return false
			}
			natural, err := nw.Contract()
			if err != nil {
				return false
			}
			reversed, err := nw.Contract("site2", "site1", "site0")
			if err != nil {
				return false
			}
			// Physical dim 1 at every site: the surviving legs are trivial, so
			// both reductions hold the same single value, the ring trace.
			return approx(natural.Tensor().At(0, 0, 0), reversed.Tensor().At(0, 0, 0))
		},
		gen.Int64(), genDim(),
	))

	// Reduction never mutates the network: contracting twice gives equal
	// results.
	properties.Property("reduction is repeatable", prop.ForAll(
		func(seed int64, d int) bool {
			sites := []*tensor.Dense{
				randTensor(seed, tensor.Shape{d, d}),
				randTensor(seed+1, tensor.Shape{d, d, d}),
				randTensor(seed+2, tensor.Shape{d, d}),
			}
			nw, err := network.NewMPS(sites, b)
			if err != nil {
				return false
			}
			first, err := nw.Contract()
			if err != nil {
				return false
			}
			second, err := nw.Contract()
			if err != nil {
				return false
			}
			return first.Tensor().AllClose(second.Tensor(), 0)
		},
		gen.Int64(), genDim(),
	))

	properties.TestingRun(t)
}

func approx(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	scale := 1.0
	if ab := abs(a); ab > scale {
		scale = ab
	}
	if bb := abs(b); bb > scale {
		scale = bb
	}
	return diff <= 1e-9*scale
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

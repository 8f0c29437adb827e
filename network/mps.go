package network

import (
	"fmt"

	"github.com/weft-ml/weft/tensor"
)

// Chain wires a matrix-product-state topology: site i bonds to site i+1.
//
// Axis conventions (axis 0 is always the physical index):
//   - interior sites are rank 3: (physical, left bond, right bond)
//   - a rank-2 end site has a single bond axis: (physical, bond)
//   - if both end sites are rank 3, the chain closes into a ring: the last
//     site's right bond connects back to the first site's left bond, so
//     every bond axis is summed away by a full contraction and only the
//     physical legs survive
type Chain struct{}

// NewMPS builds a matrix-product-state network from a list of site tensors.
// Sites are auto-named by position ("site0", "site1", ...).
func NewMPS(tensors []*tensor.Dense, b tensor.Backend) (*Network, error) {
	return Assemble(tensors, b, Chain{})
}

// Wire implements Topology.
func (Chain) Wire(tensors []*tensor.Dense, b tensor.Backend) ([]*Node, []Bond, error) {
	if len(tensors) == 0 {
		return nil, nil, fmt.Errorf("%w: chain requires at least one tensor", ErrInvalidOperand)
	}

	nodes := make([]*Node, len(tensors))
	for i, t := range tensors {
		n, err := NewNode(fmt.Sprintf("site%d", i), t, b)
		if err != nil {
			return nil, nil, err
		}
		nodes[i] = n
	}

	if len(nodes) == 1 {
		n := nodes[0]
		if n.Rank() == 3 {
			// Single rank-3 site: ring of one, left and right bond traced.
			return nodes, []Bond{{A: n.Name(), AxisA: 2, B: n.Name(), AxisB: 1}}, nil
		}
		return nodes, nil, nil
	}

	first, last := nodes[0], nodes[len(nodes)-1]
	for i, n := range nodes[1 : len(nodes)-1] {
		if n.Rank() < 3 {
			return nil, nil, fmt.Errorf("%w: interior site %d has rank %d, chain sites need (physical, left, right)",
				ErrShapeMismatch, i+1, n.Rank())
		}
	}
	for _, n := range []*Node{first, last} {
		if n.Rank() < 2 {
			return nil, nil, fmt.Errorf("%w: end site %q has rank %d, need at least (physical, bond)",
				ErrShapeMismatch, n.Name(), n.Rank())
		}
	}
	periodic := first.Rank() >= 3 && last.Rank() >= 3
	if (first.Rank() >= 3) != (last.Rank() >= 3) {
		return nil, nil, fmt.Errorf("%w: cannot close chain, end sites have ranks %d and %d",
			ErrShapeMismatch, first.Rank(), last.Rank())
	}

	bonds := make([]Bond, 0, len(nodes))
	for i := 0; i < len(nodes)-1; i++ {
		right := 2
		if i == 0 && !periodic {
			right = 1 // open-chain first site is (physical, right bond)
		}
		bonds = append(bonds, Bond{A: nodes[i].Name(), AxisA: right, B: nodes[i+1].Name(), AxisB: 1})
	}
	if periodic {
		bonds = append(bonds, Bond{A: last.Name(), AxisA: 2, B: first.Name(), AxisB: 1})
	}
	return nodes, bonds, nil
}

package network

import (
	"github.com/weft-ml/weft/tensor"
)

// Topology is the capability "produce initial connectivity from a tensor
// collection": it wraps raw tensors into named nodes and declares the bonds
// between them. Chain (MPS) and Grid (PEPS) are the two lattice variants.
type Topology interface {
	Wire(tensors []*tensor.Dense, b tensor.Backend) ([]*Node, []Bond, error)
}

// Assemble builds a network from raw tensors using a topology strategy.
// Bond-dimension consistency is validated by New, so disagreeing neighbor
// tensors surface as ErrDimensionConflict.
func Assemble(tensors []*tensor.Dense, b tensor.Backend, topo Topology) (*Network, error) {
	nodes, bonds, err := topo.Wire(tensors, b)
	if err != nil {
		return nil, err
	}
	return New(nodes, bonds)
}

package network

import (
	"fmt"

	"github.com/weft-ml/weft/tensor"
)

// Node wraps one tensor with naming, dimension metadata, and a back-reference
// map of bonded peers. A Node is a value-like entity: contraction never
// mutates the receiver, and the only sanctioned mutation is ReplaceTensor.
//
// The constructor does not deep-copy the tensor. Ownership passes to the
// Node: mutating the same Dense value elsewhere afterwards is undefined
// behavior.
type Node struct {
	name    string
	tensor  *tensor.Dense
	backend tensor.Backend

	shape   tensor.Shape
	spinDim int
	bondDim int

	// Explicit dimension hints stick across ReplaceTensor.
	spinFixed bool
	bondFixed bool

	// connected maps a peer node's name to the axis pair {own axis, peer
	// axis} bonding the two. It is a back-reference for introspection; the
	// authoritative bond graph lives in Network.
	connected map[string][2]int
}

// Option configures NewNode.
type Option func(*nodeOptions)

type nodeOptions struct {
	shape     tensor.Shape
	spinDim   int
	bondDim   int
	spinSet   bool
	bondSet   bool
	connected map[string][2]int
}

// WithShape declares the expected tensor shape. Construction fails with
// ErrShapeMismatch if it disagrees with the tensor's actual shape.
func WithShape(s tensor.Shape) Option {
	return func(o *nodeOptions) { o.shape = s.Clone() }
}

// WithSpinDim fixes the physical (spin) dimension instead of deriving it
// from axis 0.
func WithSpinDim(d int) Option {
	return func(o *nodeOptions) { o.spinDim = d; o.spinSet = true }
}

// WithBondDim fixes the bond dimension instead of deriving it from axis 1.
// Required information for rank-1 tensors, whose bond dimension cannot be
// inferred.
func WithBondDim(d int) Option {
	return func(o *nodeOptions) { o.bondDim = d; o.bondSet = true }
}

// WithConnections seeds the peer back-reference map.
func WithConnections(conns map[string][2]int) Option {
	return func(o *nodeOptions) {
		o.connected = make(map[string][2]int, len(conns))
		for k, v := range conns {
			o.connected[k] = v
		}
	}
}

// NewNode constructs a Node around a tensor of rank >= 1.
//
// Dimension metadata defaults: spin dimension is the size of axis 0; bond
// dimension is the size of axis 1 when rank >= 2. For a rank-1 tensor the
// spin dimension is the sole dimension and the bond dimension must come from
// WithBondDim if it is needed at all.
func NewNode(name string, t *tensor.Dense, b tensor.Backend, opts ...Option) (*Node, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: node %q requires a tensor", ErrInvalidOperand, name)
	}
	if t.Rank() < 1 {
		return nil, fmt.Errorf("%w: node %q requires a tensor of rank >= 1", ErrInvalidOperand, name)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: node %q requires a backend", ErrInvalidOperand, name)
	}

	var o nodeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.shape != nil && !o.shape.Equal(t.Shape()) {
		return nil, fmt.Errorf("%w: declared %v, tensor has %v", ErrShapeMismatch, o.shape, t.Shape())
	}

	n := &Node{
		name:      name,
		tensor:    t,
		backend:   b,
		spinDim:   o.spinDim,
		bondDim:   o.bondDim,
		spinFixed: o.spinSet,
		bondFixed: o.bondSet,
		connected: o.connected,
	}
	if n.connected == nil {
		n.connected = map[string][2]int{}
	}
	n.deriveDims()
	return n, nil
}

// deriveDims refreshes shape/spin/bond metadata from the current tensor,
// honoring explicit hints.
func (n *Node) deriveDims() {
	n.shape = n.tensor.Shape().Clone()
	if len(n.shape) < 2 {
		n.spinDim = n.shape[0]
		// bondDim keeps whatever the caller supplied; it cannot be derived.
		return
	}
	if !n.spinFixed {
		n.spinDim = n.shape[0]
	}
	if !n.bondFixed {
		n.bondDim = n.shape[1]
	}
}

// Name returns the node's identifier.
func (n *Node) Name() string { return n.name }

// Tensor returns the node's tensor. The invariant Shape() ==
// Tensor().Shape() holds at all times.
func (n *Node) Tensor() *tensor.Dense { return n.tensor }

// Backend returns the compute backend the node contracts with.
func (n *Node) Backend() tensor.Backend { return n.backend }

// Shape returns the node's per-axis dimensions.
func (n *Node) Shape() tensor.Shape { return n.shape.Clone() }

// Rank returns the tensor's number of axes.
func (n *Node) Rank() int { return len(n.shape) }

// SpinDim returns the physical (spin) dimension.
func (n *Node) SpinDim() int { return n.spinDim }

// BondDim returns the bond dimension. Zero means "not set" for a rank-1
// node constructed without WithBondDim.
func (n *Node) BondDim() int { return n.bondDim }

// Connected returns a copy of the peer back-reference map.
func (n *Node) Connected() map[string][2]int {
	out := make(map[string][2]int, len(n.connected))
	for k, v := range n.connected {
		out[k] = v
	}
	return out
}

// String returns a short description of the node.
func (n *Node) String() string {
	return fmt.Sprintf("Node(name=%s, shape=%v, spin=%d, bond=%d)", n.name, n.shape, n.spinDim, n.bondDim)
}

// ReplaceTensor swaps the node's tensor and re-derives shape and dimension
// metadata. Dimensions fixed with WithSpinDim/WithBondDim are preserved
// where the new tensor's rank still permits them; derived dimensions are
// derived anew.
func (n *Node) ReplaceTensor(t *tensor.Dense) error {
	if t == nil {
		return fmt.Errorf("%w: node %q requires a tensor", ErrInvalidOperand, n.name)
	}
	if t.Rank() < 1 {
		return fmt.Errorf("%w: node %q requires a tensor of rank >= 1", ErrInvalidOperand, n.name)
	}
	n.tensor = t
	n.deriveDims()
	return nil
}

// Contract contracts the receiver with other: axesSelf[i] of the receiver is
// summed against axesOther[i] of other. The result tensor's axis order is
// the receiver's uncontracted axes in original order, then other's
// uncontracted axes in original order.
//
// A nil other (or the receiver itself) delegates to Trace; the two lists
// must then hold exactly one axis each.
//
// The result is a new Node named newName (the receiver's name when empty)
// that inherits a copy of the receiver's peer map. Callers orchestrating a
// whole network are responsible for rewiring connectivity afterwards; the
// Network type does this automatically.
func (n *Node) Contract(other *Node, axesSelf, axesOther []int, newName string) (*Node, error) {
	if newName == "" {
		newName = n.name
	}
	if other == nil || other == n {
		if len(axesSelf) != 1 || len(axesOther) != 1 {
			return nil, fmt.Errorf("%w: self-contraction requires exactly two axis indices, got %d",
				ErrInvalidAxisCount, len(axesSelf)+len(axesOther))
		}
		return n.Trace(axesSelf[0], axesOther[0], newName)
	}

	if other.tensor == nil {
		return nil, fmt.Errorf("%w: node %q has no tensor", ErrInvalidOperand, other.name)
	}
	if n.tensor.DType() != other.tensor.DType() {
		return nil, fmt.Errorf("%w: operand dtypes differ (%s vs %s)",
			ErrInvalidOperand, n.tensor.DType(), other.tensor.DType())
	}
	if len(axesSelf) != len(axesOther) {
		return nil, fmt.Errorf("%w: axis lists have different lengths (%d vs %d)",
			ErrAxisMismatch, len(axesSelf), len(axesOther))
	}
	if err := n.checkAxes(axesSelf); err != nil {
		return nil, err
	}
	if err := other.checkAxes(axesOther); err != nil {
		return nil, err
	}
	for i := range axesSelf {
		da, db := n.shape[axesSelf[i]], other.shape[axesOther[i]]
		if da != db {
			return nil, fmt.Errorf("%w: axis %d of %q has dim %d, axis %d of %q has dim %d",
				ErrAxisMismatch, axesSelf[i], n.name, da, axesOther[i], other.name, db)
		}
	}

	result, err := tensor.Contract(n.backend, n.tensor, other.tensor, axesSelf, axesOther)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperand, err)
	}
	return n.derive(newName, result)
}

// Trace self-contracts the receiver over two equal-dimension axes by
// contracting against the identity matrix of that dimension, which sums the
// diagonal along the axis pair and removes both axes. If the two axes were
// the tensor's only axes, the result is wrapped as a rank-1 single-element
// tensor; a bare rank-0 tensor is never returned.
func (n *Node) Trace(ax0, ax1 int, newName string) (*Node, error) {
	if newName == "" {
		newName = n.name
	}
	if err := n.checkAxes([]int{ax0, ax1}); err != nil {
		return nil, err
	}
	if n.shape[ax0] != n.shape[ax1] {
		return nil, fmt.Errorf("%w: axes %d and %d of %q have dims %d and %d",
			ErrAxisMismatch, ax0, ax1, n.name, n.shape[ax0], n.shape[ax1])
	}

	result, err := tensor.Trace(n.backend, n.tensor, ax0, ax1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperand, err)
	}
	return n.derive(newName, result)
}

// derive builds the result node of a contraction: rank-0 tensors are
// normalized to a single-element rank-1 shape, and the receiver's peer map
// is inherited by copy.
func (n *Node) derive(name string, t *tensor.Dense) (*Node, error) {
	if t.Rank() == 0 {
		t = n.backend.Reshape(t, tensor.Shape{1})
	}
	return NewNode(name, t, n.backend, WithConnections(n.connected))
}

// checkAxes verifies axis indices against the node's shape, reporting
// violations as ErrInvalidAxisCount.
func (n *Node) checkAxes(axes []int) error {
	seen := make(map[int]bool, len(axes))
	for _, ax := range axes {
		if ax < 0 || ax >= len(n.shape) {
			return fmt.Errorf("%w: axis %d out of range for rank-%d node %q",
				ErrInvalidAxisCount, ax, len(n.shape), n.name)
		}
		if seen[ax] {
			return fmt.Errorf("%w: axis %d of %q listed twice", ErrInvalidAxisCount, ax, n.name)
		}
		seen[ax] = true
	}
	return nil
}

package network

import (
	"fmt"
	"sort"
)

// Bond declares that AxisA of node A is contracted against AxisB of node B.
// A bond with A == B is a self-loop and reduces to a trace.
type Bond struct {
	A     string
	AxisA int
	B     string
	AxisB int
}

// Network is an arena of Nodes plus an explicit bond list. The bond list is
// the authoritative adjacency structure; nodes only carry back-reference
// maps. Axes not covered by any bond are open legs: they are never summed
// over and persist through reduction.
type Network struct {
	order []string
	nodes map[string]*Node
	bonds []Bond
}

// New assembles a network from nodes and bonds. Node names must be unique,
// every bond endpoint must name a node and a valid axis, and the two axes of
// each bond must have equal dimensions (ErrDimensionConflict otherwise).
//
// Each node's peer back-reference map is populated from the bond list (first
// bond per peer wins, matching the one-entry-per-peer representation).
func New(nodes []*Node, bonds []Bond) (*Network, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: network requires at least one node", ErrInvalidOperand)
	}

	nw := &Network{
		order: make([]string, 0, len(nodes)),
		nodes: make(map[string]*Node, len(nodes)),
		bonds: make([]Bond, 0, len(bonds)),
	}
	for _, n := range nodes {
		if n == nil {
			return nil, fmt.Errorf("%w: nil node", ErrInvalidOperand)
		}
		if _, ok := nw.nodes[n.Name()]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, n.Name())
		}
		nw.nodes[n.Name()] = n
		nw.order = append(nw.order, n.Name())
	}

	for _, bd := range bonds {
		a, ok := nw.nodes[bd.A]
		if !ok {
			return nil, fmt.Errorf("%w: bond endpoint %q", ErrUnknownNode, bd.A)
		}
		b, ok := nw.nodes[bd.B]
		if !ok {
			return nil, fmt.Errorf("%w: bond endpoint %q", ErrUnknownNode, bd.B)
		}
		if bd.AxisA < 0 || bd.AxisA >= a.Rank() {
			return nil, fmt.Errorf("%w: axis %d out of range for rank-%d node %q",
				ErrInvalidAxisCount, bd.AxisA, a.Rank(), bd.A)
		}
		if bd.AxisB < 0 || bd.AxisB >= b.Rank() {
			return nil, fmt.Errorf("%w: axis %d out of range for rank-%d node %q",
				ErrInvalidAxisCount, bd.AxisB, b.Rank(), bd.B)
		}
		if bd.A == bd.B && bd.AxisA == bd.AxisB {
			return nil, fmt.Errorf("%w: self-bond on %q uses axis %d twice",
				ErrInvalidAxisCount, bd.A, bd.AxisA)
		}
		da, db := a.shape[bd.AxisA], b.shape[bd.AxisB]
		if da != db {
			return nil, fmt.Errorf("%w: %q axis %d has dim %d, %q axis %d has dim %d",
				ErrDimensionConflict, bd.A, bd.AxisA, da, bd.B, bd.AxisB, db)
		}
		nw.bonds = append(nw.bonds, bd)

		if _, ok := a.connected[bd.B]; !ok && bd.A != bd.B {
			a.connected[bd.B] = [2]int{bd.AxisA, bd.AxisB}
		}
		if _, ok := b.connected[bd.A]; !ok && bd.A != bd.B {
			b.connected[bd.A] = [2]int{bd.AxisB, bd.AxisA}
		}
	}
	return nw, nil
}

// Size returns the number of nodes.
func (nw *Network) Size() int { return len(nw.order) }

// Nodes returns the nodes in insertion order.
func (nw *Network) Nodes() []*Node {
	out := make([]*Node, len(nw.order))
	for i, name := range nw.order {
		out[i] = nw.nodes[name]
	}
	return out
}

// Node looks a node up by name.
func (nw *Network) Node(name string) (*Node, error) {
	n, ok := nw.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	return n, nil
}

// Bonds returns a copy of the bond list.
func (nw *Network) Bonds() []Bond {
	return append([]Bond(nil), nw.bonds...)
}

// OpenLegs returns, per node, the axes not covered by any bond, in
// ascending order. These are the network's external (physical) legs.
func (nw *Network) OpenLegs() map[string][]int {
	bonded := make(map[string]map[int]bool, len(nw.order))
	for _, bd := range nw.bonds {
		if bonded[bd.A] == nil {
			bonded[bd.A] = map[int]bool{}
		}
		bonded[bd.A][bd.AxisA] = true
		if bonded[bd.B] == nil {
			bonded[bd.B] = map[int]bool{}
		}
		bonded[bd.B][bd.AxisB] = true
	}

	open := make(map[string][]int, len(nw.order))
	for _, name := range nw.order {
		n := nw.nodes[name]
		axes := []int{}
		for ax := 0; ax < n.Rank(); ax++ {
			if !bonded[name][ax] {
				axes = append(axes, ax)
			}
		}
		open[name] = axes
	}
	return open
}

// Components returns the connected components of the bond graph, each as a
// list of node names in insertion order. Isolated nodes form singleton
// components.
func (nw *Network) Components() [][]string {
	adj := make(map[string][]string, len(nw.order))
	for _, bd := range nw.bonds {
		if bd.A != bd.B {
			adj[bd.A] = append(adj[bd.A], bd.B)
			adj[bd.B] = append(adj[bd.B], bd.A)
		}
	}

	visited := make(map[string]bool, len(nw.order))
	var components [][]string
	for _, start := range nw.order {
		if visited[start] {
			continue
		}
		// BFS from start.
		comp := []string{}
		queue := []string{start}
		visited[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, next := range adj[cur] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		sort.Slice(comp, func(i, j int) bool {
			return nw.position(comp[i]) < nw.position(comp[j])
		})
		components = append(components, comp)
	}
	return components
}

func (nw *Network) position(name string) int {
	for i, n := range nw.order {
		if n == name {
			return i
		}
	}
	return len(nw.order)
}

// Contract reduces the network to a single node by repeated pairwise
// contraction. With no arguments, reduction follows the network's natural
// order (insertion order: left-to-right for chains, row-major for grids); an
// explicit order must be a permutation of the node names and is followed
// instead. Open legs are never contracted and persist as axes of the result.
//
// Fails with ErrDisconnectedNetwork if the bond graph has more than one
// connected component; use ContractComponents for per-component reduction.
// A single bond-free node is returned as is.
func (nw *Network) Contract(order ...string) (*Node, error) {
	seq := append([]string(nil), nw.order...)
	if len(order) > 0 {
		if err := nw.checkOrder(order); err != nil {
			return nil, err
		}
		seq = append([]string(nil), order...)
	}
	if len(nw.Components()) > 1 {
		return nil, fmt.Errorf("%w: %d components", ErrDisconnectedNetwork, len(nw.Components()))
	}
	return reduce(nw.cloneNodes(), nw.Bonds(), seq)
}

// ContractComponents reduces each connected component independently and
// returns one node per component, in insertion order of the components'
// first nodes.
func (nw *Network) ContractComponents() ([]*Node, error) {
	nodes := nw.cloneNodes()
	results := make([]*Node, 0, 1)
	for _, comp := range nw.Components() {
		member := make(map[string]bool, len(comp))
		for _, name := range comp {
			member[name] = true
		}
		var bonds []Bond
		for _, bd := range nw.bonds {
			if member[bd.A] {
				bonds = append(bonds, bd)
			}
		}
		n, err := reduce(nodes, bonds, comp)
		if err != nil {
			return nil, err
		}
		results = append(results, n)
	}
	return results, nil
}

// checkOrder validates that order is a permutation of the node names.
func (nw *Network) checkOrder(order []string) error {
	if len(order) != len(nw.order) {
		return fmt.Errorf("%w: order names %d nodes, network has %d", ErrUnknownNode, len(order), len(nw.order))
	}
	seen := make(map[string]bool, len(order))
	for _, name := range order {
		if _, ok := nw.nodes[name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownNode, name)
		}
		if seen[name] {
			return fmt.Errorf("%w: %q appears twice in order", ErrUnknownNode, name)
		}
		seen[name] = true
	}
	return nil
}

// cloneNodes returns a fresh name->node map so reduction never touches the
// network's own arena.
func (nw *Network) cloneNodes() map[string]*Node {
	nodes := make(map[string]*Node, len(nw.nodes))
	for name, n := range nw.nodes {
		nodes[name] = n
	}
	return nodes
}

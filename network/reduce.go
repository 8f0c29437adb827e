package network

import (
	"fmt"
)

// reduce merges bonded nodes until no bonds remain, then returns the single
// surviving node named in seq. Bookkeeping relies on the contraction
// axis-order rule: a merged node carries the receiver's unpaired axes first
// (original order), then the operand's unpaired axes (original order), so
// every surviving bond's axis index can be recomputed from the axes removed
// below it.
//
// Invariant kept across iterations: self-bonds are traced away before any
// pairwise merge, so a pairwise step only ever consumes bonds whose
// endpoints are two distinct nodes.
func reduce(nodes map[string]*Node, bonds []Bond, seq []string) (*Node, error) {
	pos := make(map[string]int, len(seq))
	for i, name := range seq {
		pos[name] = i
	}

	for len(bonds) > 0 {
		if idx := firstSelfBond(bonds, pos); idx >= 0 {
			var err error
			bonds, err = traceSelfBond(nodes, bonds, idx)
			if err != nil {
				return nil, err
			}
			continue
		}

		bd := bonds[pickBond(bonds, pos)]
		aName, bName := bd.A, bd.B
		if pos[bName] < pos[aName] {
			aName, bName = bName, aName
		}
		var err error
		bonds, err = mergePair(nodes, bonds, aName, bName)
		if err != nil {
			return nil, err
		}
		delete(nodes, bName)
		delete(pos, bName)
	}

	// All bonds consumed; exactly one node of seq must survive.
	var last *Node
	for _, name := range seq {
		if n, ok := nodes[name]; ok {
			if last != nil {
				return nil, fmt.Errorf("%w: reduction left more than one node", ErrDisconnectedNetwork)
			}
			last = n
		}
	}
	if last == nil {
		return nil, fmt.Errorf("%w: reduction left no nodes", ErrUnknownNode)
	}
	return last, nil
}

// pickBond selects the next pairwise bond: the one whose endpoints come
// earliest in the contraction sequence.
func pickBond(bonds []Bond, pos map[string]int) int {
	best := 0
	bestLo, bestHi := bondRank(bonds[0], pos)
	for i := 1; i < len(bonds); i++ {
		lo, hi := bondRank(bonds[i], pos)
		if lo < bestLo || (lo == bestLo && hi < bestHi) {
			best, bestLo, bestHi = i, lo, hi
		}
	}
	return best
}

func bondRank(bd Bond, pos map[string]int) (int, int) {
	pa, pb := pos[bd.A], pos[bd.B]
	if pa > pb {
		pa, pb = pb, pa
	}
	return pa, pb
}

// firstSelfBond returns the index of the self-bond on the earliest node in
// the sequence, or -1.
func firstSelfBond(bonds []Bond, pos map[string]int) int {
	best := -1
	for i, bd := range bonds {
		if bd.A != bd.B {
			continue
		}
		if best < 0 || pos[bd.A] < pos[bonds[best].A] {
			best = i
		}
	}
	return best
}

// traceSelfBond traces away bonds[idx] (a self-loop) and remaps the axis
// indices of every surviving bond touching that node.
func traceSelfBond(nodes map[string]*Node, bonds []Bond, idx int) ([]Bond, error) {
	bd := bonds[idx]
	n := nodes[bd.A]
	traced, err := n.Trace(bd.AxisA, bd.AxisB, n.Name())
	if err != nil {
		return nil, err
	}
	nodes[bd.A] = traced

	removed := []int{bd.AxisA, bd.AxisB}
	out := make([]Bond, 0, len(bonds)-1)
	for i, other := range bonds {
		if i == idx {
			continue
		}
		if other.A == bd.A {
			other.AxisA = shiftAxis(other.AxisA, removed)
		}
		if other.B == bd.A {
			other.AxisB = shiftAxis(other.AxisB, removed)
		}
		out = append(out, other)
	}
	return out, nil
}

// mergePair contracts nodes a and b over every bond between them at once and
// rewires the surviving bonds to the merged node. The merged node keeps a's
// name and position.
func mergePair(nodes map[string]*Node, bonds []Bond, aName, bName string) ([]Bond, error) {
	a, b := nodes[aName], nodes[bName]

	var axesA, axesB []int
	var rest []Bond
	for _, bd := range bonds {
		switch {
		case bd.A == aName && bd.B == bName:
			axesA = append(axesA, bd.AxisA)
			axesB = append(axesB, bd.AxisB)
		case bd.A == bName && bd.B == aName:
			axesA = append(axesA, bd.AxisB)
			axesB = append(axesB, bd.AxisA)
		default:
			rest = append(rest, bd)
		}
	}

	merged, err := a.Contract(b, axesA, axesB, aName)
	if err != nil {
		return nil, err
	}
	nodes[aName] = merged

	// Surviving axes of a keep their order at the front of the merged node;
	// surviving axes of b follow, shifted past a's free axes.
	freeA := a.Rank() - len(axesA)
	for i, bd := range rest {
		if bd.A == aName {
			bd.AxisA = shiftAxis(bd.AxisA, axesA)
		} else if bd.A == bName {
			bd.A = aName
			bd.AxisA = freeA + shiftAxis(bd.AxisA, axesB)
		}
		if bd.B == aName {
			bd.AxisB = shiftAxis(bd.AxisB, axesA)
		} else if bd.B == bName {
			bd.B = aName
			bd.AxisB = freeA + shiftAxis(bd.AxisB, axesB)
		}
		rest[i] = bd
	}
	return rest, nil
}

// shiftAxis returns the new index of axis ax after the axes in removed have
// been contracted away.
func shiftAxis(ax int, removed []int) int {
	shifted := ax
	for _, r := range removed {
		if r < ax {
			shifted--
		}
	}
	return shifted
}

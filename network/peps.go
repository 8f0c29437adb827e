package network

import (
	"fmt"

	"github.com/weft-ml/weft/tensor"
)

// Grid wires a projected-entangled-pair-state topology: a non-periodic
// Rows×Cols lattice where each site bonds to its up/left/right/down
// neighbors.
//
// Axis convention: axis 0 is the physical index, followed by one bond axis
// per existing neighbor in the fixed order up, left, right, down. A corner
// site is therefore rank 3, an edge site rank 4, an interior site rank 5.
type Grid struct {
	Rows, Cols int
}

// NewPEPS builds a PEPS network from a rectangular grid of site tensors.
// Sites are auto-named by position ("site0_0", "site0_1", ...), row-major.
func NewPEPS(grid [][]*tensor.Dense, b tensor.Backend) (*Network, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%w: grid requires at least one row and one column", ErrInvalidOperand)
	}
	cols := len(grid[0])
	tensors := make([]*tensor.Dense, 0, len(grid)*cols)
	for r, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidOperand, r, len(row), cols)
		}
		tensors = append(tensors, row...)
	}
	return Assemble(tensors, b, Grid{Rows: len(grid), Cols: cols})
}

// Wire implements Topology over a row-major tensor list.
func (g Grid) Wire(tensors []*tensor.Dense, b tensor.Backend) ([]*Node, []Bond, error) {
	if g.Rows < 1 || g.Cols < 1 {
		return nil, nil, fmt.Errorf("%w: grid dimensions %dx%d", ErrInvalidOperand, g.Rows, g.Cols)
	}
	if len(tensors) != g.Rows*g.Cols {
		return nil, nil, fmt.Errorf("%w: %dx%d grid needs %d tensors, got %d",
			ErrInvalidOperand, g.Rows, g.Cols, g.Rows*g.Cols, len(tensors))
	}

	nodes := make([]*Node, len(tensors))
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			i := r*g.Cols + c
			n, err := NewNode(fmt.Sprintf("site%d_%d", r, c), tensors[i], b)
			if err != nil {
				return nil, nil, err
			}
			want := 1 + len(g.dirs(r, c))
			if n.Rank() != want {
				return nil, nil, fmt.Errorf("%w: site (%d,%d) has rank %d, lattice position needs rank %d",
					ErrShapeMismatch, r, c, n.Rank(), want)
			}
			nodes[i] = n
		}
	}

	var bonds []Bond
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			me := nodes[r*g.Cols+c]
			if c+1 < g.Cols {
				east := nodes[r*g.Cols+c+1]
				bonds = append(bonds, Bond{
					A: me.Name(), AxisA: g.axisOf(r, c, dirRight),
					B: east.Name(), AxisB: g.axisOf(r, c+1, dirLeft),
				})
			}
			if r+1 < g.Rows {
				south := nodes[(r+1)*g.Cols+c]
				bonds = append(bonds, Bond{
					A: me.Name(), AxisA: g.axisOf(r, c, dirDown),
					B: south.Name(), AxisB: g.axisOf(r+1, c, dirUp),
				})
			}
		}
	}
	return nodes, bonds, nil
}

type direction int

const (
	dirUp direction = iota
	dirLeft
	dirRight
	dirDown
)

// dirs lists the neighbor directions present at lattice position (r, c), in
// the fixed axis order.
func (g Grid) dirs(r, c int) []direction {
	var ds []direction
	if r > 0 {
		ds = append(ds, dirUp)
	}
	if c > 0 {
		ds = append(ds, dirLeft)
	}
	if c < g.Cols-1 {
		ds = append(ds, dirRight)
	}
	if r < g.Rows-1 {
		ds = append(ds, dirDown)
	}
	return ds
}

// axisOf returns the tensor axis carrying the bond in direction d at
// position (r, c): one past the physical axis, offset by the present
// directions that precede d.
func (g Grid) axisOf(r, c int, d direction) int {
	ax := 1
	for _, present := range g.dirs(r, c) {
		if present == d {
			return ax
		}
		ax++
	}
	panic(fmt.Sprintf("direction %d absent at (%d,%d)", d, r, c))
}

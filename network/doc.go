// Copyright 2026 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package network models tensor networks: Nodes holding dense tensors,
// bonds identifying the axis pairs shared between them, and reduction of a
// whole network to a single node by repeated pairwise contraction.
//
// # Nodes
//
// A Node wraps one tensor with naming and dimension metadata (spin and bond
// dimensions follow the usual convention: axis 0 is the physical index,
// axis 1 a virtual bond). Nodes contract pairwise, or with themselves (a
// trace over two equal axes, computed against an identity matrix). Every
// contraction produces a new Node; existing Nodes are never mutated.
//
//	backend := cpu.New()
//	a, _ := network.NewNode("A", tensor.Eye(2, tensor.Float64), backend)
//	b, _ := network.NewNode("B", tensor.Eye(2, tensor.Float64), backend)
//	ab, _ := a.Contract(b, []int{0}, []int{0}, "")
//
// # Networks
//
// A Network is an arena of Nodes plus an explicit bond list; nodes never
// hold strong references to their peers. Contract reduces the network to a
// single node by repeatedly merging bonded pairs, rewiring the surviving
// bonds' axis indices as axes disappear. Axes not covered by any bond are
// open (physical) legs: they are never summed and persist into the result.
//
// The Chain and Grid topologies wire the two standard lattices:
//
//   - MPS (matrix product state): a linear chain; rank-2 end tensors give an
//     open chain, all-rank-3 tensors close it into a ring.
//   - PEPS (projected entangled pair state): a 2-D grid with bonds between
//     lattice neighbors.
//
//	mps, _ := network.NewMPS([]*tensor.Dense{t0, t1, t2}, backend)
//	result, _ := mps.Contract()
package network

// Copyright 2026 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package netspec reads and writes tensor-network descriptions. It is glue
// around the core: YAML documents describe a network's nodes and bonds, and
// msgpack snapshots persist tensor data. The core itself defines no file
// format.
package netspec

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/weft-ml/weft/network"
	"github.com/weft-ml/weft/tensor"
)

// NodeSpec describes one node: a shape, and optionally its row-major data.
// Nodes without data are materialized as zero tensors.
type NodeSpec struct {
	Name    string    `yaml:"name"`
	Shape   []int     `yaml:"shape"`
	Data    []float64 `yaml:"data,omitempty"`
	SpinDim int       `yaml:"spin_dim,omitempty"`
	BondDim int       `yaml:"bond_dim,omitempty"`
}

// BondSpec describes one bond between two named nodes.
type BondSpec struct {
	A     string `yaml:"a"`
	AxisA int    `yaml:"a_axis"`
	B     string `yaml:"b"`
	AxisB int    `yaml:"b_axis"`
}

// NetworkSpec is the YAML document root.
type NetworkSpec struct {
	Nodes []NodeSpec `yaml:"nodes"`
	Bonds []BondSpec `yaml:"bonds,omitempty"`
}

// Parse decodes a YAML network description.
func Parse(data []byte) (*NetworkSpec, error) {
	var spec NetworkSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("netspec: parse: %w", err)
	}
	return &spec, nil
}

// Marshal encodes the spec as YAML.
func (s *NetworkSpec) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("netspec: marshal: %w", err)
	}
	return data, nil
}

// Build materializes the description into a Network on the given backend.
// Validation errors from the network package (unknown bond endpoints,
// dimension conflicts) pass through unchanged.
func (s *NetworkSpec) Build(b tensor.Backend) (*network.Network, error) {
	nodes := make([]*network.Node, 0, len(s.Nodes))
	for i, ns := range s.Nodes {
		name := ns.Name
		if name == "" {
			name = fmt.Sprintf("node%d", i)
		}
		shape := tensor.Shape(ns.Shape)

		var t *tensor.Dense
		var err error
		if ns.Data != nil {
			t, err = tensor.FromSlice(ns.Data, shape)
			if err != nil {
				return nil, fmt.Errorf("netspec: node %q: %w", name, err)
			}
		} else {
			t, err = tensor.NewDense(shape, tensor.Float64)
			if err != nil {
				return nil, fmt.Errorf("netspec: node %q: %w", name, err)
			}
		}

		var opts []network.Option
		if ns.SpinDim > 0 {
			opts = append(opts, network.WithSpinDim(ns.SpinDim))
		}
		if ns.BondDim > 0 {
			opts = append(opts, network.WithBondDim(ns.BondDim))
		}
		node, err := network.NewNode(name, t, b, opts...)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}

	bonds := make([]network.Bond, 0, len(s.Bonds))
	for _, bs := range s.Bonds {
		bonds = append(bonds, network.Bond{A: bs.A, AxisA: bs.AxisA, B: bs.B, AxisB: bs.AxisB})
	}
	return network.New(nodes, bonds)
}

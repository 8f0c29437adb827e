// Copyright 2026 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package netspec

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/weft-ml/weft/network"
	"github.com/weft-ml/weft/tensor"
)

// tensorRecord is the msgpack wire form of one tensor. Complex tensors
// carry real and imaginary parts as separate slices.
type tensorRecord struct {
	Shape []int     `msgpack:"shape"`
	Real  []float64 `msgpack:"real"`
	Imag  []float64 `msgpack:"imag,omitempty"`
}

func recordOf(t *tensor.Dense) tensorRecord {
	rec := tensorRecord{Shape: append([]int(nil), t.Shape()...)}
	switch t.DType() {
	case tensor.Float64:
		rec.Real = append([]float64(nil), t.AsFloat64()...)
	case tensor.Complex128:
		data := t.AsComplex128()
		rec.Real = make([]float64, len(data))
		rec.Imag = make([]float64, len(data))
		for i, v := range data {
			rec.Real[i] = real(v)
			rec.Imag[i] = imag(v)
		}
	}
	return rec
}

func (rec tensorRecord) tensor() (*tensor.Dense, error) {
	shape := tensor.Shape(rec.Shape)
	if rec.Imag == nil {
		return tensor.FromSlice(rec.Real, shape)
	}
	if len(rec.Imag) != len(rec.Real) {
		return nil, fmt.Errorf("real and imaginary parts have different lengths (%d vs %d)",
			len(rec.Real), len(rec.Imag))
	}
	data := make([]complex128, len(rec.Real))
	for i := range data {
		data[i] = complex(rec.Real[i], rec.Imag[i])
	}
	return tensor.FromComplex(data, shape)
}

// SaveTensors writes a named tensor collection as a msgpack snapshot.
func SaveTensors(w io.Writer, tensors map[string]*tensor.Dense) error {
	records := make(map[string]tensorRecord, len(tensors))
	for name, t := range tensors {
		records[name] = recordOf(t)
	}
	if err := msgpack.NewEncoder(w).Encode(records); err != nil {
		return fmt.Errorf("netspec: save: %w", err)
	}
	return nil
}

// LoadTensors reads a msgpack snapshot back into named tensors.
func LoadTensors(r io.Reader) (map[string]*tensor.Dense, error) {
	var records map[string]tensorRecord
	if err := msgpack.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("netspec: load: %w", err)
	}
	tensors := make(map[string]*tensor.Dense, len(records))
	for name, rec := range records {
		t, err := rec.tensor()
		if err != nil {
			return nil, fmt.Errorf("netspec: load %q: %w", name, err)
		}
		tensors[name] = t
	}
	return tensors, nil
}

// SaveNetwork snapshots every node tensor of a network by node name.
func SaveNetwork(w io.Writer, nw *network.Network) error {
	tensors := make(map[string]*tensor.Dense, nw.Size())
	for _, n := range nw.Nodes() {
		tensors[n.Name()] = n.Tensor()
	}
	return SaveTensors(w, tensors)
}

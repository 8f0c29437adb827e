// Copyright 2026 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense tensors and generalized contraction for the
// weft tensor-network library.
//
// # Overview
//
// Tensors are the payloads of tensor-network nodes. This package provides:
//   - Dense: a row-major in-memory tensor (Float64 or Complex128)
//   - Creation functions (Zeros, Ones, Eye, Randn, FromSlice, ...)
//   - Contract / Trace: Einstein-summation contraction over paired axes
//   - Backend: the interface compute devices implement
//
// # Basic Usage
//
//	import (
//	    "github.com/weft-ml/weft/backend/cpu"
//	    "github.com/weft-ml/weft/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a := tensor.Eye(2, tensor.Float64)
//	    b := tensor.Randn(tensor.Shape{2, 3}, tensor.Float64)
//
//	    // Contract axis 1 of a with axis 0 of b: an ordinary matrix product.
//	    c, err := tensor.Contract(backend, a, b, []int{1}, []int{0})
//	    _ = c
//	    _ = err
//	}
//
// # Axis Order
//
// The result of Contract carries the first operand's uncontracted axes in
// their original order, followed by the second operand's uncontracted axes
// in their original order. All higher-level axis bookkeeping in the network
// package is defined in terms of this rule.
//
// # Data Types
//
//   - Float64 for classical (real-valued) networks
//   - Complex128 for quantum-state amplitudes
package tensor

// Copyright 2026 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/weft-ml/weft/internal/backend/cpu"
	"github.com/weft-ml/weft/tensor"
)

// Backend is the pure-Go CPU backend.
//
// It implements every primitive the contraction engine needs; matrix
// multiplication parallelizes over output rows internally, which is
// invisible to callers.
type Backend = internalcpu.Backend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/weft-ml/weft/backend/cpu"
//	    "github.com/weft-ml/weft/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Eye(2, tensor.Float64)
//	    y, _ := tensor.Trace(backend, x, 0, 1)
//	    _ = y
//	}
func New() *Backend {
	return internalcpu.New()
}

// Copyright 2026 The Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/weft-ml/weft/internal/tensor"
)

// Backend defines the interface compute backends must implement: matrix
// multiplication plus the layout operations (Transpose, Reshape) the
// contraction engine is built on, and element-wise Add/Scale.
//
// Implementations:
//   - cpu: pure Go kernels with row-parallel matrix multiplication
type Backend = tensor.Backend

// Copyright 2026 Chisei Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parallel exposes the worker-pool configuration consumed by
// network.Config.
package parallel

import "github.com/nthnn/chisei/internal/parallel"

// Config controls how the engine's per-neuron loops are split across
// goroutines.
type Config = parallel.Config

// DefaultConfig sizes the worker pool from the CPU count.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// Sequential disables parallel execution entirely, which is useful for
// reproducing a fixed accumulation order.
func Sequential() Config {
	return parallel.Sequential()
}

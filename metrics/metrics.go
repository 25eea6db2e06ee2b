// Copyright 2026 Chisei Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics exposes the loss and evaluation primitives.
package metrics

import "github.com/nthnn/chisei/internal/metrics"

// ErrEmpty is returned when a metric is asked to average over zero
// samples.
var ErrEmpty = metrics.ErrEmpty

// MSE returns the mean squared error between a prediction and its
// target.
func MSE(prediction, target []float64) (float64, error) {
	return metrics.MSE(prediction, target)
}

// OutputGradient returns the elementwise squared-error gradient
// 2*(p_i - t_i).
func OutputGradient(prediction, target []float64) ([]float64, error) {
	return metrics.OutputGradient(prediction, target)
}

// ArgMax returns the index of the largest entry.
func ArgMax(v []float64) int {
	return metrics.ArgMax(v)
}

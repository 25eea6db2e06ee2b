// Package metrics provides loss and evaluation primitives for chisei
// networks.
package metrics

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrEmpty is returned when a metric is asked to average over zero samples.
var ErrEmpty = errors.New("metrics: empty collection")

// MSE returns the mean squared error between a prediction and its target,
// (Σ (p_i - t_i)²) / n.
func MSE(prediction, target []float64) (float64, error) {
	if len(prediction) == 0 {
		return 0, ErrEmpty
	}
	if len(prediction) != len(target) {
		return 0, fmt.Errorf("metrics: prediction length %d does not match target length %d",
			len(prediction), len(target))
	}

	d := floats.Distance(prediction, target, 2)
	return d * d / float64(len(prediction)), nil
}

// OutputGradient returns the elementwise gradient of the squared error,
// 2·(p_i - t_i). It is a reusable primitive; the training engine computes
// its own activation-scaled variant inline.
func OutputGradient(prediction, target []float64) ([]float64, error) {
	if len(prediction) != len(target) {
		return nil, fmt.Errorf("metrics: prediction length %d does not match target length %d",
			len(prediction), len(target))
	}

	grad := make([]float64, len(prediction))
	for i, p := range prediction {
		grad[i] = 2 * (p - target[i])
	}
	return grad, nil
}

// ArgMax returns the index of the largest entry, decoding a one-hot or
// score vector to its class index.
func ArgMax(v []float64) int {
	return floats.MaxIdx(v)
}

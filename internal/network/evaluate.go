package network

import (
	"fmt"

	"github.com/nthnn/chisei/internal/metrics"
)

// Accuracy predicts every input and returns the fraction of samples
// whose argmax output index matches the argmax target index (one-hot
// decoding). An empty sample set is an error rather than a division
// by zero.
func (n *Network) Accuracy(inputs, targets [][]float64) (float64, error) {
	if len(inputs) == 0 {
		return 0, fmt.Errorf("network: accuracy over zero samples: %w", metrics.ErrEmpty)
	}
	if len(inputs) != len(targets) {
		return 0, fmt.Errorf("%w: %d inputs, %d targets", ErrShape, len(inputs), len(targets))
	}

	correct := 0
	for s, in := range inputs {
		prediction, err := n.Predict(in)
		if err != nil {
			return 0, err
		}
		if len(targets[s]) == 0 {
			return 0, fmt.Errorf("network: sample %d has empty target: %w", s, metrics.ErrEmpty)
		}
		if metrics.ArgMax(prediction) == metrics.ArgMax(targets[s]) {
			correct++
		}
	}

	return float64(correct) / float64(len(inputs)), nil
}

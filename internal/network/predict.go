package network

import (
	"fmt"

	"github.com/nthnn/chisei/internal/parallel"
)

// Predict runs a forward pass and returns the output layer's activations.
// The input length must equal the first topology entry; the returned
// vector has the length of the last.
func (n *Network) Predict(input []float64) ([]float64, error) {
	if len(input) != n.sizes[0] {
		return nil, fmt.Errorf("%w: input length %d, input layer %d",
			ErrShape, len(input), n.sizes[0])
	}

	current := input
	for l := range n.weights {
		current = n.forwardLayer(l, current)
	}
	return current, nil
}

// forwardLayer computes the activated output of layer l+1 from the
// output of layer l. Destination neurons are independent, so the loop
// is spread across the worker pool; layers themselves stay sequential.
func (n *Network) forwardLayer(l int, in []float64) []float64 {
	out := make([]float64, n.sizes[l+1])

	parallel.For(len(out), n.par, func(j int) {
		sum := n.biases[l][j]
		for i, v := range in {
			sum += v * n.weights[l][i][j]
		}
		out[j] = n.pair.Fn(sum)
	})

	return out
}

// forwardRecorded runs a full forward pass and returns every layer's
// activated output, with the raw input as layer 0's output. The backward
// pass consumes the whole record.
func (n *Network) forwardRecorded(input []float64) [][]float64 {
	outputs := make([][]float64, len(n.sizes))
	outputs[0] = input

	for l := range n.weights {
		outputs[l+1] = n.forwardLayer(l, outputs[l])
	}
	return outputs
}

package network

import (
	"fmt"

	"github.com/nthnn/chisei/internal/parallel"
	"github.com/nthnn/chisei/internal/vecmath"
)

// Train fits the network to the given samples with plain online
// stochastic gradient descent.
//
// Epochs iterate the full sample set in input order, exactly
// epochs x len(inputs) times: no shuffling, no early stopping, no
// batching. Sample order therefore affects the final parameters.
// Floating-point results may differ by rounding-error magnitude across
// worker counts because the parallel inner sums accumulate in an
// unspecified order.
func (n *Network) Train(inputs, targets [][]float64, learningRate float64, epochs int) error {
	if len(inputs) != len(targets) {
		return fmt.Errorf("%w: %d inputs, %d targets", ErrShape, len(inputs), len(targets))
	}
	last := len(n.sizes) - 1
	for s, in := range inputs {
		if len(in) != n.sizes[0] {
			return fmt.Errorf("%w: sample %d input length %d, input layer %d",
				ErrShape, s, len(in), n.sizes[0])
		}
		if len(targets[s]) != n.sizes[last] {
			return fmt.Errorf("%w: sample %d target length %d, output layer %d",
				ErrShape, s, len(targets[s]), n.sizes[last])
		}
	}
	if !n.pair.OutputDerivative {
		return fmt.Errorf("%w: %v", ErrActivation, n.kind)
	}

	for epoch := 0; epoch < epochs; epoch++ {
		for s := range inputs {
			n.step(inputs[s], targets[s], learningRate)
		}
	}
	return nil
}

// step applies one stochastic gradient descent update for a single
// labeled sample.
func (n *Network) step(input, target []float64, learningRate float64) {
	outputs := n.forwardRecorded(input)

	// grads[l][j] is the error signal of neuron j in layer l+1, the
	// destination layer of weight matrix l.
	grads := make([][]float64, len(n.weights))

	// Output layer error signal. The derivative is evaluated at the
	// activation output, not the pre-activation sum.
	outLayer := len(n.weights) - 1
	outGrad := make([]float64, n.sizes[len(n.sizes)-1])
	final := outputs[len(outputs)-1]
	parallel.For(len(outGrad), n.par, func(j int) {
		outGrad[j] = (final[j] - target[j]) * n.pair.Derivative(final[j])
	})
	grads[outLayer] = outGrad

	// Chain-rule recurrence, output layer toward the first hidden
	// layer. Each layer needs the next layer's gradient, so the outer
	// loop is strictly sequential; the per-neuron sums are not.
	// weights[l+1][j] is the contiguous fan-out row of neuron j, which
	// keeps the inner sum a plain dot product.
	for l := len(n.weights) - 2; l >= 0; l-- {
		grad := make([]float64, n.sizes[l+1])
		next := grads[l+1]
		parallel.For(len(grad), n.par, func(j int) {
			sum := vecmath.Dot(n.weights[l+1][j], next)
			grad[j] = sum * n.pair.Derivative(outputs[l+1][j])
		})
		grads[l] = grad
	}

	// Parameter update. All (layer, i, j) units are disjoint once the
	// whole gradient is known.
	for l := range n.weights {
		grad := grads[l]
		layerOut := outputs[l]

		parallel.For(len(n.weights[l]), n.par, func(i int) {
			row := n.weights[l][i]
			scale := learningRate * layerOut[i]
			for j := range row {
				row[j] -= scale * grad[j]
			}
		})

		bias := n.biases[l]
		for j := range bias {
			bias[j] -= learningRate * grad[j]
		}
	}
}

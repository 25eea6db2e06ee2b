// Package network implements the fully connected feedforward network at
// the core of chisei: parameter storage, forward inference, online
// stochastic gradient descent training, and model persistence.
package network

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nthnn/chisei/internal/activation"
	"github.com/nthnn/chisei/internal/parallel"
)

// Engine errors.
var (
	// ErrTopology reports an invalid layer layout at construction.
	ErrTopology = errors.New("network: invalid topology")
	// ErrShape reports an input or target vector whose length does not
	// match the topology.
	ErrShape = errors.New("network: vector length does not match topology")
	// ErrActivation reports a training attempt with an activation whose
	// derivative is not defined on the activation output. The backward
	// pass only records outputs, so such pairs would produce silently
	// wrong gradients.
	ErrActivation = errors.New("network: activation derivative not defined on output")
)

// Initial weights and biases are drawn from N(0, initStdDev).
const initStdDev = 0.1

// Config describes a network to construct.
type Config struct {
	// Topology lists the neuron count of every layer, input first.
	// It must have at least two entries, all positive.
	Topology []int

	// Activation selects the activation pair applied at every
	// non-input layer.
	Activation activation.Kind

	// Seed fixes the random source used for parameter initialization.
	// Zero selects a high-entropy seed.
	Seed uint64

	// Parallel controls the worker pool for the per-neuron inner
	// loops. The zero value selects parallel.DefaultConfig.
	Parallel parallel.Config
}

// Network is a fully connected feedforward neural network.
//
// A Network is not safe for concurrent use: Train mutates weights and
// biases in place and assumes single-writer access. The only internal
// parallelism is across the disjoint per-neuron units of one layer step.
type Network struct {
	// sizes is the immutable layer topology.
	sizes []int
	// weights[l][i][j] scales the signal from neuron i of layer l into
	// neuron j of layer l+1. Rows are per source neuron.
	weights [][][]float64
	// biases[l][j] is added to neuron j of layer l+1 before activation.
	biases [][]float64

	kind activation.Kind
	pair activation.Pair

	par parallel.Config
}

// New constructs a network with randomly initialized parameters.
//
// Weights and biases are sampled independently from a zero-mean Gaussian
// with standard deviation 0.1. With an explicit Seed the initialization
// is fully deterministic.
func New(cfg Config) (*Network, error) {
	if len(cfg.Topology) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 layers, got %d", ErrTopology, len(cfg.Topology))
	}
	for i, size := range cfg.Topology {
		if size <= 0 {
			return nil, fmt.Errorf("%w: layer %d has size %d", ErrTopology, i, size)
		}
	}

	pair, err := activation.Lookup(cfg.Activation)
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = entropySeed()
	}
	dist := distuv.Normal{Mu: 0, Sigma: initStdDev, Src: xrand.NewSource(seed)}

	n := &Network{
		sizes:   append([]int(nil), cfg.Topology...),
		weights: make([][][]float64, len(cfg.Topology)-1),
		biases:  make([][]float64, len(cfg.Topology)-1),
		kind:    cfg.Activation,
		pair:    pair,
		par:     cfg.Parallel,
	}
	if n.par == (parallel.Config{}) {
		n.par = parallel.DefaultConfig()
	}

	for l := range n.weights {
		in, out := n.sizes[l], n.sizes[l+1]

		matrix := make([][]float64, in)
		for i := range matrix {
			row := make([]float64, out)
			for j := range row {
				row[j] = dist.Rand()
			}
			matrix[i] = row
		}
		n.weights[l] = matrix

		bias := make([]float64, out)
		for j := range bias {
			bias[j] = dist.Rand()
		}
		n.biases[l] = bias
	}

	return n, nil
}

// Copy returns an independent network with identical parameter values.
// The activation functions are stateless and stay shared.
func (n *Network) Copy() *Network {
	dup := &Network{
		sizes:   append([]int(nil), n.sizes...),
		weights: make([][][]float64, len(n.weights)),
		biases:  make([][]float64, len(n.biases)),
		kind:    n.kind,
		pair:    n.pair,
		par:     n.par,
	}
	for l, matrix := range n.weights {
		dup.weights[l] = make([][]float64, len(matrix))
		for i, row := range matrix {
			dup.weights[l][i] = append([]float64(nil), row...)
		}
	}
	for l, bias := range n.biases {
		dup.biases[l] = append([]float64(nil), bias...)
	}
	return dup
}

// Topology returns a copy of the layer sizes.
func (n *Network) Topology() []int {
	return append([]int(nil), n.sizes...)
}

// Activation returns the activation kind the network was built with.
func (n *Network) Activation() activation.Kind {
	return n.kind
}

// entropySeed draws a seed from the operating system's entropy source,
// which uses hardware randomness where the CPU provides it. It falls
// back to the wall clock when that source is unavailable.
func entropySeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	seed := binary.LittleEndian.Uint64(buf[:])
	if seed == 0 {
		seed = 1
	}
	return seed
}

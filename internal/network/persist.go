package network

import (
	"fmt"

	"github.com/nthnn/chisei/internal/activation"
	"github.com/nthnn/chisei/internal/parallel"
	"github.com/nthnn/chisei/internal/serialization"
)

// Save writes the topology and parameters to path in the .chisei
// format, appending the extension when absent. The format does not
// record the activation kind.
func (n *Network) Save(path string) error {
	return serialization.WriteFile(path, n.sizes, n.weights, n.biases)
}

// Load reads a model saved by Save and attaches the sigmoid activation
// pair, the historical default of the format. Callers that saved a
// network built with a different activation must use LoadWithActivation
// or predictions will be numerically wrong even though loading succeeds.
func Load(path string) (*Network, error) {
	return LoadWithActivation(path, activation.Sigmoid)
}

// LoadWithActivation reads a model saved by Save and attaches the given
// activation kind. On any format or I/O failure no network is returned.
func LoadWithActivation(path string, kind activation.Kind) (*Network, error) {
	pair, err := activation.Lookup(kind)
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}

	sizes, weights, biases, err := serialization.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &Network{
		sizes:   sizes,
		weights: weights,
		biases:  biases,
		kind:    kind,
		pair:    pair,
		par:     parallel.DefaultConfig(),
	}, nil
}

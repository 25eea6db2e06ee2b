// Package activation provides the closed set of activation functions
// supported by chisei networks.
//
// Each activation is identified by a Kind and resolved through a dispatch
// table to a Pair holding the forward function and its derivative. The
// training engine evaluates derivatives at the activation's own output
// value, so a Pair is only usable for training when its derivative is
// expressible in terms of that output (OutputDerivative reports this).
package activation

import (
	"fmt"
	"math"
)

// Kind identifies one of the supported activation functions.
type Kind int

const (
	// Sigmoid is the logistic function 1/(1+exp(-x)).
	Sigmoid Kind = iota
	// Tanh is the hyperbolic tangent.
	Tanh
	// ReLU is the rectified linear unit max(0, x).
	//
	// Its derivative is defined on the raw pre-activation sum, not on the
	// activation output, so ReLU networks can be constructed for inference
	// but are rejected by the training engine.
	ReLU
)

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Sigmoid:
		return "sigmoid"
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindFromString resolves a canonical name to its Kind.
func KindFromString(s string) (Kind, error) {
	switch s {
	case "sigmoid":
		return Sigmoid, nil
	case "tanh":
		return Tanh, nil
	case "relu":
		return ReLU, nil
	default:
		return 0, fmt.Errorf("unknown activation %q", s)
	}
}

// Pair bundles an activation function with its derivative.
//
// When OutputDerivative is true, Derivative takes the activation output
// y = Fn(x) rather than the raw input x. The backward pass only records
// activation outputs, so training requires OutputDerivative pairs.
type Pair struct {
	Fn               func(float64) float64
	Derivative       func(float64) float64
	OutputDerivative bool
}

var table = map[Kind]Pair{
	Sigmoid: {
		Fn:               func(x float64) float64 { return 1.0 / (1.0 + math.Exp(-x)) },
		Derivative:       func(y float64) float64 { return y * (1.0 - y) },
		OutputDerivative: true,
	},
	Tanh: {
		Fn:               math.Tanh,
		Derivative:       func(y float64) float64 { return 1.0 - y*y },
		OutputDerivative: true,
	},
	ReLU: {
		Fn: func(x float64) float64 {
			if x > 0 {
				return x
			}
			return 0
		},
		Derivative: func(x float64) float64 {
			if x > 0 {
				return 1
			}
			return 0
		},
		OutputDerivative: false,
	},
}

// Lookup returns the Pair registered for the given kind.
func Lookup(k Kind) (Pair, error) {
	p, ok := table[k]
	if !ok {
		return Pair{}, fmt.Errorf("unknown activation kind %v", k)
	}
	return p, nil
}

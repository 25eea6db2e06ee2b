// Copyright 2026 Chisei Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package activation exposes the closed set of activation kinds a
// chisei network can be built with.
package activation

import "github.com/nthnn/chisei/internal/activation"

// Kind identifies a supported activation function.
type Kind = activation.Kind

// Supported kinds. Sigmoid and Tanh have derivatives expressed in terms
// of the activation output and support training; ReLU is inference-only.
const (
	Sigmoid = activation.Sigmoid
	Tanh    = activation.Tanh
	ReLU    = activation.ReLU
)

// Pair bundles an activation function with its derivative.
type Pair = activation.Pair

// Lookup returns the Pair registered for a kind.
func Lookup(k Kind) (Pair, error) {
	return activation.Lookup(k)
}

// KindFromString resolves a canonical name ("sigmoid", "tanh", "relu")
// to its Kind.
func KindFromString(s string) (Kind, error) {
	return activation.KindFromString(s)
}

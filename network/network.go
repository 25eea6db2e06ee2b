// Copyright 2026 Chisei Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package network is the public surface of the chisei feedforward
// network engine.
//
// Example:
//
//	net, err := network.New(network.Config{
//	    Topology:   []int{2, 4, 1},
//	    Activation: activation.Sigmoid,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = net.Train(inputs, targets, 0.1, 10000)
//	out, err := net.Predict([]float64{0, 1})
//	err = net.Save("xnor") // writes xnor.chisei
package network

import (
	"github.com/nthnn/chisei/internal/activation"
	"github.com/nthnn/chisei/internal/network"
	"github.com/nthnn/chisei/internal/serialization"
)

// Network is a fully connected feedforward neural network.
type Network = network.Network

// Config describes a network to construct.
type Config = network.Config

// New constructs a network with Gaussian-initialized parameters.
func New(cfg Config) (*Network, error) {
	return network.New(cfg)
}

// Load reads a saved model and attaches the default sigmoid activation
// pair. The on-disk format does not record which activation was used at
// save time; use LoadWithActivation when it was not sigmoid.
func Load(path string) (*Network, error) {
	return network.Load(path)
}

// LoadWithActivation reads a saved model and attaches the given
// activation kind.
func LoadWithActivation(path string, kind activation.Kind) (*Network, error) {
	return network.LoadWithActivation(path, kind)
}

// Ext is the conventional model file extension appended by Save.
const Ext = serialization.Ext

// Engine and codec errors, matchable with errors.Is.
var (
	ErrTopology     = network.ErrTopology
	ErrShape        = network.ErrShape
	ErrActivation   = network.ErrActivation
	ErrInvalidMagic = serialization.ErrInvalidMagic
	ErrTruncated    = serialization.ErrTruncated
	ErrBadTopology  = serialization.ErrBadTopology
)

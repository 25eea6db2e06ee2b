// Package serialization implements the .chisei binary model format.
//
// The format is interoperability-locked: magic bytes, field order and
// native float64 encoding must match existing saved models exactly.
//
//	Format Structure:
//	  [2 bytes: Magic "CS"]
//	  [8 bytes: Layer count N (uint64 LE)]
//	  [N x 8 bytes: Layer sizes (uint64 LE)]
//	  [N-1 weight matrices: row-major per source neuron, float64 LE]
//	  [N-1 bias vectors: float64 LE]
//
// The activation kind is not part of the format; callers are responsible
// for matching the activation used at save time when loading.
//
// Example usage:
//
//	// Save
//	err := serialization.WriteFile("model", sizes, weights, biases) // writes model.chisei
//
//	// Load
//	sizes, weights, biases, err := serialization.ReadFile("model.chisei")
package serialization

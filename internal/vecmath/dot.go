// Package vecmath provides the dot-product kernel used by the training
// engine's backward pass.
//
// Two interchangeable strategies sit behind the Dot variable: a scalar
// reference path and a four-accumulator unrolled path for CPUs with FMA
// support, where independent accumulator chains let the hardware overlap
// multiply-add latencies. The strategy is chosen once at startup from CPU
// capability detection; the scalar path is the always-correct reference
// and the unrolled path is validated against it in tests.
package vecmath

import (
	"github.com/klauspost/cpuid/v2"
	"gonum.org/v1/gonum/floats"
)

// Dot computes the inner product of a and b. Both slices must have the
// same length. The accumulation order depends on the selected strategy,
// so results may differ from the reference by rounding-error magnitude.
var Dot func(a, b []float64) float64

func init() {
	if cpuid.CPU.Supports(cpuid.AVX2, cpuid.FMA3) {
		Dot = dotUnrolled
	} else {
		Dot = DotScalar
	}
}

// DotScalar is the sequential reference implementation.
func DotScalar(a, b []float64) float64 {
	return floats.Dot(a, b)
}

func dotUnrolled(a, b []float64) float64 {
	var s0, s1, s2, s3 float64

	n := len(a) &^ 3
	for i := 0; i < n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for i := n; i < len(a); i++ {
		s0 += a[i] * b[i]
	}

	return (s0 + s1) + (s2 + s3)
}

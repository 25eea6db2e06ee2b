package vecmath

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestDotScalarKnownValues(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5, 6}
	if got := DotScalar(a, b); got != 32 {
		t.Errorf("DotScalar = %v, want 32", got)
	}
}

func TestDotEmpty(t *testing.T) {
	if got := dotUnrolled(nil, nil); got != 0 {
		t.Errorf("dotUnrolled(nil, nil) = %v, want 0", got)
	}
}

// The unrolled strategy must agree with the scalar reference to within
// accumulation-order rounding error for every length class, including
// the remainder lengths that exercise the tail loop.
func TestDotUnrolledMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 16, 31, 64, 1000, 1003} {
		a := make([]float64, n)
		b := make([]float64, n)
		for i := range a {
			a[i] = rng.NormFloat64()
			b[i] = rng.NormFloat64()
		}

		want := DotScalar(a, b)
		got := dotUnrolled(a, b)

		tol := 1e-9 * math.Max(1, math.Abs(want))
		if math.Abs(got-want) > tol {
			t.Errorf("n=%d: unrolled %v, scalar %v", n, got, want)
		}
	}
}

func TestDotSelected(t *testing.T) {
	if Dot == nil {
		t.Fatal("no dot strategy selected at init")
	}
	if got := Dot([]float64{1, 2}, []float64{3, 4}); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}
}

func BenchmarkDot(b *testing.B) {
	const n = 256
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
		y[i] = float64(n - i)
	}

	b.Run("scalar", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			DotScalar(x, y)
		}
	})
	b.Run("unrolled", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dotUnrolled(x, y)
		}
	})
}

package activation

import (
	"math"
	"testing"
)

func TestSigmoidValues(t *testing.T) {
	p, err := Lookup(Sigmoid)
	if err != nil {
		t.Fatalf("Lookup(Sigmoid) failed: %v", err)
	}

	cases := []struct {
		in, want float64
	}{
		{0.0, 0.5},
		{2.0, 0.8807970779778823},
		{-2.0, 0.11920292202211755},
	}
	for _, c := range cases {
		got := p.Fn(c.in)
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("sigmoid(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSigmoidDerivativeInOutputForm(t *testing.T) {
	p, _ := Lookup(Sigmoid)
	if !p.OutputDerivative {
		t.Fatal("sigmoid derivative must be expressed in output form")
	}

	// d/dx sigmoid(x) == y*(1-y) where y = sigmoid(x).
	for _, x := range []float64{-3, -1, 0, 0.5, 2} {
		y := p.Fn(x)
		analytic := p.Derivative(y)

		h := 1e-6
		numeric := (p.Fn(x+h) - p.Fn(x-h)) / (2 * h)
		if math.Abs(analytic-numeric) > 1e-6 {
			t.Errorf("sigmoid'(%v): analytic %v, numeric %v", x, analytic, numeric)
		}
	}
}

func TestTanhDerivativeInOutputForm(t *testing.T) {
	p, _ := Lookup(Tanh)
	if !p.OutputDerivative {
		t.Fatal("tanh derivative must be expressed in output form")
	}

	for _, x := range []float64{-2, -0.5, 0, 1, 3} {
		y := p.Fn(x)
		analytic := p.Derivative(y)

		h := 1e-6
		numeric := (p.Fn(x+h) - p.Fn(x-h)) / (2 * h)
		if math.Abs(analytic-numeric) > 1e-6 {
			t.Errorf("tanh'(%v): analytic %v, numeric %v", x, analytic, numeric)
		}
	}
}

func TestReLU(t *testing.T) {
	p, _ := Lookup(ReLU)
	if p.OutputDerivative {
		t.Fatal("relu derivative is defined on the raw input, not the output")
	}
	if got := p.Fn(-1.5); got != 0 {
		t.Errorf("relu(-1.5) = %v, want 0", got)
	}
	if got := p.Fn(1.5); got != 1.5 {
		t.Errorf("relu(1.5) = %v, want 1.5", got)
	}
	if got := p.Derivative(2.0); got != 1 {
		t.Errorf("relu'(2.0) = %v, want 1", got)
	}
	if got := p.Derivative(-2.0); got != 0 {
		t.Errorf("relu'(-2.0) = %v, want 0", got)
	}
}

func TestKindRoundTrip(t *testing.T) {
	for _, k := range []Kind{Sigmoid, Tanh, ReLU} {
		got, err := KindFromString(k.String())
		if err != nil {
			t.Fatalf("KindFromString(%q) failed: %v", k.String(), err)
		}
		if got != k {
			t.Errorf("round trip %v -> %q -> %v", k, k.String(), got)
		}
	}

	if _, err := KindFromString("softmax"); err == nil {
		t.Error("expected error for unknown activation name")
	}
}

func TestLookupUnknownKind(t *testing.T) {
	if _, err := Lookup(Kind(42)); err == nil {
		t.Error("expected error for unknown kind")
	}
}

package diffusion

import (
	"errors"
	"math"
	"testing"
)

// TestMarginalComplementarity checks that the two choice probabilities
// sum to one across a parameter grid.
func TestMarginalComplementarity(t *testing.T) {
	for _, b := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		for _, a := range []float64{0.5, 1.0, 2.0, 4.0} {
			for _, v := range []float64{-2.0, -0.1, 0.0, 0.1, 2.0} {
				p := Params{StartFraction: b, BarrierSeparation: a, DriftRate: v}
				lower, err := p.Marginal(0)
				if err != nil {
					t.Fatalf("Marginal failed. Error: %v", err)
				}
				upper, err := p.Marginal(1)
				if err != nil {
					t.Fatalf("Marginal failed. Error: %v", err)
				}
				if math.Abs(lower+upper-1.0) > 1e-12 {
					t.Errorf("marginals of b=%v a=%v v=%v sum to %v", b, a, v, lower+upper)
				}
			}
		}
	}
}

// TestMarginalReference checks the closed form against pinned values.
func TestMarginalReference(t *testing.T) {
	p := Params{StartFraction: 0.5, BarrierSeparation: 2.0, DriftRate: 1.0}
	got, err := p.Marginal(1)
	if err != nil {
		t.Fatalf("Marginal failed. Error: %v", err)
	}
	if math.Abs(got-0.8807970779778824) > 1e-12 {
		t.Errorf("Marginal(1) = %v; want 0.8807970779778824", got)
	}

	p = Params{StartFraction: 0.5, BarrierSeparation: 2.0, DriftRate: 0.1}
	got, err = p.Marginal(1)
	if err != nil {
		t.Fatalf("Marginal failed. Error: %v", err)
	}
	if math.Abs(got-0.5498339973124781) > 1e-12 {
		t.Errorf("Marginal(1) = %v; want 0.5498339973124781", got)
	}
}

// TestMarginalZeroDriftLimit checks the special-cased zero-drift path
// and its agreement with a vanishing but non-zero drift.
func TestMarginalZeroDriftLimit(t *testing.T) {
	exact := Params{StartFraction: 0.5, BarrierSeparation: 2.0, DriftRate: 0.0}
	got, err := exact.Marginal(1)
	if err != nil {
		t.Fatalf("Marginal failed. Error: %v", err)
	}
	if got != 0.5 {
		t.Errorf("zero-drift marginal = %v; want exactly 0.5", got)
	}

	near := Params{StartFraction: 0.5, BarrierSeparation: 2.0, DriftRate: 1e-8}
	got, err = near.Marginal(1)
	if err != nil {
		t.Fatalf("Marginal failed. Error: %v", err)
	}
	if math.Abs(got-0.5) > 1e-6 {
		t.Errorf("near-zero-drift marginal = %v; want 0.5 within 1e-6", got)
	}
}

// TestMarginalInvalidInput checks the rejection of out-of-domain queries.
func TestMarginalInvalidInput(t *testing.T) {
	p := Params{StartFraction: 0.5, BarrierSeparation: 2.0, DriftRate: 1.0}
	if _, err := p.Marginal(-1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("choice out of range: expected ErrInvalidParameter, got %v", err)
	}
	bad := Params{StartFraction: 0.5, BarrierSeparation: -1.0, DriftRate: 1.0}
	if _, err := bad.Marginal(0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative barrier separation: expected ErrInvalidParameter, got %v", err)
	}
}

package diffusion

import (
	"errors"
	"fmt"
)

// Package diffusion provides the numerical core of the drift-diffusion
// model: a random-walk trajectory sampler, a truncated-series evaluator
// for the bivariate first-passage density, and the closed-form choice
// marginal.

// Error kinds of the package. All errors are reported synchronously;
// a call either yields a complete value or an error, never both.
var (
	// ErrInvalidParameter reports an out-of-domain model or query parameter.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrTimeout reports a random walk that exceeded its step bound
	// before reaching a barrier. Retryable with a larger bound.
	ErrTimeout = errors.New("step bound exceeded")
)

// Params are the parameters of a drift-diffusion process with absorbing
// barriers at zero and BarrierSeparation. Params is an immutable value
// type; all operations are safe to call concurrently.
type Params struct {
	StartFraction     float64 // relative starting point b in (0,1)
	BarrierSeparation float64 // distance a between the barriers, a > 0
	DriftRate         float64 // drift rate v of the evidence accumulation
}

// Check validates the parameter domain.
func (p Params) Check() error {
	if !(p.StartFraction > 0.0 && p.StartFraction < 1.0) {
		return fmt.Errorf("%w: starting fraction (%v) must be in (0,1)", ErrInvalidParameter, p.StartFraction)
	}
	if !(p.BarrierSeparation > 0.0) {
		return fmt.Errorf("%w: barrier separation (%v) must be positive", ErrInvalidParameter, p.BarrierSeparation)
	}
	return nil
}

// checkChoice validates a barrier label.
func checkChoice(choice int) error {
	if choice != 0 && choice != 1 {
		return fmt.Errorf("%w: choice (%v) must be 0 or 1", ErrInvalidParameter, choice)
	}
	return nil
}

// reflect relabels the two barriers. The process (b, a, v) hitting the
// upper barrier is distributed as the process (1-b, a, -v) hitting the
// lower one.
func (p Params) reflect() Params {
	return Params{
		StartFraction:     1.0 - p.StartFraction,
		BarrierSeparation: p.BarrierSeparation,
		DriftRate:         -p.DriftRate,
	}
}

package diffusion

import (
	"fmt"

	"gonum.org/v1/gonum/integrate"
)

// IntegrateDensity approximates the integral of the first-passage
// density over (0, horizon] with a trapezoidal rule on an n-point
// equidistant grid. As the horizon grows the integral converges to the
// choice marginal, which makes this the numerical consistency check
// between the series evaluator and the closed form.
func (p Params) IntegrateDensity(choice int, horizon float64, n int) (float64, error) {
	if !(horizon > 0.0) {
		return 0.0, fmt.Errorf("%w: horizon (%v) must be positive", ErrInvalidParameter, horizon)
	}
	if n < 2 {
		return 0.0, fmt.Errorf("%w: grid size (%v) must be at least 2", ErrInvalidParameter, n)
	}

	// grid starts one step after zero; the density vanishes at t -> 0
	h := horizon / float64(n)
	xs := make([]float64, n)
	fs := make([]float64, n)
	for i := 0; i < n; i++ {
		t := h * float64(i+1)
		d, err := p.Density(t, choice)
		if err != nil {
			return 0.0, err
		}
		xs[i] = t
		fs[i] = d
	}
	return integrate.Trapezoidal(xs, fs), nil
}

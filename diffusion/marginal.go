package diffusion

import "math"

// zeroDriftEps is the drift magnitude below which the marginal is
// evaluated at its zero-drift limit. The closed-form ratio degenerates
// to 0/0 as the drift vanishes.
const zeroDriftEps = 1e-9

// Marginal returns the probability that the process is absorbed at the
// barrier with the given label, marginalized over the passage time.
func (p Params) Marginal(choice int) (float64, error) {
	if err := p.Check(); err != nil {
		return 0.0, err
	}
	if err := checkChoice(choice); err != nil {
		return 0.0, err
	}

	// the closed form gives the upper-barrier probability; relabel the
	// barriers for a lower-barrier query
	if choice == 0 {
		p = p.reflect()
	}
	b := p.StartFraction
	a := p.BarrierSeparation
	v := p.DriftRate

	if math.Abs(v) < zeroDriftEps {
		// zero-drift limit of the ratio below
		return b, nil
	}
	return (math.Exp(-2.0*a*b*v) - 1.0) / (math.Exp(-2.0*a*v) - 1.0), nil
}

package inference

import (
	"math"

	"github.com/decision-lab/driftkit/diffusion"
)

// LogLikelihood evaluates the joint log-likelihood of the observations
// under barrier separation alpha, starting fraction beta, and drift
// rate delta. Choice-0 observations enter through the reflected
// parameterisation (1-beta, -delta) of the two-barrier symmetry, which
// the density evaluator applies internally via the choice label.
//
// Each response time is shifted by the non-decision offset tau before
// evaluation. A shifted time at or below zero, or a vanishing density,
// makes the parameterisation impossible for the data: the result is
// -Inf rather than an error, so a sampler can reject the proposal.
func LogLikelihood(alpha float64, beta float64, delta float64, obs *Observations) (float64, error) {
	if err := obs.Check(); err != nil {
		return 0.0, err
	}
	p := diffusion.Params{
		StartFraction:     beta,
		BarrierSeparation: alpha,
		DriftRate:         delta,
	}
	if err := p.Check(); err != nil {
		return 0.0, err
	}

	ll := 0.0
	for i := 0; i < obs.N; i++ {
		t := obs.Times[i] - obs.Tau
		if t <= 0.0 {
			return math.Inf(-1), nil
		}
		d, err := p.Density(t, obs.Choices[i])
		if err != nil {
			return 0.0, err
		}
		if d <= 0.0 {
			return math.Inf(-1), nil
		}
		ll += math.Log(d)
	}
	return ll, nil
}

package inference

import (
	"math"
	"testing"

	"github.com/decision-lab/driftkit/diffusion"
	"github.com/stretchr/testify/require"
)

func TestLogLikelihoodMatchesPointwiseDensities(t *testing.T) {
	require := require.New(t)
	obs := validObservations()

	alpha, beta, delta := 2.0, 0.5, 1.0
	got, err := LogLikelihood(alpha, beta, delta, obs)
	require.NoError(err)

	p := diffusion.Params{StartFraction: beta, BarrierSeparation: alpha, DriftRate: delta}
	want := 0.0
	for i := 0; i < obs.N; i++ {
		d, err := p.Density(obs.Times[i]-obs.Tau, obs.Choices[i])
		require.NoError(err)
		want += math.Log(d)
	}
	require.InDelta(want, got, 1e-12)
}

func TestLogLikelihoodImpossibleData(t *testing.T) {
	require := require.New(t)

	// a response faster than the non-decision offset has no density
	obs := validObservations()
	obs.Times[2] = 0.1
	got, err := LogLikelihood(2.0, 0.5, 1.0, obs)
	require.NoError(err)
	require.True(math.IsInf(got, -1))
}

func TestLogLikelihoodInvalidInput(t *testing.T) {
	require := require.New(t)
	obs := validObservations()

	_, err := LogLikelihood(-1.0, 0.5, 1.0, obs)
	require.ErrorIs(err, diffusion.ErrInvalidParameter)

	_, err = LogLikelihood(2.0, 1.5, 1.0, obs)
	require.ErrorIs(err, diffusion.ErrInvalidParameter)

	bad := validObservations()
	bad.Choices[1] = 7
	_, err = LogLikelihood(2.0, 0.5, 1.0, bad)
	require.Error(err)
}

package utils

import (
	"github.com/decision-lab/driftkit/diffusion"
	"github.com/urfave/cli/v2"
)

var (
	StartFractionFlag = cli.Float64Flag{
		Name:    "start-fraction",
		Aliases: []string{"b"},
		Usage:   "relative starting point of the process, in (0,1)",
		Value:   0.5,
	}
	BarrierSeparationFlag = cli.Float64Flag{
		Name:    "barrier-separation",
		Aliases: []string{"a"},
		Usage:   "distance between the two absorbing barriers",
		Value:   2.0,
	}
	DriftRateFlag = cli.Float64Flag{
		Name:    "drift-rate",
		Aliases: []string{"v"},
		Usage:   "mean rate of evidence accumulation per unit time",
		Value:   1.0,
	}
	NumSamplesFlag = cli.IntFlag{
		Name:    "samples",
		Aliases: []string{"n"},
		Usage:   "number of trajectories to simulate",
		Value:   1000,
	}
	StepSizeFlag = cli.Float64Flag{
		Name:  "step-size",
		Usage: "time discretization step of the random walk",
		Value: diffusion.DefaultStepSize,
	}
	MaxStepsFlag = cli.IntFlag{
		Name:  "max-steps",
		Usage: "abort a walk that has not reached a barrier after this many steps",
		Value: diffusion.DefaultMaxSteps,
	}
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "set the seed of the random generator (negative for a time-based seed)",
		Value: -1,
	}
	TruncationEpsFlag = cli.Float64Flag{
		Name:  "truncation-eps",
		Usage: "truncation-error budget of the series density evaluator",
		Value: diffusion.DefaultEps,
	}
	TimeFromFlag = cli.Float64Flag{
		Name:  "time-from",
		Usage: "first point of the density time grid",
		Value: 0.05,
	}
	TimeToFlag = cli.Float64Flag{
		Name:  "time-to",
		Usage: "last point of the density time grid",
		Value: 5.0,
	}
	GridPointsFlag = cli.IntFlag{
		Name:  "grid-points",
		Usage: "number of points of the density time grid",
		Value: 100,
	}
	HorizonFlag = cli.Float64Flag{
		Name:  "horizon",
		Usage: "upper integration limit for the density-vs-marginal check",
		Value: 60.0,
	}
	ToleranceFlag = cli.Float64Flag{
		Name:  "tolerance",
		Usage: "maximum accepted deviation between integrated density and marginal",
		Value: 1e-2,
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write results in JSON format to this file",
	}
	QuietFlag = cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "disable progress reporting",
		Value:   false,
	}
)

package utils

import (
	"time"

	"github.com/decision-lab/driftkit/diffusion"
	"github.com/decision-lab/driftkit/logger"
	"github.com/urfave/cli/v2"
)

// Config gathers all command-line parameters of the driftkit tools.
type Config struct {
	StartFraction     float64 // relative starting point b
	BarrierSeparation float64 // inter-barrier distance a
	DriftRate         float64 // drift rate v
	NumSamples        int     // number of trajectories for simulation
	StepSize          float64 // random-walk time step
	MaxSteps          int     // random-walk step bound
	RandomSeed        int64   // seed of the random generator
	TruncationEps     float64 // truncation budget of the density evaluator
	TimeFrom          float64 // first point of the density grid
	TimeTo            float64 // last point of the density grid
	GridPoints        int     // number of density grid points
	Horizon           float64 // integration horizon of the validation
	Tolerance         float64 // accepted integration deviation
	Output            string  // JSON output path, empty for none
	Quiet             bool    // disable progress reporting
	LogLevel          string  // level of the logging
}

// NewConfig reads the configuration from the command-line context.
// A negative random seed is replaced by a time-based one.
func NewConfig(ctx *cli.Context) *Config {
	cfg := &Config{
		StartFraction:     ctx.Float64(StartFractionFlag.Name),
		BarrierSeparation: ctx.Float64(BarrierSeparationFlag.Name),
		DriftRate:         ctx.Float64(DriftRateFlag.Name),
		NumSamples:        ctx.Int(NumSamplesFlag.Name),
		StepSize:          ctx.Float64(StepSizeFlag.Name),
		MaxSteps:          ctx.Int(MaxStepsFlag.Name),
		RandomSeed:        ctx.Int64(RandomSeedFlag.Name),
		TruncationEps:     ctx.Float64(TruncationEpsFlag.Name),
		TimeFrom:          ctx.Float64(TimeFromFlag.Name),
		TimeTo:            ctx.Float64(TimeToFlag.Name),
		GridPoints:        ctx.Int(GridPointsFlag.Name),
		Horizon:           ctx.Float64(HorizonFlag.Name),
		Tolerance:         ctx.Float64(ToleranceFlag.Name),
		Output:            ctx.Path(OutputFlag.Name),
		Quiet:             ctx.Bool(QuietFlag.Name),
		LogLevel:          ctx.String(logger.LogLevelFlag.Name),
	}
	if cfg.RandomSeed < 0 {
		cfg.RandomSeed = time.Now().UnixNano()
	}
	return cfg
}

// Params returns the model parameters of the configuration.
func (cfg *Config) Params() diffusion.Params {
	return diffusion.Params{
		StartFraction:     cfg.StartFraction,
		BarrierSeparation: cfg.BarrierSeparation,
		DriftRate:         cfg.DriftRate,
	}
}

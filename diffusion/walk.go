package diffusion

import (
	"fmt"
	"math"
	"math/rand"
)

// Simulation constants
const (
	DefaultStepSize = 1e-4       // default discretization time step of the walk
	DefaultMaxSteps = 50_000_000 // default safety bound for the walk loop
)

// Trajectory is one simulated first passage of the diffusion process.
// It is produced once by a Walker and never mutated afterwards.
type Trajectory struct {
	Choice int     `json:"choice"` // 1 for the upper barrier, 0 for the lower
	Time   float64 `json:"time"`   // first-passage time
}

// Walker produces random-walk approximations of diffusion trajectories.
// The walk takes steps of size sqrt(stepSize) on a time grid of width
// stepSize; as stepSize tends to zero the walk converges to the
// diffusion process.
//
// A Walker draws from its own random generator and is not safe for
// concurrent use; concurrent simulations use one Walker per goroutine
// with independently seeded generators.
type Walker struct {
	rg       *rand.Rand // random generator for sampling
	stepSize float64    // time discretization step
	maxSteps int        // step bound before a walk is aborted
}

// NewWalker creates a walker with the default step size and step bound.
func NewWalker(rg *rand.Rand) *Walker {
	return NewWalkerWithStep(rg, DefaultStepSize, DefaultMaxSteps)
}

// NewWalkerWithStep creates a walker with an explicit step size and step bound.
func NewWalkerWithStep(rg *rand.Rand, stepSize float64, maxSteps int) *Walker {
	return &Walker{
		rg:       rg,
		stepSize: stepSize,
		maxSteps: maxSteps,
	}
}

// Sample simulates a single trajectory until a barrier is reached.
//
// The up-move probability is 0.5*(1 + v*sqrt(stepSize)) and is not
// clamped to [0,1]; the approximation method assumes a step size small
// enough for the given drift to keep it a probability. A drift with
// |v| >= 1/sqrt(stepSize) degenerates the walk to always-up or
// always-down.
func (w *Walker) Sample(p Params) (Trajectory, error) {
	if err := p.Check(); err != nil {
		return Trajectory{}, err
	}
	if !(w.stepSize > 0.0) {
		return Trajectory{}, fmt.Errorf("%w: step size (%v) must be positive", ErrInvalidParameter, w.stepSize)
	}

	delta := math.Sqrt(w.stepSize)
	up := 0.5 * (1.0 + p.DriftRate*delta)
	x := p.BarrierSeparation * p.StartFraction

	tic := 0
	for 0.0 < x && x < p.BarrierSeparation {
		if tic >= w.maxSteps {
			return Trajectory{}, fmt.Errorf("%w: no barrier reached within %v steps", ErrTimeout, w.maxSteps)
		}
		if w.rg.Float64() < up {
			x += delta
		} else {
			x -= delta
		}
		tic++
	}

	choice := 0
	if x > p.BarrierSeparation {
		choice = 1
	}
	return Trajectory{Choice: choice, Time: float64(tic) * w.stepSize}, nil
}

// SampleBatch draws n independent trajectories. The order of the result
// is the generation order and carries no statistical meaning.
func (w *Walker) SampleBatch(n int, p Params) (Batch, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: sample size (%v) must be positive", ErrInvalidParameter, n)
	}
	batch := make(Batch, 0, n)
	for i := 0; i < n; i++ {
		tr, err := w.Sample(p)
		if err != nil {
			return nil, err
		}
		batch = append(batch, tr)
	}
	return batch, nil
}

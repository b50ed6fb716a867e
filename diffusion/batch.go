package diffusion

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Batch is an ordered collection of simulated trajectories. The order
// is the generation order of the draws.
type Batch []Trajectory

// Times returns the passage times of all trajectories absorbed at the
// barrier with the given label, in generation order.
func (batch Batch) Times(choice int) []float64 {
	times := []float64{}
	for _, tr := range batch {
		if tr.Choice == choice {
			times = append(times, tr.Time)
		}
	}
	return times
}

// Proportion returns the empirical fraction of trajectories absorbed at
// the barrier with the given label. For large batches it converges to
// the closed-form choice marginal.
func (batch Batch) Proportion(choice int) float64 {
	if len(batch) == 0 {
		return 0.0
	}
	n := 0
	for _, tr := range batch {
		if tr.Choice == choice {
			n++
		}
	}
	return float64(n) / float64(len(batch))
}

// Summary holds the empirical passage-time statistics of one barrier.
type Summary struct {
	Count      int     // number of trajectories absorbed at the barrier
	Proportion float64 // fraction of the batch absorbed at the barrier
	Mean       float64 // mean passage time
	StdDev     float64 // standard deviation of the passage time
	Median     float64 // empirical median passage time
	Q90        float64 // empirical 90% quantile of the passage time
}

// Summarize computes the empirical summary for the barrier with the
// given label. The time statistics of an empty selection are zero.
func (batch Batch) Summarize(choice int) (Summary, error) {
	if err := checkChoice(choice); err != nil {
		return Summary{}, err
	}
	times := batch.Times(choice)
	s := Summary{
		Count:      len(times),
		Proportion: batch.Proportion(choice),
	}
	if len(times) == 0 {
		return s, nil
	}
	sort.Float64s(times)
	s.Mean = stat.Mean(times, nil)
	s.StdDev = stat.StdDev(times, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, times, nil)
	s.Q90 = stat.Quantile(0.9, stat.Empirical, times, nil)
	return s, nil
}

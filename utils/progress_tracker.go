package utils

import (
	"time"

	"github.com/decision-lab/driftkit/logger"
)

// threshold for reporting simulation progress
const progressThreshold = 10_000

type ProgressTracker struct {
	step   int           // step counter
	target int           // total number of steps
	start  time.Time     // start time
	last   time.Time     // last reported time
	rate   float64       // simulation rate
	log    logger.Logger // message logger
}

// NewProgressTracker creates a new progress tracker for a simulation run.
func NewProgressTracker(target int, log logger.Logger) *ProgressTracker {
	now := time.Now()
	return &ProgressTracker{
		step:   0,
		target: target,
		start:  now,
		last:   now,
		rate:   0.0,
		log:    log,
	}
}

// PrintProgress reports the simulation rate and estimated remaining time
// after each batch of trajectories.
func (pt *ProgressTracker) PrintProgress() {
	pt.step++
	if pt.step%progressThreshold == 0 {
		now := time.Now()
		currentRate := progressThreshold / now.Sub(pt.last).Seconds()
		pt.rate = currentRate*0.1 + pt.rate*0.9
		pt.last = now
		progress := float32(pt.step) / float32(pt.target)
		elapsed := int(now.Sub(pt.start).Seconds())
		eta := int(float64(pt.target-pt.step) / pt.rate)
		pt.log.Infof("\t\tSimulating ... %8.1f trajectories/s, %5.1f%%, time: %d:%02d, ETA: %d:%02d", currentRate, progress*100, elapsed/60, elapsed%60, eta/60, eta%60)
	}
}

package diffusion

import (
	"errors"
	"math"
	"testing"
)

// TestBatchSummary checks the empirical summary on a hand-built batch.
func TestBatchSummary(t *testing.T) {
	batch := Batch{
		{Choice: 1, Time: 2.0},
		{Choice: 0, Time: 0.4},
		{Choice: 1, Time: 1.0},
		{Choice: 1, Time: 3.0},
	}

	s, err := batch.Summarize(1)
	if err != nil {
		t.Fatalf("Summarize failed. Error: %v", err)
	}
	if s.Count != 3 {
		t.Errorf("expected 3 upper-barrier trajectories, got %v", s.Count)
	}
	if math.Abs(s.Proportion-0.75) > 1e-12 {
		t.Errorf("expected proportion 0.75, got %v", s.Proportion)
	}
	if math.Abs(s.Mean-2.0) > 1e-12 {
		t.Errorf("expected mean 2, got %v", s.Mean)
	}
	if math.Abs(s.StdDev-1.0) > 1e-12 {
		t.Errorf("expected standard deviation 1, got %v", s.StdDev)
	}
	if math.Abs(s.Median-2.0) > 1e-12 {
		t.Errorf("expected median 2, got %v", s.Median)
	}
	if math.Abs(s.Q90-3.0) > 1e-12 {
		t.Errorf("expected 90%% quantile 3, got %v", s.Q90)
	}
}

// TestBatchTimesOrder checks that time selection preserves generation order.
func TestBatchTimesOrder(t *testing.T) {
	batch := Batch{
		{Choice: 0, Time: 0.9},
		{Choice: 1, Time: 0.1},
		{Choice: 0, Time: 0.5},
		{Choice: 0, Time: 0.7},
	}
	times := batch.Times(0)
	want := []float64{0.9, 0.5, 0.7}
	if len(times) != len(want) {
		t.Fatalf("expected %v times, got %v", len(want), len(times))
	}
	for i := range want {
		if times[i] != want[i] {
			t.Errorf("time %v out of order: got %v, want %v", i, times[i], want[i])
		}
	}
}

// TestBatchEmptySelection checks the summary of a barrier nothing hit.
func TestBatchEmptySelection(t *testing.T) {
	batch := Batch{{Choice: 1, Time: 1.0}}
	s, err := batch.Summarize(0)
	if err != nil {
		t.Fatalf("Summarize failed. Error: %v", err)
	}
	if s.Count != 0 || s.Proportion != 0.0 || s.Mean != 0.0 {
		t.Errorf("expected zero summary for empty selection, got %+v", s)
	}
}

// TestBatchInvalidChoice checks the rejection of an invalid barrier label.
func TestBatchInvalidChoice(t *testing.T) {
	batch := Batch{{Choice: 1, Time: 1.0}}
	if _, err := batch.Summarize(3); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

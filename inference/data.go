// Package inference defines the data boundary consumed by an external
// posterior sampler and the first-passage likelihood term evaluated on
// that data. The sampler itself (prior specification, MCMC kernel) is
// an external collaborator; only its fixed input schema lives here.
package inference

import (
	"encoding/json"
	"fmt"
	"os"
)

// Observations is the fixed data record of a binary-decision experiment
// handed to the sampler: n paired response times and choices, the prior
// bounds and scales, and the non-decision time offset.
type Observations struct {
	N       int       `json:"n"`        // number of observations
	Times   []float64 `json:"y"`        // response times, non-negative
	Choices []int     `json:"z"`        // choices, 0 or 1
	AlphaUB float64   `json:"alpha_ub"` // upper bound of the uniform prior on the barrier separation
	Sigma   float64   `json:"sigma"`    // scale of the normal prior on the drift rate
	Tau     float64   `json:"tau"`      // non-decision time subtracted from each response time
}

// Check validates the schema invariants of the record.
func (obs *Observations) Check() error {
	if obs.N <= 0 {
		return fmt.Errorf("number of observations (%v) must be positive", obs.N)
	}
	if len(obs.Times) != obs.N || len(obs.Choices) != obs.N {
		return fmt.Errorf("lengths of times (%v) and choices (%v) must equal n (%v)", len(obs.Times), len(obs.Choices), obs.N)
	}
	for i, y := range obs.Times {
		if y < 0.0 {
			return fmt.Errorf("response time %v (%v) must be non-negative", i, y)
		}
	}
	for i, z := range obs.Choices {
		if z != 0 && z != 1 {
			return fmt.Errorf("choice %v (%v) must be 0 or 1", i, z)
		}
	}
	if obs.AlphaUB <= 0.0 {
		return fmt.Errorf("barrier separation bound (%v) must be positive", obs.AlphaUB)
	}
	if obs.Sigma <= 0.0 {
		return fmt.Errorf("drift prior scale (%v) must be positive", obs.Sigma)
	}
	if obs.Tau < 0.0 {
		return fmt.Errorf("non-decision time (%v) must be non-negative", obs.Tau)
	}
	return nil
}

// ReadObservations reads and validates an observation record in JSON format.
func ReadObservations(path string) (*Observations, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed reading observation file; %v", err)
	}
	var obs Observations
	if err := json.Unmarshal(contents, &obs); err != nil {
		return nil, fmt.Errorf("failed parsing observation file; %v", err)
	}
	if err := obs.Check(); err != nil {
		return nil, fmt.Errorf("invalid observation file; %v", err)
	}
	return &obs, nil
}

// WriteObservations writes an observation record in JSON format.
func WriteObservations(path string, obs *Observations) error {
	if err := obs.Check(); err != nil {
		return fmt.Errorf("invalid observation record; %v", err)
	}
	contents, err := json.MarshalIndent(obs, "", "    ")
	if err != nil {
		return fmt.Errorf("failed marshaling observation record; %v", err)
	}
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return fmt.Errorf("failed writing observation file; %v", err)
	}
	return nil
}

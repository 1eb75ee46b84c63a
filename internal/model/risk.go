package model

import "fmt"

// PressureLevel is the coarse severity label attached to an assessed sentence.
type PressureLevel string

// Valid pressure levels, from least to most severe.
const (
	PressureLow    PressureLevel = "Low"
	PressureMedium PressureLevel = "Medium"
	PressureHigh   PressureLevel = "High"
)

// Valid reports whether the level is one of the three known values.
func (p PressureLevel) Valid() bool {
	switch p {
	case PressureLow, PressureMedium, PressureHigh:
		return true
	}
	return false
}

// RiskRecord is the structured assessment of a single sentence. Records are
// transient: at most one is selected at a time and none are persisted.
type RiskRecord struct {
	Sentence            string        `json:"sentence"`
	PressureLevel       PressureLevel `json:"pressureLevel"`
	UrgencyScore        float64       `json:"urgencyScore"`
	ManipulationPattern string        `json:"manipulationPattern"`
	RiskExplanation     string        `json:"riskExplanation"`
	ProtectiveAction    string        `json:"protectiveAction"`
	ScamType            string        `json:"scamType"`
}

// Validate checks that every required field is present and the pressure
// level is one of the known values. A record failing validation must be
// rejected wholesale rather than displayed with defaults.
func (r RiskRecord) Validate() error {
	if r.Sentence == "" {
		return fmt.Errorf("missing sentence")
	}
	if !r.PressureLevel.Valid() {
		return fmt.Errorf("invalid pressure level %q", r.PressureLevel)
	}
	if r.ManipulationPattern == "" {
		return fmt.Errorf("missing manipulationPattern")
	}
	if r.RiskExplanation == "" {
		return fmt.Errorf("missing riskExplanation")
	}
	if r.ProtectiveAction == "" {
		return fmt.Errorf("missing protectiveAction")
	}
	if r.ScamType == "" {
		return fmt.Errorf("missing scamType")
	}
	return nil
}

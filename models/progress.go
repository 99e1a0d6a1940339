package models

import (
	"fmt"
	"math"
	"strings"
)

// SubjectStats holds the cumulative counters of one user/subject pair.
// Correct+Incorrect equals the questions answered; len(TimeSamples) equals the submissions.
type SubjectStats struct {
	Correct        int       `json:"correct"`
	Incorrect      int       `json:"incorrect"`
	CumulativeTime float64   `json:"cumulative_time"`
	TimeSamples    []float64 `json:"time_samples"`
}

// Clone returns a copy that shares no memory with s.
func (s SubjectStats) Clone() SubjectStats {
	out := s
	out.TimeSamples = make([]float64, len(s.TimeSamples))
	copy(out.TimeSamples, s.TimeSamples)
	return out
}

// ProgressMap maps a subject identifier to its statistics
type ProgressMap map[string]SubjectStats

// AttemptSummary is the result of one submission for one subject
type AttemptSummary struct {
	Subject   string  `json:"subject"`
	Attempted int     `json:"attempted"`
	Correct   int     `json:"correct"`
	Elapsed   float64 `json:"elapsed"`
}

// Validate checks the numeric constraints of an attempt summary.
func (a AttemptSummary) Validate() error {
	if strings.TrimSpace(a.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}
	if a.Attempted <= 0 {
		return fmt.Errorf("%w: attempted must be positive, got %d", ErrInvalidInput, a.Attempted)
	}
	if a.Correct < 0 || a.Correct > a.Attempted {
		return fmt.Errorf("%w: correct must be within [0, %d], got %d", ErrInvalidInput, a.Attempted, a.Correct)
	}
	if math.IsNaN(a.Elapsed) || math.IsInf(a.Elapsed, 0) || a.Elapsed < 0 {
		return fmt.Errorf("%w: elapsed must be a finite non-negative number, got %g", ErrInvalidInput, a.Elapsed)
	}
	return nil
}

// AttemptResponse is returned after an attempt summary was merged
type AttemptResponse struct {
	Accepted bool         `json:"accepted"`
	Subject  string       `json:"subject"`
	Progress SubjectStats `json:"progress"`
}

// SubjectSummary is the raw per-subject listing for a user
type SubjectSummary struct {
	Subject        string  `json:"subject"`
	Correct        int     `json:"correct"`
	Incorrect      int     `json:"incorrect"`
	CumulativeTime float64 `json:"cumulative_time"`
}

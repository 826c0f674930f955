package domain

import "time"

// ExportRequest describes one export run.
type ExportRequest struct {
	// Namespace selects the logical index partition (environment tag).
	Namespace string

	// From is the inclusive lower bound on processed-on.
	From time.Time

	// To is the inclusive upper bound on processed-on.
	To time.Time

	// Agents optionally restricts to records whose client/agent tag is a
	// member. Empty means no restriction.
	Agents []string
}

// Validate checks the request bounds before any collaborator is touched.
func (r ExportRequest) Validate() error {
	if r.From.IsZero() || r.To.IsZero() {
		return ErrInvalidInput
	}
	if r.To.Before(r.From) {
		return ErrInvalidInput
	}
	return nil
}

// ExportSummary reports a completed export run.
type ExportSummary struct {
	// RunID identifies the run in logs.
	RunID string `json:"run_id"`

	// Message is a human-readable outcome line.
	Message string `json:"message"`

	// Count is the number of newly added rows, not reconciled rows.
	Count int `json:"count"`
}

package driven

import (
	"context"
	"time"

	"github.com/sia-ops/shiftsheet/internal/core/domain"
)

// SearchQuery bounds one transcript lookup.
type SearchQuery struct {
	// Namespace selects the logical index partition (environment tag).
	Namespace string

	// From is the inclusive lower bound on processed-on.
	From time.Time

	// To is the inclusive upper bound on processed-on.
	To time.Time

	// Agents optionally restricts to records whose client/agent tag is a
	// member of the list. Empty means no restriction.
	Agents []string

	// Limit caps the result set size. Zero means the adapter default.
	Limit int
}

// TranscriptSearcher queries the transcript search index.
// Result ordering is unspecified; callers sort for themselves.
type TranscriptSearcher interface {
	// Search returns transcript documents matching the query bounds.
	Search(ctx context.Context, q SearchQuery) ([]domain.TranscriptRecord, error)
}

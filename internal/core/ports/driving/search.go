package driving

import (
	"context"

	"github.com/sia-ops/shiftsheet/internal/core/domain"
)

// SearchService exposes raw transcript lookups to inbound adapters.
// It validates bounds and passes the query through to the search index.
type SearchService interface {
	// Search returns the matching transcript documents.
	Search(ctx context.Context, req domain.ExportRequest) ([]domain.TranscriptRecord, error)
}

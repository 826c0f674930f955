package services

import (
	"context"
	"fmt"

	"github.com/sia-ops/shiftsheet/internal/core/domain"
	"github.com/sia-ops/shiftsheet/internal/core/ports/driven"
	"github.com/sia-ops/shiftsheet/internal/core/ports/driving"
	"github.com/sia-ops/shiftsheet/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService exposes raw transcript lookups without touching the sheet.
// It backs the /api/search endpoint used for ad-hoc inspection.
type SearchService struct {
	searcher         driven.TranscriptSearcher
	defaultNamespace string
	limit            int
}

// NewSearchService creates a search service over the index collaborator.
func NewSearchService(searcher driven.TranscriptSearcher, defaultNamespace string, limit int) *SearchService {
	return &SearchService{
		searcher:         searcher,
		defaultNamespace: defaultNamespace,
		limit:            limit,
	}
}

// Search validates the bounds and passes the query through.
func (s *SearchService) Search(ctx context.Context, req domain.ExportRequest) ([]domain.TranscriptRecord, error) {
	if req.Namespace == "" {
		req.Namespace = s.defaultNamespace
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: fromDate and toDate must form a valid range", err)
	}
	if s.searcher == nil {
		return nil, domain.ErrSearchUnavailable
	}

	records, err := s.searcher.Search(ctx, driven.SearchQuery{
		Namespace: req.Namespace,
		From:      req.From,
		To:        req.To,
		Agents:    req.Agents,
		Limit:     s.limit,
	})
	if err != nil {
		return nil, fmt.Errorf("search transcripts: %w", err)
	}

	logger.Debug("search %s: %d records", req.Namespace, len(records))
	return records, nil
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sia-ops/shiftsheet/internal/core/domain"
)

func TestSearchService_PassesQueryThrough(t *testing.T) {
	searcher := &mockSearcher{records: []domain.TranscriptRecord{
		testRecord("devika", "2024-03-10T04:15:00Z", "2024-03-10T01:00:00Z"),
	}}
	svc := NewSearchService(searcher, "qa", 500)

	req := domain.ExportRequest{
		From:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Agents: []string{"scanner-07"},
	}

	records, err := svc.Search(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	assert.Equal(t, "qa", searcher.lastQuery.Namespace)
	assert.Equal(t, []string{"scanner-07"}, searcher.lastQuery.Agents)
	assert.Equal(t, 500, searcher.lastQuery.Limit)
}

func TestSearchService_InvalidBounds(t *testing.T) {
	svc := NewSearchService(&mockSearcher{}, "qa", 500)

	_, err := svc.Search(context.Background(), domain.ExportRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSearchService_SearcherError(t *testing.T) {
	boom := errors.New("index unreachable")
	svc := NewSearchService(&mockSearcher{searchErr: boom}, "qa", 500)

	_, err := svc.Search(context.Background(), domain.ExportRequest{
		From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, boom)
}

func TestSearchService_NilSearcher(t *testing.T) {
	svc := NewSearchService(nil, "qa", 500)

	_, err := svc.Search(context.Background(), domain.ExportRequest{
		From: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, domain.ErrSearchUnavailable)
}

package driving

import (
	"context"

	"github.com/sia-ops/shiftsheet/internal/core/domain"
)

// ExportService runs one bounded export job: fetch, normalise, merge into
// the sheet, reconcile shift labels, persist.
type ExportService interface {
	// Run executes a single export pass and reports how many new rows
	// were added. Returns domain.ErrInvalidInput for bad bounds and
	// domain.ErrNoRecords when the range matches nothing.
	Run(ctx context.Context, req domain.ExportRequest) (domain.ExportSummary, error)
}

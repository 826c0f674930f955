package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sia-ops/shiftsheet/internal/core/domain"
	"github.com/sia-ops/shiftsheet/internal/core/ports/driven"
	"github.com/sia-ops/shiftsheet/internal/core/ports/driving"
	"github.com/sia-ops/shiftsheet/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

// MergeMode selects how new rows are merged into the sheet.
type MergeMode string

const (
	// MergeAppend appends new rows, writing the header only when the
	// sheet does not already carry it.
	MergeAppend MergeMode = "append"

	// MergeFullRefresh clears the whole range and rewrites header plus
	// new rows unconditionally on every run.
	MergeFullRefresh MergeMode = "full-refresh"
)

// ExportConfig tunes one ExportService instance.
type ExportConfig struct {
	// SheetName is the tab the export writes to.
	SheetName string

	// Mode selects the merge variant. Defaults to MergeAppend.
	Mode MergeMode

	// MaxRows caps how many of the most recent records one run exports.
	MaxRows int

	// SearchLimit bounds the search index result set.
	SearchLimit int

	// DefaultNamespace is used when a request carries no partition.
	DefaultNamespace string

	// Window is the shift classification rule.
	Window domain.ShiftWindow
}

// ExportService coordinates one export run: fetch, normalise, merge,
// reconcile, persist. Runs are single-shot with no retry or resume; a
// collaborator failure aborts the remaining stages.
type ExportService struct {
	searcher driven.TranscriptSearcher
	sheet    driven.SheetStore
	cfg      ExportConfig
}

// NewExportService creates an export service over the two collaborators.
func NewExportService(searcher driven.TranscriptSearcher, sheet driven.SheetStore, cfg ExportConfig) *ExportService {
	if cfg.Mode == "" {
		cfg.Mode = MergeAppend
	}
	if cfg.Window == (domain.ShiftWindow{}) {
		cfg.Window = domain.DefaultShiftWindow()
	}
	return &ExportService{
		searcher: searcher,
		sheet:    sheet,
		cfg:      cfg,
	}
}

// Run executes a single export pass.
func (s *ExportService) Run(ctx context.Context, req domain.ExportRequest) (domain.ExportSummary, error) {
	runID := uuid.New().String()

	if req.Namespace == "" {
		req.Namespace = s.cfg.DefaultNamespace
	}
	if err := req.Validate(); err != nil {
		return domain.ExportSummary{}, fmt.Errorf("%w: fromDate and toDate must form a valid range", err)
	}

	if s.searcher == nil {
		return domain.ExportSummary{}, domain.ErrSearchUnavailable
	}
	if s.sheet == nil {
		return domain.ExportSummary{}, domain.ErrSheetUnavailable
	}

	// 1. Fetch candidate records from the search index.
	logger.Section("Fetch")
	logger.Info("run %s: %s %s..%s", runID, req.Namespace,
		req.From.Format(domain.ShiftDateLayout), req.To.Format(domain.ShiftDateLayout))

	records, err := s.searcher.Search(ctx, driven.SearchQuery{
		Namespace: req.Namespace,
		From:      req.From,
		To:        req.To,
		Agents:    req.Agents,
		Limit:     s.cfg.SearchLimit,
	})
	if err != nil {
		return domain.ExportSummary{}, fmt.Errorf("search transcripts: %w", err)
	}
	logger.Debug("run %s: fetched %d records", runID, len(records))

	// 2. Normalise into sheet rows. An empty batch short-circuits before
	// storage is touched.
	logger.Section("Normalise")
	rows := normaliseRecords(records, s.cfg.Window, s.cfg.MaxRows)
	if len(rows) == 0 {
		return domain.ExportSummary{}, domain.ErrNoRecords
	}
	logger.Debug("run %s: normalised %d rows", runID, len(rows))

	// 3. Merge new rows into the sheet, then re-read the whole persisted
	// range. Reconciliation operates on the re-read set, not the batch we
	// just wrote, because historical rows must be corrected too.
	logger.Section("Merge")
	if err := s.merge(ctx, rows); err != nil {
		return domain.ExportSummary{}, err
	}

	persisted, err := s.sheet.ReadRange(ctx, s.dataRange())
	if err != nil {
		return domain.ExportSummary{}, fmt.Errorf("read back sheet rows: %w", err)
	}
	logger.Debug("run %s: %d persisted rows", runID, len(persisted))

	// 4. Reconcile shift labels over the full set and persist.
	logger.Section("Reconcile")
	reconciled := reconcileRows(persisted, s.cfg.Window)
	if len(reconciled) > 0 {
		rng := fmt.Sprintf("%s!A2:N%d", s.cfg.SheetName, len(reconciled)+1)
		if err := s.sheet.OverwriteRange(ctx, rng, reconciled); err != nil {
			return domain.ExportSummary{}, fmt.Errorf("write reconciled rows: %w", err)
		}
	}

	return domain.ExportSummary{
		RunID:   runID,
		Message: fmt.Sprintf("%d recent rows added to sheet", len(rows)),
		Count:   len(rows),
	}, nil
}

// merge writes the new rows according to the configured merge variant.
func (s *ExportService) merge(ctx context.Context, rows [][]string) error {
	header := domain.Header()

	if s.cfg.Mode == MergeFullRefresh {
		if err := s.sheet.ClearRange(ctx, s.fullRange()); err != nil {
			return fmt.Errorf("clear sheet range: %w", err)
		}
		values := append([][]string{header}, rows...)
		if err := s.sheet.OverwriteRange(ctx, s.appendRange(), values); err != nil {
			return fmt.Errorf("rewrite sheet: %w", err)
		}
		return nil
	}

	// Append variant: only write the header when the sheet does not
	// already start with it, so repeated runs stay header-idempotent.
	existing, err := s.sheet.ReadRange(ctx, s.headerRange())
	if err != nil {
		return fmt.Errorf("read sheet header: %w", err)
	}

	values := rows
	if !headerPresent(existing, header) {
		values = append([][]string{header}, rows...)
	}
	if err := s.sheet.AppendRows(ctx, s.appendRange(), values); err != nil {
		return fmt.Errorf("append sheet rows: %w", err)
	}
	return nil
}

func headerPresent(existing [][]string, header []string) bool {
	if len(existing) == 0 {
		return false
	}
	first := existing[0]
	if len(first) != len(header) {
		return false
	}
	for i := range header {
		if first[i] != header[i] {
			return false
		}
	}
	return true
}

func (s *ExportService) headerRange() string {
	return fmt.Sprintf("%s!1:1", s.cfg.SheetName)
}

func (s *ExportService) appendRange() string {
	return fmt.Sprintf("%s!A1", s.cfg.SheetName)
}

func (s *ExportService) dataRange() string {
	return fmt.Sprintf("%s!A2:N", s.cfg.SheetName)
}

func (s *ExportService) fullRange() string {
	return fmt.Sprintf("%s!A1:N", s.cfg.SheetName)
}

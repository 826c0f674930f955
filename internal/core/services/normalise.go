package services

import (
	"sort"
	"strconv"
	"time"

	"github.com/sia-ops/shiftsheet/internal/core/domain"
)

// defaultProcessedBy is the fallback owner written when a document carries
// no processor attribution. Legacy records from before attribution was
// captured all belong to this operator.
const defaultProcessedBy = "anirudh"

// normaliseRecords turns fetched documents into sheet rows.
//
// Rows come out sorted descending by upload timestamp; records with a
// missing or unparseable upload timestamp sort as the oldest. When maxRows
// is positive the batch is truncated to the most recent maxRows rows.
func normaliseRecords(records []domain.TranscriptRecord, window domain.ShiftWindow, maxRows int) [][]string {
	sorted := make([]domain.TranscriptRecord, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		return uploadInstant(sorted[i]).After(uploadInstant(sorted[j]))
	})

	if maxRows > 0 && len(sorted) > maxRows {
		sorted = sorted[:maxRows]
	}

	rows := make([][]string, 0, len(sorted))
	for _, rec := range sorted {
		rows = append(rows, normaliseRecord(rec, window))
	}
	return rows
}

// normaliseRecord maps one document onto the column contract. Absent
// fields become empty strings, except Processed By which falls back to
// defaultProcessedBy.
func normaliseRecord(rec domain.TranscriptRecord, window domain.ShiftWindow) []string {
	row := make([]string, domain.ColumnCount)

	row[domain.ColFileName] = deref(rec.ImageName)
	row[domain.ColAgentTag] = rec.AgentTag()
	row[domain.ColFinalReviewer] = deref(rec.FinalReviewer)
	row[domain.ColLatestStatus] = deref(rec.Status)
	row[domain.ColInstitutionName] = deref(rec.InstitutionName)

	row[domain.ColProcessedBy] = deref(rec.ProcessedBy)
	if row[domain.ColProcessedBy] == "" {
		row[domain.ColProcessedBy] = defaultProcessedBy
	}

	if uploaded, ok := rec.UploadedAt(); ok {
		row[domain.ColUploadDate] = domain.FormatSheetTime(uploaded)
	}

	if processed, ok := rec.ProcessedAt(); ok {
		row[domain.ColProcessedOn] = domain.FormatSheetTime(processed)
		shift := window.Classify(processed)
		row[domain.ColShiftDate] = shift.Day
		row[domain.ColShift] = string(shift.Label)
	}

	if rec.Pages != nil {
		row[domain.ColPages] = strconv.Itoa(*rec.Pages)
	}
	if rec.ConfidenceScore != nil {
		row[domain.ColConfidenceScore] = formatFloat(*rec.ConfidenceScore)
	}
	if rec.ReviewerHandleTime != nil {
		row[domain.ColReviewerHandleTime] = formatFloat(*rec.ReviewerHandleTime)
	}
	if rec.ValidatorHandleTime != nil {
		row[domain.ColValidatorHandleTime] = formatFloat(*rec.ValidatorHandleTime)
	}

	return row
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// uploadInstant is a sort helper kept separate so tests can pin the
// "missing sorts oldest" behaviour directly.
func uploadInstant(rec domain.TranscriptRecord) time.Time {
	t, _ := rec.UploadedAt()
	return t
}

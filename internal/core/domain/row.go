package domain

import (
	"strings"
	"time"
)

// Column indices into an export row. The sheet layout is a versioned
// contract: the reconciler reads Processed By / Processed On back out of
// the sheet by position, so these must stay in lockstep with Header.
const (
	ColUploadDate = iota
	ColFileName
	ColAgentTag
	ColFinalReviewer
	ColProcessedBy
	ColProcessedOn
	ColReviewerHandleTime
	ColValidatorHandleTime
	ColLatestStatus
	ColShiftDate
	ColShift
	ColInstitutionName
	ColPages
	ColConfidenceScore

	// ColumnCount is the arity of every export row.
	ColumnCount
)

// Header is the sheet header row, order-significant.
func Header() []string {
	return []string{
		"Upload Date",
		"File Name",
		"Client/Agent Tag",
		"Final Reviewer",
		"Processed By",
		"Processed On",
		"Reviewer Handle Time",
		"Validator Handle Time",
		"Latest Status",
		"Shift Date",
		"Shift",
		"Institution Name",
		"Pages",
		"Confidence Score",
	}
}

// UnknownWorker is the bucket that absorbs rows whose Processed By cell is
// blank. Tallying keys on the stored display value, not a stable user id.
const UnknownWorker = "Unknown"

// SheetTimeLayout is the display format for timestamps written to the
// sheet. It round-trips: the reconciler parses stored cells with it.
const SheetTimeLayout = "Jan 2, 2006, 3:04 PM"

// sheetTextMarker keeps the storage layer from auto-converting formatted
// dates into numeric date cells.
const sheetTextMarker = "'"

// FormatSheetTime renders an instant for a sheet cell, prefixed with the
// text marker.
func FormatSheetTime(t time.Time) string {
	return sheetTextMarker + t.UTC().Format(SheetTimeLayout)
}

// ParseSheetTime parses a stored sheet cell back into an instant.
// The second return is false for blank or unparseable cells.
func ParseSheetTime(cell string) (time.Time, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(cell), sheetTextMarker)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(SheetTimeLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

package driven

import "context"

// SheetStore is range-addressed tabular storage. Ranges use A1 notation
// ("Sheet1!A2:N"). All values are strings; numeric and date typing is the
// caller's responsibility via formatting conventions.
type SheetStore interface {
	// ReadRange returns the values in the range, row-major. Trailing
	// empty cells may be omitted, so rows can be ragged.
	ReadRange(ctx context.Context, rng string) ([][]string, error)

	// AppendRows appends rows after the last non-empty row of the range.
	AppendRows(ctx context.Context, rng string, rows [][]string) error

	// ClearRange blanks every cell in the range.
	ClearRange(ctx context.Context, rng string) error

	// OverwriteRange replaces the range's cells with the given rows.
	OverwriteRange(ctx context.Context, rng string, rows [][]string) error
}

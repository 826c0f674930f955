// Package sheets implements the SheetStore port over the Google Sheets API.
package sheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/sia-ops/shiftsheet/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SheetStore = (*Store)(nil)

// Store is a Google Sheets backed implementation of driven.SheetStore.
// All writes use USER_ENTERED input so the leading-apostrophe text marker
// convention is honoured by the sheet.
type Store struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	limiter       *RateLimiter
}

// NewStore creates a sheet store authenticated as a service account.
// credentialsFile is the path to the service account JSON key.
func NewStore(ctx context.Context, spreadsheetID, credentialsFile string) (*Store, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	jwt, err := google.JWTConfigFromJSON(data, sheetsapi.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account key: %w", err)
	}

	svc, err := sheetsapi.NewService(ctx, option.WithTokenSource(jwt.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Store{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		limiter:       NewRateLimiter(DefaultRateLimit),
	}, nil
}

// ReadRange returns the values in the range, row-major.
func (s *Store) ReadRange(ctx context.Context, rng string) ([][]string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, rng).
		MajorDimension("ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("get range %s: %w", rng, s.wrap(err))
	}

	return toStringRows(resp.Values), nil
}

// AppendRows appends rows after the last non-empty row of the range.
func (s *Store) AppendRows(ctx context.Context, rng string, rows [][]string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, rng, toValueRange(rows)).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to %s: %w", rng, s.wrap(err))
	}
	return nil
}

// ClearRange blanks every cell in the range.
func (s *Store) ClearRange(ctx context.Context, rng string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetID, rng, &sheetsapi.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("clear %s: %w", rng, s.wrap(err))
	}
	return nil
}

// OverwriteRange replaces the range's cells with the given rows.
func (s *Store) OverwriteRange(ctx context.Context, rng string, rows [][]string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, toValueRange(rows)).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update %s: %w", rng, s.wrap(err))
	}
	return nil
}

// wrap maps a googleapi error onto the package sentinels and records 429s
// with the limiter so subsequent calls back off.
func (s *Store) wrap(err error) error {
	wrapped := WrapError(err)
	if IsRateLimited(wrapped) {
		s.limiter.RecordRateLimitError(0)
	}
	return wrapped
}

// toValueRange converts string rows to the API's value envelope.
func toValueRange(rows [][]string) *sheetsapi.ValueRange {
	values := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}
	return &sheetsapi.ValueRange{Values: values}
}

// toStringRows flattens the API's any-typed cells into strings.
// Non-string cells (numbers the sheet coerced) are rendered with %v.
func toStringRows(values [][]any) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, cell := range row {
			switch v := cell.(type) {
			case string:
				cells[j] = v
			case nil:
				cells[j] = ""
			default:
				cells[j] = fmt.Sprint(v)
			}
		}
		rows[i] = cells
	}
	return rows
}

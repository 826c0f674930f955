package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input, such as
	// missing or inverted date bounds on an export request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoRecords indicates the search returned nothing for the
	// requested range. This is a reported outcome, not a failure.
	ErrNoRecords = errors.New("no matching records")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSearchUnavailable indicates the search index is not configured.
	ErrSearchUnavailable = errors.New("search index unavailable")

	// ErrSheetUnavailable indicates the spreadsheet store is not configured.
	ErrSheetUnavailable = errors.New("sheet store unavailable")

	// ErrRateLimited indicates an API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)

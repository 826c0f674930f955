// Package domain defines the core business entities for the transcript
// shift export service.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - TranscriptRecord: A transcript document from the search index
//   - ShiftWindow: The timestamp-to-shift classification rule
//   - ExportRequest / ExportSummary: One export run's input and outcome
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

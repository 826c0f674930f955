// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TranscriptSearcher: Queries the transcript search index
//   - SheetStore: Range-addressed spreadsheet persistence
//
// Both collaborators are external systems; they are specified here only at
// their interface boundary and carry no business logic.
package driven

// Package driving defines the interfaces that inbound adapters call IN to core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The HTTP API and the CLI both drive the application exclusively through
// these interfaces.
package driving

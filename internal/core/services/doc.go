// Package services implements the core business logic.
//
// Services consume driven ports (search index, sheet store) and implement
// driving ports (export, search). The shift classification, normalisation
// and reconciliation logic all live here or in domain; adapters stay thin.
package services

// Package domain contains shared domain types used across the pipeline
// sub-packages. Entity types live in sub-packages (domain/board, domain/lead,
// domain/timeline) and the read-side fold lives in domain/analytics.
// This root package holds sentinel errors, validation types, the caller
// Principal, and the Action interface used by compensating workflows.
package domain

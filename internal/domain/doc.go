// Package domain defines the core domain types and interfaces.
//
// Concept-oriented files (sentiment.go, tally.go, errors.go) hold shared types and the
// interfaces adapters implement. No implementation code - just contracts.
package domain

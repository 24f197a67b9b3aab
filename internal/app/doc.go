// Package app provides the application service layer.
//
// Orchestrates use cases: classifying a review, recording the result, and reporting or resetting the tally.
// Sits between HTTP handlers and domain stores. Depends on domain interfaces, not concrete implementations.
package app

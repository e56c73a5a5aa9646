// Package apperrors defines the error taxonomy and process exit codes for
// numcalc. All failures are synchronous: an operation either returns a value
// or fails with one of the typed errors below, which the presentation layer
// maps to an exit code.
package apperrors

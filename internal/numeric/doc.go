// Package numeric implements the integer utilities at the heart of numcalc:
// factorial computation, primality testing, and Fibonacci sequence
// generation, plus a parallel prime-counting range scan.
//
// Every function is pure: same input, same output, no shared state. Long
// loops honor context cancellation and report normalized progress through
// a [progress.Callback].
//
// The operations are exposed both as plain functions and through the
// [Operation] interface, which lets the orchestration layer run a
// heterogeneous set of computations through one pipeline.
package numeric

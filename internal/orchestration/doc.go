// Package orchestration coordinates the concurrent execution of numeric
// operations and the analysis of their results, decoupled from any
// particular presentation through the ProgressReporter and ResultPresenter
// interfaces.
package orchestration

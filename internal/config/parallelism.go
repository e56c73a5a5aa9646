package config

import "runtime"

// Parallelism resolution chain (highest priority first):
//  1. CLI flag (-parallelism)
//  2. Environment variable (NUMCALC_PARALLELISM)
//  3. Adaptive hardware estimation (this file)

// ApplyAdaptiveParallelism fills in the prime-scan worker count when the
// configuration left it at its zero default, preserving any explicit
// user override.
func ApplyAdaptiveParallelism(cfg AppConfig) AppConfig {
	if cfg.Parallelism == 0 {
		cfg.Parallelism = EstimateScanParallelism()
	}
	return cfg
}

// EstimateScanParallelism provides a heuristic worker count for the prime
// scan without running benchmarks. The scan is CPU-bound, so it tracks the
// core count but leaves headroom for the progress display on larger machines.
func EstimateScanParallelism() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 2:
		return numCPU
	case numCPU <= 8:
		return numCPU - 1
	default:
		return numCPU - 2
	}
}

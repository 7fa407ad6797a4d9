package bench

import "errors"

// Benchmark errors.
var (
	// ErrUnknownBenchmark means no benchmark is registered under the
	// requested name.
	ErrUnknownBenchmark = errors.New("bench: unknown benchmark")
)

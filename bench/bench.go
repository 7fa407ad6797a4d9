package bench

import (
	"fmt"
	"slices"
	"sync"
	"testing"
)

// Func is a benchmark body. The signature matches what testing.Benchmark
// and b.Run accept, so a registered benchmark runs unchanged under both
// the go test harness and the standalone runner.
type Func func(b *testing.B)

// registry holds registered benchmarks.
var (
	registryMu sync.RWMutex
	benchmarks = make(map[string]Func)
)

// Register registers a benchmark body under the given name.
// This is typically called from init() functions. If a benchmark with the
// same name is already registered, it will be replaced.
func Register(name string, fn Func) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := benchmarks[name]; ok {
		Logger().Debug("bench: replacing registered benchmark", "name", name)
	}
	benchmarks[name] = fn
}

// Unregister removes a benchmark from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(benchmarks, name)
}

// Lookup returns the benchmark registered under name.
func Lookup(name string) (Func, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := benchmarks[name]
	return fn, ok
}

// Names returns the registered benchmark names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(benchmarks))
	for name := range benchmarks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Run executes the benchmark registered under name through
// testing.Benchmark and returns its result. Iteration counts and timing
// come from the standard benchmark machinery, so results are directly
// comparable to go test -bench output.
func Run(name string) (testing.BenchmarkResult, error) {
	fn, ok := Lookup(name)
	if !ok {
		return testing.BenchmarkResult{}, fmt.Errorf("%w: %q", ErrUnknownBenchmark, name)
	}
	Logger().Debug("bench: running", "name", name)
	return testing.Benchmark(fn), nil
}

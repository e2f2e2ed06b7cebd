package prover

import "time"

// Scenario names one Proves call to benchmark.
type Scenario struct {
	Name string
	Func func() bool
}

// Benchmark times a batch of Proves scenarios, recording each one's
// result and wall-clock duration. Useful for comparing how
// HeuristicRatio/FingerprintBits choices affect a fixed set of end-to-end
// scenarios without reaching for go test -bench.
type Benchmark struct {
	scenarios []Scenario

	// Results holds each scenario's Proves outcome after Run, in the
	// order scenarios were added.
	Results []bool

	// Durations holds each scenario's wall-clock time after Run,
	// parallel to Results.
	Durations []time.Duration
}

// NewBenchmark creates an empty benchmark.
func NewBenchmark() *Benchmark {
	return &Benchmark{}
}

// Add registers a named scenario to run.
func (b *Benchmark) Add(name string, fn func() bool) {
	b.scenarios = append(b.scenarios, Scenario{Name: name, Func: fn})
}

// Run executes every registered scenario in order, populating Results
// and Durations.
func (b *Benchmark) Run() {
	b.Results = make([]bool, len(b.scenarios))
	b.Durations = make([]time.Duration, len(b.scenarios))

	for i, s := range b.scenarios {
		start := time.Now()
		b.Results[i] = s.Func()
		b.Durations[i] = time.Since(start)
	}
}

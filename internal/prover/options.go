// Package prover implements the saturation driver of spec.md 4.I: it
// clausifies the theory and the negated goal, seeds a clauseset.ClauseSet,
// and runs the given-clause loop (select, factor, activate, resolve)
// until refutation, budget exhaustion, or passive-queue exhaustion.
package prover

const (
	defaultMaxActiveClauses       = 10000
	defaultHeuristicRatio         = 4
	defaultFingerprintBitsPerMask = 4
)

// ProverOptions is the closed configuration set of spec.md 4.I.
type ProverOptions struct {
	MaxActiveClauses       int
	HeuristicRatio         int
	FingerprintBitsPerMask int
	trace                  bool
}

// DefaultOptions returns the documented zero-value defaults: an unbounded-
// in-practice active clause budget, heuristicRatio 4, fingerprintBitsPerMask 4.
func DefaultOptions() ProverOptions {
	return ProverOptions{
		MaxActiveClauses:       defaultMaxActiveClauses,
		HeuristicRatio:         defaultHeuristicRatio,
		FingerprintBitsPerMask: defaultFingerprintBitsPerMask,
	}
}

// Option mutates a ProverOptions built from DefaultOptions.
type Option func(*ProverOptions)

// WithMaxActiveClauses overrides the active-clause budget (spec.md 4.I:
// "positive integer", required to actually terminate a non-refuting run).
func WithMaxActiveClauses(n int) Option {
	return func(o *ProverOptions) { o.MaxActiveClauses = n }
}

// WithHeuristicRatio overrides the passive-queue selection ratio R.
func WithHeuristicRatio(n int) Option {
	return func(o *ProverOptions) { o.HeuristicRatio = n }
}

// WithFingerprintBits overrides k, the bits set per subsumption mask
// (spec.md 4.G: valid range 3-5).
func WithFingerprintBits(k int) Option {
	return func(o *ProverOptions) { o.FingerprintBitsPerMask = k }
}

// WithTrace enables recording of the resolution/factoring steps taken
// during a ProveDetailed call, for replay-based soundness testing
// (SPEC_FULL.md C.5). Off by default: it costs an allocation per step.
func WithTrace() Option {
	return func(o *ProverOptions) { o.trace = true }
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) ProverOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

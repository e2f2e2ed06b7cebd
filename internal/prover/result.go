package prover

import "github.com/fologic/prover/internal/subst"

// Reason explains why ProveDetailed stopped.
type Reason int

const (
	// ReasonRefutation means the empty clause was derived: the theory
	// together with the negated goal is unsatisfiable, so the goal holds.
	ReasonRefutation Reason = iota
	// ReasonBudgetExhausted means options.MaxActiveClauses was reached
	// before refutation.
	ReasonBudgetExhausted
	// ReasonSaturated means both passive queues emptied (the search space
	// was exhausted) without deriving the empty clause.
	ReasonSaturated
)

func (r Reason) String() string {
	switch r {
	case ReasonRefutation:
		return "refutation"
	case ReasonBudgetExhausted:
		return "budget-exhausted"
	case ReasonSaturated:
		return "saturated"
	default:
		return "unknown"
	}
}

// StepKind distinguishes a trace entry's inference rule.
type StepKind int

const (
	StepResolution StepKind = iota
	StepFactor
)

func (k StepKind) String() string {
	if k == StepFactor {
		return "factor"
	}
	return "resolution"
}

// Step is one recorded inference, present only when ProveDetailed was
// called with WithTrace(). LeftID/RightID are both set for a resolution
// step; for a factor step RightID is zero and unused.
type Step struct {
	Kind     StepKind
	LeftID   uint64
	RightID  uint64
	ResultID uint64
	Sub      subst.Subst
}

// Result is ProveDetailed's return value: the bare bool the spec mandates
// for Proves, plus the reason, iteration count, and optional trace.
type Result struct {
	Proved     bool
	Reason     Reason
	Iterations int
	Trace      []Step
}

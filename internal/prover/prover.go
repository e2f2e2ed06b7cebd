package prover

import (
	"github.com/fologic/prover/internal/clauseset"
	"github.com/fologic/prover/internal/cnf"
	"github.com/fologic/prover/internal/logging"
	"github.com/fologic/prover/internal/symtab"
	"github.com/fologic/prover/internal/term"
)

var log = logging.Named("prover")

// Proves is spec.md 6's mandated bool-only entry point: it returns true
// when a refutation is found, so the theory entails goal; false means the
// active-clause budget ran out or the passive queues emptied first. It is
// a thin wrapper over ProveDetailed.
func Proves(theory []*term.Formula, goal *term.Formula, st *symtab.Table, opts ...Option) bool {
	return ProveDetailed(theory, goal, st, opts...).Proved
}

// ProveDetailed runs the given-clause saturation loop of spec.md 4.I and
// additionally reports why it stopped, how many clauses were selected,
// and (with WithTrace()) the inference sequence that derived a
// refutation.
//
// Clausification assumes theory and goal are well-formed formulas built
// via internal/term's constructors (or internal/syntax's parser, which
// enforces this); a CNF pipeline bug surfacing NotInCNF on such input is
// an invariant violation, not a reportable proof-search outcome, and is
// therefore a panic rather than a third return value.
func ProveDetailed(theory []*term.Formula, goal *term.Formula, st *symtab.Table, opts ...Option) Result {
	options := NewOptions(opts...)
	pipeline := cnf.NewPipeline(st)
	cs := clauseset.New(options.HeuristicRatio, options.FingerprintBitsPerMask, 0)

	for _, axiom := range theory {
		insertClausified(cs, pipeline, axiom, false)
	}
	insertClausified(cs, pipeline, term.NewNot(goal), true)
	log.Debug("clausified theory and negated goal", "active", cs.ActiveSize())

	var trace []Step
	iterations := 0

	for cs.ActiveSize() < options.MaxActiveClauses {
		c, ok := cs.SelectClause()
		if !ok {
			log.Debug("saturated: passive queues exhausted", "iterations", iterations)
			return Result{Reason: ReasonSaturated, Iterations: iterations, Trace: trace}
		}
		iterations++
		log.Trace("selected given clause", "id", c.ID, "age", c.Age)

		if c.Clause.IsEmpty() {
			log.Debug("refutation found", "iterations", iterations)
			return Result{Proved: true, Reason: ReasonRefutation, Iterations: iterations, Trace: trace}
		}

		factorSteps := cs.GenerateFactorSteps(c)
		for _, fs := range factorSteps {
			if options.trace {
				trace = append(trace, Step{Kind: StepFactor, LeftID: c.ID, ResultID: fs.Result.ID, Sub: fs.Factor.Sub})
			}
			if fs.Result.Clause.IsEmpty() {
				log.Debug("refutation found via factoring", "iterations", iterations)
				return Result{Proved: true, Reason: ReasonRefutation, Iterations: iterations, Trace: trace}
			}
		}

		cs.Activate(c)

		resolventSteps := cs.GenerateResolventSteps(c)
		for _, rs := range resolventSteps {
			if options.trace {
				trace = append(trace, Step{
					Kind:     StepResolution,
					LeftID:   c.ID,
					RightID:  rs.OtherID,
					ResultID: rs.Result.ID,
					Sub:      rs.Resolution.Sub,
				})
			}
			if rs.Result.Clause.IsEmpty() {
				log.Debug("refutation found via resolution", "iterations", iterations)
				return Result{Proved: true, Reason: ReasonRefutation, Iterations: iterations, Trace: trace}
			}
		}
	}

	log.Debug("budget exhausted", "iterations", iterations, "active", cs.ActiveSize())
	return Result{Reason: ReasonBudgetExhausted, Iterations: iterations, Trace: trace}
}

func insertClausified(cs *clauseset.ClauseSet, pipeline *cnf.Pipeline, f *term.Formula, sos bool) {
	matrix := pipeline.ToCNF(f)
	clauses, err := cnf.ExtractClauses(matrix, sos)
	if err != nil {
		panic(err)
	}
	for _, c := range clauses {
		cs.Insert(c)
	}
}

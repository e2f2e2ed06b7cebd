package clauseset

// Stats is a point-in-time snapshot of saturation progress, modeled on the
// teacher's SolverStatistics/ClauseDatabase.GetTierStatistics() reporting
// pattern. It changes nothing about correctness; it exists so a caller
// (e.g. the CLI's prove subcommand) can report progress.
type Stats struct {
	ActiveCount  int
	PassiveCount int
	IDsAssigned  uint64
}

// Stats snapshots the clause set's current bookkeeping. PassiveCount
// counts live (not NoLongerPassive) entries in the age queue, which holds
// one entry per inserted clause until SelectClause pops it from that queue.
func (cs *ClauseSet) Stats() Stats {
	passive := 0
	for _, ind := range cs.ageQ {
		if !ind.NoLongerPassive {
			passive++
		}
	}
	return Stats{
		ActiveCount:  len(cs.active),
		PassiveCount: passive,
		IDsAssigned:  cs.nextID,
	}
}

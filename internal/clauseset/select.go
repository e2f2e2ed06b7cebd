package clauseset

import "container/heap"

// SelectClause implements spec.md 4.H's selectClause: the ageQueue is
// chosen when counter mod (ratio+1) == 0, otherwise the heuristicQueue.
// Entries already marked NoLongerPassive are stale (the clause was
// activated or removed since being pushed) and are drained silently; if
// the chosen queue is exhausted this way, the other queue is tried before
// giving up. The counter only advances on a successful selection.
func (cs *ClauseSet) SelectClause() (*Indexed, bool) {
	useAge := cs.counter%uint64(cs.ratio+1) == 0

	primary, secondary := &cs.heuristicQ, &cs.ageQ
	if useAge {
		primary, secondary = &cs.ageQ, &cs.heuristicQ
	}

	if ind, ok := drainUntilFresh(primary); ok {
		cs.counter++
		return ind, true
	}
	if ind, ok := drainUntilFresh(secondary); ok {
		cs.counter++
		return ind, true
	}
	return nil, false
}

func drainUntilFresh(q interface{}) (*Indexed, bool) {
	switch queue := q.(type) {
	case *ageQueue:
		for queue.Len() > 0 {
			ind := heap.Pop(queue).(*Indexed)
			if !ind.NoLongerPassive {
				return ind, true
			}
		}
	case *heuristicQueue:
		for queue.Len() > 0 {
			ind := heap.Pop(queue).(*Indexed)
			if !ind.NoLongerPassive {
				return ind, true
			}
		}
	}
	return nil, false
}

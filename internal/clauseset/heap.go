package clauseset

import "container/heap"

// ageQueue is a min-heap ordering *Indexed by Age (oldest first), giving
// age-based FIFO selection.
type ageQueue []*Indexed

func (q ageQueue) Len() int            { return len(q) }
func (q ageQueue) Less(i, j int) bool  { return q[i].Age < q[j].Age }
func (q ageQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *ageQueue) Push(x interface{}) { *q = append(*q, x.(*Indexed)) }
func (q *ageQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// heuristicQueue is a min-heap ordering *Indexed by complexity (lower is
// better), giving weight-based selection.
type heuristicQueue []*Indexed

func (q heuristicQueue) Len() int            { return len(q) }
func (q heuristicQueue) Less(i, j int) bool  { return q[i].complexity < q[j].complexity }
func (q heuristicQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *heuristicQueue) Push(x interface{}) { *q = append(*q, x.(*Indexed)) }
func (q *heuristicQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

var (
	_ heap.Interface = (*ageQueue)(nil)
	_ heap.Interface = (*heuristicQueue)(nil)
)

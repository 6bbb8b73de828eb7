package dijkstra

import "github.com/katalvlaran/heatpath/crucible"

// stateItem is a frontier entry: a search state and the accumulated cost at
// which it was reached. Items are stored by value; a State is small and comparable.
type stateItem struct {
	cost  int64
	state crucible.State
}

// statePQ is a min-heap of stateItem ordered by cost ascending.
// Ties are left to the heap; any consistent order keeps the search correct.
// We use the “lazy-decrease-key” approach: a cheaper path to a state pushes a
// new item and the outdated one is skipped when popped (checked via the
// finalized table).
type statePQ []stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(stateItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to stateItem.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

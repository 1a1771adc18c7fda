package solver

import (
	"container/heap"

	"github.com/vovakirdan/rushhour/internal/games/rushhour/core"
)

// node is an open-set entry. The decoded state travels with its key so that
// popping never has to decode.
type node struct {
	key   core.Key
	state core.State
	depth int
}

// fifo is the BFS open set.
type fifo struct {
	items []node
	head  int
}

func (q *fifo) push(n node) { q.items = append(q.items, n) }
func (q *fifo) len() int    { return len(q.items) - q.head }

func (q *fifo) pop() node {
	n := q.items[q.head]
	q.items[q.head] = node{}
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 1024 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0:0], q.items[q.head:]...)
		q.head = 0
	}
	return n
}

// lifo is the DFS open set.
type lifo struct {
	items []node
}

func (s *lifo) push(n node) { s.items = append(s.items, n) }
func (s *lifo) len() int    { return len(s.items) }

func (s *lifo) pop() node {
	last := len(s.items) - 1
	n := s.items[last]
	s.items[last] = node{}
	s.items = s.items[:last]
	return n
}

// queueItem is an entry of the indexed priority queue.
type queueItem struct {
	node
	priority     int
	seq          uint64 // Insertion order; breaks ties between equal priorities
	indexInQueue int
}

// priorityQueue is a binary min-heap over priority then seq.
type priorityQueue []*queueItem

func (q priorityQueue) Len() int { return len(q) }

func (q priorityQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q priorityQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].indexInQueue = i
	q[j].indexInQueue = j
}

func (q *priorityQueue) Push(x any) {
	item := x.(*queueItem)
	item.indexInQueue = len(*q)
	*q = append(*q, item)
}

func (q *priorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.indexInQueue = -1
	*q = old[:n-1]
	return item
}

// openSet wraps the heap with a key index for O(log n) decrease-key.
type openSet struct {
	heap  priorityQueue
	index map[core.Key]*queueItem
	seq   uint64
}

func newOpenSet() *openSet {
	return &openSet{index: make(map[core.Key]*queueItem)}
}

func (o *openSet) len() int { return o.heap.Len() }

// upsert inserts n with the given priority, or lowers the priority of an
// entry already queued under the same key. Re-queuing refreshes the
// insertion order so that ties still follow the latest improvement.
func (o *openSet) upsert(n node, priority int) {
	o.seq++
	if item, ok := o.index[n.key]; ok {
		item.node = n
		item.priority = priority
		item.seq = o.seq
		heap.Fix(&o.heap, item.indexInQueue)
		return
	}
	item := &queueItem{node: n, priority: priority, seq: o.seq}
	heap.Push(&o.heap, item)
	o.index[n.key] = item
}

func (o *openSet) pop() (node, int) {
	item := heap.Pop(&o.heap).(*queueItem)
	delete(o.index, item.key)
	return item.node, item.priority
}

// Package frontier provides the open set of a best-first search: a min-heap
// of items ordered by (priority, sequence).
//
// Every Push draws a fresh, strictly increasing sequence number, so items with
// equal priority leave the queue in insertion order. That tie-break depends
// only on call order, never on item identity or hashing, which makes searches
// reproducible run to run.
//
// Duplicates are allowed: pushing an item that is already queued adds a second
// entry. Callers that push on every improvement (lazy decrease-key) keep their
// own score table and discard entries whose priority is stale when popped.
//
// Complexity:
//
//   - Push, PopMin: O(log N), N = number of queued entries.
//   - Contains, Len, IsEmpty: O(1).
package frontier

import "container/heap"

// entry is one queued occurrence of an item.
type entry[T comparable] struct {
	item     T
	priority int
	seq      uint64
}

// entryHeap implements heap.Interface ordered by (priority, seq) ascending.
type entryHeap[T comparable] []entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// Queue is a min-priority queue with a companion membership count.
// The zero value is not usable; call New.
type Queue[T comparable] struct {
	h       entryHeap[T]
	members map[T]int // item → number of queued entries
	nextSeq uint64
}

// New returns an empty queue.
func New[T comparable]() *Queue[T] {
	return &Queue[T]{members: make(map[T]int)}
}

// Push queues item with the given priority under a new sequence number.
func (q *Queue[T]) Push(item T, priority int) {
	heap.Push(&q.h, entry[T]{item: item, priority: priority, seq: q.nextSeq})
	q.nextSeq++
	q.members[item]++
}

// PopMin removes and returns the entry with the smallest (priority, sequence).
// ok is false when the queue is empty.
func (q *Queue[T]) PopMin() (item T, priority int, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}
	e := heap.Pop(&q.h).(entry[T])
	if n := q.members[e.item]; n <= 1 {
		delete(q.members, e.item)
	} else {
		q.members[e.item] = n - 1
	}
	return e.item, e.priority, true
}

// Contains reports whether at least one entry for item is queued.
func (q *Queue[T]) Contains(item T) bool { return q.members[item] > 0 }

// Len returns the number of queued entries, duplicates included.
func (q *Queue[T]) Len() int { return len(q.h) }

// IsEmpty reports whether no entries are queued.
func (q *Queue[T]) IsEmpty() bool { return len(q.h) == 0 }

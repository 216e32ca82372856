package frontier

import "container/heap"

// Queue is a min-priority queue on Item.Cost plus a per-node liveness
// counter (spec.md §4.4). Push increments frontierCount[node]; Pop
// decrements it. Discount additionally decrements it when a Label Set
// insertion displaces a resident that may still be sitting in the queue
// (spec.md §4.5 step 1's "frontier_count fallen to zero" discard signal —
// see DESIGN.md's Open Question resolution for why this is a liveness
// heuristic rather than a precise per-entry flag).
type Queue struct {
	h             innerHeap
	frontierCount []int32
}

// New returns a Queue sized for numNodes distinct node ids.
func New(numNodes int) *Queue {
	return &Queue{
		h:             make(innerHeap, 0, numNodes),
		frontierCount: make([]int32, numNodes),
	}
}

// Push adds item to the queue and increments its node's frontier count.
func (q *Queue) Push(item Item) {
	heap.Push(&q.h, item)
	q.frontierCount[item.Node]++
}

// Pop removes and returns the minimum-cost item. ok is false if the queue
// is empty.
func (q *Queue) Pop() (item Item, ok bool) {
	if len(q.h) == 0 {
		return Item{}, false
	}
	item = heap.Pop(&q.h).(Item)
	if q.frontierCount[item.Node] > 0 {
		q.frontierCount[item.Node]--
	}
	return item, true
}

// Peek returns the minimum cost currently queued without removing it; ok is
// false (and cost 0) if the queue is empty. Used by the Driver to compare the two fronts' next costs
// when deciding which direction to expand (spec.md §4.5 "Direction
// alternation").
func (q *Queue) Peek() (cost float64, ok bool) {
	if len(q.h) == 0 {
		return 0, false
	}
	return q.h[0].Cost, true
}

// PeekItem returns the minimum-cost item without removing it.
func (q *Queue) PeekItem() (item Item, ok bool) {
	if len(q.h) == 0 {
		return Item{}, false
	}
	return q.h[0], true
}

// Size returns the number of items currently queued.
func (q *Queue) Size() int { return len(q.h) }

// FrontierCount returns the live-label counter for node.
func (q *Queue) FrontierCount(node int32) int32 { return q.frontierCount[node] }

// Discount decrements node's frontier count without popping an entry,
// signalling that one previously pushed candidate at node has since been
// dominated out of its Label Set.
func (q *Queue) Discount(node int32) {
	if q.frontierCount[node] > 0 {
		q.frontierCount[node]--
	}
}

package frontier

import "github.com/kousik-kr/flexiroute/label"

// Item is one pending expansion: a Label (by Ref) and the node/cost the
// queue orders on.
type Item struct {
	Ref  label.Ref
	Node int32
	Cost float64
}

// innerHeap is the container/heap.Interface implementation, ordered by
// ascending Cost (min-heap), in the same shape as the teacher's nodePQ.
type innerHeap []Item

func (h innerHeap) Len() int            { return len(h) }
func (h innerHeap) Less(i, j int) bool  { return h[i].Cost < h[j].Cost }
func (h innerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *innerHeap) Push(x interface{}) { *h = append(*h, x.(Item)) }
func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

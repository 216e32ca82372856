package label

// Arena is an append-only store of Labels for a single direction of a
// single query. It owns every Label it hands out a Ref for; predecessors
// are indices into the same Arena and are never resolved across arenas
// (spec.md §9 "Cyclic predecessor graph").
type Arena struct {
	labels []Label
}

// NewArena returns an Arena with capacity pre-reserved for capacityHint
// labels, a reasonable starting point to avoid reallocation during a
// typical query (spec.md §5's pool-backed allocation recommendation pairs
// well with reusing one Arena per direction across queries via Reset).
func NewArena(capacityHint int) *Arena {
	return &Arena{labels: make([]Label, 0, capacityHint)}
}

// Add appends l to the arena and returns its Ref.
func (a *Arena) Add(l Label) Ref {
	a.labels = append(a.labels, l)
	return Ref(len(a.labels) - 1)
}

// Get returns the Label at ref. Callers must only pass refs obtained from
// this same Arena.
func (a *Arena) Get(ref Ref) Label {
	return a.labels[ref]
}

// Len returns the number of labels currently held.
func (a *Arena) Len() int { return len(a.labels) }

// Reset truncates the arena to zero length while retaining its backing
// array, so the next query reuses the allocation.
func (a *Arena) Reset() {
	a.labels = a.labels[:0]
}

// PathNodes walks the predecessor chain from ref back to its seed label and
// returns the node sequence in seed-to-ref order (i.e. already reversed
// from the walk direction).
func (a *Arena) PathNodes(ref Ref) []int32 {
	var reversed []int32
	for r := ref; r != NoRef; {
		l := a.labels[r]
		reversed = append(reversed, l.Node)
		r = l.Pred
	}
	nodes := make([]int32, len(reversed))
	for i, n := range reversed {
		nodes[len(reversed)-1-i] = n
	}
	return nodes
}

// PathLabels walks the predecessor chain from ref back to its seed label and
// returns the full Label sequence in seed-to-ref order, for callers that
// need more than just the node/edge id sequence (e.g. per-edge wideness,
// which depends on each hop's traversal time).
func (a *Arena) PathLabels(ref Ref) []Label {
	var reversed []Label
	for r := ref; r != NoRef; {
		l := a.labels[r]
		reversed = append(reversed, l)
		r = l.Pred
	}
	labels := make([]Label, len(reversed))
	for i, l := range reversed {
		labels[len(reversed)-1-i] = l
	}
	return labels
}

// PathEdges walks the predecessor chain from ref back to its seed label and
// returns the edge-id sequence in seed-to-ref order. The seed label itself
// (which carries NoEdge) contributes no entry.
func (a *Arena) PathEdges(ref Ref) []int32 {
	var reversed []int32
	for r := ref; r != NoRef; {
		l := a.labels[r]
		if l.LastEdge != NoEdge {
			reversed = append(reversed, l.LastEdge)
		}
		r = l.Pred
	}
	edges := make([]int32, len(reversed))
	for i, e := range reversed {
		edges[len(reversed)-1-i] = e
	}
	return edges
}

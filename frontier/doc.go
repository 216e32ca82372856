// Package frontier implements the per-direction Frontier Queue (C4): a
// min-priority queue on elapsed_cost, paired with a per-node frontier_count
// used by the Bidirectional Search Driver's adaptive pruning and stale-entry
// discard (spec.md §4.4, §4.5).
//
// The heap itself is grounded directly on the teacher's Dijkstra
// implementation (container/heap + a lazy-decrease-key discipline: a
// cheaper candidate is pushed again rather than repositioning an existing
// entry, and stale entries are discarded on pop).
package frontier

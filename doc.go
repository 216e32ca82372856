// Package flexiroute computes routes through a large time-dependent road
// network under a travel-time budget, optimizing "wideness" (preferred-road
// coverage) and/or turn count rather than minimizing travel time alone.
//
// RunSingleQuery is the entry point: given a Query it runs the Bidirectional
// Search Driver (package search), combines the surviving forward/backward
// labels at every meeting node (package join), and reduces them according to
// the Query's RoutingMode into a Result.
//
//	core/      — Graph & Profile Store (immutable, freely shared)
//	label/     — Label, the arena that owns them
//	labelset/  — per-(node, direction) dominance-pruned Label Sets
//	frontier/  — the per-direction expansion priority queue
//	search/    — the Bidirectional Search Driver
//	join/      — Join & Pareto Builder
//
// The core performs no I/O: a Store is built once from parsed graph data and
// shared across any number of concurrent queries; each query owns its own
// Label arenas, Label Sets, and Frontier Queues, freed at query end.
package flexiroute

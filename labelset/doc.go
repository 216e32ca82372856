// Package labelset implements the per-(node, direction) Pareto-dominance-
// pruned Label Set (C3): RoutingMode-parameterised dominance, and Store, the
// collection of Sets addressed by (node, direction).
//
// Dominance is driven by a single routing-mode-parameterised predicate
// (spec.md §9 "Routing-mode matrix") rather than one comparator per mode,
// and sets are kept as small flat slices rather than trees (spec.md §9
// "Pareto set maintenance": expected cardinality <= 16).
package labelset

// Package search implements the Bidirectional Search Driver (C5): it
// alternates forward and backward expansions, maintains a Meeting Set, and
// applies a budget cutoff plus a frontier-size-adaptive pruning policy.
//
// Overview:
//
//	Run primes two frontier.Queues (forward at the query source, backward
//	at the destination), then alternates expansion steps by comparing the
//	next-to-pop cost on each side (spec.md §4.5 "Direction alternation").
//	Each expansion relaxes the node's incident edges through the Graph &
//	Profile Store, builds candidate label.Labels, and inserts them into the
//	per-direction labelset.Store under dominance. Direction alternation
//	keeps the two fronts balanced, reducing total work versus a single-
//	direction search on typical road graphs.
//
// Configuration (spec.md §9 "Global mutable state"): FRONTIER_THRESHOLD is a
// field of SearchConfig, not a process-wide variable. SetAggressiveMode and
// SetBalancedMode only mutate a package-level *default* configuration that
// subsequently constructed SearchConfigs copy from; in-flight queries with
// their own SearchConfig value are unaffected, which is what makes
// concurrent queries with different thresholds safe.
package search

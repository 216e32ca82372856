// Package label defines the Label value type (C2) — a partial-path summary
// held at a node in a given search direction — and the Arena that owns
// labels for a single query.
//
// Labels are immutable once inserted: a Label's predecessor is a
// non-owning Ref into the Arena that created it, never a pointer, so a
// predecessor chain cannot straddle two arenas and cannot cycle (elapsed
// cost strictly increases along any chain by construction of the search
// driver). The Arena is reset (not freed) at the end of each query,
// retaining its backing array for reuse (spec.md §5's pool-backed
// allocation recommendation).
package label

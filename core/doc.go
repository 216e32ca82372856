// Package core defines the Graph & Profile Store: the immutable node/edge
// data, the time-dependent travel-time profile, and turn-geometry
// classification that the search engine reads edges from.
//
// Everything here is read-only once built: a Store is constructed from a
// parsed set of nodes and edges (the loader, out of scope for this module,
// is responsible for producing that data) and is then freely shared across
// concurrent queries.
//
//	store.go    — Store, neighbors_out/in, MaxSpeed, FIFO spot-check
//	profile.go  — per-edge piecewise-linear travel_time(t) and its inverse
//	turns.go    — classify_turn from edge bearings
//
// Invariant: every edge's travel-time profile must satisfy FIFO
// (t1 ≤ t2 ⇒ t1+τ(t1) ≤ t2+τ(t2)). A profile failing FIFO is a loader bug;
// Store.Validate performs a cheap sampling check, not an exhaustive proof.
package core

package labelset

import (
	"fmt"

	"github.com/kousik-kr/flexiroute/label"
)

// entry pairs a Ref with its precomputed Key so dominance tests never need
// to re-derive the objective vector from the Label itself.
type entry struct {
	ref label.Ref
	key Key
}

// Set is the Pareto-dominance-pruned collection of Labels for one
// (node, direction) pair (spec.md §4.3). At all times no two resident
// entries dominate each other.
type Set struct {
	items []entry
}

// Insert attempts to add ref with objective vector key. If any resident
// entry weakly dominates key, ref is rejected. Otherwise ref is inserted
// and every resident entry that key dominates is removed. Returns whether
// ref was retained, and the Refs of any residents it displaced (so the
// caller can invalidate their frontier-queue liveness, spec.md §4.5).
func (s *Set) Insert(ref label.Ref, key Key) (retained bool, displaced []label.Ref) {
	for _, e := range s.items {
		if Dominates(e.key, key) {
			return false, nil
		}
	}

	kept := s.items[:0]
	for _, e := range s.items {
		if Dominates(key, e.key) {
			displaced = append(displaced, e.ref)
			continue
		}
		kept = append(kept, e)
	}
	s.items = append(kept, entry{ref: ref, key: key})

	return true, displaced
}

// All returns the current survivors' Refs.
func (s *Set) All() []label.Ref {
	refs := make([]label.Ref, len(s.items))
	for i, e := range s.items {
		refs[i] = e.ref
	}
	return refs
}

// Len reports the number of surviving labels.
func (s *Set) Len() int { return len(s.items) }

// Validate re-scans the current survivors for a mutual-domination pair,
// brute-force, independent of the incremental bookkeeping Insert performs.
// It exists only for SearchConfig.Debug's assertion pass (spec.md §7): a
// healthy Set always passes since Insert enforces this on every call.
func (s *Set) Validate() error {
	for i, a := range s.items {
		for j, b := range s.items {
			if i == j {
				continue
			}
			if Dominates(a.key, b.key) {
				return fmt.Errorf("labelset: ref %d dominates surviving ref %d in the same Set", a.ref, b.ref)
			}
		}
	}
	return nil
}

// BestBy returns the Ref minimizing selector(label), used by the Join step
// for single-winner routing modes (spec.md §4.3 "best_by").
func BestBy(arena *label.Arena, refs []label.Ref, selector func(label.Label) float64) (label.Ref, bool) {
	if len(refs) == 0 {
		return label.NoRef, false
	}
	best := refs[0]
	bestKey := selector(arena.Get(best))
	for _, r := range refs[1:] {
		k := selector(arena.Get(r))
		if k < bestKey {
			best, bestKey = r, k
		}
	}
	return best, true
}

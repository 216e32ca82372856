package labelset

import (
	"sync"

	"github.com/kousik-kr/flexiroute/label"
)

// Store holds every (node, direction) Label Set for one query, addressed by
// node index. Normally mutated only by the search direction that owns a
// given side and read by the opposite direction through the Join step
// (spec.md §3); the Driver's optional parallel mode (spec.md §5) runs both
// directions concurrently, so every access goes through mu.
type Store struct {
	mode     RoutingMode
	forward  []Set
	backward []Set

	mu sync.Mutex
}

// NewStore allocates a Store with one empty Set per node, per direction.
func NewStore(numNodes int, mode RoutingMode) *Store {
	return &Store{
		mode:     mode,
		forward:  make([]Set, numNodes),
		backward: make([]Set, numNodes),
	}
}

func (s *Store) sets(dir label.Direction) []Set {
	if dir == label.Forward {
		return s.forward
	}
	return s.backward
}

// Insert computes l's objective vector under the Store's active mode and
// attempts to insert ref into the Set at (l.Node, l.Dir).
func (s *Store) Insert(ref label.Ref, l label.Label) (retained bool, displaced []label.Ref) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sets := s.sets(l.Dir)
	key := KeyOf(l, s.mode)
	retained, displaced = sets[l.Node].Insert(ref, key)
	return retained, displaced
}

// All returns the surviving Refs at (node, dir).
func (s *Store) All(dir label.Direction, node int32) []label.Ref {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets(dir)[node].All()
}

// NonEmpty reports whether (node, dir) currently has any surviving label;
// used to detect Meeting Set membership (spec.md §3).
func (s *Store) NonEmpty(dir label.Direction, node int32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets(dir)[node].Len() > 0
}

// Mode returns the Store's active routing mode.
func (s *Store) Mode() RoutingMode { return s.mode }

// ValidateNode re-checks the (node, dir) Set's non-domination invariant.
// Only called by the Driver's debug assertion pass (spec.md §7); unused
// outside SearchConfig.Debug since Insert already enforces the invariant
// incrementally.
func (s *Store) ValidateNode(dir label.Direction, node int32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets(dir)[node].Validate()
}

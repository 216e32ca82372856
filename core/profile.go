// File: profile.go
// Role: Time-dependent travel-time queries: TravelTime (forward), and
//       InverseTravelTime (latest departure for a given arrival, used to
//       seed the backward search per spec.md §4.5), plus EffectiveWidth.

package core

// TravelTime returns the travel time in minutes for departing edge idx at
// departure time t (minutes-from-midnight), by linear interpolation between
// the two enclosing breakpoints, clamped to the first/last segment outside
// the sampled range (spec.md §4.1).
func (s *Store) TravelTime(idx int32, t float64) (float64, error) {
	if int(idx) < 0 || int(idx) >= len(s.profiles) {
		return 0, ErrEdgeNotFound
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return s.profiles[idx].Predict(clampToRange(t, s.breakpoints)), nil
}

// InverseTravelTime returns the latest departure time from idx's tail such
// that arrival at idx's head is no later than arrival (minutes-from-
// midnight). Because the profile is FIFO (arrival = t + τ(t) is
// non-decreasing in t), this is a monotone function invertible by binary
// search over the breakpoint domain.
func (s *Store) InverseTravelTime(idx int32, arrival float64) (float64, error) {
	if int(idx) < 0 || int(idx) >= len(s.profiles) {
		return 0, ErrEdgeNotFound
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}
	pl := s.profiles[idx]
	bps := s.breakpoints

	arrivalAt := func(t float64) float64 { return t + pl.Predict(t) }

	lo, hi := bps[0], bps[len(bps)-1]
	if arrival <= arrivalAt(lo) {
		// Earlier than the earliest sampled arrival: extrapolate on the
		// first segment's constant travel time.
		return arrival - pl.Predict(lo), nil
	}
	if arrival >= arrivalAt(hi) {
		return arrival - pl.Predict(hi), nil
	}

	// Binary search for the departure t with arrivalAt(t) == arrival.
	for i := 0; i < 64; i++ {
		mid := lo + (hi-lo)/2
		a := arrivalAt(mid)
		if a < arrival {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo, nil
}

// EffectiveWidth returns the edge's effective width (meters) at time t:
// RushWidth when t falls in a configured rush window and the edge is a
// clearway (spec.md glossary: "Clearway"), BaseWidth otherwise.
func (s *Store) EffectiveWidth(idx int32, t float64) (float64, error) {
	e, err := s.Edge(idx)
	if err != nil {
		return 0, err
	}
	if !e.IsClearway() {
		return e.BaseWidth, nil
	}
	for _, w := range s.rushWindows {
		if w.contains(t) {
			return e.RushWidth, nil
		}
	}
	return e.BaseWidth, nil
}

// IsWide reports whether edge idx is "wide" at time t: its effective width
// meets or exceeds the configured width threshold (spec.md §3).
func (s *Store) IsWide(idx int32, t float64) (bool, error) {
	w, err := s.EffectiveWidth(idx, t)
	if err != nil {
		return false, err
	}
	return w >= s.widthThreshold, nil
}

// clampToRange clamps t into [bps[0], bps[len-1]].
func clampToRange(t float64, bps []float64) float64 {
	if t < bps[0] {
		return bps[0]
	}
	if t > bps[len(bps)-1] {
		return bps[len(bps)-1]
	}
	return t
}

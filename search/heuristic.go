package search

import (
	"math"

	"github.com/kousik-kr/flexiroute/core"
	"github.com/kousik-kr/flexiroute/label"
)

// earthRadiusMeters is the mean Earth radius used by Haversine.
const earthRadiusMeters = 6_371_000.0

// Haversine returns the great-circle distance in meters between two nodes
// (spec.md §4.3: "a valid choice is the Haversine distance divided by the
// maximum speed in the profile").
func Haversine(a, b core.Node) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// Heuristic is an admissible lower bound on the remaining travel time
// (minutes) from a node to the relevant end of the query, given a search
// direction (spec.md §4.3's h(node, direction)).
type Heuristic func(node int32, dir label.Direction) float64

// NewHeuristic builds a Heuristic bound by Haversine distance over speed,
// using maxSpeed (meters per minute) as the speed bound unless override is
// non-nil.
func NewHeuristic(store *core.Store, target core.Node, source core.Node, maxSpeed float64, override *float64) Heuristic {
	speed := maxSpeed
	if override != nil {
		speed = *override
	}
	if speed <= 0 {
		// No positive speed bound available: the heuristic degrades to
		// "no lower bound", which is always admissible (never overestimates).
		return func(int32, label.Direction) float64 { return 0 }
	}

	return func(node int32, dir label.Direction) float64 {
		n, err := store.Node(node)
		if err != nil {
			return 0
		}
		var other core.Node
		if dir == label.Forward {
			other = target // forward labels still need to reach the destination
		} else {
			other = source // backward labels still need to reach the source
		}
		return Haversine(n, other) / speed
	}
}

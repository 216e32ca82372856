// File: turns.go
// Role: ClassifyTurn(edge_in, edge_out) using the signed angle between the
//       two edges' bearings (spec.md §4.1).

package core

import "math"

// turnRightThreshold and turnSharpThreshold bucket the signed heading
// change between two consecutive edges, positive when turning clockwise
// (spec.md §4.1):
//
//	< 45deg            -> Straight (this includes every left turn)
//	[45deg, 135deg)    -> Right
//	>= 135deg          -> Sharp
const (
	turnRightThreshold = 45.0
	turnSharpThreshold = 135.0
)

// ClassifyTurn classifies the traversal (edgeIn -> edgeOut) at their shared
// vertex. A traversal that reverses directly back along the same physical
// edge (edgeOut.To == edgeIn.From) is a Uturn and is disallowed in
// expansion regardless of its angle bucket.
func (s *Store) ClassifyTurn(edgeIn, edgeOut int32) (TurnKind, error) {
	in, err := s.Edge(edgeIn)
	if err != nil {
		return Straight, err
	}
	out, err := s.Edge(edgeOut)
	if err != nil {
		return Straight, err
	}

	if out.To == in.From && out.From == in.To {
		return Uturn, nil
	}

	delta := angleDelta(in.Bearing, out.Bearing)
	switch {
	case delta >= turnSharpThreshold:
		return Sharp, nil
	case delta >= turnRightThreshold:
		return Right, nil
	default:
		return Straight, nil
	}
}

// angleDelta returns the signed heading change from one bearing to the next
// in degrees, folded into (-180, 180]; positive values turn clockwise
// (to the right).
func angleDelta(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d < 0 {
		d += 360
	}
	if d > 180 {
		d -= 360
	}
	return d
}

// BearingOf computes the initial bearing (degrees, [0,360)) from node a to
// node b using the standard forward-azimuth formula on a spherical Earth.
// Loaders may use this to populate Edge.Bearing; the core itself only
// consumes the precomputed value.
func BearingOf(a, b Node) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	y := math.Sin(dLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLng)
	theta := math.Atan2(y, x) * 180 / math.Pi

	return math.Mod(theta+360, 360)
}

package join

import (
	"github.com/kousik-kr/flexiroute/label"
)

// Candidate is one admissible (F, B) combination reconstructed into a full
// source-to-destination path (spec.md §4.6).
type Candidate struct {
	MeetingNode int32

	PathNodes []int32
	PathEdges []int32
	WideEdges []int32

	TotalCost          float64
	WidenessSum        float64
	DistanceSum        float64
	WidenessPercentage float64
	RightTurns         int32
	SharpTurns         int32

	ForwardRef  label.Ref
	BackwardRef label.Ref
}

// dominatesParetoMetric reports whether a weakly dominates b on
// (wideness_percentage, right_turns) with at least one strict improvement
// (spec.md §4.6's WIDENESS_AND_TURNS output policy): higher wideness is
// better, fewer right turns is better.
func dominatesParetoMetric(a, b Candidate) bool {
	if a.WidenessPercentage < b.WidenessPercentage || a.RightTurns > b.RightTurns {
		return false
	}
	return a.WidenessPercentage > b.WidenessPercentage || a.RightTurns < b.RightTurns
}

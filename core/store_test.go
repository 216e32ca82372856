package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kousik-kr/flexiroute/core"
)

// buildGrid builds a small 2x3 grid: nodes 0..5 laid out as
//
//	0 - 1 - 2
//	|   |   |
//	3 - 4 - 5
//
// with uniform base width 3.5 and three edges bumped to rush width 4.5,
// matching spec.md §8 scenario 1's seed graph.
func buildGrid(t *testing.T) *core.Store {
	t.Helper()

	nodes := []core.Node{
		{ID: 0, Lat: 0, Lng: 0},
		{ID: 1, Lat: 0, Lng: 1},
		{ID: 2, Lat: 0, Lng: 2},
		{ID: 3, Lat: 1, Lng: 0},
		{ID: 4, Lat: 1, Lng: 1},
		{ID: 5, Lat: 1, Lng: 2},
	}
	breakpoints := []float64{0, 360, 420, 480, 540, 600, 900, 960, 1020, 1080, 1140, 1440}
	widthBreakpoints := append([]float64(nil), breakpoints...)

	mk := func(id, from, to int32, wide bool) core.Edge {
		base := 3.5
		rush := 3.5
		if wide {
			rush = 4.5
		}
		costs := make([]float64, len(breakpoints))
		for i := range costs {
			costs[i] = 5
		}
		return core.Edge{
			ID: id, From: from, To: to, Distance: 100,
			BaseWidth: base, RushWidth: rush,
			Bearing: core.BearingOf(nodes[from], nodes[to]),
			Costs:   costs,
		}
	}

	edges := []core.Edge{
		mk(0, 0, 1, true),
		mk(1, 1, 2, false),
		mk(2, 0, 3, false),
		mk(3, 1, 4, true),
		mk(4, 2, 5, false),
		mk(5, 3, 4, false),
		mk(6, 4, 5, true),
	}

	store, err := core.NewStore(nodes, edges, breakpoints, widthBreakpoints, core.WithWidthThreshold(4.0))
	require.NoError(t, err)

	return store
}

func TestNewStore_RejectsTooFewBreakpoints(t *testing.T) {
	_, err := core.NewStore(nil, nil, []float64{0}, nil)
	require.ErrorIs(t, err, core.ErrBreakpointsTooFew)
}

func TestNewStore_RejectsUnsortedBreakpoints(t *testing.T) {
	_, err := core.NewStore(nil, nil, []float64{10, 5}, nil)
	require.ErrorIs(t, err, core.ErrBreakpointsNotSorted)
}

func TestNewStore_RejectsCostCardinalityMismatch(t *testing.T) {
	nodes := []core.Node{{ID: 0}, {ID: 1}}
	edges := []core.Edge{{ID: 0, From: 0, To: 1, Costs: []float64{1, 2}}}
	_, err := core.NewStore(nodes, edges, []float64{0, 10, 20}, nil)
	require.ErrorIs(t, err, core.ErrCostCardinality)
}

func TestStore_NeighborsOrdering(t *testing.T) {
	s := buildGrid(t)
	out, err := s.NeighborsOut(1)
	require.NoError(t, err)
	require.Equal(t, []int32{1, 3}, out)

	in, err := s.NeighborsIn(4)
	require.NoError(t, err)
	require.Equal(t, []int32{3, 5}, in)
}

func TestStore_TravelTime_ClampsOutOfRange(t *testing.T) {
	s := buildGrid(t)
	early, err := s.TravelTime(0, -1000)
	require.NoError(t, err)
	late, err := s.TravelTime(0, 1_000_000)
	require.NoError(t, err)
	require.InDelta(t, 5.0, early, 1e-9)
	require.InDelta(t, 5.0, late, 1e-9)
}

func TestStore_InverseTravelTime_RoundTrips(t *testing.T) {
	s := buildGrid(t)
	depart := 480.0
	tt, err := s.TravelTime(0, depart)
	require.NoError(t, err)
	arrival := depart + tt

	gotDepart, err := s.InverseTravelTime(0, arrival)
	require.NoError(t, err)
	require.InDelta(t, depart, gotDepart, 1e-2)
}

func TestStore_EffectiveWidth_RushVsBase(t *testing.T) {
	s := buildGrid(t)
	base, err := s.EffectiveWidth(0, 100) // far from any rush window
	require.NoError(t, err)
	require.InDelta(t, 3.5, base, 1e-9)

	rush, err := s.EffectiveWidth(0, 480) // inside morning rush
	require.NoError(t, err)
	require.InDelta(t, 4.5, rush, 1e-9)
}

func TestStore_IsWide_RespectsThreshold(t *testing.T) {
	s := buildGrid(t)
	wide, err := s.IsWide(0, 480)
	require.NoError(t, err)
	require.True(t, wide)

	notWide, err := s.IsWide(0, 100)
	require.NoError(t, err)
	require.False(t, notWide)
}

func TestStore_MaxSpeed_PositiveAfterLoad(t *testing.T) {
	s := buildGrid(t)
	require.Greater(t, s.MaxSpeed(), 0.0)
}

func TestStore_Validate_PassesFIFOProfiles(t *testing.T) {
	s := buildGrid(t)
	require.NoError(t, s.Validate())
}

package search_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kousik-kr/flexiroute/core"
	"github.com/kousik-kr/flexiroute/labelset"
	"github.com/kousik-kr/flexiroute/search"
)

type int32Slice []int32

func (s int32Slice) Len() int           { return len(s) }
func (s int32Slice) Less(i, j int) bool { return s[i] < s[j] }
func (s int32Slice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// buildChain builds a 4-node graph: 0 -> 1 -> 2 is a connected chain (5
// minutes, 100m per edge), node 3 is isolated. Chain nodes sit about 56m
// apart, so the Haversine heuristic stays a lower bound.
func buildChain(t *testing.T) *core.Store {
	t.Helper()

	nodes := []core.Node{
		{ID: 0, Lat: 0, Lng: 0},
		{ID: 1, Lat: 0, Lng: 0.0005},
		{ID: 2, Lat: 0, Lng: 0.001},
		{ID: 3, Lat: 5, Lng: 5},
	}
	breakpoints := []float64{0, 600, 1440}
	costs := []float64{5, 5, 5}

	edges := []core.Edge{
		{ID: 0, From: 0, To: 1, Distance: 100, BaseWidth: 5, RushWidth: 5, Bearing: core.BearingOf(nodes[0], nodes[1]), Costs: costs},
		{ID: 1, From: 1, To: 2, Distance: 100, BaseWidth: 5, RushWidth: 5, Bearing: core.BearingOf(nodes[1], nodes[2]), Costs: costs},
	}

	store, err := core.NewStore(nodes, edges, breakpoints, breakpoints, core.WithWidthThreshold(4.0))
	require.NoError(t, err)
	return store
}

func TestRun_FindsMeetingWithinBudget(t *testing.T) {
	store := buildChain(t)
	cfg := search.NewSearchConfig()

	res, err := search.Run(context.Background(), store, labelset.WidenessOnly, 0, 2, 0, 100, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, res.MeetingNodes)
	require.InDelta(t, 10.0, res.BestMeetingCost, 1e-6)
}

func TestRun_UnreachableWhenDisconnected(t *testing.T) {
	store := buildChain(t)
	cfg := search.NewSearchConfig()

	_, err := search.Run(context.Background(), store, labelset.WidenessOnly, 0, 3, 0, 100, cfg)
	require.ErrorIs(t, err, search.ErrUnreachable)
}

func TestRun_UnreachableWhenBudgetTooTight(t *testing.T) {
	store := buildChain(t)
	cfg := search.NewSearchConfig()

	_, err := search.Run(context.Background(), store, labelset.WidenessOnly, 0, 2, 0, 1, cfg)
	require.ErrorIs(t, err, search.ErrUnreachable)
}

func TestRun_ParallelAgreesWithSequential(t *testing.T) {
	store := buildChain(t)

	seq, err := search.Run(context.Background(), store, labelset.WidenessOnly, 0, 2, 0, 100, search.NewSearchConfig())
	require.NoError(t, err)

	par, err := search.Run(context.Background(), store, labelset.WidenessOnly, 0, 2, 0, 100, search.NewSearchConfig(search.WithParallel()))
	require.NoError(t, err)

	require.InDelta(t, seq.BestMeetingCost, par.BestMeetingCost, 1e-6)
}

func TestRun_DebugAssertionPassSurvivesHealthyRun(t *testing.T) {
	store := buildChain(t)

	res, err := search.Run(context.Background(), store, labelset.WidenessOnly, 0, 2, 0, 100, search.NewSearchConfig(search.WithDebug()))
	require.NoError(t, err)
	require.NotEmpty(t, res.MeetingNodes)
}

func TestRun_MeetingNodesAreSortedForDeterminism(t *testing.T) {
	store := buildChain(t)
	cfg := search.NewSearchConfig()

	res, err := search.Run(context.Background(), store, labelset.WidenessOnly, 0, 2, 0, 100, cfg)
	require.NoError(t, err)
	require.True(t, sort.IsSorted(int32Slice(res.MeetingNodes)))
}

func TestRun_RespectsCanceledContext(t *testing.T) {
	store := buildChain(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Run(ctx, store, labelset.WidenessOnly, 0, 2, 0, 100, search.NewSearchConfig(search.WithStepCap(10_000_000)))
	// A tiny graph may finish before the 256-step cancellation check fires;
	// either outcome (finding the meeting, or surfacing the cancellation) is
	// acceptable here, as long as the call doesn't hang or panic.
	if err != nil {
		require.ErrorIs(t, err, search.ErrCanceled)
	}
}

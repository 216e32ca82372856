package flexiroute_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	flexiroute "github.com/kousik-kr/flexiroute"
	"github.com/kousik-kr/flexiroute/core"
	"github.com/kousik-kr/flexiroute/labelset"
	"github.com/kousik-kr/flexiroute/search"
)

// buildChain builds a 4-node graph: 0 -> 1 -> 2 is a connected chain (5
// minutes, 100m per edge, width 5), node 3 is isolated. Chain nodes sit
// about 56m apart, so the Haversine heuristic stays a lower bound.
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

func TestRunSingleQuery_SucceedsOnConnectedChain(t *testing.T) {
	store := buildChain(t)
	q := flexiroute.Query{Source: 0, Destination: 2, DepartureTime: 0, Budget: 100, RoutingMode: labelset.WidenessOnly}

	res := flexiroute.RunSingleQuery(context.Background(), store, q, search.NewSearchConfig())
	require.True(t, res.Success)
	require.Equal(t, []int32{0, 1, 2}, res.PathNodes)
	require.InDelta(t, 10.0, res.TravelTime, 1e-6)
	require.InDelta(t, 200.0, res.TotalDistance, 1e-6)
	require.Equal(t, 2, res.WideEdgeCount)
	require.ElementsMatch(t, []int32{0, 1}, res.WideEdgeIndices)
	require.Nil(t, res.OptimalDepartureTime)
}

func TestRunSingleQuery_SourceEqualsDestinationIsUnreachable(t *testing.T) {
	store := buildChain(t)
	q := flexiroute.Query{Source: 1, Destination: 1, Budget: 100, RoutingMode: labelset.WidenessOnly}

	res := flexiroute.RunSingleQuery(context.Background(), store, q, search.NewSearchConfig())
	require.False(t, res.Success)
	require.Equal(t, flexiroute.Unreachable, res.Err.Kind)
}

func TestRunSingleQuery_DisconnectedIsUnreachable(t *testing.T) {
	store := buildChain(t)
	q := flexiroute.Query{Source: 0, Destination: 3, Budget: 100, RoutingMode: labelset.WidenessOnly}

	res := flexiroute.RunSingleQuery(context.Background(), store, q, search.NewSearchConfig())
	require.False(t, res.Success)
	require.Equal(t, flexiroute.Unreachable, res.Err.Kind)
}

func TestRunSingleQuery_TightBudgetIsUnreachable(t *testing.T) {
	store := buildChain(t)
	q := flexiroute.Query{Source: 0, Destination: 2, Budget: 1, RoutingMode: labelset.WidenessOnly}

	res := flexiroute.RunSingleQuery(context.Background(), store, q, search.NewSearchConfig())
	require.False(t, res.Success)
	require.Equal(t, flexiroute.Unreachable, res.Err.Kind)
}

func TestRunSingleQuery_OutOfRangeNodeIsInvalidQuery(t *testing.T) {
	store := buildChain(t)
	q := flexiroute.Query{Source: 0, Destination: 99, Budget: 100, RoutingMode: labelset.WidenessOnly}

	res := flexiroute.RunSingleQuery(context.Background(), store, q, search.NewSearchConfig())
	require.False(t, res.Success)
	require.Equal(t, flexiroute.InvalidQuery, res.Err.Kind)
}

func TestRunSingleQuery_NegativeBudgetIsInvalidQuery(t *testing.T) {
	store := buildChain(t)
	q := flexiroute.Query{Source: 0, Destination: 2, Budget: -1, RoutingMode: labelset.WidenessOnly}

	res := flexiroute.RunSingleQuery(context.Background(), store, q, search.NewSearchConfig())
	require.False(t, res.Success)
	require.Equal(t, flexiroute.InvalidQuery, res.Err.Kind)
}

func TestRunSingleQuery_ZeroBudgetIsBudgetExhausted(t *testing.T) {
	store := buildChain(t)
	q := flexiroute.Query{Source: 0, Destination: 2, Budget: 0, RoutingMode: labelset.WidenessOnly}

	res := flexiroute.RunSingleQuery(context.Background(), store, q, search.NewSearchConfig())
	require.False(t, res.Success)
	require.Equal(t, flexiroute.BudgetExhausted, res.Err.Kind)
}

func TestRunSingleQuery_DepartureWindowRecordsOptimalDepartureTime(t *testing.T) {
	store := buildChain(t)
	q := flexiroute.Query{Source: 0, Destination: 2, DepartureTime: 0, Interval: 600, Budget: 100, RoutingMode: labelset.WidenessOnly}

	res := flexiroute.RunSingleQuery(context.Background(), store, q, search.NewSearchConfig())
	require.True(t, res.Success)
	require.NotNil(t, res.OptimalDepartureTime)

	k := store.NumBreakpoints()
	valid := false
	for i := 0; i < k; i++ {
		if *res.OptimalDepartureTime == q.DepartureTime+float64(i)*q.Interval {
			valid = true
			break
		}
	}
	require.True(t, valid, "OptimalDepartureTime %v must be one of the enumerated departure instants", *res.OptimalDepartureTime)
}

func TestRunSingleQuery_GeoJSONRendersPrimaryPath(t *testing.T) {
	store := buildChain(t)
	q := flexiroute.Query{Source: 0, Destination: 2, Budget: 100, RoutingMode: labelset.WidenessOnly}

	res := flexiroute.RunSingleQuery(context.Background(), store, q, search.NewSearchConfig())
	require.True(t, res.Success)

	fc := res.GeoJSON(store)
	require.NotNil(t, fc)
	require.Len(t, fc.Features, 1)
}

func TestMarshalResult_EncodesSuccessfulResult(t *testing.T) {
	res := &flexiroute.Result{Success: true, PathNodes: []int32{0, 1, 2}, RoutingMode: labelset.WidenessOnly}

	encoded, err := res.MarshalResult()
	require.NoError(t, err)
	require.Contains(t, string(encoded), "PathNodes")
}

func TestUnmarshalQuery_RoundTripsFields(t *testing.T) {
	decoded, err := flexiroute.UnmarshalQuery([]byte(`{"Source":0,"Destination":2,"Budget":100,"RoutingMode":0}`))
	require.NoError(t, err)
	require.Equal(t, int32(0), decoded.Source)
	require.Equal(t, int32(2), decoded.Destination)
	require.Equal(t, float64(100), decoded.Budget)
	require.Equal(t, labelset.WidenessOnly, decoded.RoutingMode)
}

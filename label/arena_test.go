package label_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kousik-kr/flexiroute/label"
)

func TestArena_AddAndGet(t *testing.T) {
	a := label.NewArena(4)
	r := a.Add(label.Label{Node: 7, ElapsedCost: 3, LastEdge: label.NoEdge, Pred: label.NoRef})
	got := a.Get(r)
	require.Equal(t, int32(7), got.Node)
	require.Equal(t, 1, a.Len())
}

func TestArena_PathNodesAndEdges(t *testing.T) {
	a := label.NewArena(4)
	r0 := a.Add(label.Label{Node: 0, LastEdge: label.NoEdge, Pred: label.NoRef})
	r1 := a.Add(label.Label{Node: 1, LastEdge: 10, Pred: r0})
	r2 := a.Add(label.Label{Node: 2, LastEdge: 11, Pred: r1})

	require.Equal(t, []int32{0, 1, 2}, a.PathNodes(r2))
	require.Equal(t, []int32{10, 11}, a.PathEdges(r2))

	chain := a.PathLabels(r2)
	require.Len(t, chain, 3)
	require.Equal(t, []int32{0, 1, 2}, []int32{chain[0].Node, chain[1].Node, chain[2].Node})
}

func TestArena_Reset(t *testing.T) {
	a := label.NewArena(2)
	a.Add(label.Label{Node: 0})
	a.Add(label.Label{Node: 1})
	require.Equal(t, 2, a.Len())
	a.Reset()
	require.Equal(t, 0, a.Len())
}

package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kousik-kr/flexiroute/frontier"
	"github.com/kousik-kr/flexiroute/label"
)

func TestQueue_PopsInAscendingCostOrder(t *testing.T) {
	q := frontier.New(4)
	q.Push(frontier.Item{Ref: 0, Node: 1, Cost: 9})
	q.Push(frontier.Item{Ref: 1, Node: 2, Cost: 3})
	q.Push(frontier.Item{Ref: 2, Node: 3, Cost: 6})

	var costs []float64
	for {
		it, ok := q.Pop()
		if !ok {
			break
		}
		costs = append(costs, it.Cost)
	}
	require.Equal(t, []float64{3, 6, 9}, costs)
}

func TestQueue_FrontierCountTracksPushPop(t *testing.T) {
	q := frontier.New(2)
	q.Push(frontier.Item{Node: 0, Cost: 1})
	q.Push(frontier.Item{Node: 0, Cost: 2})
	require.Equal(t, int32(2), q.FrontierCount(0))

	q.Pop()
	require.Equal(t, int32(1), q.FrontierCount(0))
}

func TestQueue_DiscountNeverGoesNegative(t *testing.T) {
	q := frontier.New(1)
	q.Discount(0)
	q.Discount(0)
	require.Equal(t, int32(0), q.FrontierCount(0))
}

func TestQueue_PeekEmpty(t *testing.T) {
	q := frontier.New(1)
	_, ok := q.Peek()
	require.False(t, ok)
}

func TestQueue_Size(t *testing.T) {
	q := frontier.New(1)
	q.Push(frontier.Item{Ref: label.Ref(0), Node: 0, Cost: 1})
	require.Equal(t, 1, q.Size())
}

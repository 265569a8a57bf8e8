package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/frontier"
)

func TestQueue_Empty(t *testing.T) {
	q := frontier.New[string]()
	require.True(t, q.IsEmpty())
	require.Equal(t, 0, q.Len())
	_, _, ok := q.PopMin()
	require.False(t, ok)
	require.False(t, q.Contains("A"))
}

// TestQueue_PriorityOrder pops strictly by priority when all differ.
func TestQueue_PriorityOrder(t *testing.T) {
	q := frontier.New[string]()
	q.Push("C", 7)
	q.Push("A", 1)
	q.Push("B", 4)

	var got []string
	for !q.IsEmpty() {
		item, _, ok := q.PopMin()
		require.True(t, ok)
		got = append(got, item)
	}
	require.Equal(t, []string{"A", "B", "C"}, got)
}

// TestQueue_TieBreakFirstInserted checks equal priorities leave in push order.
func TestQueue_TieBreakFirstInserted(t *testing.T) {
	q := frontier.New[int]()
	for _, v := range []int{50, 10, 40, 20, 30} {
		q.Push(v, 3)
	}
	q.Push(99, 2)

	want := []int{99, 50, 10, 40, 20, 30}
	for _, w := range want {
		item, _, ok := q.PopMin()
		require.True(t, ok)
		require.Equal(t, w, item)
	}
}

// TestQueue_Duplicates checks membership survives until the last copy leaves.
func TestQueue_Duplicates(t *testing.T) {
	q := frontier.New[string]()
	q.Push("X", 5)
	q.Push("X", 2)
	require.Equal(t, 2, q.Len())
	require.True(t, q.Contains("X"))

	item, prio, ok := q.PopMin()
	require.True(t, ok)
	require.Equal(t, "X", item)
	require.Equal(t, 2, prio)
	require.True(t, q.Contains("X"), "stale copy still queued")

	_, prio, _ = q.PopMin()
	require.Equal(t, 5, prio)
	require.False(t, q.Contains("X"))
	require.True(t, q.IsEmpty())
}

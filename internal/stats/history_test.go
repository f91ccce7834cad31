package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeHistory_DedupByMonth_NewWins(t *testing.T) {
	existing := []Bucket{
		{Month: "2024-01", Subscribers: 900, TotalViews: 100},
		{Month: "2024-02", Subscribers: 950, TotalViews: 200},
	}
	fresh := []Bucket{
		{Month: "2024-02", Subscribers: 1000, TotalViews: 250},
		{Month: "2024-03", Subscribers: 1000, TotalViews: 300},
	}

	merged := MergeHistory(existing, fresh)
	require.Len(t, merged, 3)

	assert.Equal(t, "2024-01", merged[0].Month)
	assert.Equal(t, int64(100), merged[0].TotalViews)

	// The overlapping month keeps the fresh computation.
	assert.Equal(t, "2024-02", merged[1].Month)
	assert.Equal(t, int64(250), merged[1].TotalViews)
	assert.Equal(t, int64(1000), merged[1].Subscribers)

	assert.Equal(t, "2024-03", merged[2].Month)
}

func TestMergeHistory_DropsBadMonthKeys(t *testing.T) {
	existing := []Bucket{
		{Month: "", TotalViews: 1},
		{Month: "not-a-month", TotalViews: 2},
		{Month: "2024-01", TotalViews: 3},
	}

	merged := MergeHistory(existing, nil)
	require.Len(t, merged, 1)
	assert.Equal(t, "2024-01", merged[0].Month)
}

func TestMergeHistory_SortsAscending(t *testing.T) {
	merged := MergeHistory(
		[]Bucket{{Month: "2024-05"}, {Month: "2023-12"}},
		[]Bucket{{Month: "2024-02"}},
	)
	require.Len(t, merged, 3)
	assert.Equal(t, "2023-12", merged[0].Month)
	assert.Equal(t, "2024-02", merged[1].Month)
	assert.Equal(t, "2024-05", merged[2].Month)
}

func TestMergeHistory_GainedSubscribersIsFirstDifference(t *testing.T) {
	merged := MergeHistory(nil, []Bucket{
		{Month: "2024-01", Subscribers: 1000, GainedSubscribers: 999},
		{Month: "2024-02", Subscribers: 1200},
		{Month: "2024-03", Subscribers: 1100},
	})

	require.Len(t, merged, 3)
	assert.Equal(t, int64(0), merged[0].GainedSubscribers, "first row gain is pinned to zero")
	assert.Equal(t, int64(200), merged[1].GainedSubscribers)
	assert.Equal(t, int64(-100), merged[2].GainedSubscribers)
}

func TestMergeHistory_Idempotent(t *testing.T) {
	fresh := []Bucket{
		{Month: "2024-01", Subscribers: 1000, TotalViews: 10},
		{Month: "2024-02", Subscribers: 1100, TotalViews: 20},
	}

	once := MergeHistory(nil, fresh)
	twice := MergeHistory(once, fresh)
	assert.Equal(t, once, twice)
}

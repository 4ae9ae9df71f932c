package reviewControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeRatingStats(t *testing.T) {
	stats := ComputeRatingStats([]int{5, 5, 4, 3, 1})

	assert.Equal(t, int64(5), stats.TotalReviews)
	assert.Equal(t, 3.6, stats.AverageRating)
	assert.Equal(t, map[string]int64{"1": 1, "2": 0, "3": 1, "4": 1, "5": 2}, stats.Distribution)
}

func TestComputeRatingStatsRounding(t *testing.T) {
	// 4 + 4 + 5 = 13 / 3 = 4.333... -> 4.3
	stats := ComputeRatingStats([]int{4, 4, 5})
	assert.Equal(t, 4.3, stats.AverageRating)

	// 4 + 5 = 9 / 2 = 4.5 stays 4.5
	stats = ComputeRatingStats([]int{4, 5})
	assert.Equal(t, 4.5, stats.AverageRating)
}

func TestComputeRatingStatsEmpty(t *testing.T) {
	stats := ComputeRatingStats(nil)

	assert.Equal(t, int64(0), stats.TotalReviews)
	assert.Zero(t, stats.AverageRating)
	assert.Equal(t, map[string]int64{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}, stats.Distribution)
}

func TestComputeRatingStatsIgnoresOutOfRange(t *testing.T) {
	stats := ComputeRatingStats([]int{0, 6, 5, -1})

	assert.Equal(t, int64(1), stats.TotalReviews)
	assert.Equal(t, 5.0, stats.AverageRating)
}

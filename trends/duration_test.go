package trends

import (
	"testing"

	"github.com/mager/songstory/songs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuarterMinute(t *testing.T) {
	assert.Equal(t, 3.5, QuarterMinute(3.5))
	assert.Equal(t, 3.25, QuarterMinute(3.3))
	assert.Equal(t, 3.5, QuarterMinute(3.4))
	// Halfway values round to even quarters.
	assert.Equal(t, 3.0, QuarterMinute(3.125))
}

func TestLowessFollowsLine(t *testing.T) {
	var x, y []float64
	for i := 0; i < 20; i++ {
		x = append(x, float64(i))
		y = append(y, 2*float64(i)+1)
	}

	got := Lowess(x, y, 0.3)
	require.Len(t, got, 20)
	for i := range got {
		assert.InDelta(t, y[i], got[i], 1e-6)
	}
}

func TestLowessSmoothsNoise(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	y := []float64{10, 30, 10, 30, 10, 30, 10, 30, 10, 30}

	got := Lowess(x, y, 0.5)
	for _, v := range got {
		assert.Greater(t, v, 10.0)
		assert.Less(t, v, 30.0)
	}
}

func TestLowessDegenerate(t *testing.T) {
	assert.Empty(t, Lowess(nil, nil, 0.3))
	assert.Equal(t, []float64{7}, Lowess([]float64{1}, []float64{7}, 0.3))
}

func TestDurationPopularity(t *testing.T) {
	list := []songs.Song{
		{DurationMs: 180000, Popularity: 40},
		{DurationMs: 185000, Popularity: 60},
		{DurationMs: 240000, Popularity: 70},
		{DurationMs: 300000, Popularity: 20},
	}

	got := DurationPopularity(list)
	assert.Equal(t, []DurationBin{
		{Minutes: 3, Popularity: 50, Count: 2},
		{Minutes: 4, Popularity: 70, Count: 1},
		{Minutes: 5, Popularity: 20, Count: 1},
	}, got.Bins)
	require.Len(t, got.Trend, 3)
	assert.Equal(t, 3.0, got.Trend[0].X)
	assert.Equal(t, 5.0, got.Trend[2].X)
}

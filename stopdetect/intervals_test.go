package stopdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uyouii/trajectory-algorithms/model"
)

func TestIntervalIter(t *testing.T) {
	t.Run("one interval per label run", func(t *testing.T) {
		it := NewIntervalIter(
			[]int{0, 0, 1, 1, model.Outlier},
			[]float64{0, 10, 20, 30, 40},
			100,
		)
		assert.Equal(t, []model.Interval{
			{Label: 0, Start: 0, End: 10},
			{Label: 1, Start: 20, End: 30},
			{Label: model.Outlier, Start: 40, End: 40},
		}, it.Collect())
	})

	t.Run("time gap splits a run of one label", func(t *testing.T) {
		it := NewIntervalIter(
			[]int{0, 0, 0},
			[]float64{0, 10, 500},
			100,
		)
		assert.Equal(t, []model.Interval{
			{Label: 0, Start: 0, End: 10},
			{Label: 0, Start: 500, End: 500},
		}, it.Collect())
	})

	t.Run("gap equal to the threshold does not split", func(t *testing.T) {
		it := NewIntervalIter([]int{0, 0}, []float64{0, 100}, 100)
		assert.Equal(t, []model.Interval{{Label: 0, Start: 0, End: 100}}, it.Collect())
	})

	t.Run("empty input", func(t *testing.T) {
		it := NewIntervalIter(nil, nil, 100)
		_, ok := it.Next()
		assert.False(t, ok)
		assert.Empty(t, it.Collect())
	})

	t.Run("iterator is one pass", func(t *testing.T) {
		it := NewIntervalIter([]int{0, 1}, []float64{0, 1}, 100)
		first := it.Collect()
		require.Len(t, first, 2)
		assert.Empty(t, it.Collect())
	})
}

func TestIntervalsTileTheTimeRange(t *testing.T) {
	labels := []int{0, 0, model.Outlier, 1, 1, 1, 0, 0}
	times := []float64{0, 10, 20, 30, 40, 300, 310, 320}
	maxTimeBetween := 100.0

	intervals := NewIntervalIter(labels, times, maxTimeBetween).Collect()
	require.NotEmpty(t, intervals)

	assert.InDelta(t, times[0], intervals[0].Start, 1e-12)
	assert.InDelta(t, times[len(times)-1], intervals[len(intervals)-1].End, 1e-12)

	for i, iv := range intervals {
		assert.LessOrEqual(t, iv.Start, iv.End)
		if i > 0 {
			assert.Greater(t, iv.Start, intervals[i-1].End, "intervals must not overlap")
		}
	}

	// no interval spans a gap larger than maxTimeBetween
	for _, iv := range intervals {
		for i := 1; i < len(times); i++ {
			if times[i-1] >= iv.Start && times[i] <= iv.End {
				assert.LessOrEqual(t, times[i]-times[i-1], maxTimeBetween)
			}
		}
	}
}

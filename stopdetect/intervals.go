package stopdetect

import "github.com/uyouii/trajectory-algorithms/model"

// IntervalIter compresses a per-sample label vector into visit intervals in a
// single forward pass. A run of identical labels is cut when the label
// changes or when the gap between consecutive samples exceeds maxTimeBetween.
// The iterator is not restartable; collect its output or rebuild it.
type IntervalIter struct {
	labels         []int
	times          []float64
	maxTimeBetween float64
	pos            int
}

// NewIntervalIter builds an iterator over (label, time) pairs. labels and
// times must have equal length.
func NewIntervalIter(labels []int, times []float64, maxTimeBetween float64) *IntervalIter {
	return &IntervalIter{
		labels:         labels,
		times:          times,
		maxTimeBetween: maxTimeBetween,
	}
}

func (it *IntervalIter) Next() (model.Interval, bool) {
	if it.pos >= len(it.labels) {
		return model.Interval{}, false
	}

	start := it.pos
	label := it.labels[start]
	end := start
	for end+1 < len(it.labels) &&
		it.labels[end+1] == label &&
		it.times[end+1]-it.times[end] <= it.maxTimeBetween {
		end++
	}
	it.pos = end + 1

	return model.Interval{
		Label: label,
		Start: it.times[start],
		End:   it.times[end],
	}, true
}

// Collect drains the iterator into a slice.
func (it *IntervalIter) Collect() []model.Interval {
	res := []model.Interval{}
	for {
		interval, ok := it.Next()
		if !ok {
			return res
		}
		res = append(res, interval)
	}
}

// sampleTimes returns the trajectory's timestamps, synthesizing ordinal ones
// when the input had no timestamp column.
func sampleTimes(traj *model.Trajectory) []float64 {
	times := make([]float64, traj.Len())
	for i, smp := range traj.Samples {
		if traj.HasTime {
			times[i] = smp.Time
		} else {
			times[i] = float64(i)
		}
	}
	return times
}

package stopdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uyouii/trajectory-algorithms/model"
)

func TestProjectEventLabels(t *testing.T) {
	partition := model.Partition{0: 0, 1: 0, 2: 1}

	t.Run("singletons resolve to outlier when disabled", func(t *testing.T) {
		labels := projectEventLabels(partition, 5, false)
		assert.Equal(t, []int{0, 0, 1, model.Outlier, model.Outlier}, labels)
	})

	t.Run("singletons get fresh unique ids when enabled", func(t *testing.T) {
		labels := projectEventLabels(partition, 5, true)
		assert.Equal(t, []int{0, 0, 1, 2, 3}, labels)
	})

	t.Run("singleton ids never collide with oracle ids", func(t *testing.T) {
		// oracle ids need not be contiguous
		sparse := model.Partition{0: 0, 1: 7}
		labels := projectEventLabels(sparse, 4, true)
		assert.Equal(t, []int{0, 7, 8, 9}, labels)
	})

	t.Run("empty partition", func(t *testing.T) {
		labels := projectEventLabels(model.Partition{}, 2, true)
		assert.Equal(t, []int{0, 1}, labels)
	})
}

func TestExpandLabels(t *testing.T) {
	eventLabels := []int{4, model.Outlier, 2}
	eventMap := model.EventMap{0, 0, model.NoEvent, 1, 2, 2, model.NoEvent}

	labels := expandLabels(eventLabels, eventMap)

	assert.Len(t, labels, len(eventMap))
	assert.Equal(t, []int{4, 4, model.Outlier, model.Outlier, 2, 2, model.Outlier}, labels)
}

func TestExpandLabelsEmpty(t *testing.T) {
	assert.Empty(t, expandLabels(nil, model.EventMap{}))
}

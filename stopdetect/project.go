package stopdetect

import "github.com/uyouii/trajectory-algorithms/model"

// projectEventLabels turns the oracle partition into a label per event.
// Events absent from the partition are singletons: with labelSingleton they
// each receive a fresh id above every id the oracle assigned, in event-index
// order; otherwise they resolve to Outlier.
func projectEventLabels(partition model.Partition, eventCount int, labelSingleton bool) []int {
	labels := make([]int, eventCount)

	maxAssigned := -1
	for _, c := range partition {
		if c > maxAssigned {
			maxAssigned = c
		}
	}

	for i := 0; i < eventCount; i++ {
		if c, ok := partition[i]; ok {
			labels[i] = c
		} else {
			labels[i] = model.Outlier
		}
	}

	if labelSingleton {
		next := maxAssigned + 1
		for i := 0; i < eventCount; i++ {
			if labels[i] == model.Outlier {
				labels[i] = next
				next++
			}
		}
	}

	return labels
}

// expandLabels projects per-event labels back onto the full trajectory via an
// explicit lookup: every sample resolves either to its event's label or to
// Outlier, so the output always matches the input length.
func expandLabels(eventLabels []int, eventMap model.EventMap) []int {
	labels := make([]int, len(eventMap))
	for i, e := range eventMap {
		if e == model.NoEvent {
			labels[i] = model.Outlier
			continue
		}
		labels[i] = eventLabels[e]
	}
	return labels
}

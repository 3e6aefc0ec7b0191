package task

import "math"

// Progress returns the derived completion percentage of a roadmap:
// round(100 * completed / total), or 0 for an empty roadmap.
func Progress(items []RoadmapItem) int {
	if len(items) == 0 {
		return 0
	}
	done := 0
	for _, item := range items {
		if item.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(items)) * 100))
}

// IsCompleted reports whether a roadmap counts as fully done. An empty
// roadmap is never completed.
func IsCompleted(items []RoadmapItem) bool {
	return Progress(items) == 100
}

// RecomputeProgress rederives OverallProgress and Completed from the current
// roadmap. The speculative layer never stores either field independently.
func (t *Task) RecomputeProgress() {
	t.OverallProgress = Progress(t.RoadmapItems)
	t.Completed = IsCompleted(t.RoadmapItems)
}

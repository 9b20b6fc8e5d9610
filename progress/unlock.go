package progress

// UnlockedIndexes computes which module indexes are navigable given the
// course's ordered module IDs and the completed set.
//
// Rule: index 0 is always unlocked, every completed module is unlocked, and
// the module immediately after the highest-indexed completed module is
// unlocked (bounded by list length). Completing a later module out of order
// does not unlock anything before it.
func UnlockedIndexes(ordered []string, completed []string) []int {
	if len(ordered) == 0 {
		return []int{}
	}

	unlocked := make(map[int]bool)
	unlocked[0] = true

	frontier := -1
	for i, id := range ordered {
		if Contains(completed, id) {
			unlocked[i] = true
			if i > frontier {
				frontier = i
			}
		}
	}

	// One module beyond the highest completed index.
	if frontier >= 0 && frontier+1 < len(ordered) {
		unlocked[frontier+1] = true
	}

	out := make([]int, 0, len(unlocked))
	for i := range ordered {
		if unlocked[i] {
			out = append(out, i)
		}
	}
	return out
}

// IsUnlocked reports whether the module with the given ID is navigable.
func IsUnlocked(ordered []string, completed []string, moduleID string) bool {
	for _, i := range UnlockedIndexes(ordered, completed) {
		if ordered[i] == moduleID {
			return true
		}
	}
	return false
}

// Percent derives the cached percent value from the completed set. Completed
// IDs that no longer exist in the course are not counted.
func Percent(ordered []string, completed []string) float64 {
	if len(ordered) == 0 {
		return 0
	}
	done := 0
	for _, id := range ordered {
		if Contains(completed, id) {
			done++
		}
	}
	return float64(done) / float64(len(ordered)) * 100
}

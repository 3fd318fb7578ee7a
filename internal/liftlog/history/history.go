package history

import (
	"time"

	"github.com/2beens/liftlog/internal/liftlog/catalog"
)

// Entry is one logged set. Entries of one exercise form an append-only
// sequence; the relative order of same-week entries within that sequence
// is the set order (Set 1, Set 2, ...) of that training week.
type Entry struct {
	ExerciseID string    `json:"exerciseId"`
	Weight     float64   `json:"weight"`
	Reps       int       `json:"reps"`
	Completed  bool      `json:"completed"`
	Timestamp  time.Time `json:"timestamp"`
	Week       int       `json:"week"`
}

// History maps an exercise id to its ordered log of sets.
type History map[string][]Entry

// Clone returns a deep copy of the history.
func (h History) Clone() History {
	cloned := make(History, len(h))
	for id, entries := range h {
		entriesCopy := make([]Entry, len(entries))
		copy(entriesCopy, entries)
		cloned[id] = entriesCopy
	}
	return cloned
}

// WeekLogs returns the entries of one exercise for the given week,
// in their original (append) order.
func WeekLogs(h History, exerciseID string, week int) []Entry {
	var logs []Entry
	for _, e := range h[exerciseID] {
		if e.Week == week {
			logs = append(logs, e)
		}
	}
	return logs
}

// LogSet appends a new set for the exercise and updates the catalog
// defaults: defaultReps always follows the last logged reps, and
// defaultWeight is (re)seeded by the first set of each week.
func LogSet(
	h History,
	cat []catalog.Exercise,
	exerciseID string,
	weight float64,
	reps int,
	week int,
	now time.Time,
) (History, []catalog.Exercise) {
	firstSetThisWeek := len(WeekLogs(h, exerciseID, week)) == 0

	updatedHistory := h.Clone()
	updatedHistory[exerciseID] = append(updatedHistory[exerciseID], Entry{
		ExerciseID: exerciseID,
		Weight:     weight,
		Reps:       reps,
		Completed:  true,
		Timestamp:  now,
		Week:       week,
	})

	updatedCatalog := make([]catalog.Exercise, len(cat))
	copy(updatedCatalog, cat)
	if i := catalog.FindByID(updatedCatalog, exerciseID); i != -1 {
		updatedCatalog[i].DefaultReps = reps
		if firstSetThisWeek {
			w := weight
			updatedCatalog[i].DefaultWeight = &w
		}
	}

	return updatedHistory, updatedCatalog
}

// UpdateSet edits this week's set at the given session-relative index
// (0-based: "this week's Nth logged set"). Entries of other weeks keep
// their position and content. An out of range index is a no-op.
func UpdateSet(
	h History,
	cat []catalog.Exercise,
	exerciseID string,
	sessionIndex int,
	weight float64,
	reps int,
	week int,
) (History, []catalog.Exercise) {
	if sessionIndex < 0 {
		return h, cat
	}

	// map the session-relative index back to the global position
	// within the full per-exercise sequence
	globalIndex := -1
	seen := 0
	for i, e := range h[exerciseID] {
		if e.Week != week {
			continue
		}
		if seen == sessionIndex {
			globalIndex = i
			break
		}
		seen++
	}
	if globalIndex == -1 {
		return h, cat
	}

	updatedHistory := h.Clone()
	updatedHistory[exerciseID][globalIndex].Weight = weight
	updatedHistory[exerciseID][globalIndex].Reps = reps

	updatedCatalog := make([]catalog.Exercise, len(cat))
	copy(updatedCatalog, cat)
	if i := catalog.FindByID(updatedCatalog, exerciseID); i != -1 {
		updatedCatalog[i].DefaultReps = reps
	}

	return updatedHistory, updatedCatalog
}

// ResetWeek removes all of this week's entries for one exercise,
// leaving every other week untouched.
func ResetWeek(h History, exerciseID string, week int) History {
	updated := h.Clone()

	var kept []Entry
	for _, e := range updated[exerciseID] {
		if e.Week != week {
			kept = append(kept, e)
		}
	}
	if kept == nil {
		delete(updated, exerciseID)
	} else {
		updated[exerciseID] = kept
	}

	return updated
}

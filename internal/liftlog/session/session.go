package session

import (
	"github.com/2beens/liftlog/internal/liftlog/catalog"
	"github.com/2beens/liftlog/internal/liftlog/history"
)

// Exercises is today's training list, split by circuit for display order.
type Exercises struct {
	Circuit1 []catalog.Exercise `json:"circuit1"`
	Circuit2 []catalog.Exercise `json:"circuit2"`
}

// Day returns the scheduled day for the given index, false if the index
// is outside the schedule.
func Day(schedule []catalog.Day, dayIndex int) (catalog.Day, bool) {
	if dayIndex < 0 || dayIndex >= len(schedule) {
		return catalog.Day{}, false
	}
	return schedule[dayIndex], true
}

// TodaysExercises derives the training list for the given day: active
// exercises assigned to that day's type, partitioned into circuits,
// catalog order preserved within each circuit.
func TodaysExercises(cat []catalog.Exercise, schedule []catalog.Day, dayIndex int) Exercises {
	day, ok := Day(schedule, dayIndex)
	if !ok {
		return Exercises{}
	}

	var todays Exercises
	for _, ex := range cat {
		if ex.Status != catalog.StatusActive || ex.DayAssignment != day.Type {
			continue
		}
		if ex.CircuitID == 2 {
			todays.Circuit2 = append(todays.Circuit2, ex)
		} else {
			todays.Circuit1 = append(todays.Circuit1, ex)
		}
	}
	return todays
}

// IsComplete reports whether the exercise hit its target set count
// with the given logs of this week.
func IsComplete(ex catalog.Exercise, weekLogs []history.Entry) bool {
	return len(weekLogs) >= ex.DefaultSets
}

package catalog

import (
	"github.com/google/uuid"
)

// Status says whether an exercise currently occupies a day slot
// or is held out of rotation.
type Status string

const (
	StatusActive Status = "active"
	StatusBench  Status = "bench"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusBench
}

// SafetyTier is informational only, it has no algorithmic effect.
type SafetyTier string

const (
	TierSafe    SafetyTier = "SAFE"
	TierCaution SafetyTier = "CAUTION"
	TierAvoid   SafetyTier = "AVOID"
)

// DayType is the training day an exercise is assigned to.
type DayType string

const (
	DayPushA DayType = "PUSH_A"
	DayPullA DayType = "PULL_A"
	DayLegsA DayType = "LEGS_A"
	DayPushB DayType = "PUSH_B"
	DayPullB DayType = "PULL_B"
	DayLegsB DayType = "LEGS_B"
)

// Exercise is a single entry of the exercise catalog. DefaultReps is
// overwritten by the most recently logged rep count, DefaultWeight is
// seeded by the first set logged in a week.
type Exercise struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	TargetMuscle  string     `json:"targetMuscle"`
	MachineType   string     `json:"machineType"`
	Description   string     `json:"description"`
	DefaultReps   int        `json:"defaultReps"`
	DefaultSets   int        `json:"defaultSets"`
	DefaultWeight *float64   `json:"defaultWeight,omitempty"`
	SafetyTier    SafetyTier `json:"safetyTier"`
	Status        Status     `json:"status"`
	Tags          []string   `json:"tags"`
	LegacySwapIDs []string   `json:"legacySwapIds,omitempty"`
	DayAssignment DayType    `json:"dayAssignment"`
	CircuitID     int        `json:"circuitId"`
}

// Day is one entry of the fixed training schedule.
type Day struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Type        DayType `json:"type"`
	DisplayName string  `json:"displayName"`
}

// FindByID returns the index of the exercise with the given id, or -1.
func FindByID(cat []Exercise, id string) int {
	for i := range cat {
		if cat[i].ID == id {
			return i
		}
	}
	return -1
}

// SharesTag reports whether the two exercises have at least one tag in common.
func SharesTag(a, b Exercise) bool {
	for _, ta := range a.Tags {
		for _, tb := range b.Tags {
			if ta == tb {
				return true
			}
		}
	}
	return false
}

// CloneID derives a fresh unique id from the source exercise id.
// A UUID suffix is used instead of a timestamp, so that rapid repeated
// clones of the same exercise can never collide.
func CloneID(sourceID string) string {
	return sourceID + "-" + uuid.NewString()
}

// Swap moves the target exercise into the slot occupied by the current one.
// If the target sits on the bench, the two exercises trade places: the
// target goes active in current's day/circuit slot and current goes to the
// bench. If the target is already active in another slot, a clone of it
// (with a fresh id) takes over current's slot and the original stays where
// it is. Unknown ids make Swap return the catalog unchanged, with the
// second return value false.
func Swap(cat []Exercise, currentID, targetID string) ([]Exercise, bool) {
	currentIdx := FindByID(cat, currentID)
	targetIdx := FindByID(cat, targetID)
	if currentIdx == -1 || targetIdx == -1 {
		return cat, false
	}

	updated := make([]Exercise, len(cat))
	copy(updated, cat)

	current := &updated[currentIdx]
	target := &updated[targetIdx]

	if target.Status == StatusBench {
		target.Status = StatusActive
		target.DayAssignment = current.DayAssignment
		target.CircuitID = current.CircuitID
		current.Status = StatusBench
		return updated, true
	}

	clone := *target
	clone.ID = CloneID(target.ID)
	clone.Status = StatusActive
	clone.DayAssignment = current.DayAssignment
	clone.CircuitID = current.CircuitID
	current.Status = StatusBench

	return append(updated, clone), true
}

// SwapCandidates returns the exercises the given one can be swapped for:
// they must share at least one tag, must not be the exercise itself and
// must not already be active on today's training day. Catalog order is
// preserved.
func SwapCandidates(ex Exercise, cat []Exercise, todayType DayType) []Exercise {
	var candidates []Exercise
	for _, c := range cat {
		if c.ID == ex.ID {
			continue
		}
		if c.Status == StatusActive && c.DayAssignment == todayType {
			continue
		}
		if !SharesTag(ex, c) {
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates
}

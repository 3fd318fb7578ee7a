package catalog

// DefaultSchedule is the fixed ordered list of training days. The day
// index stored with the session state points into this slice.
func DefaultSchedule() []Day {
	return []Day{
		{ID: "day-1", Label: "Day 1", Type: DayPushA, DisplayName: "Push A"},
		{ID: "day-2", Label: "Day 2", Type: DayPullA, DisplayName: "Pull A"},
		{ID: "day-3", Label: "Day 3", Type: DayLegsA, DisplayName: "Legs A"},
		{ID: "day-4", Label: "Day 4", Type: DayPushB, DisplayName: "Push B"},
		{ID: "day-5", Label: "Day 5", Type: DayPullB, DisplayName: "Pull B"},
		{ID: "day-6", Label: "Day 6", Type: DayLegsB, DisplayName: "Legs B"},
	}
}

func weight(w float64) *float64 {
	return &w
}

// Seed returns the exercise master database, used on first run and after
// a hard reset.
func Seed() []Exercise {
	return []Exercise{
		{
			ID: "chest-press-machine", Name: "Chest Press Machine",
			TargetMuscle: "chest", MachineType: "machine",
			Description: "Seated horizontal press, handles at mid-chest height.",
			DefaultReps: 10, DefaultSets: 3, DefaultWeight: weight(30),
			SafetyTier: TierSafe, Status: StatusActive,
			Tags:          []string{"horizontal-push", "chest"},
			DayAssignment: DayPushA, CircuitID: 1,
		},
		{
			ID: "incline-db-press", Name: "Incline Dumbbell Press",
			TargetMuscle: "upper chest", MachineType: "free-weight",
			Description: "Bench at ~30 degrees, dumbbells pressed to lockout.",
			DefaultReps: 10, DefaultSets: 3, DefaultWeight: weight(12.5),
			SafetyTier: TierCaution, Status: StatusActive,
			Tags:          []string{"incline-push", "chest"},
			DayAssignment: DayPushA, CircuitID: 1,
		},
		{
			ID: "lateral-raise-machine", Name: "Lateral Raise Machine",
			TargetMuscle: "side delts", MachineType: "machine",
			Description: "Pads just above the elbows, raise to shoulder height.",
			DefaultReps: 12, DefaultSets: 3, DefaultWeight: weight(20),
			SafetyTier: TierSafe, Status: StatusActive,
			Tags:          []string{"lateral-raise", "shoulders"},
			DayAssignment: DayPushA, CircuitID: 2,
		},
		{
			ID: "triceps-pushdown", Name: "Triceps Rope Pushdown",
			TargetMuscle: "triceps", MachineType: "cable",
			Description: "Rope attachment, elbows pinned to the sides.",
			DefaultReps: 12, DefaultSets: 3, DefaultWeight: weight(20),
			SafetyTier: TierSafe, Status: StatusActive,
			Tags:          []string{"triceps-extension", "arms"},
			DayAssignment: DayPushA, CircuitID: 2,
		},
		{
			ID: "lat-pulldown", Name: "Lat Pulldown",
			TargetMuscle: "lats", MachineType: "cable",
			Description: "Wide grip, pull the bar to the upper chest.",
			DefaultReps: 10, DefaultSets: 3, DefaultWeight: weight(45),
			SafetyTier: TierSafe, Status: StatusActive,
			Tags:          []string{"vertical-pull", "back"},
			DayAssignment: DayPullA, CircuitID: 1,
		},
		{
			ID: "seated-cable-row", Name: "Seated Cable Row",
			TargetMuscle: "mid back", MachineType: "cable",
			Description: "Neutral grip, pull to the lower ribs.",
			DefaultReps: 10, DefaultSets: 3, DefaultWeight: weight(40),
			SafetyTier: TierSafe, Status: StatusActive,
			Tags:          []string{"horizontal-pull", "back"},
			DayAssignment: DayPullA, CircuitID: 1,
		},
		{
			ID: "db-curl", Name: "Dumbbell Curl",
			TargetMuscle: "biceps", MachineType: "free-weight",
			Description: "Standing, alternate arms, no swinging.",
			DefaultReps: 12, DefaultSets: 3, DefaultWeight: weight(10),
			SafetyTier: TierSafe, Status: StatusActive,
			Tags:          []string{"curl", "arms"},
			DayAssignment: DayPullA, CircuitID: 2,
		},
		{
			ID: "face-pull", Name: "Cable Face Pull",
			TargetMuscle: "rear delts", MachineType: "cable",
			Description: "Rope at face height, pull towards the forehead.",
			DefaultReps: 15, DefaultSets: 3, DefaultWeight: weight(15),
			SafetyTier: TierSafe, Status: StatusActive,
			Tags:          []string{"rear-delt", "shoulders"},
			DayAssignment: DayPullA, CircuitID: 2,
		},
		{
			ID: "leg-press", Name: "Leg Press",
			TargetMuscle: "quads", MachineType: "machine",
			Description: "Feet shoulder width, lower until knees at ~90 degrees.",
			DefaultReps: 10, DefaultSets: 3, DefaultWeight: weight(100),
			SafetyTier: TierSafe, Status: StatusActive,
			Tags:          []string{"squat-pattern", "legs"},
			DayAssignment: DayLegsA, CircuitID: 1,
		},
		{
			ID: "leg-curl-seated", Name: "Seated Leg Curl",
			TargetMuscle: "hamstrings", MachineType: "machine",
			Description: "Pad just above the heels, curl fully under.",
			DefaultReps: 12, DefaultSets: 3, DefaultWeight: weight(35),
			SafetyTier: TierSafe, Status: StatusActive,
			Tags:          []string{"knee-flexion", "legs"},
			DayAssignment: DayLegsA, CircuitID: 1,
		},
		{
			ID: "calf-raise-machine", Name: "Standing Calf Raise",
			TargetMuscle: "calves", MachineType: "machine",
			Description: "Full stretch at the bottom, pause at the top.",
			DefaultReps: 15, DefaultSets: 3, DefaultWeight: weight(60),
			SafetyTier: TierSafe, Status: StatusActive,
			Tags:          []string{"calf-raise", "legs"},
			DayAssignment: DayLegsA, CircuitID: 2,
		},
		{
			ID: "machine-shoulder-press", Name: "Shoulder Press Machine",
			TargetMuscle: "front delts", MachineType: "machine",
			Description: "Press from ear height to lockout.",
			DefaultReps: 10, DefaultSets: 3, DefaultWeight: weight(25),
			SafetyTier: TierSafe, Status: StatusActive,
			Tags:          []string{"vertical-push", "shoulders"},
			DayAssignment: DayPushB, CircuitID: 1,
		},
		{
			ID: "cable-fly", Name: "Cable Fly",
			TargetMuscle: "chest", MachineType: "cable",
			Description: "Slight forward lean, hug a barrel motion.",
			DefaultReps: 12, DefaultSets: 3, DefaultWeight: weight(12.5),
			SafetyTier: TierSafe, Status: StatusActive,
			Tags:          []string{"horizontal-push", "fly", "chest"},
			DayAssignment: DayPushB, CircuitID: 1,
		},
		{
			ID: "overhead-triceps-ext", Name: "Overhead Cable Triceps Extension",
			TargetMuscle: "triceps long head", MachineType: "cable",
			Description: "Face away from the stack, extend overhead.",
			DefaultReps: 12, DefaultSets: 3, DefaultWeight: weight(15),
			SafetyTier: TierCaution, Status: StatusActive,
			Tags:          []string{"triceps-extension", "arms"},
			DayAssignment: DayPushB, CircuitID: 2,
		},
		{
			ID: "assisted-pullup", Name: "Assisted Pull-Up",
			TargetMuscle: "lats", MachineType: "machine",
			Description: "Knees on the pad, chin over the bar.",
			DefaultReps: 8, DefaultSets: 3, DefaultWeight: weight(25),
			SafetyTier: TierSafe, Status: StatusActive,
			Tags:          []string{"vertical-pull", "back"},
			DayAssignment: DayPullB, CircuitID: 1,
		},
		{
			ID: "chest-supported-row", Name: "Chest Supported Row",
			TargetMuscle: "mid back", MachineType: "machine",
			Description: "Chest on the pad, row with elbows at ~45 degrees.",
			DefaultReps: 10, DefaultSets: 3, DefaultWeight: weight(30),
			SafetyTier: TierSafe, Status: StatusActive,
			Tags:          []string{"horizontal-pull", "back"},
			DayAssignment: DayPullB, CircuitID: 1,
		},
		{
			ID: "ez-bar-curl", Name: "EZ Bar Curl",
			TargetMuscle: "biceps", MachineType: "free-weight",
			Description: "Shoulder-width grip on the angled bar.",
			DefaultReps: 10, DefaultSets: 3, DefaultWeight: weight(20),
			SafetyTier: TierSafe, Status: StatusActive,
			Tags:          []string{"curl", "arms"},
			DayAssignment: DayPullB, CircuitID: 2,
		},
		{
			ID: "hack-squat", Name: "Hack Squat",
			TargetMuscle: "quads", MachineType: "machine",
			Description: "Back flat on the pad, squat to parallel.",
			DefaultReps: 8, DefaultSets: 3, DefaultWeight: weight(60),
			SafetyTier: TierCaution, Status: StatusActive,
			Tags:          []string{"squat-pattern", "legs"},
			DayAssignment: DayLegsB, CircuitID: 1,
		},
		{
			ID: "romanian-deadlift", Name: "Romanian Deadlift",
			TargetMuscle: "hamstrings", MachineType: "free-weight",
			Description: "Soft knees, hinge until hamstrings load up.",
			DefaultReps: 10, DefaultSets: 3, DefaultWeight: weight(40),
			SafetyTier: TierCaution, Status: StatusActive,
			Tags:          []string{"hip-hinge", "legs"},
			DayAssignment: DayLegsB, CircuitID: 1,
		},
		{
			ID: "leg-extension", Name: "Leg Extension",
			TargetMuscle: "quads", MachineType: "machine",
			Description: "Pad on the shins, extend to a full squeeze.",
			DefaultReps: 15, DefaultSets: 3, DefaultWeight: weight(30),
			SafetyTier: TierSafe, Status: StatusActive,
			Tags:          []string{"knee-extension", "legs"},
			DayAssignment: DayLegsB, CircuitID: 2,
		},

		// bench pool, available through swaps
		{
			ID: "flat-barbell-bench", Name: "Barbell Bench Press",
			TargetMuscle: "chest", MachineType: "free-weight",
			Description: "Classic flat bench, spotter recommended.",
			DefaultReps: 8, DefaultSets: 3, DefaultWeight: weight(40),
			SafetyTier: TierCaution, Status: StatusBench,
			Tags:          []string{"horizontal-push", "chest"},
			DayAssignment: DayPushA, CircuitID: 1,
		},
		{
			ID: "pec-deck", Name: "Pec Deck Fly",
			TargetMuscle: "chest", MachineType: "machine",
			Description: "Elbows slightly bent, squeeze the pads together.",
			DefaultReps: 12, DefaultSets: 3, DefaultWeight: weight(35),
			SafetyTier: TierSafe, Status: StatusBench,
			Tags:          []string{"fly", "chest"},
			DayAssignment: DayPushB, CircuitID: 1,
		},
		{
			ID: "db-lateral-raise", Name: "Dumbbell Lateral Raise",
			TargetMuscle: "side delts", MachineType: "free-weight",
			Description: "Lead with the elbows, stop at shoulder height.",
			DefaultReps: 15, DefaultSets: 3, DefaultWeight: weight(6),
			SafetyTier: TierSafe, Status: StatusBench,
			Tags:          []string{"lateral-raise", "shoulders"},
			DayAssignment: DayPushA, CircuitID: 2,
		},
		{
			ID: "single-arm-row", Name: "Single Arm Dumbbell Row",
			TargetMuscle: "lats", MachineType: "free-weight",
			Description: "Knee and hand on the bench, row to the hip.",
			DefaultReps: 10, DefaultSets: 3, DefaultWeight: weight(17.5),
			SafetyTier: TierSafe, Status: StatusBench,
			Tags:          []string{"horizontal-pull", "back"},
			DayAssignment: DayPullA, CircuitID: 1,
		},
		{
			ID: "hammer-curl", Name: "Hammer Curl",
			TargetMuscle: "biceps/brachialis", MachineType: "free-weight",
			Description: "Neutral grip, both arms together.",
			DefaultReps: 12, DefaultSets: 3, DefaultWeight: weight(10),
			SafetyTier: TierSafe, Status: StatusBench,
			Tags:          []string{"curl", "arms"},
			DayAssignment: DayPullB, CircuitID: 2,
		},
		{
			ID: "bulgarian-split-squat", Name: "Bulgarian Split Squat",
			TargetMuscle: "quads/glutes", MachineType: "free-weight",
			Description: "Rear foot elevated, dumbbells at the sides.",
			DefaultReps: 10, DefaultSets: 3, DefaultWeight: weight(12.5),
			SafetyTier: TierAvoid, Status: StatusBench,
			Tags:          []string{"squat-pattern", "legs"},
			DayAssignment: DayLegsA, CircuitID: 1,
			LegacySwapIDs: []string{"leg-press", "hack-squat"},
		},
		{
			ID: "lying-leg-curl", Name: "Lying Leg Curl",
			TargetMuscle: "hamstrings", MachineType: "machine",
			Description: "Hips pinned down, curl heels to glutes.",
			DefaultReps: 12, DefaultSets: 3, DefaultWeight: weight(30),
			SafetyTier: TierSafe, Status: StatusBench,
			Tags:          []string{"knee-flexion", "legs"},
			DayAssignment: DayLegsB, CircuitID: 1,
		},
	}
}

package move

// BuildDefaultHeuristicProvider wires every repair perturbator template to
// the constraint it targets and registers the autonomous move pool, in the
// combination cmd/nrpsolve uses for every algorithm.
//
// UnassignRepair is generic over a violation's pinned axes, so it serves
// every constraint whose violations describe an over-assignment to clear:
// overlapping, under-rested, under-skilled, overworked, unavailable, or
// fatigued cells. ValidShiftDayRepair and RankedIntersectionToggle are
// specific to the one constraint whose violation shape they were built
// for (wrong-weekday assignment and coverage defects, respectively);
// AddCoverShifts rides along on coverage violations as an entropy source
// and doubles as a plain autonomous move.
func BuildDefaultHeuristicProvider() *HeuristicProvider {
	hp := NewHeuristicProvider()

	genericRepair := func() RepairPerturbator { return NewUnassignRepair() }
	for _, name := range []string{
		"NO_OVERLAP",
		"REST_BETWEEN_SHIFTS",
		"REQUIRED_SKILL",
		"EMPLOYMENT_MAX_DURATION",
		"EMPLOYEE_AVAILABILITY",
		"EMPLOYEE_GENERAL",
		"CUMULATIVE_FATIGUE",
	} {
		hp.RegisterRepair(name, genericRepair)
	}
	hp.RegisterRepair("VALID_SHIFT_DAY", func() RepairPerturbator { return NewValidShiftDayRepair() })
	hp.RegisterRepair("SHIFT_COVERAGE", func() RepairPerturbator { return NewRankedIntersectionToggle() })
	hp.RegisterRepair("SHIFT_COVERAGE", func() RepairPerturbator { return NewAddCoverShifts() })

	hp.RegisterAutonomous(NewRandomAssignmentToggle())
	hp.RegisterAutonomous(NewAddCoverShifts())
	hp.RegisterAutonomous(NewHorizontalExchange())
	hp.RegisterAutonomous(NewVerticalExchange())
	hp.RegisterAutonomous(NewShiftByZ())

	return hp
}

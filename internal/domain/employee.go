package domain

import "github.com/KristiansKaneps/nrp-algo-sub000/internal/timemodel"

// WorkloadStrategy selects how an employee's maximum workload for a skill
// is computed.
type WorkloadStrategy uint8

const (
	WorkloadNone WorkloadStrategy = iota
	WorkloadStatic
	WorkloadDynamic
)

// WorkloadEvent holds the parameters needed by whichever WorkloadStrategy
// is active: a static load is expressed as a fraction of a reference
// 168-hour (one week) workload, a dynamic load as an absolute hour count.
type WorkloadEvent struct {
	StaticLoad       float64 // fraction of 168h, used when Strategy == WorkloadStatic
	DynamicLoadHours float64 // absolute hours, used when Strategy == WorkloadDynamic
	MaxOvertimeHours float64
}

// EmployeeSkill is one skill an employee holds, together with how strongly
// they hold it (Weight) and how their maximum workload for it is bounded.
type EmployeeSkill struct {
	Weight   float32
	Strategy WorkloadStrategy
	Workload WorkloadEvent
}

// SpecificRequest is a signed per-day (optionally per-shift) preference:
// positive weight means "desired", negative means "unavailable" with a
// soft penalty rather than a hard block.
type SpecificRequest struct {
	DayIndex   uint64
	ShiftIndex uint64
	AnyShift   bool
	Weight     float32
}

// Availability groups an employee's hard and soft scheduling preferences.
type Availability struct {
	PaidUnavailable   timemodel.RangeCollection
	UnpaidUnavailable timemodel.RangeCollection
	Desired           timemodel.RangeCollection
	Specific          []SpecificRequest
}

// GeneralConstraints bounds an employee's shift-pattern, independent of
// any particular skill or shift. MaxWorkingWeekendCount < 0 means
// unlimited.
type GeneralConstraints struct {
	MinConsecutiveShiftCount   uint8
	MaxConsecutiveShiftCount   uint8
	MinConsecutiveDaysOffCount uint8
	MaxWorkingWeekendCount     int32
}

// Employee is a person who may be assigned to shifts, immutable during
// search.
type Employee struct {
	Index  uint64
	Name   string
	Skills map[uint64]EmployeeSkill

	Availability Availability
	General      GeneralConstraints
}

func NewEmployee(index uint64, name string) *Employee {
	return &Employee{
		Index:  index,
		Name:   name,
		Skills: map[uint64]EmployeeSkill{},
		General: GeneralConstraints{
			MaxWorkingWeekendCount: -1,
		},
	}
}

func (e *Employee) Skill(skillIndex uint64) (EmployeeSkill, bool) {
	s, ok := e.Skills[skillIndex]
	return s, ok
}

func (e *Employee) HasSkill(skillIndex uint64) bool {
	_, ok := e.Skills[skillIndex]
	return ok
}

func (e *Employee) SetSkill(skillIndex uint64, skill EmployeeSkill) {
	e.Skills[skillIndex] = skill
}

package domain

import "github.com/KristiansKaneps/nrp-algo-sub000/internal/timemodel"

// Weekday bitmask presets, bit i set means Weekday(i) is an eligible day
// for the shift (Monday=0 .. Sunday=6). The eighth bit marks eligibility
// on public holidays, which override the calendar weekday.
const (
	AllWeekdays  uint8 = 0b0111_1111
	OnlyWorkdays uint8 = 0b0001_1111
	OnlyWeekends uint8 = 0b0110_0000
	HolidayBit   uint8 = 0b1000_0000
)

// Shift describes one recurring kind of work assignment: its time-of-day
// window, how many employees it needs, rest requirements around it, and
// which skills it demands. Shifts are immutable once constructed.
type Shift struct {
	Index    uint64
	Name     string
	Weekdays uint8
	Interval timemodel.DailyInterval

	SlotCount         uint8
	RequiredSlotCount uint8
	slotCountByDay    map[uint64]uint8
	requiredByDay     map[uint64]uint8

	RestMinutesBefore    int32
	RestMinutesAfter     int32
	ConsecutiveRestMinutes int32

	RequiredAllSkills map[uint64]float32
	RequiredOneSkills map[uint64]float32

	BlockedNextDayShifts map[uint64]struct{}
}

// NewShift constructs a Shift with the given default slot counts and
// rest padding before and after. ConsecutiveRestMinutes defaults to the time
// remaining until the end of the shift's day plus a full day (a shift
// ending at 23:00 needs less additional rest to reach the next calendar
// boundary than one ending at 08:00).
func NewShift(index uint64, weekdays uint8, interval timemodel.DailyInterval, name string,
	slotCount, requiredSlotCount uint8, restBefore, restAfter int32) *Shift {
	s := &Shift{
		Index:                  index,
		Name:                   name,
		Weekdays:               weekdays,
		Interval:               interval,
		SlotCount:              slotCount,
		RequiredSlotCount:      requiredSlotCount,
		RestMinutesBefore:      restBefore,
		RestMinutesAfter:       restAfter,
		RequiredAllSkills:      map[uint64]float32{},
		RequiredOneSkills:      map[uint64]float32{},
		BlockedNextDayShifts:   map[uint64]struct{}{},
		slotCountByDay:         map[uint64]uint8{},
		requiredByDay:          map[uint64]uint8{},
	}
	minutesUntilDayEnd := (1+(interval.EndMinutes()-1)/timemodel.MinutesInADay)*timemodel.MinutesInADay - interval.EndMinutes()
	s.ConsecutiveRestMinutes = timemodel.MinutesInADay + minutesUntilDayEnd
	return s
}

func (s *Shift) SlotCountAt(dayIndex uint64) uint8 {
	if v, ok := s.slotCountByDay[dayIndex]; ok {
		return v
	}
	return s.SlotCount
}

func (s *Shift) RequiredSlotCountAt(dayIndex uint64) uint8 {
	if v, ok := s.requiredByDay[dayIndex]; ok {
		return v
	}
	return s.RequiredSlotCount
}

func (s *Shift) SetSlotCountAtDay(dayIndex uint64, slotCount, requiredSlotCount uint8) {
	s.slotCountByDay[dayIndex] = slotCount
	s.requiredByDay[dayIndex] = requiredSlotCount
}

func (s *Shift) RequiresSkill() bool {
	return len(s.RequiredAllSkills) > 0 || len(s.RequiredOneSkills) > 0
}

func (s *Shift) BlocksShift(shiftIndex uint64) bool {
	_, ok := s.BlockedNextDayShifts[shiftIndex]
	return ok
}

func (s *Shift) AddBlockedNextDayShift(shiftIndex uint64) {
	s.BlockedNextDayShifts[shiftIndex] = struct{}{}
}

func (s *Shift) AddRequiredAllSkill(skillIndex uint64, minWeight float32) {
	s.RequiredAllSkills[skillIndex] = minWeight
}

func (s *Shift) AddRequiredOneSkill(skillIndex uint64, minWeight float32) {
	s.RequiredOneSkills[skillIndex] = minWeight
}

// IsEligibleOn reports whether this shift may run on the given weekday. A
// holiday is decided by the holiday bit alone, regardless of which
// weekday it lands on.
func (s *Shift) IsEligibleOn(weekday timemodel.Weekday, holiday bool) bool {
	if holiday {
		return s.Weekdays&HolidayBit != 0
	}
	return s.Weekdays>>weekday&1 != 0
}

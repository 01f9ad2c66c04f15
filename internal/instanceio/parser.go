package instanceio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/timemodel"
)

// ParseOptions supplies the calendar anchor the text format itself omits:
// SECTION_HORIZON gives a day count, not a start date, so the caller picks
// where day 0 begins and in which zone it is interpreted.
type ParseOptions struct {
	Start    timemodel.Instant
	Location *time.Location
}

type rawSpecificRequest struct {
	employeeIndex uint64
	dayIndex      uint64
	shiftIndex    uint64
	weight        int
	on            bool
}

// parseState accumulates everything a parse pass builds before it is
// assembled into a domain.Config, filled in one forward pass over the
// file.
type parseState struct {
	opts ParseOptions

	horizonSet bool
	horizon    timemodel.Range
	numDays    uint64

	shifts          []*domain.Shift
	skills          []domain.Skill
	shiftNameToIdx  map[string]uint64
	blockedByIdx    map[uint64][]string

	employees      []*domain.Employee
	employeeByName map[string]uint64

	requests []rawSpecificRequest
}

// Parse reads a problem instance in the SECTION_<NAME> text format and
// produces a fully cross-referenced domain.Config, or a *ParseError
// naming the offending line. Rows are dispatched by exact string match
// against the most recently seen "SECTION_..." line.
func Parse(r io.Reader, opts ParseOptions) (*domain.Config, error) {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	ps := &parseState{
		opts:           opts,
		shiftNameToIdx: map[string]uint64{},
		blockedByIdx:   map[uint64][]string{},
		employeeByName: map[string]uint64{},
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	section := ""
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "SECTION_") {
			section = line
			continue
		}

		fields := splitAndTrim(line, ',')
		if err := ps.dispatch(section, fields, lineNo); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("instanceio: reading instance: %w", err)
	}
	if !ps.horizonSet {
		return nil, &ParseError{Line: lineNo, Reason: "missing SECTION_HORIZON"}
	}

	if err := ps.resolveBlockedShifts(); err != nil {
		return nil, err
	}
	if err := ps.resolveRequests(); err != nil {
		return nil, err
	}

	days := domain.BuildDays(ps.horizon, ps.numDays, opts.Location)
	cfg := &domain.Config{
		Axes: domain.Axes{
			Shifts:    ps.shifts,
			Employees: ps.employees,
			Days:      days,
			Skills:    ps.skills,
		},
		Horizon:  ps.horizon,
		Location: opts.Location,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (ps *parseState) dispatch(section string, fields []string, line int) error {
	switch section {
	case "SECTION_HORIZON":
		return ps.parseHorizon(fields, line)
	case "SECTION_SHIFTS":
		return ps.parseShift(fields, line)
	case "SECTION_STAFF":
		return ps.parseStaff(fields, line)
	case "SECTION_DAYS_OFF":
		return ps.parseDaysOff(fields, line)
	case "SECTION_SHIFT_ON_REQUESTS":
		return ps.parseRequest(fields, line, true)
	case "SECTION_SHIFT_OFF_REQUESTS":
		return ps.parseRequest(fields, line, false)
	case "SECTION_COVER":
		return ps.parseCover(fields, line)
	case "":
		return &ParseError{Line: line, Reason: "data row before any SECTION_ header"}
	default:
		return &ParseError{Line: line, Reason: fmt.Sprintf("unknown section %q", section)}
	}
}

func (ps *parseState) parseHorizon(fields []string, line int) error {
	if len(fields) < 1 {
		return &ParseError{Line: line, Reason: "SECTION_HORIZON row needs <days>"}
	}
	days, err := parseInt(fields[0], line, "horizon day count")
	if err != nil {
		return err
	}
	if days <= 0 {
		return &ParseError{Line: line, Reason: "horizon day count must be positive"}
	}
	ps.numDays = uint64(days)
	start := ps.opts.Start
	ps.horizon = timemodel.NewRange(start, start.AddDate(0, 0, days))
	ps.horizonSet = true
	return nil
}

func (ps *parseState) parseShift(fields []string, line int) error {
	if len(fields) < 2 {
		return &ParseError{Line: line, Reason: "SECTION_SHIFTS row needs <id>,<duration>"}
	}
	shiftID := fields[0]
	duration, err := parseInt(fields[1], line, "shift duration")
	if err != nil {
		return err
	}

	shiftIndex := uint64(len(ps.shifts))
	skillIndex := uint64(len(ps.skills))

	interval := timemodel.NewDailyInterval(0, int32(duration))
	shift := domain.NewShift(shiftIndex, domain.AllWeekdays, interval, shiftID, 1, 1, 0, 0)
	shift.AddRequiredOneSkill(skillIndex, 1.0)

	ps.shifts = append(ps.shifts, shift)
	ps.skills = append(ps.skills, domain.Skill{Index: skillIndex, Name: shiftID})
	ps.shiftNameToIdx[shiftID] = shiftIndex

	if len(fields) > 2 && fields[2] != "" {
		ps.blockedByIdx[shiftIndex] = splitAndTrim(fields[2], '|')
	}
	return nil
}

func (ps *parseState) resolveBlockedShifts() error {
	for idx, names := range ps.blockedByIdx {
		for _, name := range names {
			blockedIdx, ok := ps.shiftNameToIdx[name]
			if !ok {
				return &ParseError{Line: 0, Reason: fmt.Sprintf("shift %q blocks unknown shift %q", ps.shifts[idx].Name, name)}
			}
			ps.shifts[idx].AddBlockedNextDayShift(blockedIdx)
		}
	}
	return nil
}

func (ps *parseState) parseStaff(fields []string, line int) error {
	if len(fields) < 8 {
		return &ParseError{Line: line, Reason: "SECTION_STAFF row needs 8 fields"}
	}
	id := fields[0]
	skillEntries := splitAndTrim(fields[1], '|')

	maxTotalMinutes, err := parseInt(fields[2], line, "maxTotalMinutes")
	if err != nil {
		return err
	}
	minTotalMinutes, err := parseInt(fields[3], line, "minTotalMinutes")
	if err != nil {
		return err
	}
	maxConsecutiveShiftCount, err := parseInt(fields[4], line, "maxConsecutiveShiftCount")
	if err != nil {
		return err
	}
	minConsecutiveShiftCount, err := parseInt(fields[5], line, "minConsecutiveShiftCount")
	if err != nil {
		return err
	}
	minConsecutiveDaysOffCount, err := parseInt(fields[6], line, "minConsecutiveDaysOffCount")
	if err != nil {
		return err
	}
	maxWorkingWeekendCount, err := parseInt(fields[7], line, "maxWorkingWeekendCount")
	if err != nil {
		return err
	}
	maxOvertimeMinutes := maxTotalMinutes - minTotalMinutes

	employeeIndex := uint64(len(ps.employees))
	employee := domain.NewEmployee(employeeIndex, id)
	employee.General = domain.GeneralConstraints{
		MinConsecutiveShiftCount:   uint8(minConsecutiveShiftCount),
		MaxConsecutiveShiftCount:   uint8(maxConsecutiveShiftCount),
		MinConsecutiveDaysOffCount: uint8(minConsecutiveDaysOffCount),
		MaxWorkingWeekendCount:     int32(maxWorkingWeekendCount),
	}

	for _, entry := range skillEntries {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			return &ParseError{Line: line, Reason: fmt.Sprintf("malformed skill entry %q", entry)}
		}
		skillName := parts[0]
		skillIdx, ok := ps.shiftNameToIdx[skillName]
		if !ok {
			return &ParseError{Line: line, Reason: fmt.Sprintf("staff %q references unknown skill %q", id, skillName)}
		}
		// parts[1] (max assigned shift count for this skill) has no
		// EmployeeSkill field consuming it; validated but not stored.
		if _, err := parseInt(parts[1], line, "skill max shift count"); err != nil {
			return err
		}
		employee.SetSkill(skillIdx, domain.EmployeeSkill{
			Weight:   1.0,
			Strategy: domain.WorkloadDynamic,
			Workload: domain.WorkloadEvent{
				DynamicLoadHours: float64(minTotalMinutes) / 60.0,
				MaxOvertimeHours: float64(maxOvertimeMinutes) / 60.0,
			},
		})
	}

	ps.employees = append(ps.employees, employee)
	ps.employeeByName[id] = employeeIndex
	return nil
}

func (ps *parseState) parseDaysOff(fields []string, line int) error {
	if len(fields) < 2 {
		return &ParseError{Line: line, Reason: "SECTION_DAYS_OFF row needs <staffID>,<dayIndex>..."}
	}
	empIdx, ok := ps.employeeByName[fields[0]]
	if !ok {
		return &ParseError{Line: line, Reason: fmt.Sprintf("unknown staff %q", fields[0])}
	}
	emp := ps.employees[empIdx]
	for _, f := range fields[1:] {
		dayIndex, err := parseInt(f, line, "day-off index")
		if err != nil {
			return err
		}
		emp.Availability.UnpaidUnavailable.Add(ps.horizon.GetDayRangeAt(uint64(dayIndex), ps.opts.Location))
	}
	return nil
}

func (ps *parseState) parseRequest(fields []string, line int, on bool) error {
	if len(fields) < 4 {
		return &ParseError{Line: line, Reason: "SECTION_SHIFT_ON/OFF_REQUESTS row needs <staffID>,<day>,<shiftID>,<weight>"}
	}
	empIdx, ok := ps.employeeByName[fields[0]]
	if !ok {
		return &ParseError{Line: line, Reason: fmt.Sprintf("unknown staff %q", fields[0])}
	}
	dayIndex, err := parseInt(fields[1], line, "request day index")
	if err != nil {
		return err
	}
	shiftIdx, ok := ps.shiftNameToIdx[fields[2]]
	if !ok {
		return &ParseError{Line: line, Reason: fmt.Sprintf("unknown shift %q", fields[2])}
	}
	weight, err := parseInt(fields[3], line, "request weight")
	if err != nil {
		return err
	}
	ps.requests = append(ps.requests, rawSpecificRequest{
		employeeIndex: empIdx,
		dayIndex:      uint64(dayIndex),
		shiftIndex:    shiftIdx,
		weight:        weight,
		on:            on,
	})
	return nil
}

func (ps *parseState) resolveRequests() error {
	for _, req := range ps.requests {
		emp := ps.employees[req.employeeIndex]
		weight := float32(req.weight)
		specific := domain.SpecificRequest{DayIndex: req.dayIndex, ShiftIndex: req.shiftIndex, Weight: weight}
		if req.on {
			emp.Availability.Desired.Add(ps.horizon.GetDayRangeAt(req.dayIndex, ps.opts.Location))
			emp.Availability.Specific = append(emp.Availability.Specific, specific)
		} else {
			specific.Weight = -weight
			emp.Availability.Specific = append(emp.Availability.Specific, specific)
		}
	}
	return nil
}

func (ps *parseState) parseCover(fields []string, line int) error {
	if len(fields) < 5 {
		return &ParseError{Line: line, Reason: "SECTION_COVER row needs <day>,<shiftID>,<required>,<underWt>,<overWt>"}
	}
	dayIndex, err := parseInt(fields[0], line, "cover day index")
	if err != nil {
		return err
	}
	shiftIdx, ok := ps.shiftNameToIdx[fields[1]]
	if !ok {
		return &ParseError{Line: line, Reason: fmt.Sprintf("unknown shift %q", fields[1])}
	}
	required, err := parseInt(fields[2], line, "cover required count")
	if err != nil {
		return err
	}
	// underWt/overWt (fields[3], fields[4]): ShiftCoverage derives its own
	// penalty from shift duration, so they are validated but not stored.
	if _, err := parseInt(fields[3], line, "cover underWt"); err != nil {
		return err
	}
	if _, err := parseInt(fields[4], line, "cover overWt"); err != nil {
		return err
	}
	ps.shifts[shiftIdx].SetSlotCountAtDay(uint64(dayIndex), uint8(required), uint8(required))
	return nil
}

func splitAndTrim(s string, sep byte) []string {
	parts := strings.Split(s, string(sep))
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

func parseInt(s string, line int, what string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Line: line, Reason: fmt.Sprintf("malformed %s %q: %v", what, s, err)}
	}
	return v, nil
}

package constraint

import (
	"sort"
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/domain"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/state"
	"github.com/KristiansKaneps/nrp-algo-sub000/internal/timemodel"
)

// MaxCumulativeMinutes is the default ceiling on a working streak's total
// duration before CumulativeFatigue starts penalizing it: five 8-hour
// shifts.
const MaxCumulativeMinutes = 5 * 8 * 60

// CumulativeFatigue penalizes a streak of consecutive shifts whose
// combined duration exceeds MaxCumulativeMinutes without a break long
// enough to count as recovery. A day off does not necessarily end a
// streak: the break between one shift's end and the next shift's start
// must reach the earlier shift's consecutive-rest requirement.
type CumulativeFatigue struct {
	durationMinutes []int64 // indexed x*sizeZ+z
	sizeX, sizeZ    uint64
	sizeY           uint64
	shifts          []*domain.Shift
	// byEndDesc orders shift indices by (end minutes descending, start
	// minutes ascending), so the first assigned shift found on a day is
	// the one whose end pushes the streak furthest.
	byEndDesc []uint64
}

func NewCumulativeFatigue(shifts []*domain.Shift, employees []*domain.Employee, days []domain.Day, loc *time.Location) *CumulativeFatigue {
	sizeX, sizeZ := uint64(len(shifts)), uint64(len(days))
	c := &CumulativeFatigue{
		durationMinutes: make([]int64, sizeX*sizeZ),
		sizeX:           sizeX,
		sizeZ:           sizeZ,
		sizeY:           uint64(len(employees)),
		shifts:          shifts,
		byEndDesc:       make([]uint64, sizeX),
	}
	for x, sh := range shifts {
		c.byEndDesc[x] = uint64(x)
		for z, d := range days {
			r := sh.Interval.ToRange(d.Range.Start, loc)
			c.durationMinutes[uint64(x)*sizeZ+uint64(z)] = int64(r.Duration(loc).Minutes())
		}
	}
	sort.Slice(c.byEndDesc, func(i, j int) bool {
		a, b := shifts[c.byEndDesc[i]], shifts[c.byEndDesc[j]]
		if a.Interval.EndMinutes() != b.Interval.EndMinutes() {
			return a.Interval.EndMinutes() > b.Interval.EndMinutes()
		}
		return a.Interval.StartMinutes < b.Interval.StartMinutes
	})
	return c
}

func (c *CumulativeFatigue) Name() string { return "CUMULATIVE_FATIGUE" }

// assignment returns the assigned shift for employee y on day z in
// latest-ending-first order, or ok=false if the employee is off.
func (c *CumulativeFatigue) assignment(s *state.State, y, z uint64) (x uint64, minutes int64, ok bool) {
	for _, x := range c.byEndDesc {
		if s.GetXYZ(x, y, z) {
			return x, c.durationMinutes[x*c.sizeZ+z], true
		}
	}
	return 0, 0, false
}

func (c *CumulativeFatigue) Evaluate(s *state.State) ConstraintScore {
	var total ConstraintScore
	for y := uint64(0); y < c.sizeY; y++ {
		var chainTotal int64
		var chainEnd int32 // minutes since horizon start at which the chain's last shift ends
		var restNeeded int32
		inChain := false
		for z := uint64(0); z < c.sizeZ; z++ {
			x, minutes, ok := c.assignment(s, y, z)
			if !ok {
				continue
			}
			shift := c.shifts[x]
			start := int32(z)*timemodel.MinutesInADay + shift.Interval.StartMinutes
			if inChain && start-chainEnd >= restNeeded {
				inChain = false
			}
			if !inChain {
				inChain = true
				chainTotal = 0
			}
			chainTotal += minutes
			chainEnd = int32(z)*timemodel.MinutesInADay + shift.Interval.EndMinutes()
			restNeeded = shift.ConsecutiveRestMinutes
			if chainTotal > MaxCumulativeMinutes {
				total.Violate(violationXYZ(x, y, z, Score{Hard: -1}))
				inChain = false
				chainTotal = 0
			}
		}
	}
	return total
}

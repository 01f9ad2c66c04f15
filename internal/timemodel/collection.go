package timemodel

// RangeCollection is an unordered, possibly-overlapping set of ranges,
// used for employee availability ("unavailable during any of these
// windows"). It caches its overall bounds so the common miss case — a
// query range entirely outside every window — is rejected without
// scanning.
type RangeCollection struct {
	Ranges []Range

	boundsValid bool
	minStart    Instant
	maxEnd      Instant
}

func NewRangeCollection(ranges ...Range) RangeCollection {
	c := RangeCollection{}
	for _, r := range ranges {
		c.Add(r)
	}
	return c
}

func (c *RangeCollection) Add(r Range) {
	if !c.boundsValid {
		c.minStart = r.Start
		c.maxEnd = r.End
		c.boundsValid = true
	} else {
		if r.Start.Before(c.minStart) {
			c.minStart = r.Start
		}
		if r.End.After(c.maxEnd) {
			c.maxEnd = r.End
		}
	}
	c.Ranges = append(c.Ranges, r)
}

// Bounds returns the smallest range covering every contained range; ok is
// false for an empty collection.
func (c RangeCollection) Bounds() (Range, bool) {
	if !c.boundsValid {
		return Range{}, false
	}
	return Range{Start: c.minStart, End: c.maxEnd}, true
}

// Intersects reports whether any contained range intersects other,
// checking the cached bounds first.
func (c RangeCollection) Intersects(other Range) bool {
	if !c.boundsValid {
		return false
	}
	if !(Range{Start: c.minStart, End: c.maxEnd}).Intersects(other) {
		return false
	}
	for _, r := range c.Ranges {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

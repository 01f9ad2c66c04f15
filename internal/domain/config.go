package domain

import (
	"fmt"
	"time"

	"github.com/KristiansKaneps/nrp-algo-sub000/internal/timemodel"
)

// ConfigError reports a configuration that is well-formed syntactically
// but inconsistent semantically — a zero-size axis, or a skill reference
// that does not resolve — caught once at load time instead of failing
// deep inside a constraint constructor or, worse, silently at search time.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return fmt.Sprintf("nrp: configuration error: %s", e.Reason) }

// Config is everything a parser assembles and a search run needs before
// the first State can be built: the four axes, the planning horizon, and
// the time zone they are resolved in.
type Config struct {
	Axes     Axes
	Horizon  timemodel.Range
	Location *time.Location
}

// Validate checks the invariants every axis and cross-reference must hold
// before search starts: no axis may be empty, and every skill an employee
// or shift references must exist on the Skills axis.
func (c *Config) Validate() error {
	if len(c.Axes.Shifts) == 0 {
		return &ConfigError{Reason: "shift axis is empty"}
	}
	if len(c.Axes.Employees) == 0 {
		return &ConfigError{Reason: "employee axis is empty"}
	}
	if len(c.Axes.Days) == 0 {
		return &ConfigError{Reason: "day axis is empty"}
	}
	if len(c.Axes.Skills) == 0 {
		return &ConfigError{Reason: "skill axis is empty"}
	}
	if c.Location == nil {
		return &ConfigError{Reason: "location is nil"}
	}

	skillCount := uint64(len(c.Axes.Skills))
	for _, shift := range c.Axes.Shifts {
		for w := range shift.RequiredAllSkills {
			if w >= skillCount {
				return &ConfigError{Reason: fmt.Sprintf("shift %q references out-of-range skill %d", shift.Name, w)}
			}
		}
		for w := range shift.RequiredOneSkills {
			if w >= skillCount {
				return &ConfigError{Reason: fmt.Sprintf("shift %q references out-of-range skill %d", shift.Name, w)}
			}
		}
		for blocked := range shift.BlockedNextDayShifts {
			if blocked >= uint64(len(c.Axes.Shifts)) {
				return &ConfigError{Reason: fmt.Sprintf("shift %q blocks out-of-range shift %d", shift.Name, blocked)}
			}
		}
	}
	for _, emp := range c.Axes.Employees {
		for w := range emp.Skills {
			if w >= skillCount {
				return &ConfigError{Reason: fmt.Sprintf("employee %q references out-of-range skill %d", emp.Name, w)}
			}
		}
	}
	return nil
}

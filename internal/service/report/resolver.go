package report

import (
	"time"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/schedule"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/timeutil"
)

// overrideKey addresses at most one override per scope, scope id and day.
type overrideKey struct {
	scope   schedule.Scope
	scopeID string
	date    string
}

type overrideIndex map[overrideKey]schedule.Override

// buildOverrideIndex builds the immutable schedule lookup once per run.
func buildOverrideIndex(overrides []schedule.Override) overrideIndex {
	idx := make(overrideIndex, len(overrides))
	for _, o := range overrides {
		idx[overrideKey{scope: o.Scope, scopeID: o.ScopeID, date: timeutil.DateKey(o.Date)}] = o
	}
	return idx
}

// resolvedSchedule is the effective schedule of one employee-day, with
// entrance and exit pinned onto the day.
type resolvedSchedule struct {
	Entrance      time.Time
	Exit          time.Time
	Holiday       bool
	OvertimeHours int
}

// resolveSchedule merges the department and group overrides for the day.
// Group entrance/exit beat department which beats the configured defaults;
// holiday is the OR of both flags; overtime hours take the maximum, never
// the sum. Missing rules are not an error: the defaults apply.
func (e *Engine) resolveSchedule(idx overrideIndex, groupID, departmentName string, day time.Time) resolvedSchedule {
	date := timeutil.DateKey(day)

	deptRule, hasDept := idx[overrideKey{scope: schedule.ScopeDepartment, scopeID: departmentName, date: date}]
	var groupRule schedule.Override
	var hasGroup bool
	if groupID != "" {
		groupRule, hasGroup = idx[overrideKey{scope: schedule.ScopeGroup, scopeID: groupID, date: date}]
	}

	resolved := resolvedSchedule{
		Entrance: timeutil.AtClock(day, e.cfg.DefaultEntrance),
		Exit:     timeutil.AtClock(day, e.cfg.DefaultExit),
	}

	if hasDept {
		resolved.Holiday = deptRule.Holiday
		resolved.OvertimeHours = deptRule.Overtime
		if deptRule.Entrance != nil {
			resolved.Entrance = timeutil.AtClock(day, *deptRule.Entrance)
		}
		if deptRule.Exit != nil {
			resolved.Exit = timeutil.AtClock(day, *deptRule.Exit)
		}
	}
	if hasGroup {
		resolved.Holiday = resolved.Holiday || groupRule.Holiday
		if groupRule.Overtime > resolved.OvertimeHours {
			resolved.OvertimeHours = groupRule.Overtime
		}
		if groupRule.Entrance != nil {
			resolved.Entrance = timeutil.AtClock(day, *groupRule.Entrance)
		}
		if groupRule.Exit != nil {
			resolved.Exit = timeutil.AtClock(day, *groupRule.Exit)
		}
	}

	return resolved
}

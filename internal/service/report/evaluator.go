package report

import (
	"time"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/permission"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/report"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/timeutil"
)

// dayContext carries everything one employee-day evaluation needs. The
// transitions read it and write the record and the running summary.
type dayContext struct {
	cfg   report.EngineConfig
	day   time.Time
	sched resolvedSchedule

	// perm is the day's usable permission window, nil if none. Schedule
	// boundaries in rec are already permission-adjusted.
	perm    *permission.Permission
	onLeave bool
	punches classification

	rec report.DayRecord
	sum *report.Summary
}

// transition is one guard of the day outcome precedence order. Guards are
// evaluated top to bottom; the first match terminates the day.
type transition struct {
	name  string
	when  func(*dayContext) bool
	apply func(*dayContext)
}

// dayTransitions is the precedence order itself: a blocking holiday beats
// justified leave beats recorded punches beats the absence/rest fallback.
// Exactly one transition fires for every day (the last guard always holds).
var dayTransitions = []transition{
	{name: "holiday", when: isBlockingHoliday, apply: applyHoliday},
	{name: "justified", when: isJustified, apply: applyJustified},
	{name: "punched", when: hasPunches, apply: applyPunched},
	{name: "absent-or-rest", when: always, apply: applyAbsenceOrRest},
}

// evaluateDay runs the transition table and returns the finished record.
func evaluateDay(c *dayContext) report.DayRecord {
	for _, t := range dayTransitions {
		if t.when(c) {
			t.apply(c)
			break
		}
	}
	return c.rec
}

// holidayWorked reports a holiday with approved overtime: workable, paid in
// the Saturday/holiday bucket.
func (c *dayContext) holidayWorked() bool {
	return c.sched.Holiday && c.sched.OvertimeHours > 0
}

func (c *dayContext) dayType() report.DayType {
	if c.day.Weekday() == time.Saturday || c.holidayWorked() {
		return report.DayTypeSaturdayHoliday
	}
	return report.DayTypeNormal
}

func isBlockingHoliday(c *dayContext) bool {
	return c.sched.Holiday && c.sched.OvertimeHours == 0
}

func isJustified(c *dayContext) bool { return c.onLeave }

func hasPunches(c *dayContext) bool { return c.punches.Count > 0 }

func always(*dayContext) bool { return true }

func applyHoliday(c *dayContext) {
	// Punches on a blocking holiday are ignored entirely.
	c.rec.Outcome = report.OutcomeHoliday
}

func applyJustified(c *dayContext) {
	// Punches are ignored once the day is justified: precedence, not data.
	c.rec.Outcome = report.OutcomeJustified
	c.sum.JustifiedAbsences++
}

func applyPunched(c *dayContext) {
	c.sum.Attendances++

	c.rec.Entrance = c.punches.Entrance
	c.rec.Exit = c.punches.Exit
	c.rec.LunchOut = c.punches.LunchOut
	c.rec.LunchIn = c.punches.LunchIn
	c.rec.Lunch = c.punches.Lunch

	cutoff := timeutil.LateCutoff(c.rec.ScheduledEntrance, c.cfg.LateGraceMinutes)
	if c.punches.Entrance.After(cutoff) {
		// Lateness counts from the grace cutoff, not the raw schedule.
		c.rec.Outcome = report.OutcomeLate
		c.rec.LatenessMinutes = timeutil.WholeMinutes(c.punches.Entrance.Sub(cutoff))
		if c.rec.DayType == report.DayTypeNormal {
			c.sum.LateNormal++
			c.sum.LateMinutesNormal += c.rec.LatenessMinutes
		} else {
			c.sum.LateSatHoliday++
			c.sum.LateMinutesSatHoliday += c.rec.LatenessMinutes
		}
	} else {
		c.rec.Outcome = report.OutcomePresent
	}

	// The permission label only displaces Present, never Late.
	if c.perm != nil && c.rec.Outcome == report.OutcomePresent {
		c.rec.Outcome = report.OutcomePermission
	}

	if c.punches.Count >= 2 {
		c.rec.Worked = c.punches.NetWorked

		var candidate time.Duration
		if c.rec.DayType == report.DayTypeSaturdayHoliday {
			// The whole shift is overtime on Saturdays and worked holidays.
			candidate = c.punches.NetWorked
		} else if c.punches.Exit.After(c.rec.ScheduledExit) {
			candidate = c.punches.Exit.Sub(c.rec.ScheduledExit)
		}

		approved := time.Duration(c.sched.OvertimeHours) * time.Hour
		credited := candidate
		if credited > approved {
			credited = approved
		}
		if credited > 0 {
			c.rec.Overtime = credited
			if c.rec.DayType == report.DayTypeNormal {
				c.sum.OvertimeNormal += credited
			} else {
				c.sum.OvertimeSatHoliday += credited
			}
		}
	}
}

func applyAbsenceOrRest(c *dayContext) {
	if !c.isWorkable() {
		c.rec.Outcome = report.OutcomeWeekend
		return
	}

	c.rec.Outcome = report.OutcomeAbsent
	if c.rec.DayType == report.DayTypeNormal {
		c.sum.AbsencesNormal++
		c.sum.UnjustifiedAbsencesNormal++
	} else {
		c.sum.AbsencesSatHoliday++
		c.sum.UnjustifiedAbsencesSatHoliday++
	}
}

// isWorkable decides whether a punch-less, leave-less, non-blocked day counts
// as an absence. Weekdays are workable unless a holiday blocks them; worked
// holidays are workable; Saturdays are workable only when overtime was
// approved, unless the legacy flag disables that requirement.
func (c *dayContext) isWorkable() bool {
	w := c.day.Weekday()
	switch {
	case c.holidayWorked():
		return true
	case w == time.Saturday:
		return !c.cfg.SaturdayNeedsApproval || c.sched.OvertimeHours > 0
	case w == time.Sunday:
		return false
	default:
		return !c.sched.Holiday
	}
}

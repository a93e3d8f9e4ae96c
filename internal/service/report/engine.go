package report

import (
	"time"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/permission"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/report"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/timeutil"
)

// Engine reconciles raw punches against scheduled calendars and produces the
// per-employee, per-day attendance verdicts plus folded summaries. It is a
// pure, single-pass batch computation: no I/O, no clock reads, no shared
// mutable state, so identical inputs always produce identical output.
type Engine struct {
	cfg report.EngineConfig
}

func NewEngine(cfg report.EngineConfig) *Engine {
	return &Engine{cfg: cfg}
}

// ComputeAttendance evaluates every employee over every period day. Lookup
// tables are built once; per-employee evaluation only reads them. Employees
// arrive ordered (the roster query orders by last name) and day records are
// emitted chronologically, so the output ordering is stable.
func (e *Engine) ComputeAttendance(in report.Input) report.Result {
	overrides := buildOverrideIndex(in.Overrides)
	exceptions, anomalies := buildExceptionIndex(in.Justifications, in.Permissions, in.PeriodStart, in.PeriodEnd)
	punches := buildPunchIndex(in.Punches)
	days := e.periodDays(in.PeriodStart, in.PeriodEnd)

	reports := make([]report.EmployeeReport, 0, len(in.Employees))
	for _, emp := range in.Employees {
		rep := report.EmployeeReport{
			Employee: emp,
			Days:     make([]report.DayRecord, 0, len(days)),
		}
		groupID := in.GroupAssignments[emp.Passport]

		for _, day := range days {
			ctx := e.newDayContext(day, emp.Passport, groupID, emp.DepartmentName, overrides, exceptions, punches, &rep.Summary)
			rep.Days = append(rep.Days, evaluateDay(ctx))
		}
		reports = append(reports, rep)
	}

	return report.Result{Reports: reports, Anomalies: anomalies}
}

// newDayContext resolves the day's schedule, applies the permission window to
// the scheduled boundaries and gathers the day's punches.
func (e *Engine) newDayContext(
	day time.Time,
	passport, groupID, departmentName string,
	overrides overrideIndex,
	exceptions *exceptionIndex,
	punches punchIndex,
	sum *report.Summary,
) *dayContext {
	sched := e.resolveSchedule(overrides, groupID, departmentName, day)

	c := &dayContext{
		cfg:     e.cfg,
		day:     day,
		sched:   sched,
		onLeave: exceptions.onLeave(passport, day),
		punches: classifyPunches(punches.forDay(passport, day)),
		sum:     sum,
	}

	entrance, exit := sched.Entrance, sched.Exit
	if p, ok := exceptions.permissionFor(passport, day); ok {
		c.perm = &p
		entrance, exit = applyPermission(day, entrance, exit, p)
	}

	c.rec = report.DayRecord{
		Date:              day,
		HolidayWorked:     c.holidayWorked(),
		ScheduledEntrance: entrance,
		ScheduledExit:     exit,
	}
	c.rec.DayType = c.dayType()
	return c
}

// applyPermission shifts the scheduled boundaries for an excused window.
// A window starting at or before the scheduled entrance excuses the employee
// until its end: the entrance moves forward. A window ending at or after the
// scheduled exit excuses the rest of the shift: the exit moves back to the
// window's start. The two adjustments are independent and can both fire.
func applyPermission(day time.Time, entrance, exit time.Time, p permission.Permission) (time.Time, time.Time) {
	from := timeutil.AtClock(day, p.From)
	to := timeutil.AtClock(day, p.To)

	if !from.After(entrance) {
		entrance = to
	}
	if !to.Before(exit) {
		exit = from
	}
	return entrance, exit
}

// periodDays builds the reporting calendar: every day of [start, end]
// inclusive except the rest weekday, ascending. Rest days produce no record
// at all.
func (e *Engine) periodDays(start, end time.Time) []time.Time {
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == e.cfg.RestDay {
			continue
		}
		days = append(days, d)
	}
	return days
}

package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/justification"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/permission"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/report"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/schedule"
)

var testLoc = mustLoadLocation("America/Guayaquil")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func clock(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", s)
	require.NoError(t, err)
	return parsed
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, testLoc)
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func testConfig(t *testing.T) report.EngineConfig {
	t.Helper()
	return report.EngineConfig{
		DefaultEntrance:       clock(t, "08:00"),
		DefaultExit:           clock(t, "18:00"),
		LateGraceMinutes:      5,
		RestDay:               time.Sunday,
		SaturdayNeedsApproval: true,
	}
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:             101,
		Passport:       "0912345678",
		FirstName:      "Maria",
		LastName:       "Cedeno",
		DepartmentID:   3,
		DepartmentName: "Callcenter",
	}
}

func punchesAt(e employee.Employee, day time.Time, clocks ...[2]int) []report.Punch {
	punches := make([]report.Punch, 0, len(clocks))
	for _, hm := range clocks {
		punches = append(punches, report.Punch{Passport: e.Passport, Time: at(day, hm[0], hm[1])})
	}
	return punches
}

func singleDayInput(e employee.Employee, day time.Time, punches []report.Punch) report.Input {
	return report.Input{
		Employees:   []employee.Employee{e},
		Punches:     punches,
		PeriodStart: day,
		PeriodEnd:   day,
	}
}

func TestComputeAttendance_FourPunchDay(t *testing.T) {
	e := testEmployee()
	day := date(2025, time.June, 2) // Monday
	engine := NewEngine(testConfig(t))

	result := engine.ComputeAttendance(singleDayInput(e, day, punchesAt(e, day,
		[2]int{8, 0}, [2]int{12, 0}, [2]int{13, 0}, [2]int{18, 0},
	)))

	require.Len(t, result.Reports, 1)
	require.Len(t, result.Reports[0].Days, 1)
	rec := result.Reports[0].Days[0]

	assert.Equal(t, report.OutcomePresent, rec.Outcome)
	assert.Equal(t, report.DayTypeNormal, rec.DayType)
	assert.Equal(t, time.Hour, rec.Lunch)
	assert.Equal(t, 9*time.Hour, rec.Worked)
	assert.Equal(t, 0, rec.LatenessMinutes)
	assert.Equal(t, time.Duration(0), rec.Overtime)
	require.NotNil(t, rec.LunchOut)
	assert.Equal(t, at(day, 12, 0), *rec.LunchOut)
	require.NotNil(t, rec.LunchIn)
	assert.Equal(t, at(day, 13, 0), *rec.LunchIn)

	sum := result.Reports[0].Summary
	assert.Equal(t, 1, sum.Attendances)
	assert.Equal(t, 0, sum.LateNormal)
}

func TestComputeAttendance_LatenessMeasuredFromCutoff(t *testing.T) {
	tests := []struct {
		name        string
		entrance    [2]int
		wantOutcome report.Outcome
		wantMinutes int
	}{
		{name: "inside grace", entrance: [2]int{8, 5}, wantOutcome: report.OutcomePresent, wantMinutes: 0},
		{name: "two past cutoff", entrance: [2]int{8, 7}, wantOutcome: report.OutcomeLate, wantMinutes: 2},
		{name: "an hour past cutoff", entrance: [2]int{9, 5}, wantOutcome: report.OutcomeLate, wantMinutes: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEmployee()
			day := date(2025, time.June, 3) // Tuesday
			engine := NewEngine(testConfig(t))

			result := engine.ComputeAttendance(singleDayInput(e, day, punchesAt(e, day,
				tt.entrance, [2]int{18, 0},
			)))

			rec := result.Reports[0].Days[0]
			assert.Equal(t, tt.wantOutcome, rec.Outcome)
			assert.Equal(t, tt.wantMinutes, rec.LatenessMinutes)

			sum := result.Reports[0].Summary
			assert.Equal(t, 1, sum.Attendances)
			assert.Equal(t, tt.wantMinutes, sum.LateMinutesNormal)
		})
	}
}

func TestComputeAttendance_BlockingHolidayIgnoresPunches(t *testing.T) {
	e := testEmployee()
	day := date(2025, time.June, 4) // Wednesday
	engine := NewEngine(testConfig(t))

	in := singleDayInput(e, day, punchesAt(e, day, [2]int{8, 0}, [2]int{18, 0}))
	in.Overrides = []schedule.Override{{
		ID: "ov-1", Scope: schedule.ScopeDepartment, ScopeID: e.DepartmentName,
		Date: day, Holiday: true,
	}}

	result := engine.ComputeAttendance(in)
	rec := result.Reports[0].Days[0]

	assert.Equal(t, report.OutcomeHoliday, rec.Outcome)
	assert.Nil(t, rec.Entrance)
	assert.Equal(t, time.Duration(0), rec.Worked)
	assert.Equal(t, 0, result.Reports[0].Summary.Attendances)
}

func TestComputeAttendance_WorkedHolidayCountsWholeShiftAsOvertime(t *testing.T) {
	e := testEmployee()
	day := date(2025, time.June, 5) // Thursday
	engine := NewEngine(testConfig(t))

	in := singleDayInput(e, day, punchesAt(e, day, [2]int{9, 0}, [2]int{13, 0}))
	in.Overrides = []schedule.Override{{
		ID: "ov-1", Scope: schedule.ScopeDepartment, ScopeID: e.DepartmentName,
		Date: day, Holiday: true, Overtime: 8,
	}}

	result := engine.ComputeAttendance(in)
	rec := result.Reports[0].Days[0]

	assert.True(t, rec.HolidayWorked)
	assert.Equal(t, report.DayTypeSaturdayHoliday, rec.DayType)
	assert.Equal(t, 4*time.Hour, rec.Worked)
	assert.Equal(t, 4*time.Hour, rec.Overtime)
	assert.Equal(t, 4*time.Hour, result.Reports[0].Summary.OvertimeSatHoliday)
	assert.Equal(t, time.Duration(0), result.Reports[0].Summary.OvertimeNormal)
}

func TestComputeAttendance_LeaveBeatsPunches(t *testing.T) {
	e := testEmployee()
	engine := NewEngine(testConfig(t))

	from := date(2025, time.June, 9)  // Monday
	to := date(2025, time.June, 12)   // Thursday
	leaveEnd := date(2025, time.June, 11)

	in := report.Input{
		Employees: []employee.Employee{e},
		Punches: punchesAt(e, date(2025, time.June, 10),
			[2]int{8, 0}, [2]int{18, 0}), // punched inside the leave window
		Justifications: []justification.Justification{{
			ID: "j-1", Passport: e.Passport, Category: "vacation",
			DateStart: from, DateEnd: leaveEnd,
		}},
		PeriodStart: from,
		PeriodEnd:   to,
	}

	result := engine.ComputeAttendance(in)
	days := result.Reports[0].Days
	require.Len(t, days, 4)

	for i := 0; i < 3; i++ {
		assert.Equal(t, report.OutcomeJustified, days[i].Outcome, "day %d", i)
		assert.Nil(t, days[i].Entrance)
	}
	assert.Equal(t, report.OutcomeAbsent, days[3].Outcome)

	sum := result.Reports[0].Summary
	assert.Equal(t, 3, sum.JustifiedAbsences)
	assert.Equal(t, 0, sum.Attendances)
	assert.Equal(t, 1, sum.UnjustifiedAbsencesNormal)
}

func TestComputeAttendance_VoidedLeaveIsIgnored(t *testing.T) {
	e := testEmployee()
	day := date(2025, time.June, 10)
	engine := NewEngine(testConfig(t))

	in := singleDayInput(e, day, nil)
	in.Justifications = []justification.Justification{{
		ID: "j-1", Passport: e.Passport, Category: "medical",
		DateStart: day, DateEnd: day, Voided: true,
	}}

	result := engine.ComputeAttendance(in)
	assert.Equal(t, report.OutcomeAbsent, result.Reports[0].Days[0].Outcome)
}

func TestComputeAttendance_SaturdayWithoutApproval(t *testing.T) {
	e := testEmployee()
	saturday := date(2025, time.June, 7)

	t.Run("no punches and no overtime is a weekend", func(t *testing.T) {
		engine := NewEngine(testConfig(t))
		result := engine.ComputeAttendance(singleDayInput(e, saturday, nil))

		rec := result.Reports[0].Days[0]
		assert.Equal(t, report.OutcomeWeekend, rec.Outcome)
		assert.Equal(t, 0, result.Reports[0].Summary.AbsencesSatHoliday)
	})

	t.Run("approved overtime makes the day expected", func(t *testing.T) {
		engine := NewEngine(testConfig(t))
		in := singleDayInput(e, saturday, nil)
		in.Overrides = []schedule.Override{{
			ID: "ov-1", Scope: schedule.ScopeDepartment, ScopeID: e.DepartmentName,
			Date: saturday, Overtime: 3,
		}}

		result := engine.ComputeAttendance(in)
		rec := result.Reports[0].Days[0]
		assert.Equal(t, report.OutcomeAbsent, rec.Outcome)
		assert.Equal(t, report.DayTypeSaturdayHoliday, rec.DayType)
		assert.Equal(t, 1, result.Reports[0].Summary.AbsencesSatHoliday)
	})

	t.Run("legacy flag treats every saturday as expected", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.SaturdayNeedsApproval = false
		engine := NewEngine(cfg)

		result := engine.ComputeAttendance(singleDayInput(e, saturday, nil))
		assert.Equal(t, report.OutcomeAbsent, result.Reports[0].Days[0].Outcome)
	})
}

func TestComputeAttendance_SaturdayOvertimeIsCapped(t *testing.T) {
	e := testEmployee()
	saturday := date(2025, time.June, 7)
	engine := NewEngine(testConfig(t))

	in := singleDayInput(e, saturday, punchesAt(e, saturday, [2]int{8, 0}, [2]int{13, 30}))
	in.Overrides = []schedule.Override{{
		ID: "ov-1", Scope: schedule.ScopeDepartment, ScopeID: e.DepartmentName,
		Date: saturday, Overtime: 4,
	}}

	result := engine.ComputeAttendance(in)
	rec := result.Reports[0].Days[0]

	assert.Equal(t, report.OutcomePresent, rec.Outcome)
	// 5h30m net worked, but only 4 hours were approved.
	assert.Equal(t, 5*time.Hour+30*time.Minute, rec.Worked)
	assert.Equal(t, 4*time.Hour, rec.Overtime)
	assert.Equal(t, 4*time.Hour, result.Reports[0].Summary.OvertimeSatHoliday)
}

func TestComputeAttendance_WeekdayOvertimePastScheduledExit(t *testing.T) {
	e := testEmployee()
	day := date(2025, time.June, 6) // Friday
	engine := NewEngine(testConfig(t))

	in := singleDayInput(e, day, punchesAt(e, day, [2]int{8, 0}, [2]int{20, 30}))
	in.Overrides = []schedule.Override{{
		ID: "ov-1", Scope: schedule.ScopeDepartment, ScopeID: e.DepartmentName,
		Date: day, Overtime: 2,
	}}

	result := engine.ComputeAttendance(in)
	rec := result.Reports[0].Days[0]

	// 2h30m past the scheduled exit, capped at the 2 approved hours.
	assert.Equal(t, 2*time.Hour, rec.Overtime)
	assert.Equal(t, 2*time.Hour, result.Reports[0].Summary.OvertimeNormal)
}

func TestComputeAttendance_OvertimeRequiresApproval(t *testing.T) {
	e := testEmployee()
	day := date(2025, time.June, 6) // Friday
	engine := NewEngine(testConfig(t))

	result := engine.ComputeAttendance(singleDayInput(e, day,
		punchesAt(e, day, [2]int{8, 0}, [2]int{20, 30})))

	rec := result.Reports[0].Days[0]
	assert.Equal(t, time.Duration(0), rec.Overtime)
	assert.Equal(t, time.Duration(0), result.Reports[0].Summary.OvertimeNormal)
}

func TestComputeAttendance_PermissionShiftsEntrance(t *testing.T) {
	e := testEmployee()
	day := date(2025, time.June, 2) // Monday

	t.Run("window covering the entrance excuses a late arrival", func(t *testing.T) {
		engine := NewEngine(testConfig(t))
		in := singleDayInput(e, day, punchesAt(e, day, [2]int{9, 55}, [2]int{18, 0}))
		in.Permissions = []permission.Permission{{
			ID: "p-1", Passport: e.Passport, Date: day,
			From: clock(t, "08:00"), To: clock(t, "10:00"), Reason: "medical appointment",
		}}

		result := engine.ComputeAttendance(in)
		rec := result.Reports[0].Days[0]

		assert.Equal(t, report.OutcomePermission, rec.Outcome)
		assert.Equal(t, 0, rec.LatenessMinutes)
		assert.Equal(t, at(day, 10, 0), rec.ScheduledEntrance)
	})

	t.Run("mid-day window never excuses the entrance", func(t *testing.T) {
		engine := NewEngine(testConfig(t))
		in := singleDayInput(e, day, punchesAt(e, day, [2]int{8, 7}, [2]int{18, 0}))
		in.Permissions = []permission.Permission{{
			ID: "p-1", Passport: e.Passport, Date: day,
			From: clock(t, "10:00"), To: clock(t, "11:00"), Reason: "errand",
		}}

		result := engine.ComputeAttendance(in)
		rec := result.Reports[0].Days[0]

		// The label only displaces Present, never Late.
		assert.Equal(t, report.OutcomeLate, rec.Outcome)
		assert.Equal(t, 2, rec.LatenessMinutes)
		assert.Equal(t, at(day, 8, 0), rec.ScheduledEntrance)
	})

	t.Run("window reaching the exit moves it back", func(t *testing.T) {
		engine := NewEngine(testConfig(t))
		in := singleDayInput(e, day, punchesAt(e, day, [2]int{8, 0}, [2]int{16, 5}))
		in.Permissions = []permission.Permission{{
			ID: "p-1", Passport: e.Passport, Date: day,
			From: clock(t, "16:00"), To: clock(t, "18:00"), Reason: "family",
		}}

		result := engine.ComputeAttendance(in)
		rec := result.Reports[0].Days[0]

		assert.Equal(t, report.OutcomePermission, rec.Outcome)
		assert.Equal(t, at(day, 16, 0), rec.ScheduledExit)
	})
}

func TestComputeAttendance_DuplicatePermissionIsAnAnomaly(t *testing.T) {
	e := testEmployee()
	day := date(2025, time.June, 2) // Monday
	engine := NewEngine(testConfig(t))

	in := singleDayInput(e, day, punchesAt(e, day, [2]int{9, 55}, [2]int{18, 0}))
	in.Permissions = []permission.Permission{
		{ID: "p-1", Passport: e.Passport, Date: day, From: clock(t, "08:00"), To: clock(t, "10:00")},
		{ID: "p-2", Passport: e.Passport, Date: day, From: clock(t, "08:30"), To: clock(t, "09:30")},
	}

	result := engine.ComputeAttendance(in)
	rec := result.Reports[0].Days[0]

	// Neither window applies; the schedule stays untouched and the arrival
	// reads as plain lateness.
	assert.Equal(t, report.OutcomeLate, rec.Outcome)
	assert.Equal(t, at(day, 8, 0), rec.ScheduledEntrance)

	require.Len(t, result.Anomalies, 1)
	assert.Equal(t, report.AnomalyDuplicatePermission, result.Anomalies[0].Kind)
	assert.Equal(t, e.Passport, result.Anomalies[0].Passport)
}

func TestComputeAttendance_RestDayProducesNoRecord(t *testing.T) {
	e := testEmployee()
	engine := NewEngine(testConfig(t))

	from := date(2025, time.June, 6) // Friday
	to := date(2025, time.June, 9)   // Monday

	result := engine.ComputeAttendance(report.Input{
		Employees:   []employee.Employee{e},
		PeriodStart: from,
		PeriodEnd:   to,
	})

	days := result.Reports[0].Days
	require.Len(t, days, 3) // Friday, Saturday, Monday
	for _, d := range days {
		assert.NotEqual(t, time.Sunday, d.Date.Weekday())
	}
}

func TestComputeAttendance_GroupRuleBeatsDepartmentRule(t *testing.T) {
	e := testEmployee()
	day := date(2025, time.June, 2) // Monday
	engine := NewEngine(testConfig(t))

	deptEntrance := clock(t, "07:00")
	groupEntrance := clock(t, "10:00")

	in := singleDayInput(e, day, punchesAt(e, day, [2]int{10, 2}, [2]int{18, 0}))
	in.GroupAssignments = map[string]string{e.Passport: "g-42"}
	in.Overrides = []schedule.Override{
		{ID: "ov-d", Scope: schedule.ScopeDepartment, ScopeID: e.DepartmentName, Date: day, Entrance: &deptEntrance},
		{ID: "ov-g", Scope: schedule.ScopeGroup, ScopeID: "g-42", Date: day, Entrance: &groupEntrance},
	}

	result := engine.ComputeAttendance(in)
	rec := result.Reports[0].Days[0]

	assert.Equal(t, at(day, 10, 0), rec.ScheduledEntrance)
	assert.Equal(t, report.OutcomePresent, rec.Outcome)
}

func TestComputeAttendance_EveryDayGetsExactlyOneOutcome(t *testing.T) {
	e := testEmployee()
	engine := NewEngine(testConfig(t))

	from := date(2025, time.June, 1)
	to := date(2025, time.June, 30)

	in := report.Input{
		Employees: []employee.Employee{e},
		Punches: punchesAt(e, date(2025, time.June, 10),
			[2]int{8, 0}, [2]int{12, 0}, [2]int{13, 0}, [2]int{18, 0}),
		Justifications: []justification.Justification{{
			ID: "j-1", Passport: e.Passport, Category: "vacation",
			DateStart: date(2025, time.June, 16), DateEnd: date(2025, time.June, 20),
		}},
		PeriodStart: from,
		PeriodEnd:   to,
	}

	result := engine.ComputeAttendance(in)
	for _, d := range result.Reports[0].Days {
		assert.NotEmpty(t, d.Outcome, "day %s", d.Date.Format("2006-01-02"))
	}
}

func TestComputeAttendance_Deterministic(t *testing.T) {
	e := testEmployee()
	engine := NewEngine(testConfig(t))

	in := report.Input{
		Employees: []employee.Employee{e},
		Punches: punchesAt(e, date(2025, time.June, 3),
			[2]int{8, 7}, [2]int{12, 0}, [2]int{13, 0}, [2]int{19, 0}),
		PeriodStart: date(2025, time.June, 2),
		PeriodEnd:   date(2025, time.June, 8),
	}

	first := engine.ComputeAttendance(in)
	second := engine.ComputeAttendance(in)
	assert.Equal(t, first, second)
}

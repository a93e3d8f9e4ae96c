package report

import (
	"time"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/justification"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/permission"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/schedule"
)

// Punch is a single clock event, already localized to the operating timezone
// by the data layer. The engine never converts timezones.
type Punch struct {
	Passport string
	Time     time.Time
}

// Outcome is the single verdict assigned to one employee-day. Exactly one
// outcome is assigned per day in the period, never zero, never two.
type Outcome string

const (
	OutcomePresent    Outcome = "present"
	OutcomeLate       Outcome = "late"
	OutcomeAbsent     Outcome = "absent"
	OutcomeHoliday    Outcome = "holiday"
	OutcomeJustified  Outcome = "justified"
	OutcomePermission Outcome = "permission"
	OutcomeWeekend    Outcome = "weekend"
)

// DayType says which summary bucket a day's lateness, absences and overtime
// fall into. Saturdays and worked holidays pay differently from normal days.
type DayType string

const (
	DayTypeNormal          DayType = "normal"
	DayTypeSaturdayHoliday DayType = "saturday_holiday"
)

// DayRecord is the per-day output of the engine. Constructed once during
// evaluation and never mutated after being appended.
type DayRecord struct {
	Date    time.Time
	Outcome Outcome
	DayType DayType

	// True for a holiday with approved overtime: the day is workable and
	// lands in the Saturday/holiday bucket.
	HolidayWorked bool

	// Schedule after permission adjustment, pinned to the day.
	ScheduledEntrance time.Time
	ScheduledExit     time.Time

	// Observed punches, nil when not available.
	Entrance *time.Time
	LunchOut *time.Time
	LunchIn  *time.Time
	Exit     *time.Time

	LatenessMinutes int
	Lunch           time.Duration
	Worked          time.Duration
	Overtime        time.Duration // credited, capped by approved hours
}

// Summary accumulates one employee's totals across the period.
type Summary struct {
	Attendances int

	LateNormal            int
	LateSatHoliday        int
	LateMinutesNormal     int
	LateMinutesSatHoliday int

	AbsencesNormal                int
	AbsencesSatHoliday            int
	UnjustifiedAbsencesNormal     int
	UnjustifiedAbsencesSatHoliday int
	JustifiedAbsences             int

	OvertimeNormal     time.Duration
	OvertimeSatHoliday time.Duration
}

// EmployeeReport pairs an employee with their chronological day records and
// folded summary.
type EmployeeReport struct {
	Employee employee.Employee
	Days     []DayRecord
	Summary  Summary
}

// AnomalyKind classifies input records the engine refused to interpret.
type AnomalyKind string

const (
	AnomalyInvertedPermission  AnomalyKind = "inverted_permission"
	AnomalyInvertedLeave       AnomalyKind = "inverted_leave"
	AnomalyDuplicatePermission AnomalyKind = "duplicate_permission"
)

// Anomaly records a single rejected input record. Anomalies never abort the
// run; the affected record is skipped and everything else is evaluated.
type Anomaly struct {
	Passport string
	Date     time.Time
	Kind     AnomalyKind
	Detail   string
}

// EngineConfig carries the documented defaults the engine falls back to when
// reference data is missing, plus the rule flags.
type EngineConfig struct {
	DefaultEntrance  time.Time // clock only
	DefaultExit      time.Time // clock only
	LateGraceMinutes int

	// RestDay is skipped entirely when building the period calendar; rest
	// days produce no DayRecord at all.
	RestDay time.Weekday

	// SaturdayNeedsApproval makes a punch-less Saturday a rest day unless
	// overtime hours were approved for it. The legacy rule (every Saturday
	// is workable) is the false setting.
	SaturdayNeedsApproval bool
}

// Input is the point-in-time snapshot one report run computes over. All
// collections are read-only for the duration of the run.
type Input struct {
	Employees      []employee.Employee
	Punches        []Punch
	Overrides      []schedule.Override
	Justifications []justification.Justification
	Permissions    []permission.Permission

	// GroupAssignments maps passport -> group id.
	GroupAssignments map[string]string

	PeriodStart time.Time
	PeriodEnd   time.Time
}

// Result is the engine output: best-effort reports plus the anomalies
// encountered while indexing the inputs.
type Result struct {
	Reports   []EmployeeReport
	Anomalies []Anomaly
}

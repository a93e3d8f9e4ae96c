package schedule

import "time"

// Scope says which population a date override applies to.
type Scope string

const (
	ScopeGroup      Scope = "group"
	ScopeDepartment Scope = "department"
)

var ScopeValues = []string{string(ScopeGroup), string(ScopeDepartment)}

// Override is a date-specific deviation from the default working hours for a
// group or a whole department: special entrance/exit, pre-approved overtime
// hours, holiday flag. At most one override exists per (scope, scope id,
// date); writes upsert.
//
// When a group override and a department override collide on the same
// employee-day, the group's entrance/exit/holiday win; overtime hours take
// the maximum of the two, never the sum.
type Override struct {
	ID       string
	Scope    Scope
	ScopeID  string // group id or department name
	Date     time.Time
	Entrance *time.Time // clock only, nil = no special entrance
	Exit     *time.Time // clock only, nil = no special exit
	Overtime int        // approved overtime hours, >= 0
	Holiday  bool

	ScopeLabel string // group name for group scope, department name otherwise
}

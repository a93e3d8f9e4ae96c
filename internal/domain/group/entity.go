package group

import "time"

// Portfolio is a commercial portfolio groups hang from.
type Portfolio struct {
	ID          string
	Code        string
	Name        string
	Description *string
	Voided      bool
	CreatedAt   time.Time
}

// Group is a named set of employees sharing base working hours. Date-specific
// deviations live in schedule overrides, not here.
type Group struct {
	ID          string
	Code        string
	Name        string
	Entrance    time.Time // clock only
	Exit        time.Time // clock only
	PortfolioID *string
	CreatedAt   time.Time

	PortfolioName *string
	MemberCount   int
}

// Member links an employee passport to a group. An employee belongs to at
// most one group; assignment replaces any previous membership.
type Member struct {
	ID       string
	GroupID  string
	Passport string

	FirstName      string
	LastName       string
	DepartmentName string
}

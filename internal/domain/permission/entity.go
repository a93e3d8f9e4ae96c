package permission

import "time"

// Permission is a short excused absence inside a single workday: the employee
// is excused between From and To. At most one permission should exist per
// employee per date; the report engine flags violations instead of guessing.
type Permission struct {
	ID        string
	Passport  string
	Date      time.Time
	From      time.Time // clock only
	To        time.Time // clock only
	Reason    string
	Note      *string
	CreatedAt time.Time

	FirstName      string
	LastName       string
	DepartmentName string
}

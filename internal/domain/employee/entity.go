package employee

// Employee is a row of the external personnel table the clock devices write
// to. Read-only: this service never creates or mutates personnel records.
type Employee struct {
	ID           int
	Passport     string
	FirstName    string
	LastName     string
	DepartmentID int

	DepartmentName string
}

// FullName renders "LastName FirstName", the ordering the report uses.
func (e Employee) FullName() string {
	return e.LastName + " " + e.FirstName
}

// Department is a row of the external department table.
type Department struct {
	ID   int
	Code string
	Name string
}

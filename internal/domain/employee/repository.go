package employee

import "context"

// EmployeeRepository reads the external personnel tables. All listing is
// restricted to the configured reportable departments; employees outside
// them never appear in any report or search.
type EmployeeRepository interface {
	// ListReportable returns employees of the reportable departments ordered
	// by last name. departmentID narrows to a single department when > 0.
	ListReportable(ctx context.Context, departments []string, departmentID int) ([]Employee, error)

	// Search matches passport, first or last name against q (case
	// insensitive, partial) within the reportable departments.
	Search(ctx context.Context, departments []string, q string, limit int) ([]Employee, error)

	// GetByPassport resolves a single employee.
	GetByPassport(ctx context.Context, passport string) (Employee, error)
}

// DepartmentRepository reads the external department table.
type DepartmentRepository interface {
	ListByNames(ctx context.Context, names []string) ([]Department, error)
}

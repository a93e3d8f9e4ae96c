package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/database"
)

// employeeRepositoryImpl reads the external ZKTeco personnel tables. They are
// owned by the clock software; this repository never writes them.
type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.passport, e.first_name, COALESCE(e.last_name, ''),
	e.department_id, d.dept_name
`

// ListReportable implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListReportable(ctx context.Context, departments []string, departmentID int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM personnel_employee e
		JOIN personnel_department d ON d.id = e.department_id
		WHERE d.dept_name = ANY($1)
	`
	args := []interface{}{departments}
	if departmentID > 0 {
		query += ` AND e.department_id = $2`
		args = append(args, departmentID)
	}
	query += ` ORDER BY e.last_name, e.first_name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

const employeeSearchQuery = `
	SELECT ` + employeeColumns + `
	FROM personnel_employee e
	JOIN personnel_department d ON d.id = e.department_id
	WHERE d.dept_name = ANY($1)
	  AND (e.passport ILIKE $2 OR e.first_name ILIKE $2 OR e.last_name ILIKE $2)
	ORDER BY e.last_name, e.first_name
	LIMIT $3
`

// Search implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Search(ctx context.Context, departments []string, query string, limit int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, employeeSearchQuery, departments, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

const employeeByPassportQuery = `
	SELECT ` + employeeColumns + `
	FROM personnel_employee e
	JOIN personnel_department d ON d.id = e.department_id
	WHERE e.passport = $1
`

// GetByPassport implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByPassport(ctx context.Context, passport string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var e employee.Employee
	err := q.QueryRow(ctx, employeeByPassportQuery, passport).Scan(
		&e.ID, &e.Passport, &e.FirstName, &e.LastName,
		&e.DepartmentID, &e.DepartmentName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", passport, err)
	}
	return e, nil
}

func scanEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID, &e.Passport, &e.FirstName, &e.LastName,
			&e.DepartmentID, &e.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

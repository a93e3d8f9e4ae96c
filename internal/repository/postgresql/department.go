package postgresql

import (
	"context"
	"fmt"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) employee.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// ListByNames implements employee.DepartmentRepository.
func (r *departmentRepositoryImpl) ListByNames(ctx context.Context, names []string) ([]employee.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, dept_code, dept_name
		FROM personnel_department
		WHERE dept_name = ANY($1)
		ORDER BY dept_name
	`

	rows, err := q.Query(ctx, query, names)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []employee.Department
	for rows.Next() {
		var d employee.Department
		if err := rows.Scan(&d.ID, &d.Code, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return departments, nil
}

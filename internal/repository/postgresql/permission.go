package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/permission"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/database"
)

type permissionRepositoryImpl struct {
	db *database.DB
}

func NewPermissionRepository(db *database.DB) permission.PermissionRepository {
	return &permissionRepositoryImpl{db: db}
}

const permissionColumns = `
	p.id, p.passport, p.date, p.time_from, p.time_to, p.reason, p.note, p.created_at,
	COALESCE(e.first_name, ''), COALESCE(e.last_name, ''), COALESCE(d.dept_name, '')
`

const permissionJoins = `
	FROM permissions p
	LEFT JOIN personnel_employee e ON e.passport = p.passport
	LEFT JOIN personnel_department d ON d.id = e.department_id
`

// Create implements permission.PermissionRepository.
func (r *permissionRepositoryImpl) Create(ctx context.Context, p permission.Permission) (permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO permissions (id, passport, date, time_from, time_to, reason, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, p.ID, p.Passport, p.Date, p.From, p.To, p.Reason, p.Note).Scan(&p.CreatedAt)
	if err != nil {
		return permission.Permission{}, fmt.Errorf("failed to create permission: %w", err)
	}
	return p, nil
}

// GetByID implements permission.PermissionRepository.
func (r *permissionRepositoryImpl) GetByID(ctx context.Context, id string) (permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + permissionColumns + permissionJoins + ` WHERE p.id = $1`

	var p permission.Permission
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Passport, &p.Date, &p.From, &p.To, &p.Reason, &p.Note,
		&p.CreatedAt, &p.FirstName, &p.LastName, &p.DepartmentName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return permission.Permission{}, permission.ErrPermissionNotFound
		}
		return permission.Permission{}, fmt.Errorf("failed to get permission %s: %w", id, err)
	}
	return p, nil
}

// Update implements permission.PermissionRepository.
func (r *permissionRepositoryImpl) Update(ctx context.Context, p permission.Permission) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE permissions
		SET date = $2, time_from = $3, time_to = $4, reason = $5, note = $6
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, p.ID, p.Date, p.From, p.To, p.Reason, p.Note)
	if err != nil {
		return fmt.Errorf("failed to update permission %s: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return permission.ErrPermissionNotFound
	}
	return nil
}

// Delete implements permission.PermissionRepository.
func (r *permissionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM permissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete permission %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return permission.ErrPermissionNotFound
	}
	return nil
}

// List implements permission.PermissionRepository.
func (r *permissionRepositoryImpl) List(ctx context.Context, filter permission.ListPermissionsFilter) ([]permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + permissionColumns + permissionJoins + ` WHERE TRUE`
	var args []interface{}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		query += fmt.Sprintf(` AND (p.passport ILIKE $%d OR e.first_name ILIKE $%d OR e.last_name ILIKE $%d)`, len(args), len(args), len(args))
	}
	if len(filter.DepartmentIDs) > 0 {
		args = append(args, filter.DepartmentIDs)
		query += fmt.Sprintf(` AND e.department_id = ANY($%d)`, len(args))
	}
	if filter.From != "" {
		args = append(args, filter.From)
		query += fmt.Sprintf(` AND p.date >= $%d`, len(args))
	}
	if filter.To != "" {
		args = append(args, filter.To)
		query += fmt.Sprintf(` AND p.date <= $%d`, len(args))
	}
	query += ` ORDER BY p.passport, p.date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query permissions: %w", err)
	}
	defer rows.Close()

	return scanPermissions(rows)
}

// ListInRange implements permission.PermissionRepository.
func (r *permissionRepositoryImpl) ListInRange(ctx context.Context, passports []string, from, to time.Time) ([]permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + permissionColumns + permissionJoins + `
		WHERE p.passport = ANY($1) AND p.date >= $2 AND p.date <= $3
		ORDER BY p.passport, p.date
	`

	rows, err := q.Query(ctx, query, passports, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query permissions in range: %w", err)
	}
	defer rows.Close()

	return scanPermissions(rows)
}

func scanPermissions(rows pgx.Rows) ([]permission.Permission, error) {
	var permissions []permission.Permission
	for rows.Next() {
		var p permission.Permission
		err := rows.Scan(
			&p.ID, &p.Passport, &p.Date, &p.From, &p.To, &p.Reason, &p.Note,
			&p.CreatedAt, &p.FirstName, &p.LastName, &p.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		permissions = append(permissions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return permissions, nil
}

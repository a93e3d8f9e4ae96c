package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/justification"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/database"
)

type justificationRepositoryImpl struct {
	db *database.DB
}

func NewJustificationRepository(db *database.DB) justification.JustificationRepository {
	return &justificationRepositoryImpl{db: db}
}

const justificationColumns = `
	j.id, j.passport, j.category, j.date_start, j.date_end, j.reason,
	j.voided, j.created_at,
	COALESCE(e.first_name, ''), COALESCE(e.last_name, ''), COALESCE(d.dept_name, '')
`

const justificationJoins = `
	FROM justifications j
	LEFT JOIN personnel_employee e ON e.passport = j.passport
	LEFT JOIN personnel_department d ON d.id = e.department_id
`

// Create implements justification.JustificationRepository.
func (r *justificationRepositoryImpl) Create(ctx context.Context, j justification.Justification) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO justifications (id, passport, category, date_start, date_end, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, j.ID, j.Passport, j.Category, j.DateStart, j.DateEnd, j.Reason).Scan(&j.CreatedAt)
	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to create justification: %w", err)
	}
	return j, nil
}

// GetByID implements justification.JustificationRepository.
func (r *justificationRepositoryImpl) GetByID(ctx context.Context, id string) (justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + justificationColumns + justificationJoins + ` WHERE j.id = $1`

	var j justification.Justification
	err := q.QueryRow(ctx, query, id).Scan(
		&j.ID, &j.Passport, &j.Category, &j.DateStart, &j.DateEnd, &j.Reason,
		&j.Voided, &j.CreatedAt, &j.FirstName, &j.LastName, &j.DepartmentName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return justification.Justification{}, justification.ErrJustificationNotFound
		}
		return justification.Justification{}, fmt.Errorf("failed to get justification %s: %w", id, err)
	}
	return j, nil
}

// Update implements justification.JustificationRepository.
func (r *justificationRepositoryImpl) Update(ctx context.Context, j justification.Justification) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE justifications
		SET category = $2, date_start = $3, date_end = $4, reason = $5
		WHERE id = $1 AND NOT voided
	`

	tag, err := q.Exec(ctx, query, j.ID, j.Category, j.DateStart, j.DateEnd, j.Reason)
	if err != nil {
		return fmt.Errorf("failed to update justification %s: %w", j.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return justification.ErrJustificationNotFound
	}
	return nil
}

// Void implements justification.JustificationRepository. Voiding keeps the
// row for audit; the engine and active listings skip it.
func (r *justificationRepositoryImpl) Void(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE justifications SET voided = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to void justification %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return justification.ErrJustificationNotFound
	}
	return nil
}

// List implements justification.JustificationRepository.
func (r *justificationRepositoryImpl) List(ctx context.Context, filter justification.ListJustificationsFilter) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + justificationColumns + justificationJoins + ` WHERE TRUE`
	var args []interface{}
	if !filter.IncludeVoided {
		query += ` AND NOT j.voided`
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		query += fmt.Sprintf(` AND (j.passport ILIKE $%d OR e.first_name ILIKE $%d OR e.last_name ILIKE $%d)`, len(args), len(args), len(args))
	}
	if len(filter.DepartmentIDs) > 0 {
		args = append(args, filter.DepartmentIDs)
		query += fmt.Sprintf(` AND e.department_id = ANY($%d)`, len(args))
	}
	if filter.From != "" {
		args = append(args, filter.From)
		query += fmt.Sprintf(` AND j.date_end >= $%d`, len(args))
	}
	if filter.To != "" {
		args = append(args, filter.To)
		query += fmt.Sprintf(` AND j.date_start <= $%d`, len(args))
	}
	query += ` ORDER BY j.date_start DESC, j.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query justifications: %w", err)
	}
	defer rows.Close()

	return scanJustifications(rows)
}

// ListActiveOverlapping implements justification.JustificationRepository.
func (r *justificationRepositoryImpl) ListActiveOverlapping(ctx context.Context, passports []string, from, to time.Time) ([]justification.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + justificationColumns + justificationJoins + `
		WHERE NOT j.voided
		  AND j.passport = ANY($1)
		  AND j.date_start <= $3
		  AND j.date_end >= $2
		ORDER BY j.passport, j.date_start
	`

	rows, err := q.Query(ctx, query, passports, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping justifications: %w", err)
	}
	defer rows.Close()

	return scanJustifications(rows)
}

func scanJustifications(rows pgx.Rows) ([]justification.Justification, error) {
	var justifications []justification.Justification
	for rows.Next() {
		var j justification.Justification
		err := rows.Scan(
			&j.ID, &j.Passport, &j.Category, &j.DateStart, &j.DateEnd, &j.Reason,
			&j.Voided, &j.CreatedAt, &j.FirstName, &j.LastName, &j.DepartmentName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan justification: %w", err)
		}
		justifications = append(justifications, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return justifications, nil
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/schedule"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/database"
)

// overrideRepositoryImpl persists schedule overrides. Group and department
// overrides live in separate tables keyed to their own parents; the
// repository presents them as one collection with a scope discriminator.
type overrideRepositoryImpl struct {
	db *database.DB
}

func NewOverrideRepository(db *database.DB) schedule.OverrideRepository {
	return &overrideRepositoryImpl{db: db}
}

// Upsert implements schedule.OverrideRepository. At most one override exists
// per scope target and date; a second upsert replaces the first.
func (r *overrideRepositoryImpl) Upsert(ctx context.Context, o schedule.Override) (schedule.Override, error) {
	q := GetQuerier(ctx, r.db)

	var query string
	switch o.Scope {
	case schedule.ScopeGroup:
		query = `
			INSERT INTO group_schedule_overrides (id, group_id, date, entrance, exit, overtime, holiday)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (group_id, date) DO UPDATE
			SET entrance = EXCLUDED.entrance, exit = EXCLUDED.exit,
				overtime = EXCLUDED.overtime, holiday = EXCLUDED.holiday
			RETURNING id
		`
	case schedule.ScopeDepartment:
		query = `
			INSERT INTO department_schedule_overrides (id, department_name, date, entrance, exit, overtime, holiday)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (department_name, date) DO UPDATE
			SET entrance = EXCLUDED.entrance, exit = EXCLUDED.exit,
				overtime = EXCLUDED.overtime, holiday = EXCLUDED.holiday
			RETURNING id
		`
	default:
		return schedule.Override{}, schedule.ErrInvalidScope
	}

	err := q.QueryRow(ctx, query, o.ID, o.ScopeID, o.Date, o.Entrance, o.Exit, o.Overtime, o.Holiday).Scan(&o.ID)
	if err != nil {
		return schedule.Override{}, fmt.Errorf("failed to upsert %s override: %w", o.Scope, err)
	}
	return o, nil
}

// Delete implements schedule.OverrideRepository. The id is unique across
// both tables, so deletion tries each in turn.
func (r *overrideRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM group_schedule_overrides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group override %s: %w", id, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	tag, err = q.Exec(ctx, `DELETE FROM department_schedule_overrides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department override %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrOverrideNotFound
	}
	return nil
}

// unionQuery is the two override tables stitched into one relation. Group
// rows carry the group's name as label, department rows their own name.
const unionQuery = `
	SELECT o.id, 'group' AS scope, o.group_id::text AS scope_id, o.date,
		o.entrance, o.exit, o.overtime, o.holiday, g.name AS scope_label
	FROM group_schedule_overrides o
	JOIN groups g ON g.id = o.group_id
	UNION ALL
	SELECT o.id, 'department' AS scope, o.department_name AS scope_id, o.date,
		o.entrance, o.exit, o.overtime, o.holiday, o.department_name AS scope_label
	FROM department_schedule_overrides o
`

// List implements schedule.OverrideRepository.
func (r *overrideRepositoryImpl) List(ctx context.Context, filter schedule.ListOverridesFilter) ([]schedule.Override, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT * FROM (` + unionQuery + `) AS overrides WHERE TRUE`
	var args []interface{}
	if filter.Scope != "" {
		args = append(args, filter.Scope)
		query += fmt.Sprintf(` AND scope = $%d`, len(args))
	}
	if filter.From != "" {
		args = append(args, filter.From)
		query += fmt.Sprintf(` AND date >= $%d`, len(args))
	}
	if filter.To != "" {
		args = append(args, filter.To)
		query += fmt.Sprintf(` AND date <= $%d`, len(args))
	}
	query += ` ORDER BY date, scope, scope_id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query overrides: %w", err)
	}
	defer rows.Close()

	return scanOverrides(rows)
}

// ListInRange implements schedule.OverrideRepository.
func (r *overrideRepositoryImpl) ListInRange(ctx context.Context, from, to time.Time) ([]schedule.Override, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT * FROM (` + unionQuery + `) AS overrides
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query overrides in range: %w", err)
	}
	defer rows.Close()

	return scanOverrides(rows)
}

func scanOverrides(rows pgx.Rows) ([]schedule.Override, error) {
	var overrides []schedule.Override
	for rows.Next() {
		var o schedule.Override
		var scope string
		err := rows.Scan(&o.ID, &scope, &o.ScopeID, &o.Date, &o.Entrance, &o.Exit, &o.Overtime, &o.Holiday, &o.ScopeLabel)
		if err != nil {
			return nil, fmt.Errorf("failed to scan override: %w", err)
		}
		o.Scope = schedule.Scope(scope)
		overrides = append(overrides, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return overrides, nil
}

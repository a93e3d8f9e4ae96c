package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/report"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/database"
)

// punchRepositoryImpl reads the external ZKTeco clock-transaction table.
// Punch timestamps are stored in UTC; localization to the operating timezone
// happens here, in SQL, so everything downstream works in local wall time.
type punchRepositoryImpl struct {
	db       *database.DB
	timezone string
}

func NewPunchRepository(db *database.DB, timezone string) report.PunchRepository {
	return &punchRepositoryImpl{db: db, timezone: timezone}
}

// The upper bound is exclusive on the day after "to" so the whole last day is
// covered regardless of punch time.
const punchListQuery = `
	SELECT e.passport, t.punch_time AT TIME ZONE 'UTC' AT TIME ZONE $4
	FROM iclock_transaction t
	JOIN personnel_employee e ON e.id = t.emp_id
	WHERE t.emp_id = ANY($1)
	  AND (t.punch_time AT TIME ZONE 'UTC' AT TIME ZONE $4) >= $2
	  AND (t.punch_time AT TIME ZONE 'UTC' AT TIME ZONE $4) < $3
	ORDER BY t.punch_time
`

// ListByEmployees implements report.PunchRepository.
func (r *punchRepositoryImpl) ListByEmployees(ctx context.Context, employeeIDs []int, from, to time.Time) ([]report.Punch, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, punchListQuery, employeeIDs, from, to.AddDate(0, 0, 1), r.timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to query punches: %w", err)
	}
	defer rows.Close()

	loc, err := time.LoadLocation(r.timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid punch timezone %s: %w", r.timezone, err)
	}

	var punches []report.Punch
	for rows.Next() {
		var p report.Punch
		if err := rows.Scan(&p.Passport, &p.Time); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		// AT TIME ZONE yields a naive timestamp; pin it to the zone it
		// already represents.
		p.Time = time.Date(
			p.Time.Year(), p.Time.Month(), p.Time.Day(),
			p.Time.Hour(), p.Time.Minute(), p.Time.Second(), p.Time.Nanosecond(),
			loc,
		)
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return punches, nil
}

package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/group"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/database"
)

type groupRepositoryImpl struct {
	db *database.DB
}

func NewGroupRepository(db *database.DB) group.GroupRepository {
	return &groupRepositoryImpl{db: db}
}

const groupColumns = `
	g.id, g.code, g.name, g.entrance, g.exit, g.portfolio_id, g.created_at,
	p.name,
	(SELECT COUNT(*) FROM group_members m WHERE m.group_id = g.id)
`

// Create implements group.GroupRepository.
func (r *groupRepositoryImpl) Create(ctx context.Context, g group.Group) (group.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO groups (id, code, name, entrance, exit, portfolio_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, g.ID, g.Code, g.Name, g.Entrance, g.Exit, g.PortfolioID).Scan(&g.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return group.Group{}, group.ErrGroupCodeExists
		}
		return group.Group{}, fmt.Errorf("failed to create group: %w", err)
	}
	return g, nil
}

// GetByID implements group.GroupRepository.
func (r *groupRepositoryImpl) GetByID(ctx context.Context, id string) (group.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + groupColumns + `
		FROM groups g
		LEFT JOIN portfolios p ON p.id = g.portfolio_id
		WHERE g.id = $1
	`

	var g group.Group
	err := q.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.Code, &g.Name, &g.Entrance, &g.Exit, &g.PortfolioID,
		&g.CreatedAt, &g.PortfolioName, &g.MemberCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return group.Group{}, group.ErrGroupNotFound
		}
		return group.Group{}, fmt.Errorf("failed to get group %s: %w", id, err)
	}
	return g, nil
}

// List implements group.GroupRepository.
func (r *groupRepositoryImpl) List(ctx context.Context) ([]group.Group, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + groupColumns + `
		FROM groups g
		LEFT JOIN portfolios p ON p.id = g.portfolio_id
		ORDER BY g.code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	var groups []group.Group
	for rows.Next() {
		var g group.Group
		err := rows.Scan(
			&g.ID, &g.Code, &g.Name, &g.Entrance, &g.Exit, &g.PortfolioID,
			&g.CreatedAt, &g.PortfolioName, &g.MemberCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}

// Update implements group.GroupRepository.
func (r *groupRepositoryImpl) Update(ctx context.Context, g group.Group) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE groups
		SET code = $2, name = $3, entrance = $4, exit = $5, portfolio_id = $6
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, g.ID, g.Code, g.Name, g.Entrance, g.Exit, g.PortfolioID)
	if err != nil {
		if isUniqueViolation(err) {
			return group.ErrGroupCodeExists
		}
		return fmt.Errorf("failed to update group %s: %w", g.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return group.ErrGroupNotFound
	}
	return nil
}

// Delete implements group.GroupRepository. A group with members refuses to
// go: membership must be moved or removed first.
func (r *groupRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var members int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM group_members WHERE group_id = $1`, id).Scan(&members)
	if err != nil {
		return fmt.Errorf("failed to count group members: %w", err)
	}
	if members > 0 {
		return group.ErrGroupHasMembers
	}

	tag, err := q.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return group.ErrGroupNotFound
	}
	return nil
}

const memberListQuery = `
	SELECT m.id, m.group_id, m.passport,
		COALESCE(e.first_name, ''), COALESCE(e.last_name, ''), COALESCE(d.dept_name, '')
	FROM group_members m
	LEFT JOIN personnel_employee e ON e.passport = m.passport
	LEFT JOIN personnel_department d ON d.id = e.department_id
	WHERE m.group_id = $1
	ORDER BY e.last_name, e.first_name
`

// ListMembers implements group.GroupRepository.
func (r *groupRepositoryImpl) ListMembers(ctx context.Context, groupID string) ([]group.Member, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, memberListQuery, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query group members: %w", err)
	}
	defer rows.Close()

	var members []group.Member
	for rows.Next() {
		var m group.Member
		err := rows.Scan(&m.ID, &m.GroupID, &m.Passport, &m.FirstName, &m.LastName, &m.DepartmentName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return members, nil
}

// AssignMembers implements group.GroupRepository. An employee belongs to at
// most one group, so assignment first clears any previous membership of the
// same passports, all in one transaction.
func (r *groupRepositoryImpl) AssignMembers(ctx context.Context, groupID string, passports []string) (int, error) {
	if len(passports) == 0 {
		return 0, nil
	}

	var assigned int
	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`, groupID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check group: %w", err)
		}
		if !exists {
			return group.ErrGroupNotFound
		}

		if _, err := q.Exec(ctx, `DELETE FROM group_members WHERE passport = ANY($1)`, passports); err != nil {
			return fmt.Errorf("failed to clear previous membership: %w", err)
		}

		query := `
			INSERT INTO group_members (id, group_id, passport)
			SELECT gen_random_uuid(), $1, unnest($2::text[])
		`
		tag, err := q.Exec(ctx, query, groupID, passports)
		if err != nil {
			return fmt.Errorf("failed to assign members: %w", err)
		}
		assigned = int(tag.RowsAffected())
		return nil
	})
	if err != nil {
		return 0, err
	}
	return assigned, nil
}

// RemoveMembers implements group.GroupRepository.
func (r *groupRepositoryImpl) RemoveMembers(ctx context.Context, groupID string, passports []string) (int, error) {
	if len(passports) == 0 {
		return 0, nil
	}
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM group_members WHERE group_id = $1 AND passport = ANY($2)`, groupID, passports)
	if err != nil {
		return 0, fmt.Errorf("failed to remove members: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// AssignmentsByPassport implements group.GroupRepository.
func (r *groupRepositoryImpl) AssignmentsByPassport(ctx context.Context) (map[string]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT passport, group_id FROM group_members`)
	if err != nil {
		return nil, fmt.Errorf("failed to query group assignments: %w", err)
	}
	defer rows.Close()

	assignments := make(map[string]string)
	for rows.Next() {
		var passport, groupID string
		if err := rows.Scan(&passport, &groupID); err != nil {
			return nil, fmt.Errorf("failed to scan group assignment: %w", err)
		}
		assignments[passport] = groupID
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return assignments, nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/group"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/database"
)

type portfolioRepositoryImpl struct {
	db *database.DB
}

func NewPortfolioRepository(db *database.DB) group.PortfolioRepository {
	return &portfolioRepositoryImpl{db: db}
}

// Create implements group.PortfolioRepository.
func (r *portfolioRepositoryImpl) Create(ctx context.Context, p group.Portfolio) (group.Portfolio, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO portfolios (id, code, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, p.ID, p.Code, p.Name, p.Description).Scan(&p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return group.Portfolio{}, group.ErrPortfolioCodeExists
		}
		return group.Portfolio{}, fmt.Errorf("failed to create portfolio: %w", err)
	}
	return p, nil
}

// GetByID implements group.PortfolioRepository.
func (r *portfolioRepositoryImpl) GetByID(ctx context.Context, id string) (group.Portfolio, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, description, voided, created_at
		FROM portfolios
		WHERE id = $1
	`

	var p group.Portfolio
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.Voided, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return group.Portfolio{}, group.ErrPortfolioNotFound
		}
		return group.Portfolio{}, fmt.Errorf("failed to get portfolio %s: %w", id, err)
	}
	return p, nil
}

// List implements group.PortfolioRepository.
func (r *portfolioRepositoryImpl) List(ctx context.Context, includeVoided bool) ([]group.Portfolio, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, description, voided, created_at
		FROM portfolios
	`
	if !includeVoided {
		query += ` WHERE NOT voided`
	}
	query += ` ORDER BY code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolios: %w", err)
	}
	defer rows.Close()

	var portfolios []group.Portfolio
	for rows.Next() {
		var p group.Portfolio
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Description, &p.Voided, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio: %w", err)
		}
		portfolios = append(portfolios, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return portfolios, nil
}

// Update implements group.PortfolioRepository.
func (r *portfolioRepositoryImpl) Update(ctx context.Context, p group.Portfolio) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE portfolios
		SET code = $2, name = $3, description = $4
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, p.ID, p.Code, p.Name, p.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return group.ErrPortfolioCodeExists
		}
		return fmt.Errorf("failed to update portfolio %s: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return group.ErrPortfolioNotFound
	}
	return nil
}

// Void implements group.PortfolioRepository.
func (r *portfolioRepositoryImpl) Void(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE portfolios SET voided = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to void portfolio %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return group.ErrPortfolioNotFound
	}
	return nil
}

// isUniqueViolation matches PostgreSQL error 23505.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

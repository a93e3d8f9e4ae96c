package postgresql

import (
	"context"
	"fmt"

	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/database"
)

// AllowedIPRepository answers the single question the access middleware
// asks. Rows are managed directly at the data layer; there is no CRUD API.
type AllowedIPRepository interface {
	IsAllowed(ctx context.Context, ip string) (bool, error)
}

type allowedIPRepositoryImpl struct {
	db *database.DB
}

func NewAllowedIPRepository(db *database.DB) AllowedIPRepository {
	return &allowedIPRepositoryImpl{db: db}
}

// IsAllowed implements AllowedIPRepository.
func (r *allowedIPRepositoryImpl) IsAllowed(ctx context.Context, ip string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var allowed bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM allowed_ips WHERE ip = $1 AND active)`, ip).Scan(&allowed)
	if err != nil {
		return false, fmt.Errorf("failed to check allowed ip: %w", err)
	}
	return allowed, nil
}

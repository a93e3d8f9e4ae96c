package permission

import (
	"context"
	"time"
)

type PermissionRepository interface {
	Create(ctx context.Context, p Permission) (Permission, error)
	GetByID(ctx context.Context, id string) (Permission, error)
	Update(ctx context.Context, p Permission) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListPermissionsFilter) ([]Permission, error)

	// ListInRange returns permissions of the given passports dated within
	// [from, to]. Feeds the report engine's exception index.
	ListInRange(ctx context.Context, passports []string, from, to time.Time) ([]Permission, error)
}

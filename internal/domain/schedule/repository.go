package schedule

import (
	"context"
	"time"
)

type OverrideRepository interface {
	// Upsert inserts or replaces the override for (scope, scope id, date).
	Upsert(ctx context.Context, o Override) (Override, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListOverridesFilter) ([]Override, error)

	// ListInRange returns every override of both scopes whose date falls in
	// [from, to]. Feeds the report engine's schedule index.
	ListInRange(ctx context.Context, from, to time.Time) ([]Override, error)
}

package schedule

import "context"

type OverrideService interface {
	Upsert(ctx context.Context, req UpsertOverrideRequest) (OverrideResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListOverridesFilter) ([]OverrideResponse, error)
}

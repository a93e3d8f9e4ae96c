package justification

import (
	"context"
	"time"
)

type JustificationRepository interface {
	Create(ctx context.Context, j Justification) (Justification, error)
	GetByID(ctx context.Context, id string) (Justification, error)
	Update(ctx context.Context, j Justification) error
	Void(ctx context.Context, id string) error
	List(ctx context.Context, filter ListJustificationsFilter) ([]Justification, error)

	// ListActiveOverlapping returns non-voided windows of the given passports
	// that overlap [from, to]. Feeds the report engine's exception index.
	ListActiveOverlapping(ctx context.Context, passports []string, from, to time.Time) ([]Justification, error)
}

package justification

import "context"

type JustificationService interface {
	Create(ctx context.Context, req CreateJustificationRequest) (JustificationResponse, error)
	Update(ctx context.Context, req UpdateJustificationRequest) (JustificationResponse, error)
	Void(ctx context.Context, id string) error
	List(ctx context.Context, filter ListJustificationsFilter) ([]JustificationResponse, error)
}

package group

import "context"

type PortfolioRepository interface {
	Create(ctx context.Context, p Portfolio) (Portfolio, error)
	GetByID(ctx context.Context, id string) (Portfolio, error)
	List(ctx context.Context, includeVoided bool) ([]Portfolio, error)
	Update(ctx context.Context, p Portfolio) error
	// Void marks the portfolio inactive without deleting history.
	Void(ctx context.Context, id string) error
}

type GroupRepository interface {
	Create(ctx context.Context, g Group) (Group, error)
	GetByID(ctx context.Context, id string) (Group, error)
	List(ctx context.Context) ([]Group, error)
	Update(ctx context.Context, g Group) error
	Delete(ctx context.Context, id string) error

	ListMembers(ctx context.Context, groupID string) ([]Member, error)
	// AssignMembers moves the passports into the group, replacing any
	// previous membership, in one transaction.
	AssignMembers(ctx context.Context, groupID string, passports []string) (int, error)
	RemoveMembers(ctx context.Context, groupID string, passports []string) (int, error)

	// AssignmentsByPassport returns passport -> group id for every current
	// membership. Built once per report run.
	AssignmentsByPassport(ctx context.Context) (map[string]string, error)
}

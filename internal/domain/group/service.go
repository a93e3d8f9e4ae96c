package group

import (
	"context"
	"mime/multipart"
)

// GroupService covers portfolios, groups and membership management.
type GroupService interface {
	// Portfolios
	CreatePortfolio(ctx context.Context, req CreatePortfolioRequest) (PortfolioResponse, error)
	ListPortfolios(ctx context.Context, includeVoided bool) ([]PortfolioResponse, error)
	UpdatePortfolio(ctx context.Context, req UpdatePortfolioRequest) (PortfolioResponse, error)
	VoidPortfolio(ctx context.Context, id string) error

	// Groups
	CreateGroup(ctx context.Context, req CreateGroupRequest) (GroupResponse, error)
	ListGroups(ctx context.Context) ([]GroupResponse, error)
	GetGroupDetail(ctx context.Context, id string) (GroupDetailResponse, error)
	UpdateGroup(ctx context.Context, req UpdateGroupRequest) (GroupResponse, error)
	DeleteGroup(ctx context.Context, id string) error

	// Membership
	AssignMembers(ctx context.Context, req AssignMembersRequest) (BulkAssignmentResult, error)
	RemoveMembers(ctx context.Context, req AssignMembersRequest) (BulkAssignmentResult, error)

	// Spreadsheet-driven assignment (passport, group code per row).
	ProcessAssignmentSheet(ctx context.Context, file multipart.File) (BulkAssignmentResult, error)
	AssignmentTemplate(ctx context.Context) ([]byte, error)
}

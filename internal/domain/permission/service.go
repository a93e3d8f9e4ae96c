package permission

import "context"

type PermissionService interface {
	Create(ctx context.Context, req CreatePermissionRequest) (PermissionResponse, error)
	Update(ctx context.Context, req UpdatePermissionRequest) (PermissionResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListPermissionsFilter) ([]EmployeePermissions, error)
}

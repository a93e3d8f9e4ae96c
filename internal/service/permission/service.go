package permission

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/permission"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/timeutil"
)

type PermissionServiceImpl struct {
	permissionRepo permission.PermissionRepository
	employeeRepo   employee.EmployeeRepository
}

func NewPermissionService(permissionRepo permission.PermissionRepository, employeeRepo employee.EmployeeRepository) permission.PermissionService {
	return &PermissionServiceImpl{permissionRepo: permissionRepo, employeeRepo: employeeRepo}
}

// Create implements permission.PermissionService.
func (s *PermissionServiceImpl) Create(ctx context.Context, req permission.CreatePermissionRequest) (permission.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return permission.PermissionResponse{}, err
	}

	emp, err := s.employeeRepo.GetByPassport(ctx, req.Passport)
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	from, _ := time.Parse("15:04", req.From)
	to, _ := time.Parse("15:04", req.To)

	created, err := s.permissionRepo.Create(ctx, permission.Permission{
		ID:       uuid.NewString(),
		Passport: emp.Passport,
		Date:     date,
		From:     from,
		To:       to,
		Reason:   req.Reason,
		Note:     req.Note,
	})
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	created.FirstName = emp.FirstName
	created.LastName = emp.LastName
	created.DepartmentName = emp.DepartmentName
	return mapPermission(created), nil
}

// Update implements permission.PermissionService.
func (s *PermissionServiceImpl) Update(ctx context.Context, req permission.UpdatePermissionRequest) (permission.PermissionResponse, error) {
	if err := req.Validate(); err != nil {
		return permission.PermissionResponse{}, err
	}

	p, err := s.permissionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return permission.PermissionResponse{}, err
	}

	if req.Date != nil {
		p.Date, _ = time.Parse("2006-01-02", *req.Date)
	}
	if req.From != nil {
		p.From, _ = time.Parse("15:04", *req.From)
	}
	if req.To != nil {
		p.To, _ = time.Parse("15:04", *req.To)
	}
	if req.Reason != nil {
		p.Reason = *req.Reason
	}
	if req.Note != nil {
		p.Note = req.Note
	}
	if p.To.Before(p.From) {
		return permission.PermissionResponse{}, permission.ErrInvertedWindow
	}

	if err := s.permissionRepo.Update(ctx, p); err != nil {
		return permission.PermissionResponse{}, err
	}
	return mapPermission(p), nil
}

// Delete implements permission.PermissionService.
func (s *PermissionServiceImpl) Delete(ctx context.Context, id string) error {
	return s.permissionRepo.Delete(ctx, id)
}

// List implements permission.PermissionService. Rows come back grouped per
// employee, each employee's windows ordered by date.
func (s *PermissionServiceImpl) List(ctx context.Context, filter permission.ListPermissionsFilter) ([]permission.EmployeePermissions, error) {
	permissions, err := s.permissionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	var grouped []permission.EmployeePermissions
	index := make(map[string]int)
	for _, p := range permissions {
		i, ok := index[p.Passport]
		if !ok {
			i = len(grouped)
			index[p.Passport] = i
			grouped = append(grouped, permission.EmployeePermissions{
				Passport:       p.Passport,
				EmployeeName:   p.LastName + " " + p.FirstName,
				DepartmentName: p.DepartmentName,
			})
		}
		grouped[i].Permissions = append(grouped[i].Permissions, mapPermission(p))
	}
	return grouped, nil
}

func mapPermission(p permission.Permission) permission.PermissionResponse {
	return permission.PermissionResponse{
		ID:             p.ID,
		Passport:       p.Passport,
		EmployeeName:   p.LastName + " " + p.FirstName,
		DepartmentName: p.DepartmentName,
		Date:           timeutil.DateKey(p.Date),
		From:           timeutil.FormatClock(p.From),
		To:             timeutil.FormatClock(p.To),
		Reason:         p.Reason,
		Note:           p.Note,
	}
}

package justification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/justification"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/timeutil"
)

type JustificationServiceImpl struct {
	categories        map[string]struct{}
	justificationRepo justification.JustificationRepository
	employeeRepo      employee.EmployeeRepository
}

// NewJustificationService wires the leave catalog. categories is the closed
// set of accepted leave kinds from configuration.
func NewJustificationService(
	categories []string,
	justificationRepo justification.JustificationRepository,
	employeeRepo employee.EmployeeRepository,
) justification.JustificationService {
	set := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return &JustificationServiceImpl{
		categories:        set,
		justificationRepo: justificationRepo,
		employeeRepo:      employeeRepo,
	}
}

// Create implements justification.JustificationService.
func (s *JustificationServiceImpl) Create(ctx context.Context, req justification.CreateJustificationRequest) (justification.JustificationResponse, error) {
	if err := req.Validate(); err != nil {
		return justification.JustificationResponse{}, err
	}
	if _, ok := s.categories[req.Category]; !ok {
		return justification.JustificationResponse{}, justification.ErrInvalidCategory
	}

	emp, err := s.employeeRepo.GetByPassport(ctx, req.Passport)
	if err != nil {
		return justification.JustificationResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.DateStart)
	end, _ := time.Parse("2006-01-02", req.DateEnd)

	created, err := s.justificationRepo.Create(ctx, justification.Justification{
		ID:        uuid.NewString(),
		Passport:  emp.Passport,
		Category:  req.Category,
		DateStart: start,
		DateEnd:   end,
		Reason:    req.Reason,
	})
	if err != nil {
		return justification.JustificationResponse{}, err
	}

	created.FirstName = emp.FirstName
	created.LastName = emp.LastName
	created.DepartmentName = emp.DepartmentName
	return mapJustification(created), nil
}

// Update implements justification.JustificationService.
func (s *JustificationServiceImpl) Update(ctx context.Context, req justification.UpdateJustificationRequest) (justification.JustificationResponse, error) {
	if err := req.Validate(); err != nil {
		return justification.JustificationResponse{}, err
	}

	j, err := s.justificationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return justification.JustificationResponse{}, err
	}
	if j.Voided {
		return justification.JustificationResponse{}, justification.ErrJustificationNotFound
	}

	if req.Category != nil {
		if _, ok := s.categories[*req.Category]; !ok {
			return justification.JustificationResponse{}, justification.ErrInvalidCategory
		}
		j.Category = *req.Category
	}
	if req.DateStart != nil {
		j.DateStart, _ = time.Parse("2006-01-02", *req.DateStart)
	}
	if req.DateEnd != nil {
		j.DateEnd, _ = time.Parse("2006-01-02", *req.DateEnd)
	}
	if req.Reason != nil {
		j.Reason = req.Reason
	}
	if j.DateEnd.Before(j.DateStart) {
		return justification.JustificationResponse{}, justification.ErrInvertedRange
	}

	if err := s.justificationRepo.Update(ctx, j); err != nil {
		return justification.JustificationResponse{}, err
	}
	return mapJustification(j), nil
}

// Void implements justification.JustificationService.
func (s *JustificationServiceImpl) Void(ctx context.Context, id string) error {
	return s.justificationRepo.Void(ctx, id)
}

// List implements justification.JustificationService.
func (s *JustificationServiceImpl) List(ctx context.Context, filter justification.ListJustificationsFilter) ([]justification.JustificationResponse, error) {
	justifications, err := s.justificationRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]justification.JustificationResponse, 0, len(justifications))
	for _, j := range justifications {
		responses = append(responses, mapJustification(j))
	}
	return responses, nil
}

func mapJustification(j justification.Justification) justification.JustificationResponse {
	return justification.JustificationResponse{
		ID:             j.ID,
		Passport:       j.Passport,
		EmployeeName:   j.LastName + " " + j.FirstName,
		DepartmentName: j.DepartmentName,
		Category:       j.Category,
		DateStart:      timeutil.DateKey(j.DateStart),
		DateEnd:        timeutil.DateKey(j.DateEnd),
		Reason:         j.Reason,
		Voided:         j.Voided,
	}
}

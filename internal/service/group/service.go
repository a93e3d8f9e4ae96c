package group

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/group"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/timeutil"
)

const assignmentSheet = "Assignments"

type GroupServiceImpl struct {
	portfolioRepo group.PortfolioRepository
	groupRepo     group.GroupRepository
	employeeRepo  employee.EmployeeRepository
}

func NewGroupService(
	portfolioRepo group.PortfolioRepository,
	groupRepo group.GroupRepository,
	employeeRepo employee.EmployeeRepository,
) group.GroupService {
	return &GroupServiceImpl{
		portfolioRepo: portfolioRepo,
		groupRepo:     groupRepo,
		employeeRepo:  employeeRepo,
	}
}

// CreatePortfolio implements group.GroupService.
func (s *GroupServiceImpl) CreatePortfolio(ctx context.Context, req group.CreatePortfolioRequest) (group.PortfolioResponse, error) {
	if err := req.Validate(); err != nil {
		return group.PortfolioResponse{}, err
	}
	created, err := s.portfolioRepo.Create(ctx, group.Portfolio{
		ID:          uuid.NewString(),
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	})
	if err != nil {
		return group.PortfolioResponse{}, err
	}
	return mapPortfolio(created), nil
}

// ListPortfolios implements group.GroupService.
func (s *GroupServiceImpl) ListPortfolios(ctx context.Context, includeVoided bool) ([]group.PortfolioResponse, error) {
	portfolios, err := s.portfolioRepo.List(ctx, includeVoided)
	if err != nil {
		return nil, err
	}

	responses := make([]group.PortfolioResponse, 0, len(portfolios))
	for _, p := range portfolios {
		responses = append(responses, mapPortfolio(p))
	}
	return responses, nil
}

// UpdatePortfolio implements group.GroupService.
func (s *GroupServiceImpl) UpdatePortfolio(ctx context.Context, req group.UpdatePortfolioRequest) (group.PortfolioResponse, error) {
	if err := req.Validate(); err != nil {
		return group.PortfolioResponse{}, err
	}

	p, err := s.portfolioRepo.GetByID(ctx, req.ID)
	if err != nil {
		return group.PortfolioResponse{}, err
	}
	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		p.Description = req.Description
	}

	if err := s.portfolioRepo.Update(ctx, p); err != nil {
		return group.PortfolioResponse{}, err
	}
	return mapPortfolio(p), nil
}

// VoidPortfolio implements group.GroupService.
func (s *GroupServiceImpl) VoidPortfolio(ctx context.Context, id string) error {
	return s.portfolioRepo.Void(ctx, id)
}

// CreateGroup implements group.GroupService.
func (s *GroupServiceImpl) CreateGroup(ctx context.Context, req group.CreateGroupRequest) (group.GroupResponse, error) {
	if err := req.Validate(); err != nil {
		return group.GroupResponse{}, err
	}

	if req.PortfolioID != nil {
		if _, err := s.portfolioRepo.GetByID(ctx, *req.PortfolioID); err != nil {
			return group.GroupResponse{}, err
		}
	}

	entrance, _ := time.Parse("15:04", req.Entrance)
	exit, _ := time.Parse("15:04", req.Exit)

	created, err := s.groupRepo.Create(ctx, group.Group{
		ID:          uuid.NewString(),
		Code:        strings.TrimSpace(req.Code),
		Name:        strings.TrimSpace(req.Name),
		Entrance:    entrance,
		Exit:        exit,
		PortfolioID: req.PortfolioID,
	})
	if err != nil {
		return group.GroupResponse{}, err
	}
	return mapGroup(created), nil
}

// ListGroups implements group.GroupService.
func (s *GroupServiceImpl) ListGroups(ctx context.Context) ([]group.GroupResponse, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]group.GroupResponse, 0, len(groups))
	for _, g := range groups {
		responses = append(responses, mapGroup(g))
	}
	return responses, nil
}

// GetGroupDetail implements group.GroupService.
func (s *GroupServiceImpl) GetGroupDetail(ctx context.Context, id string) (group.GroupDetailResponse, error) {
	g, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return group.GroupDetailResponse{}, err
	}

	members, err := s.groupRepo.ListMembers(ctx, id)
	if err != nil {
		return group.GroupDetailResponse{}, err
	}

	detail := group.GroupDetailResponse{
		Group:   mapGroup(g),
		Members: make([]group.MemberResponse, 0, len(members)),
	}
	for _, m := range members {
		detail.Members = append(detail.Members, group.MemberResponse{
			Passport:       m.Passport,
			FirstName:      m.FirstName,
			LastName:       m.LastName,
			DepartmentName: m.DepartmentName,
		})
	}
	return detail, nil
}

// UpdateGroup implements group.GroupService.
func (s *GroupServiceImpl) UpdateGroup(ctx context.Context, req group.UpdateGroupRequest) (group.GroupResponse, error) {
	if err := req.Validate(); err != nil {
		return group.GroupResponse{}, err
	}

	g, err := s.groupRepo.GetByID(ctx, req.ID)
	if err != nil {
		return group.GroupResponse{}, err
	}

	if req.Name != nil {
		g.Name = strings.TrimSpace(*req.Name)
	}
	if req.Entrance != nil {
		g.Entrance, _ = time.Parse("15:04", *req.Entrance)
	}
	if req.Exit != nil {
		g.Exit, _ = time.Parse("15:04", *req.Exit)
	}
	if req.PortfolioID != nil {
		if _, err := s.portfolioRepo.GetByID(ctx, *req.PortfolioID); err != nil {
			return group.GroupResponse{}, err
		}
		g.PortfolioID = req.PortfolioID
	}

	if err := s.groupRepo.Update(ctx, g); err != nil {
		return group.GroupResponse{}, err
	}
	return mapGroup(g), nil
}

// DeleteGroup implements group.GroupService.
func (s *GroupServiceImpl) DeleteGroup(ctx context.Context, id string) error {
	return s.groupRepo.Delete(ctx, id)
}

// AssignMembers implements group.GroupService. Unknown passports are skipped
// and reported; the rest are assigned in one transaction.
func (s *GroupServiceImpl) AssignMembers(ctx context.Context, req group.AssignMembersRequest) (group.BulkAssignmentResult, error) {
	if err := req.Validate(); err != nil {
		return group.BulkAssignmentResult{}, err
	}

	var result group.BulkAssignmentResult
	valid := make([]string, 0, len(req.Passports))
	for _, passport := range req.Passports {
		if _, err := s.employeeRepo.GetByPassport(ctx, passport); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("unknown passport %s", passport))
				continue
			}
			return group.BulkAssignmentResult{}, err
		}
		valid = append(valid, passport)
	}

	assigned, err := s.groupRepo.AssignMembers(ctx, req.GroupID, valid)
	if err != nil {
		return group.BulkAssignmentResult{}, err
	}
	result.Assigned = assigned
	return result, nil
}

// RemoveMembers implements group.GroupService.
func (s *GroupServiceImpl) RemoveMembers(ctx context.Context, req group.AssignMembersRequest) (group.BulkAssignmentResult, error) {
	if err := req.Validate(); err != nil {
		return group.BulkAssignmentResult{}, err
	}

	removed, err := s.groupRepo.RemoveMembers(ctx, req.GroupID, req.Passports)
	if err != nil {
		return group.BulkAssignmentResult{}, err
	}
	return group.BulkAssignmentResult{
		Assigned: removed,
		Skipped:  len(req.Passports) - removed,
	}, nil
}

// ProcessAssignmentSheet implements group.GroupService. The sheet carries one
// row per employee: passport in column A, group code in column B, header row
// ignored. Rows that cannot be resolved are reported and skipped; everything
// else is assigned.
func (s *GroupServiceImpl) ProcessAssignmentSheet(ctx context.Context, file multipart.File) (group.BulkAssignmentResult, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return group.BulkAssignmentResult{}, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return group.BulkAssignmentResult{}, fmt.Errorf("failed to read spreadsheet rows: %w", err)
	}

	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return group.BulkAssignmentResult{}, err
	}
	groupByCode := make(map[string]string, len(groups))
	for _, g := range groups {
		groupByCode[strings.ToUpper(g.Code)] = g.ID
	}

	var result group.BulkAssignmentResult
	byGroup := make(map[string][]string)

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 2 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		passport := strings.TrimSpace(row[0])
		code := strings.ToUpper(strings.TrimSpace(row[1]))

		groupID, ok := groupByCode[code]
		if !ok {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: unknown group code %s", i+1, code))
			continue
		}
		if _, err := s.employeeRepo.GetByPassport(ctx, passport); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: unknown passport %s", i+1, passport))
				continue
			}
			return group.BulkAssignmentResult{}, err
		}
		byGroup[groupID] = append(byGroup[groupID], passport)
	}

	for groupID, passports := range byGroup {
		assigned, err := s.groupRepo.AssignMembers(ctx, groupID, passports)
		if err != nil {
			return group.BulkAssignmentResult{}, err
		}
		result.Assigned += assigned
	}
	return result, nil
}

// AssignmentTemplate implements group.GroupService. The download carries the
// two expected columns plus a reference sheet listing the current group
// codes.
func (s *GroupServiceImpl) AssignmentTemplate(ctx context.Context) ([]byte, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", assignmentSheet); err != nil {
		return nil, err
	}
	header := []interface{}{"Passport", "Group Code"}
	if err := f.SetSheetRow(assignmentSheet, "A1", &header); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("Groups"); err != nil {
		return nil, err
	}
	refHeader := []interface{}{"Code", "Name"}
	if err := f.SetSheetRow("Groups", "A1", &refHeader); err != nil {
		return nil, err
	}
	for i, g := range groups {
		row := []interface{}{g.Code, g.Name}
		if err := f.SetSheetRow("Groups", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func mapPortfolio(p group.Portfolio) group.PortfolioResponse {
	return group.PortfolioResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Voided:      p.Voided,
	}
}

func mapGroup(g group.Group) group.GroupResponse {
	return group.GroupResponse{
		ID:            g.ID,
		Code:          g.Code,
		Name:          g.Name,
		Entrance:      timeutil.FormatClock(g.Entrance),
		Exit:          timeutil.FormatClock(g.Exit),
		PortfolioID:   g.PortfolioID,
		PortfolioName: g.PortfolioName,
		MemberCount:   g.MemberCount,
	}
}

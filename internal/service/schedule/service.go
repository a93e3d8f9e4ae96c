package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/group"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/schedule"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/timeutil"
)

type OverrideServiceImpl struct {
	overrideRepo schedule.OverrideRepository
	groupRepo    group.GroupRepository
}

func NewOverrideService(overrideRepo schedule.OverrideRepository, groupRepo group.GroupRepository) schedule.OverrideService {
	return &OverrideServiceImpl{overrideRepo: overrideRepo, groupRepo: groupRepo}
}

// Upsert implements schedule.OverrideService. Group targets are checked to
// exist; department targets are free-form names matched at report time.
func (s *OverrideServiceImpl) Upsert(ctx context.Context, req schedule.UpsertOverrideRequest) (schedule.OverrideResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.OverrideResponse{}, err
	}

	if req.Scope == string(schedule.ScopeGroup) {
		if _, err := s.groupRepo.GetByID(ctx, req.ScopeID); err != nil {
			return schedule.OverrideResponse{}, err
		}
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	o := schedule.Override{
		ID:       uuid.NewString(),
		Scope:    schedule.Scope(req.Scope),
		ScopeID:  req.ScopeID,
		Date:     date,
		Overtime: req.Overtime,
		Holiday:  req.Holiday,
	}
	if req.Entrance != nil {
		entrance, _ := time.Parse("15:04", *req.Entrance)
		o.Entrance = &entrance
	}
	if req.Exit != nil {
		exit, _ := time.Parse("15:04", *req.Exit)
		o.Exit = &exit
	}

	saved, err := s.overrideRepo.Upsert(ctx, o)
	if err != nil {
		return schedule.OverrideResponse{}, err
	}
	return mapOverride(saved), nil
}

// Delete implements schedule.OverrideService.
func (s *OverrideServiceImpl) Delete(ctx context.Context, id string) error {
	return s.overrideRepo.Delete(ctx, id)
}

// List implements schedule.OverrideService.
func (s *OverrideServiceImpl) List(ctx context.Context, filter schedule.ListOverridesFilter) ([]schedule.OverrideResponse, error) {
	overrides, err := s.overrideRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.OverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		responses = append(responses, mapOverride(o))
	}
	return responses, nil
}

func mapOverride(o schedule.Override) schedule.OverrideResponse {
	resp := schedule.OverrideResponse{
		ID:         o.ID,
		Scope:      string(o.Scope),
		ScopeID:    o.ScopeID,
		ScopeLabel: o.ScopeLabel,
		Date:       timeutil.DateKey(o.Date),
		Overtime:   o.Overtime,
		Holiday:    o.Holiday,
	}
	if o.Entrance != nil {
		clock := timeutil.FormatClock(*o.Entrance)
		resp.Entrance = &clock
	}
	if o.Exit != nil {
		clock := timeutil.FormatClock(*o.Exit)
		resp.Exit = &clock
	}
	return resp
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/schedule"
	"github.com/callpoint-hr/timeclock-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	UpsertOverride(w http.ResponseWriter, r *http.Request)
	DeleteOverride(w http.ResponseWriter, r *http.Request)
	ListOverrides(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	overrideService schedule.OverrideService
}

func NewScheduleHandler(overrideService schedule.OverrideService) ScheduleHandler {
	return &scheduleHandlerImpl{overrideService: overrideService}
}

func (h *scheduleHandlerImpl) UpsertOverride(w http.ResponseWriter, r *http.Request) {
	var req schedule.UpsertOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.overrideService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule override saved", result)
}

func (h *scheduleHandlerImpl) DeleteOverride(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.overrideService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule override deleted", nil)
}

func (h *scheduleHandlerImpl) ListOverrides(w http.ResponseWriter, r *http.Request) {
	filter := schedule.ListOverridesFilter{
		Scope: r.URL.Query().Get("scope"),
		From:  r.URL.Query().Get("from"),
		To:    r.URL.Query().Get("to"),
	}

	result, err := h.overrideService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

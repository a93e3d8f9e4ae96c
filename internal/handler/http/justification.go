package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/justification"
	"github.com/callpoint-hr/timeclock-backend-go/internal/handler/http/response"
)

type JustificationHandler interface {
	CreateJustification(w http.ResponseWriter, r *http.Request)
	UpdateJustification(w http.ResponseWriter, r *http.Request)
	VoidJustification(w http.ResponseWriter, r *http.Request)
	ListJustifications(w http.ResponseWriter, r *http.Request)
}

type justificationHandlerImpl struct {
	justificationService justification.JustificationService
}

func NewJustificationHandler(justificationService justification.JustificationService) JustificationHandler {
	return &justificationHandlerImpl{justificationService: justificationService}
}

func (h *justificationHandlerImpl) CreateJustification(w http.ResponseWriter, r *http.Request) {
	var req justification.CreateJustificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.justificationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Justification created successfully", result)
}

func (h *justificationHandlerImpl) UpdateJustification(w http.ResponseWriter, r *http.Request) {
	var req justification.UpdateJustificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.justificationService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justification updated successfully", result)
}

func (h *justificationHandlerImpl) VoidJustification(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.justificationService.Void(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justification voided successfully", nil)
}

func (h *justificationHandlerImpl) ListJustifications(w http.ResponseWriter, r *http.Request) {
	filter := justification.ListJustificationsFilter{
		Query:         r.URL.Query().Get("q"),
		From:          r.URL.Query().Get("from"),
		To:            r.URL.Query().Get("to"),
		IncludeVoided: r.URL.Query().Get("include_voided") == "true",
		DepartmentIDs: parseDepartmentIDs(r.URL.Query().Get("departments")),
	}

	result, err := h.justificationService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// parseDepartmentIDs reads a comma-separated id list; malformed entries are
// dropped silently.
func parseDepartmentIDs(raw string) []int {
	if raw == "" {
		return nil
	}
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/group"
	"github.com/callpoint-hr/timeclock-backend-go/internal/handler/http/response"
)

type GroupHandler interface {
	// Portfolio handlers
	CreatePortfolio(w http.ResponseWriter, r *http.Request)
	ListPortfolios(w http.ResponseWriter, r *http.Request)
	UpdatePortfolio(w http.ResponseWriter, r *http.Request)
	VoidPortfolio(w http.ResponseWriter, r *http.Request)

	// Group handlers
	CreateGroup(w http.ResponseWriter, r *http.Request)
	ListGroups(w http.ResponseWriter, r *http.Request)
	GetGroupDetail(w http.ResponseWriter, r *http.Request)
	UpdateGroup(w http.ResponseWriter, r *http.Request)
	DeleteGroup(w http.ResponseWriter, r *http.Request)

	// Membership handlers
	AssignMembers(w http.ResponseWriter, r *http.Request)
	RemoveMembers(w http.ResponseWriter, r *http.Request)
	UploadAssignmentSheet(w http.ResponseWriter, r *http.Request)
	DownloadAssignmentTemplate(w http.ResponseWriter, r *http.Request)
}

type groupHandlerImpl struct {
	groupService group.GroupService
}

func NewGroupHandler(groupService group.GroupService) GroupHandler {
	return &groupHandlerImpl{groupService: groupService}
}

// ==================== PORTFOLIO HANDLERS ====================

func (h *groupHandlerImpl) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req group.CreatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.groupService.CreatePortfolio(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Portfolio created successfully", result)
}

func (h *groupHandlerImpl) ListPortfolios(w http.ResponseWriter, r *http.Request) {
	includeVoided := r.URL.Query().Get("include_voided") == "true"

	result, err := h.groupService.ListPortfolios(r.Context(), includeVoided)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *groupHandlerImpl) UpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req group.UpdatePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.groupService.UpdatePortfolio(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Portfolio updated successfully", result)
}

func (h *groupHandlerImpl) VoidPortfolio(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.groupService.VoidPortfolio(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Portfolio voided successfully", nil)
}

// ==================== GROUP HANDLERS ====================

func (h *groupHandlerImpl) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req group.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.groupService.CreateGroup(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Group created successfully", result)
}

func (h *groupHandlerImpl) ListGroups(w http.ResponseWriter, r *http.Request) {
	result, err := h.groupService.ListGroups(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *groupHandlerImpl) GetGroupDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.groupService.GetGroupDetail(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *groupHandlerImpl) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	var req group.UpdateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.groupService.UpdateGroup(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Group updated successfully", result)
}

func (h *groupHandlerImpl) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.groupService.DeleteGroup(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Group deleted successfully", nil)
}

// ==================== MEMBERSHIP HANDLERS ====================

func (h *groupHandlerImpl) AssignMembers(w http.ResponseWriter, r *http.Request) {
	var req group.AssignMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.GroupID = chi.URLParam(r, "id")

	result, err := h.groupService.AssignMembers(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Members assigned", result)
}

func (h *groupHandlerImpl) RemoveMembers(w http.ResponseWriter, r *http.Request) {
	var req group.AssignMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.GroupID = chi.URLParam(r, "id")

	result, err := h.groupService.RemoveMembers(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Members removed", result)
}

func (h *groupHandlerImpl) UploadAssignmentSheet(w http.ResponseWriter, r *http.Request) {
	// 5 MB is plenty for a roster sheet.
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file field", nil)
		return
	}
	defer file.Close()

	result, err := h.groupService.ProcessAssignmentSheet(r.Context(), file)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Assignment sheet processed", result)
}

func (h *groupHandlerImpl) DownloadAssignmentTemplate(w http.ResponseWriter, r *http.Request) {
	file, err := h.groupService.AssignmentTemplate(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="group_assignment_template.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file)
}

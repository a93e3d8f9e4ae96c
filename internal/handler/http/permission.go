package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/permission"
	"github.com/callpoint-hr/timeclock-backend-go/internal/handler/http/response"
)

type PermissionHandler interface {
	CreatePermission(w http.ResponseWriter, r *http.Request)
	UpdatePermission(w http.ResponseWriter, r *http.Request)
	DeletePermission(w http.ResponseWriter, r *http.Request)
	ListPermissions(w http.ResponseWriter, r *http.Request)
}

type permissionHandlerImpl struct {
	permissionService permission.PermissionService
}

func NewPermissionHandler(permissionService permission.PermissionService) PermissionHandler {
	return &permissionHandlerImpl{permissionService: permissionService}
}

func (h *permissionHandlerImpl) CreatePermission(w http.ResponseWriter, r *http.Request) {
	var req permission.CreatePermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.permissionService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Permission created successfully", result)
}

func (h *permissionHandlerImpl) UpdatePermission(w http.ResponseWriter, r *http.Request) {
	var req permission.UpdatePermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.permissionService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permission updated successfully", result)
}

func (h *permissionHandlerImpl) DeletePermission(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.permissionService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Permission deleted successfully", nil)
}

func (h *permissionHandlerImpl) ListPermissions(w http.ResponseWriter, r *http.Request) {
	filter := permission.ListPermissionsFilter{
		Query:         r.URL.Query().Get("q"),
		From:          r.URL.Query().Get("from"),
		To:            r.URL.Query().Get("to"),
		DepartmentIDs: parseDepartmentIDs(r.URL.Query().Get("departments")),
	}

	result, err := h.permissionService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

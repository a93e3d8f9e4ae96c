package http

import (
	"net/http"
	"strconv"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/callpoint-hr/timeclock-backend-go/internal/handler/http/response"
)

const defaultSearchLimit = 20

// MasterHandler serves the read-only personnel master data: the reportable
// departments and employee lookup within them.
type MasterHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
	SearchEmployees(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	departments    []string
	employeeRepo   employee.EmployeeRepository
	departmentRepo employee.DepartmentRepository
}

func NewMasterHandler(
	departments []string,
	employeeRepo employee.EmployeeRepository,
	departmentRepo employee.DepartmentRepository,
) MasterHandler {
	return &masterHandlerImpl{
		departments:    departments,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.departmentRepo.ListByNames(r.Context(), h.departments)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]employee.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		result = append(result, employee.ToDepartmentResponse(d))
	}
	response.Success(w, result)
}

func (h *masterHandlerImpl) SearchEmployees(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		response.BadRequest(w, "Query parameter q is required", nil)
		return
	}

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	employees, err := h.employeeRepo.Search(r.Context(), h.departments, q, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		result = append(result, employee.ToEmployeeResponse(e))
	}
	response.Success(w, result)
}

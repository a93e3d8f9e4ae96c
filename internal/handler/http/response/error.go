package response

import (
	"errors"
	"net/http"

	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/employee"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/group"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/justification"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/permission"
	"github.com/callpoint-hr/timeclock-backend-go/internal/domain/schedule"
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Group domain errors
	case errors.Is(err, group.ErrPortfolioNotFound):
		NotFound(w, "Portfolio not found")
	case errors.Is(err, group.ErrPortfolioCodeExists):
		Conflict(w, "Portfolio code already exists")
	case errors.Is(err, group.ErrGroupNotFound):
		NotFound(w, "Group not found")
	case errors.Is(err, group.ErrGroupCodeExists):
		Conflict(w, "Group code already exists")
	case errors.Is(err, group.ErrGroupHasMembers):
		Conflict(w, "Group still has members assigned")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrOverrideNotFound):
		NotFound(w, "Schedule override not found")
	case errors.Is(err, schedule.ErrInvalidScope):
		BadRequest(w, "Scope must be group or department", nil)

	// Justification domain errors
	case errors.Is(err, justification.ErrJustificationNotFound):
		NotFound(w, "Justification not found")
	case errors.Is(err, justification.ErrInvalidCategory):
		BadRequest(w, "Unknown justification category", nil)
	case errors.Is(err, justification.ErrInvertedRange):
		BadRequest(w, "Date range ends before it starts", nil)

	// Permission domain errors
	case errors.Is(err, permission.ErrPermissionNotFound):
		NotFound(w, "Permission not found")
	case errors.Is(err, permission.ErrInvertedWindow):
		BadRequest(w, "Permission window ends before it starts", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

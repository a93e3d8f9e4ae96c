package permission

import (
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/validator"
)

type CreatePermissionRequest struct {
	Passport string  `json:"passport"`
	Date     string  `json:"date"`
	From     string  `json:"from"` // "15:04"
	To       string  `json:"to"`
	Reason   string  `json:"reason"`
	Note     *string `json:"note,omitempty"`
}

func (r *CreatePermissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPassport(r.Passport) {
		errs = append(errs, validator.ValidationError{Field: "passport", Message: "passport is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	from, okFrom := validator.IsValidClock(r.From)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be HH:MM"})
	}
	to, okTo := validator.IsValidClock(r.To)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "to must be HH:MM"})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "to must not precede from"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	if len(r.Reason) > 255 {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason must not exceed 255 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePermissionRequest struct {
	ID     string  `json:"-"`
	Date   *string `json:"date,omitempty"`
	From   *string `json:"from,omitempty"`
	To     *string `json:"to,omitempty"`
	Reason *string `json:"reason,omitempty"`
	Note   *string `json:"note,omitempty"`
}

func (r *UpdatePermissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
		}
	}
	if r.From != nil {
		if _, ok := validator.IsValidClock(*r.From); !ok {
			errs = append(errs, validator.ValidationError{Field: "from", Message: "from must be HH:MM"})
		}
	}
	if r.To != nil {
		if _, ok := validator.IsValidClock(*r.To); !ok {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "to must be HH:MM"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListPermissionsFilter struct {
	Query         string
	DepartmentIDs []int
	From          string
	To            string
}

type PermissionResponse struct {
	ID             string  `json:"id"`
	Passport       string  `json:"passport"`
	EmployeeName   string  `json:"employee_name"`
	DepartmentName string  `json:"department_name"`
	Date           string  `json:"date"`
	From           string  `json:"from"`
	To             string  `json:"to"`
	Reason         string  `json:"reason"`
	Note           *string `json:"note,omitempty"`
}

// EmployeePermissions groups one employee's permissions for listing.
type EmployeePermissions struct {
	Passport       string               `json:"passport"`
	EmployeeName   string               `json:"employee_name"`
	DepartmentName string               `json:"department_name"`
	Permissions    []PermissionResponse `json:"permissions"`
}

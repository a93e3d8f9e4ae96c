package justification

import (
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/validator"
)

type CreateJustificationRequest struct {
	Passport  string  `json:"passport"`
	Category  string  `json:"category"`
	DateStart string  `json:"date_start"`
	DateEnd   string  `json:"date_end"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *CreateJustificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidPassport(r.Passport) {
		errs = append(errs, validator.ValidationError{Field: "passport", Message: "passport is required"})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "category is required"})
	}
	start, okStart := validator.IsValidDate(r.DateStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "date_start", Message: "date_start must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.DateEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "date_end", Message: "date_end must be YYYY-MM-DD"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "date_end", Message: "date_end must not precede date_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateJustificationRequest struct {
	ID        string  `json:"-"`
	Category  *string `json:"category,omitempty"`
	DateStart *string `json:"date_start,omitempty"`
	DateEnd   *string `json:"date_end,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *UpdateJustificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.DateStart != nil {
		if _, ok := validator.IsValidDate(*r.DateStart); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_start", Message: "date_start must be YYYY-MM-DD"})
		}
	}
	if r.DateEnd != nil {
		if _, ok := validator.IsValidDate(*r.DateEnd); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_end", Message: "date_end must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListJustificationsFilter struct {
	Query         string
	DepartmentIDs []int
	From          string
	To            string
	IncludeVoided bool
}

type JustificationResponse struct {
	ID             string  `json:"id"`
	Passport       string  `json:"passport"`
	EmployeeName   string  `json:"employee_name"`
	DepartmentName string  `json:"department_name"`
	Category       string  `json:"category"`
	DateStart      string  `json:"date_start"`
	DateEnd        string  `json:"date_end"`
	Reason         *string `json:"reason,omitempty"`
	Voided         bool    `json:"voided"`
}

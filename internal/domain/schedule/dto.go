package schedule

import (
	"github.com/callpoint-hr/timeclock-backend-go/internal/pkg/validator"
)

type UpsertOverrideRequest struct {
	Scope    string  `json:"scope"`
	ScopeID  string  `json:"scope_id"`
	Date     string  `json:"date"`               // "2006-01-02"
	Entrance *string `json:"entrance,omitempty"` // "15:04"
	Exit     *string `json:"exit,omitempty"`
	Overtime int     `json:"overtime_hours"`
	Holiday  bool    `json:"holiday"`
}

func (r *UpsertOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Scope != string(ScopeGroup) && r.Scope != string(ScopeDepartment) {
		errs = append(errs, validator.ValidationError{Field: "scope", Message: "scope must be group or department"})
	}
	if validator.IsEmpty(r.ScopeID) {
		errs = append(errs, validator.ValidationError{Field: "scope_id", Message: "scope_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if r.Entrance != nil {
		if _, ok := validator.IsValidClock(*r.Entrance); !ok {
			errs = append(errs, validator.ValidationError{Field: "entrance", Message: "entrance must be HH:MM"})
		}
	}
	if r.Exit != nil {
		if _, ok := validator.IsValidClock(*r.Exit); !ok {
			errs = append(errs, validator.ValidationError{Field: "exit", Message: "exit must be HH:MM"})
		}
	}
	if r.Overtime < 0 {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "overtime_hours must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListOverridesFilter struct {
	Scope string
	From  string
	To    string
}

type OverrideResponse struct {
	ID         string  `json:"id"`
	Scope      string  `json:"scope"`
	ScopeID    string  `json:"scope_id"`
	ScopeLabel string  `json:"scope_label"`
	Date       string  `json:"date"`
	Entrance   *string `json:"entrance,omitempty"`
	Exit       *string `json:"exit,omitempty"`
	Overtime   int     `json:"overtime_hours"`
	Holiday    bool    `json:"holiday"`
}

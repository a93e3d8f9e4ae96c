package group

import "github.com/callpoint-hr/timeclock-backend-go/internal/pkg/validator"

type CreatePortfolioRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (r *CreatePortfolioRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	}
	if len(r.Code) > 50 {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code must not exceed 50 characters"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 100 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePortfolioRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdatePortfolioRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateGroupRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Entrance    string  `json:"entrance"` // "15:04"
	Exit        string  `json:"exit"`
	PortfolioID *string `json:"portfolio_id,omitempty"`
}

func (r *CreateGroupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if _, ok := validator.IsValidClock(r.Entrance); !ok {
		errs = append(errs, validator.ValidationError{Field: "entrance", Message: "entrance must be HH:MM"})
	}
	if _, ok := validator.IsValidClock(r.Exit); !ok {
		errs = append(errs, validator.ValidationError{Field: "exit", Message: "exit must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateGroupRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name,omitempty"`
	Entrance    *string `json:"entrance,omitempty"`
	Exit        *string `json:"exit,omitempty"`
	PortfolioID *string `json:"portfolio_id,omitempty"`
}

func (r *UpdateGroupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignMembersRequest struct {
	GroupID   string   `json:"-"`
	Passports []string `json:"passports"`
}

func (r *AssignMembersRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.GroupID) {
		errs = append(errs, validator.ValidationError{Field: "group_id", Message: "group_id is required"})
	}
	if len(r.Passports) == 0 {
		errs = append(errs, validator.ValidationError{Field: "passports", Message: "at least one passport is required"})
	}
	for _, p := range r.Passports {
		if !validator.IsValidPassport(p) {
			errs = append(errs, validator.ValidationError{Field: "passports", Message: "invalid passport: " + p})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PortfolioResponse struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Voided      bool    `json:"voided"`
}

type GroupResponse struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Entrance      string  `json:"entrance"`
	Exit          string  `json:"exit"`
	PortfolioID   *string `json:"portfolio_id,omitempty"`
	PortfolioName *string `json:"portfolio_name,omitempty"`
	MemberCount   int     `json:"member_count"`
}

type MemberResponse struct {
	Passport       string `json:"passport"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DepartmentName string `json:"department_name"`
}

type GroupDetailResponse struct {
	Group   GroupResponse    `json:"group"`
	Members []MemberResponse `json:"members"`
}

// BulkAssignmentResult reports a spreadsheet-driven assignment run. Rows that
// could not be applied are listed with the reason; the rest were committed.
type BulkAssignmentResult struct {
	Assigned int      `json:"assigned"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

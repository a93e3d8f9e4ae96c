package employee

type EmployeeResponse struct {
	ID             int    `json:"id"`
	Passport       string `json:"passport"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DepartmentID   int    `json:"department_id"`
	DepartmentName string `json:"department_name"`
}

type DepartmentResponse struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		Passport:       e.Passport,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
	}
}

func ToDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Code: d.Code, Name: d.Name}
}

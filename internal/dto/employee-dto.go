package dto

// EmployeeDTO is the employee attribute set as it crosses the wire. BranchID
// is a soft reference to a branch document; orphans are permitted.
type EmployeeDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name,omitempty"`
	Position   string `json:"position,omitempty"`
	Department string `json:"department,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	BranchID   string `json:"branchId,omitempty"`
}

func NewEmployeeDTO(id string, fields map[string]any) EmployeeDTO {
	return EmployeeDTO{
		ID:         id,
		Name:       stringField(fields, "name"),
		Position:   stringField(fields, "position"),
		Department: stringField(fields, "department"),
		Email:      stringField(fields, "email"),
		Phone:      stringField(fields, "phone"),
		BranchID:   stringField(fields, "branchId"),
	}
}

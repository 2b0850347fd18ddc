package dto

// BranchDTO is the branch attribute set as it crosses the wire. Responses are
// always shaped to these fields, whatever else a document carries.
type BranchDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

func NewBranchDTO(id string, fields map[string]any) BranchDTO {
	return BranchDTO{
		ID:      id,
		Name:    stringField(fields, "name"),
		Address: stringField(fields, "address"),
		Phone:   stringField(fields, "phone"),
	}
}

package department

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
	Note string `json:"note"`
}

type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
	Note string `json:"note"`
}

type DepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

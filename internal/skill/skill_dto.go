package skill

type CreateSkillRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

type SkillResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type EmployeeSkillInput struct {
	SkillID string `json:"skill_id" binding:"required,uuid"`
	Level   string `json:"level"`
	Years   int    `json:"years"`
}

// SetEmployeeSkillsRequest replaces the employee's whole skill set.
type SetEmployeeSkillsRequest struct {
	Skills []EmployeeSkillInput `json:"skills" binding:"required,dive"`
}

type EmployeeSkillResponse struct {
	SkillID  string `json:"skill_id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Level    string `json:"level,omitempty"`
	Years    *int   `json:"years,omitempty"`
}

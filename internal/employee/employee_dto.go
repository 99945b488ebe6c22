package employee

import (
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/localdate"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/patch"
)

type CreateEmployeeRequest struct {
	Name               string `json:"name" binding:"required"`
	DepartmentID       string `json:"department_id" binding:"omitempty,uuid"`
	Position           string `json:"position"`
	HireDate           string `json:"hire_date"`
	Email              string `json:"email" binding:"omitempty,email"`
	Phone              string `json:"phone"`
	Age                int    `json:"age"`
	Address            string `json:"address"`
	AppliedPart        string `json:"applied_part"`
	BirthDate          string `json:"birth_date"`
	Gender             string `json:"gender"`
	CurrentCompany     string `json:"current_company"`
	CurrentAppliedPart string `json:"current_applied_part"`
	CurrentPosition    string `json:"current_position"`
	ProjectHistory     string `json:"project_history"`
	WorkHistory        string `json:"work_history"`
	WorkPeriod         string `json:"work_period"`
}

// UpdateEmployeeRequest is a sparse patch: keys absent from the body leave
// the column untouched, keys present but null or empty clear it. The field
// set is the full allow-list; anything else in the body is ignored.
type UpdateEmployeeRequest struct {
	Name               patch.Field[string]         `json:"name"`
	DepartmentID       patch.Field[string]         `json:"department_id"`
	Position           patch.Field[string]         `json:"position"`
	HireDate           patch.Field[localdate.Date] `json:"hire_date"`
	Email              patch.Field[string]         `json:"email"`
	Phone              patch.Field[string]         `json:"phone"`
	Age                patch.Field[int]            `json:"age"`
	Address            patch.Field[string]         `json:"address"`
	AppliedPart        patch.Field[string]         `json:"applied_part"`
	BirthDate          patch.Field[localdate.Date] `json:"birth_date"`
	Status             patch.Field[string]         `json:"status"`
	Gender             patch.Field[string]         `json:"gender"`
	CurrentCompany     patch.Field[string]         `json:"current_company"`
	CurrentAppliedPart patch.Field[string]         `json:"current_applied_part"`
	CurrentPosition    patch.Field[string]         `json:"current_position"`
	ProjectHistory     patch.Field[string]         `json:"project_history"`
	WorkHistory        patch.Field[string]         `json:"work_history"`
	WorkPeriod         patch.Field[string]         `json:"work_period"`
}

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID                 string                      `json:"id"`
	Name               string                      `json:"name"`
	DepartmentID       string                      `json:"department_id,omitempty"`
	Department         *EmployeeDepartmentResponse `json:"department,omitempty"`
	Position           string                      `json:"position,omitempty"`
	HireDate           string                      `json:"hire_date,omitempty"`
	Email              string                      `json:"email,omitempty"`
	Phone              string                      `json:"phone,omitempty"`
	Age                *int                        `json:"age,omitempty"`
	Address            string                      `json:"address,omitempty"`
	AppliedPart        string                      `json:"applied_part,omitempty"`
	BirthDate          string                      `json:"birth_date,omitempty"`
	Status             string                      `json:"status"`
	Gender             string                      `json:"gender,omitempty"`
	CurrentCompany     string                      `json:"current_company,omitempty"`
	CurrentAppliedPart string                      `json:"current_applied_part,omitempty"`
	CurrentPosition    string                      `json:"current_position,omitempty"`
	ProjectHistory     string                      `json:"project_history,omitempty"`
	WorkHistory        string                      `json:"work_history,omitempty"`
	WorkPeriod         string                      `json:"work_period,omitempty"`
}

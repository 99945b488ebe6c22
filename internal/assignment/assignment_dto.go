package assignment

import (
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/localdate"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/patch"
)

type CreateAssignmentRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	SiteID      string `json:"site_id" binding:"required,uuid"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	MonthlyRate int    `json:"monthly_rate"`
}

// UpdateAssignmentRequest is the sparse patch allow-list. Unknown body keys
// are dropped by encoding/json.
type UpdateAssignmentRequest struct {
	SiteID      patch.Field[string]         `json:"site_id"`
	StartDate   patch.Field[localdate.Date] `json:"start_date"`
	EndDate     patch.Field[localdate.Date] `json:"end_date"`
	MonthlyRate patch.Field[int]            `json:"monthly_rate"`
	Status      patch.Field[string]         `json:"status"`
}

type AssignmentEmployeeResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type AssignmentSiteResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AssignmentResponse struct {
	ID          string                      `json:"id"`
	EmployeeID  string                      `json:"employee_id"`
	SiteID      string                      `json:"site_id"`
	Employee    *AssignmentEmployeeResponse `json:"employee,omitempty"`
	Site        *AssignmentSiteResponse     `json:"site,omitempty"`
	StartDate   string                      `json:"start_date,omitempty"`
	EndDate     string                      `json:"end_date,omitempty"`
	MonthlyRate *int                        `json:"monthly_rate,omitempty"`
	Status      string                      `json:"status"`
}

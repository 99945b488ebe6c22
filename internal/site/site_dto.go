package site

import (
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/localdate"
	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/patch"
)

type CreateSiteRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address"`
	ContractStart string `json:"contract_start"`
	ContractEnd   string `json:"contract_end"`
	MonthlyFee    int    `json:"monthly_fee"`
	ManagerName   string `json:"manager_name"`
	ManagerPhone  string `json:"manager_phone"`
	Note          string `json:"note"`
}

type UpdateSiteRequest struct {
	Name          patch.Field[string]         `json:"name"`
	Address       patch.Field[string]         `json:"address"`
	ContractStart patch.Field[localdate.Date] `json:"contract_start"`
	ContractEnd   patch.Field[localdate.Date] `json:"contract_end"`
	Status        patch.Field[string]         `json:"status"`
	MonthlyFee    patch.Field[int]            `json:"monthly_fee"`
	ManagerName   patch.Field[string]         `json:"manager_name"`
	ManagerPhone  patch.Field[string]         `json:"manager_phone"`
	Note          patch.Field[string]         `json:"note"`
}

// SiteResponse always carries the derived status, never the stored column.
type SiteResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address,omitempty"`
	ContractStart string `json:"contract_start,omitempty"`
	ContractEnd   string `json:"contract_end,omitempty"`
	Status        string `json:"status"`
	MonthlyFee    *int   `json:"monthly_fee,omitempty"`
	ManagerName   string `json:"manager_name,omitempty"`
	ManagerPhone  string `json:"manager_phone,omitempty"`
	Note          string `json:"note,omitempty"`
}

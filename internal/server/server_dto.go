package server

import (
	"time"

	"github.com/mskim5976-cpu/hr-ai-system/internal/shared/patch"
)

type CreateServerRequest struct {
	Name        string `json:"name" binding:"required"`
	Host        string `json:"host" binding:"required"`
	Port        int    `json:"port"`
	Environment string `json:"environment"`
	Note        string `json:"note"`
}

type UpdateServerRequest struct {
	Name          patch.Field[string]    `json:"name"`
	Host          patch.Field[string]    `json:"host"`
	Port          patch.Field[int]       `json:"port"`
	Environment   patch.Field[string]    `json:"environment"`
	Status        patch.Field[string]    `json:"status"`
	Note          patch.Field[string]    `json:"note"`
	LastCheckedAt patch.Field[time.Time] `json:"last_checked_at"`
}

type ServerResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Host          string     `json:"host"`
	Port          *int       `json:"port,omitempty"`
	Environment   string     `json:"environment,omitempty"`
	Status        string     `json:"status"`
	Note          string     `json:"note,omitempty"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty"`
}

package aireport

import "time"

type ResumeSummaryRequest struct {
	Text string `json:"text" binding:"required"`
}

type ReportResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	SubjectID string    `json:"subject_id,omitempty"`
	Content   string    `json:"content"`
	Model     string    `json:"model"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

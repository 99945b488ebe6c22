package events

import "time"

const AssignmentClosedTopic = "staffing.assignment.lifecycle.v1"

// AssignmentClosedEvent is emitted whenever an in-progress assignment is
// ended, whether by a direct status patch, an employee status change, or a
// delete.
type AssignmentClosedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	AssignmentID string    `json:"assignment_id"`
	EmployeeID   string    `json:"employee_id"`
	SiteID       string    `json:"site_id"`
	EndDate      string    `json:"end_date"`
	Reason       string    `json:"reason"`
	OccurredAt   time.Time `json:"occurred_at"`
}

package site

import "github.com/mskim5976-cpu/hr-ai-system/internal/shared/localdate"

// DeriveStatus computes a site's effective status from its contract window
// relative to today's local calendar day. Total over all inputs: missing
// dates never end or defer a contract. The end date is inclusive, a
// contract ending today is still in progress.
func DeriveStatus(start, end *localdate.Date, today localdate.Date) string {
	if end != nil && end.Before(today) {
		return StatusEnded
	}
	if start != nil && start.After(today) {
		return StatusPending
	}
	return StatusInProgress
}

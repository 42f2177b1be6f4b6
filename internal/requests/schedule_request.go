package requests

import "rr-simulator/internal/core"

// ScheduleRequest is the body of the schedule and step endpoints.
// TimeQuantum is optional; the configured default applies when it is absent.
type ScheduleRequest struct {
	Processes   []core.Process `json:"processes"`
	TimeQuantum *int           `json:"time_quantum,omitempty"`
}

// Quantum returns the requested quantum or fallback when none was given.
func (r *ScheduleRequest) Quantum(fallback int) int {
	if r == nil || r.TimeQuantum == nil {
		return fallback
	}
	return *r.TimeQuantum
}

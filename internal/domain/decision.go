package domain

import "time"

// ReviewDecision records the outcome of one approve/reject call.
type ReviewDecision struct {
	ID          string
	Scope       DecisionScope
	UserID      string
	Reviewer    string
	TimesheetID string
	Action      string
	Note        string
	Success     bool
	Message     string
	DecidedAt   time.Time
}

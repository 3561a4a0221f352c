package domain

type TimesheetStatus string

const (
	StatusPending  TimesheetStatus = "pending"
	StatusAccepted TimesheetStatus = "accepted"
	StatusRejected TimesheetStatus = "rejected"
)

// IsTerminal reports whether no further review action is allowed.
func (s TimesheetStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// ReviewAction is the per-row menu action sent to the status endpoint.
type ReviewAction string

const (
	ActionApprove ReviewAction = "approve"
	ActionReject  ReviewAction = "reject"
)

// ResultStatus returns the status a row takes once the action succeeds.
func (a ReviewAction) ResultStatus() TimesheetStatus {
	if a == ActionApprove {
		return StatusAccepted
	}
	return StatusRejected
}

func (a ReviewAction) Valid() bool {
	return a == ActionApprove || a == ActionReject
}

// BulkAction is the whole-sheet action type. The backend expects the
// target status rather than the verb.
type BulkAction string

const (
	BulkApprove BulkAction = "accepted"
	BulkReject  BulkAction = "rejected"
)

func (a BulkAction) Valid() bool {
	return a == BulkApprove || a == BulkReject
}

// Verb returns the human label for confirmation prompts.
func (a BulkAction) Verb() string {
	if a == BulkApprove {
		return "Approve"
	}
	return "Reject"
}

type DecisionScope string

const (
	ScopeRow   DecisionScope = "row"
	ScopeSheet DecisionScope = "sheet"
)

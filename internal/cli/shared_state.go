package cli

import (
	"github.com/alexanderramin/timereview/internal/dashboard"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Signed-in admin shown in the header. Starts as the fallback.
	Identity dashboard.Identity

	// User whose sheet is open in the review view.
	ActiveUserID   string
	ActiveUserName string

	// Terminal dimensions
	Width  int
	Height int
}

func (s *SharedState) SetActiveUser(id, name string) {
	s.ActiveUserID = id
	s.ActiveUserName = name
}

func (s *SharedState) ClearActiveUser() {
	s.ActiveUserID = ""
	s.ActiveUserName = ""
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	return max(s.Height-4, 1)
}

package formatter

import (
	"time"

	"github.com/alexanderramin/timereview/internal/domain"
)

// FormatHistory renders journaled review decisions, newest first.
func FormatHistory(decisions []*domain.ReviewDecision, now time.Time) string {
	if len(decisions) == 0 {
		return "  " + Dim("No review decisions recorded yet.") + "\n"
	}
	rows := make([][]string, len(decisions))
	for i, d := range decisions {
		result := StyleGreen.Render("ok")
		if !d.Success {
			result = StyleRed.Render("failed")
		}
		rows[i] = []string{
			HumanTimestampFrom(d.DecidedAt, now),
			string(d.Scope),
			d.UserID,
			d.TimesheetID,
			d.Action,
			result,
			Truncate(d.Message, 40),
			Truncate(d.Note, 30),
		}
	}
	return RenderTable([]string{"WHEN", "SCOPE", "USER", "TIMESHEET", "ACTION", "RESULT", "MESSAGE", "NOTE"}, rows)
}

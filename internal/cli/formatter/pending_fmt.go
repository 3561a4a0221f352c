package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timereview/internal/domain"
)

// FormatPendingTable lists users with timesheets awaiting review.
func FormatPendingTable(list []domain.PendingSummary) string {
	if len(list) == 0 {
		return "  " + Dim("No pending timesheets.") + "\n"
	}
	rows := make([][]string, len(list))
	for i, p := range list {
		rows[i] = []string{
			StyleGreen.Render(p.UserID),
			p.UserName,
			p.Period,
			StyleYellow.Render(fmt.Sprintf("%d", p.PendingCount)),
		}
	}
	return RenderTable([]string{"USER ID", "NAME", "PERIOD", "PENDING"}, rows)
}

// FormatPendingList renders the selectable list used in the dashboard.
func FormatPendingList(list []domain.PendingSummary, cursor int) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("PENDING REVIEWS") + "\n\n")
	if len(list) == 0 {
		b.WriteString("  " + Dim("Nothing waiting for review.") + "\n")
		return b.String()
	}
	for i, p := range list {
		marker := "  "
		name := StyleFg.Render(Truncate(p.UserName, 22))
		if i == cursor {
			marker = StyleGreen.Render("▸ ")
			name = StyleBold.Render(Truncate(p.UserName, 22))
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
			marker,
			name,
			Dim(p.Period),
			StyleYellow.Render(fmt.Sprintf("%d pending", p.PendingCount)),
		))
	}
	return b.String()
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timereview/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45%. Green above 66%,
// yellow from 33%, red below.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// ReviewedCount counts rows that are accepted or rejected.
func ReviewedCount(rows []domain.TimesheetRow) int {
	n := 0
	for _, r := range rows {
		if r.Status.IsTerminal() {
			n++
		}
	}
	return n
}

// RenderReviewProgress shows how much of a sheet has been reviewed,
// e.g. "2/5 reviewed [███░░░░░]  40%".
func RenderReviewProgress(rows []domain.TimesheetRow, width int) string {
	if len(rows) == 0 {
		return Dim("nothing to review")
	}
	done := ReviewedCount(rows)
	pct := float64(done) / float64(len(rows))
	return fmt.Sprintf("%d/%d reviewed %s", done, len(rows), RenderProgress(pct, width))
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timereview/internal/domain"
	"github.com/alexanderramin/timereview/internal/timesheet"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	holidayMark   = "✱"
	actionOpen    = "⋯"
	actionBlocked = "·"
	detailsWidth  = 28
)

var (
	gridCell     = lipgloss.NewStyle().Padding(0, 1)
	gridApproved = gridCell.Foreground(ColorGreen)
	gridRejected = gridCell.Foreground(ColorRed)
	gridDisabled = gridCell.Foreground(ColorDim).Italic(true)
	gridTotal    = gridCell.Foreground(ColorFg).Bold(true)
	gridCursor   = gridCell.Foreground(ColorHeader).Bold(true)
	gridHeader   = gridCell.Foreground(ColorHeader).Bold(true)
	gridHoliday  = gridCell.Foreground(ColorBlue).Bold(true)
)

// SheetHeaders returns the header labels for the review grid, e.g.
// "Wed Jun 11 ✱" for a holiday. Labels stay on one line: the table only
// renders the first line of a header cell.
func SheetHeaders(cols []timesheet.Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		label := c.Title
		if c.Date != "" {
			label += " " + c.Date
		}
		if c.Holiday {
			label += " " + holidayMark
		}
		out[i] = label
	}
	return out
}

// SheetCells flattens presented rows into the table's string grid.
func SheetCells(rows []timesheet.DisplayRow) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		line := make([]string, 0, len(r.Cells)+4)
		line = append(line, r.Label(), Truncate(r.Details, detailsWidth))
		for _, c := range r.Cells {
			line = append(line, c.Value)
		}
		line = append(line, r.Total)
		switch {
		case r.IsTotal:
			line = append(line, "")
		case r.ActionEnabled:
			line = append(line, actionOpen)
		default:
			line = append(line, actionBlocked)
		}
		out[i] = line
	}
	return out
}

// FormatSheet renders one user's week as a bordered grid. cursor is the
// selected row index, or -1 for none. The Total row is never selectable.
func FormatSheet(days []domain.WeekDay, rows []domain.TimesheetRow, cursor int) string {
	cols := timesheet.Columns(days)
	display := timesheet.PresentSheet(rows, days)
	firstDay := 2

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		BorderRow(false).
		Headers(SheetHeaders(cols)...).
		Rows(SheetCells(display)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col < len(cols) && cols[col].Holiday {
					return gridHoliday
				}
				return gridHeader
			}
			if row < 0 || row >= len(display) {
				return gridCell
			}
			r := display[row]
			if r.IsTotal {
				return gridTotal
			}
			if row == cursor {
				return gridCursor
			}
			if d := col - firstDay; d >= 0 && d < len(r.Cells) && r.Cells[d].Disabled {
				return gridDisabled
			}
			switch r.Style {
			case timesheet.StyleApproved:
				return gridApproved
			case timesheet.StyleRejected:
				return gridRejected
			}
			return gridCell
		})

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	if tip := disabledTooltip(display); tip != "" {
		b.WriteString(Dim("  italic: "+tip) + "\n")
	}
	return b.String()
}

func disabledTooltip(rows []timesheet.DisplayRow) string {
	for _, r := range rows {
		for _, c := range r.Cells {
			if c.Disabled {
				return c.Tooltip
			}
		}
	}
	return ""
}

// FormatSheetFooter summarizes review progress and the grand total.
func FormatSheetFooter(days []domain.WeekDay, rows []domain.TimesheetRow) string {
	grand := timesheet.GrandTotal(timesheet.DailyTotals(rows, days))
	return fmt.Sprintf("  %s   %s %s %s\n",
		RenderReviewProgress(rows, 12),
		Dim("Total"),
		Bold(timesheet.MinutesToTime(grand)),
		Dim("("+DecimalHours(grand)+")"),
	)
}

// FormatWeekSheet is the one-shot rendering used by "show".
func FormatWeekSheet(s *domain.WeekSheet) string {
	var b strings.Builder
	title := s.UserName
	if title == "" {
		title = s.UserID
	}
	b.WriteString("\n" + Header(title) + "\n\n")
	if len(s.Timesheets) == 0 {
		b.WriteString("  " + Dim("No timesheets for this week.") + "\n")
		return b.String()
	}
	b.WriteString(FormatSheet(s.Days, s.Timesheets, -1))
	b.WriteString(FormatSheetFooter(s.Days, s.Timesheets))
	for _, r := range s.Timesheets {
		b.WriteString(fmt.Sprintf("  %s  %-12s %s\n", Dim(r.TimesheetID), StatusPill(r.Status), r.CategoryName))
	}
	return b.String()
}

package timesheet

import (
	"strings"

	"github.com/alexanderramin/timereview/internal/domain"
)

// DisabledTooltip explains why a day cell is read-only.
const DisabledTooltip = "These dates are in next week"

// StyleTag marks a presented row with its review outcome.
type StyleTag string

const (
	StyleNeutral  StyleTag = ""
	StyleApproved StyleTag = "approved"
	StyleRejected StyleTag = "rejected"
)

// Cell is the read-only time display for one day of one row.
type Cell struct {
	Day      string
	Value    string
	Holiday  bool
	Disabled bool
	Tooltip  string
}

// DisplayRow is a TimesheetRow mapped for the review grid. The Total
// row has IsTotal set and no timesheet behind it.
type DisplayRow struct {
	TimesheetID   string
	Task          string
	Project       string
	Details       string
	Cells         []Cell
	Total         string
	TotalMinutes  int
	Style         StyleTag
	ActionEnabled bool
	IsTotal       bool
}

// Label joins category and project for single-line renderers.
func (r DisplayRow) Label() string {
	if r.Project == "" {
		return r.Task
	}
	return r.Task + " · " + r.Project
}

// Column describes one header of the review grid.
type Column struct {
	Key     string
	Title   string
	Date    string
	Holiday bool
}

const (
	ColumnTask    = "task"
	ColumnDetails = "details"
	ColumnTotal   = "total"
	ColumnAction  = "action"
)

// Columns returns the grid headers: task, details, one per day, total.
func Columns(days []domain.WeekDay) []Column {
	cols := make([]Column, 0, len(days)+4)
	cols = append(cols,
		Column{Key: ColumnTask, Title: "Task"},
		Column{Key: ColumnDetails, Title: "Task Details"},
	)
	for _, d := range days {
		cols = append(cols, Column{Key: d.Name, Title: d.Name, Date: d.FormattedDate, Holiday: d.IsHoliday})
	}
	cols = append(cols,
		Column{Key: ColumnTotal, Title: "Total"},
		Column{Key: ColumnAction, Title: ""},
	)
	return cols
}

func styleFor(s domain.TimesheetStatus) StyleTag {
	switch s {
	case domain.StatusAccepted:
		return StyleApproved
	case domain.StatusRejected:
		return StyleRejected
	default:
		return StyleNeutral
	}
}

// PresentRow maps one row onto the weekday columns.
func PresentRow(row domain.TimesheetRow, days []domain.WeekDay) DisplayRow {
	cells := make([]Cell, len(days))
	for i, day := range days {
		e := row.EntryAt(i)
		c := Cell{Day: day.Name, Value: e.Hours, Holiday: e.IsHoliday, Disabled: e.IsDisabled}
		if e.IsDisabled {
			c.Tooltip = DisabledTooltip
		}
		cells[i] = c
	}
	total := RowTotal(row)
	return DisplayRow{
		TimesheetID:   row.TimesheetID,
		Task:          row.CategoryName,
		Project:       row.ProjectName,
		Details:       strings.TrimSpace(row.TaskDetail),
		Cells:         cells,
		Total:         MinutesToTime(total),
		TotalMinutes:  total,
		Style:         styleFor(row.Status),
		ActionEnabled: !row.Status.IsTerminal(),
	}
}

// TotalRow builds the synthesized footer from per-day sums.
func TotalRow(rows []domain.TimesheetRow, days []domain.WeekDay) DisplayRow {
	daily := DailyTotals(rows, days)
	cells := make([]Cell, len(days))
	for i, day := range days {
		cells[i] = Cell{Day: day.Name, Value: MinutesToTime(daily[day.Name]), Holiday: day.IsHoliday}
	}
	grand := GrandTotal(daily)
	return DisplayRow{
		Task:         "Total",
		Cells:        cells,
		Total:        MinutesToTime(grand),
		TotalMinutes: grand,
		IsTotal:      true,
	}
}

// PresentSheet presents every row and appends the Total row last.
func PresentSheet(rows []domain.TimesheetRow, days []domain.WeekDay) []DisplayRow {
	out := make([]DisplayRow, 0, len(rows)+1)
	for _, r := range rows {
		out = append(out, PresentRow(r, days))
	}
	return append(out, TotalRow(rows, days))
}

package domain

// EmptyHours is the display value of a day with nothing logged.
const EmptyHours = "00:00"

// TimeEntry is one day's logged time for one task row.
type TimeEntry struct {
	Hours      string `json:"hours"`
	IsHoliday  bool   `json:"isHoliday"`
	Date       string `json:"date"`
	IsDisabled bool   `json:"is_disable"`
}

// TimesheetRow is one task/category line of a weekly timesheet.
// DataSheet is indexed by weekday offset.
type TimesheetRow struct {
	TimesheetID  string          `json:"timesheet_id"`
	CategoryName string          `json:"category_name"`
	ProjectName  string          `json:"project_name"`
	TaskDetail   string          `json:"task_detail"`
	DataSheet    []TimeEntry     `json:"data_sheet"`
	Status       TimesheetStatus `json:"status"`
}

// EntryAt returns the entry for a weekday offset. Missing entries come
// back as an enabled, non-holiday placeholder with zero hours.
func (r TimesheetRow) EntryAt(i int) TimeEntry {
	if i < 0 || i >= len(r.DataSheet) {
		return TimeEntry{Hours: EmptyHours}
	}
	e := r.DataSheet[i]
	if e.Hours == "" {
		e.Hours = EmptyHours
	}
	return e
}

// WithStatus returns a copy of the row carrying a new status.
func (r TimesheetRow) WithStatus(s TimesheetStatus) TimesheetRow {
	r.Status = s
	return r
}

// WeekDay is one column of the review grid.
type WeekDay struct {
	Name          string `json:"name"`
	FormattedDate string `json:"formattedDate"`
	IsHoliday     bool   `json:"isHoliday"`
}

// WeekSheet is everything needed to render one user's pending week.
type WeekSheet struct {
	UserID     string         `json:"user_id"`
	UserName   string         `json:"user_name"`
	Days       []WeekDay      `json:"days"`
	Timesheets []TimesheetRow `json:"timesheets"`
}

// PendingSummary is one entry of the pending-reviews list.
type PendingSummary struct {
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	Period       string `json:"period"`
	PendingCount int    `json:"pending_count"`
}

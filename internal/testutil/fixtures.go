package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/timereview/internal/domain"
	"github.com/google/uuid"
)

var testRowCounter atomic.Int64

// WeekStart is the Monday every fixture week is anchored to.
var WeekStart = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

var weekdayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// NewTestWeek returns the seven review columns starting at WeekStart.
// Days listed in holidays are flagged as holidays.
func NewTestWeek(holidays ...int) []domain.WeekDay {
	isHoliday := make(map[int]bool, len(holidays))
	for _, h := range holidays {
		isHoliday[h] = true
	}
	days := make([]domain.WeekDay, len(weekdayNames))
	for i, name := range weekdayNames {
		days[i] = domain.WeekDay{
			Name:          name,
			FormattedDate: WeekStart.AddDate(0, 0, i).Format("Jan 02"),
			IsHoliday:     isHoliday[i],
		}
	}
	return days
}

// Row options
type RowOption func(*domain.TimesheetRow)

func WithStatus(s domain.TimesheetStatus) RowOption {
	return func(r *domain.TimesheetRow) {
		r.Status = s
	}
}

func WithTimesheetID(id string) RowOption {
	return func(r *domain.TimesheetRow) {
		r.TimesheetID = id
	}
}

func WithProject(name string) RowOption {
	return func(r *domain.TimesheetRow) {
		r.ProjectName = name
	}
}

func WithTaskDetail(d string) RowOption {
	return func(r *domain.TimesheetRow) {
		r.TaskDetail = d
	}
}

// WithDisabledFrom marks entries from day index i onwards as disabled.
func WithDisabledFrom(i int) RowOption {
	return func(r *domain.TimesheetRow) {
		for j := i; j < len(r.DataSheet); j++ {
			r.DataSheet[j].IsDisabled = true
		}
	}
}

// NewTestRow builds a pending row whose data sheet holds the given hours,
// one per weekday offset.
func NewTestRow(category string, hours []string, opts ...RowOption) domain.TimesheetRow {
	n := testRowCounter.Add(1)
	sheet := make([]domain.TimeEntry, len(hours))
	for i, h := range hours {
		sheet[i] = domain.TimeEntry{
			Hours: h,
			Date:  WeekStart.AddDate(0, 0, i).Format("2006-01-02"),
		}
	}
	r := domain.TimesheetRow{
		TimesheetID:  fmt.Sprintf("ts-%03d", n),
		CategoryName: category,
		ProjectName:  "Project " + category,
		TaskDetail:   "Worked on " + category,
		DataSheet:    sheet,
		Status:       domain.StatusPending,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// NewTestSheet wraps rows into a WeekSheet for userID over NewTestWeek.
func NewTestSheet(userID string, rows ...domain.TimesheetRow) domain.WeekSheet {
	return domain.WeekSheet{
		UserID:     userID,
		UserName:   "User " + userID,
		Days:       NewTestWeek(),
		Timesheets: rows,
	}
}

func NewTestNotification(title string) domain.Notification {
	return domain.Notification{
		ID:        uuid.New().String(),
		Type:      "timesheet_submitted",
		Title:     title,
		Message:   title + " is waiting for review",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func NewTestDecision(userID, timesheetID string, scope domain.DecisionScope) *domain.ReviewDecision {
	return &domain.ReviewDecision{
		ID:          uuid.New().String(),
		Scope:       scope,
		UserID:      userID,
		TimesheetID: timesheetID,
		Action:      string(domain.ActionApprove),
		Success:     true,
		Message:     "Timesheet approved",
		DecidedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

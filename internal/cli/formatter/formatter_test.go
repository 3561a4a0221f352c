package formatter

import (
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/timereview/internal/dashboard"
	"github.com/alexanderramin/timereview/internal/domain"
	"github.com/alexanderramin/timereview/internal/review"
	"github.com/alexanderramin/timereview/internal/testutil"
	"github.com/alexanderramin/timereview/internal/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanTimestampFrom(t *testing.T) {
	now := time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"zero", time.Time{}, "--"},
		{"just now", now.Add(-10 * time.Second), "Just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"days", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"weeks", now.Add(-21 * 24 * time.Hour), "3w ago"},
		{"months", now.Add(-90 * 24 * time.Hour), "3mo ago"},
		{"future", now.Add(48 * time.Hour), "Jun 15, 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTimestampFrom(tt.input, now))
		})
	}
}

func TestDecimalHours(t *testing.T) {
	assert.Equal(t, "7.50h", DecimalHours(450))
	assert.Equal(t, "0.00h", DecimalHours(0))
	assert.Equal(t, "25.00h", DecimalHours(1500))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
}

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"one", "two"}, {"three", "four"}})

	assert.Contains(t, out, "A")
	assert.Contains(t, out, "three")
	assert.Contains(t, out, "─")
	assert.Empty(t, RenderTable(nil, nil))
}

func TestRenderReviewProgress(t *testing.T) {
	rows := []domain.TimesheetRow{
		testutil.NewTestRow("Dev", []string{"08:00"}, testutil.WithStatus(domain.StatusAccepted)),
		testutil.NewTestRow("Ops", []string{"08:00"}),
	}

	out := RenderReviewProgress(rows, 10)

	assert.Contains(t, out, "1/2 reviewed")
	assert.Contains(t, out, "50%")
	assert.Contains(t, RenderReviewProgress(nil, 10), "nothing to review")
}

func TestFormatSheet_TotalRowAndTooltip(t *testing.T) {
	days := testutil.NewTestWeek(2)
	rows := []domain.TimesheetRow{
		testutil.NewTestRow("Dev", []string{"09:30", "08:00", "", "", "", "01:00", "02:00"}, testutil.WithDisabledFrom(5)),
		testutil.NewTestRow("Ops", []string{"00:30"}, testutil.WithStatus(domain.StatusRejected)),
	}

	out := FormatSheet(days, rows, 0)

	assert.Contains(t, out, "Task Details")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "Jun 09")
	assert.Contains(t, out, holidayMark)
	assert.Contains(t, out, "Dev · Project Dev")
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "10:00", "Monday total")
	assert.Contains(t, out, "21:00", "grand total")
	assert.Contains(t, out, "These dates are in next week")
	assert.Contains(t, out, actionBlocked)
}

func TestSheetHeaders_DayLabelsOnOneLine(t *testing.T) {
	headers := SheetHeaders(timesheet.Columns(testutil.NewTestWeek(2)))

	require.Len(t, headers, 11)
	assert.Equal(t, "Task", headers[0])
	assert.Equal(t, "Mon Jun 09", headers[2])
	assert.Equal(t, "Wed Jun 11 "+holidayMark, headers[4])
	assert.Equal(t, "Total", headers[9])
	for _, h := range headers {
		assert.NotContains(t, h, "\n")
	}
}

func TestFormatSheet_NoTooltipWithoutDisabledDays(t *testing.T) {
	rows := []domain.TimesheetRow{testutil.NewTestRow("Dev", []string{"08:00"})}

	out := FormatSheet(testutil.NewTestWeek(), rows, -1)

	assert.NotContains(t, out, "next week")
}

func TestFormatWeekSheet(t *testing.T) {
	s := testutil.NewTestSheet("u-1",
		testutil.NewTestRow("Dev", []string{"07:30"}, testutil.WithTimesheetID("t-1")),
	)

	out := FormatWeekSheet(&s)

	assert.Contains(t, out, "USER U-1")
	assert.Contains(t, out, "t-1")
	assert.Contains(t, out, "7.50h")
	assert.Contains(t, out, "0/1 reviewed")

	empty := testutil.NewTestSheet("u-2")
	assert.Contains(t, FormatWeekSheet(&empty), "No timesheets")
}

func TestFormatNotifications_States(t *testing.T) {
	now := time.Now()

	loading := dashboard.NewNotificationPanel()
	assert.Contains(t, FormatNotifications(loading, now), "Loading")

	failed := dashboard.NewNotificationPanel()
	failed.Resolve(dashboard.Result[[]domain.Notification]{Err: errors.New("boom")})
	assert.Contains(t, FormatNotifications(failed, now), "Failed to load notifications.")

	empty := dashboard.NewNotificationPanel()
	empty.Resolve(dashboard.Result[[]domain.Notification]{})
	assert.Contains(t, FormatNotifications(empty, now), "No notifications")

	loaded := dashboard.NewNotificationPanel()
	loaded.Resolve(dashboard.Result[[]domain.Notification]{Value: []domain.Notification{testutil.NewTestNotification("Week 24 submitted")}})
	out := FormatNotifications(loaded, now)
	assert.Contains(t, out, "Week 24 submitted")
	assert.Contains(t, out, "1 unread")
}

func TestFormatPending(t *testing.T) {
	list := []domain.PendingSummary{{UserID: "u-1", UserName: "Grace", Period: "Jun 09 – Jun 15", PendingCount: 3}}

	assert.Contains(t, FormatPendingTable(list), "Grace")
	assert.Contains(t, FormatPendingTable(nil), "No pending timesheets.")
	assert.Contains(t, FormatPendingList(list, 0), "3 pending")
	assert.Contains(t, FormatPendingList(nil, 0), "Nothing waiting")
}

func TestFormatHistory(t *testing.T) {
	ok := testutil.NewTestDecision("u-1", "t-1", domain.ScopeRow)
	bad := testutil.NewTestDecision("u-2", "t-2", domain.ScopeSheet)
	bad.Success = false
	bad.Note = "hours missing"

	out := FormatHistory([]*domain.ReviewDecision{ok, bad}, time.Now())

	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "hours missing")
	assert.Contains(t, out, "sheet")
	assert.Contains(t, FormatHistory(nil, time.Now()), "No review decisions")
}

func TestFormatSummary(t *testing.T) {
	panel := dashboard.NewNotificationPanel()
	panel.Resolve(dashboard.Result[[]domain.Notification]{Err: errors.New("down")})
	id := dashboard.FallbackIdentity()

	out := FormatSummary(id, panel, dashboard.Result[[]domain.PendingSummary]{Err: errors.New("down")}, time.Now())

	assert.Contains(t, out, "admin")
	assert.Contains(t, out, domain.DefaultAvatarPath)
	assert.Contains(t, out, "Failed to load notifications.")
	assert.Contains(t, out, "Failed to load pending timesheets.")
}

func TestFormatNotice(t *testing.T) {
	assert.Contains(t, FormatNotice(review.Notice{Kind: review.NoticeSuccess, Message: "done"}), "✔ done")
	assert.Contains(t, FormatNotice(review.Notice{Kind: review.NoticeFailure, Message: "nope"}), "✖ nope")
}

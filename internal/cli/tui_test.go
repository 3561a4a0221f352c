package cli

import (
	"testing"

	"github.com/alexanderramin/timereview/internal/domain"
	"github.com/alexanderramin/timereview/internal/review"
	"github.com/alexanderramin/timereview/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_DashboardLoads(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	fake.SetNotifications(testutil.NewTestNotification("Week 24 submitted"))
	seedGrace(fake)

	d := NewTestDriver(t, newTestApp(t, fake))

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	out := d.View()
	assert.Contains(t, out, "timereview")
	assert.Contains(t, out, "Ada Admin")
	assert.Contains(t, out, "Week 24 submitted")
	assert.Contains(t, out, "Grace")
	assert.Contains(t, out, "2 pending")
}

func TestTUI_NotificationFailureIsInline(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	fake.FailNotifications()
	seedGrace(fake)

	d := NewTestDriver(t, newTestApp(t, fake))

	out := d.View()
	assert.Contains(t, out, "Failed to load notifications.")
	assert.Contains(t, out, "Grace", "pending list still renders")
}

func TestTUI_HeaderFallsBackWhenProfileDenied(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	fake.DenyProfile()

	d := NewTestDriver(t, newTestApp(t, fake))

	assert.Equal(t, domain.DefaultAvatarPath, d.State().Identity.AvatarPath)
	assert.Empty(t, d.State().Identity.Name)
	assert.Contains(t, d.View(), "[admin]")
}

func TestTUI_OpenReviewShowsGrid(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	seedGrace(fake)
	d := NewTestDriver(t, newTestApp(t, fake))

	d.OpenReview()

	require.Equal(t, ViewReview, d.ActiveViewID())
	assert.Equal(t, "u-1", d.State().ActiveUserID)
	out := d.View()
	assert.Contains(t, out, "Review: Grace")
	assert.Contains(t, out, "Dev · Project Dev")
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "22:30", "Tuesday total over three rows")
	assert.Contains(t, out, "These dates are in next week")
	assert.Contains(t, out, "1/3 reviewed")
}

func TestTUI_QuickApproveChangesOnlyThatRow(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	seedGrace(fake)
	d := NewTestDriver(t, newTestApp(t, fake))
	d.OpenReview()

	d.PressEnter()
	require.Equal(t, ViewActionMenu, d.ActiveViewID())
	d.PressKey('a')

	assert.Equal(t, ViewReview, d.ActiveViewID())
	calls := fake.RowCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "t-1", calls[0].TimesheetID)
	assert.Equal(t, "approve", calls[0].Action)

	rows := d.ReviewView().workflow.Rows()
	assert.Equal(t, domain.StatusAccepted, rows[0].Status)
	assert.Equal(t, domain.StatusAccepted, rows[1].Status)
	assert.Equal(t, domain.StatusPending, rows[2].Status)
	assert.Contains(t, d.View(), "Timesheet accepted")
}

func TestTUI_QuickRejectFromMenuCursor(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	seedGrace(fake)
	d := NewTestDriver(t, newTestApp(t, fake))
	d.OpenReview()

	d.PressDown()
	d.PressDown()
	d.PressEnter()
	d.PressDown()
	d.PressEnter()

	calls := fake.RowCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "t-3", calls[0].TimesheetID)
	assert.Equal(t, "reject", calls[0].Action)
	assert.Equal(t, domain.StatusRejected, d.ReviewView().workflow.Rows()[2].Status)
}

func TestTUI_TerminalRowHasNoMenu(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	seedGrace(fake)
	d := NewTestDriver(t, newTestApp(t, fake))
	d.OpenReview()

	d.PressDown()
	d.PressEnter()

	assert.Equal(t, ViewReview, d.ActiveViewID())
	assert.Contains(t, d.View(), "Timesheet already accepted.")
	assert.Empty(t, fake.RowCalls())
}

func TestTUI_QuickActionRejectedByBackend(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	seedGrace(fake)
	fake.RejectMutations("Period is locked")
	d := NewTestDriver(t, newTestApp(t, fake))
	d.OpenReview()

	d.PressEnter()
	d.PressKey('a')

	assert.Equal(t, domain.StatusPending, d.ReviewView().workflow.Rows()[0].Status)
	assert.Contains(t, d.View(), "Period is locked")
}

func TestTUI_BulkRejectCancelMakesNoCall(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	seedGrace(fake)
	d := NewTestDriver(t, newTestApp(t, fake))
	d.OpenReview()

	d.PressKey('R')
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, review.ConfirmPending, d.ReviewView().workflow.State())
	assert.Equal(t, domain.BulkReject, d.ReviewView().workflow.PendingAction())

	d.PressEsc()

	assert.Equal(t, ViewReview, d.ActiveViewID())
	assert.Equal(t, review.Idle, d.ReviewView().workflow.State())
	assert.Empty(t, fake.BulkCalls())
	assert.Contains(t, d.View(), "Cancelled.")
}

func TestTUI_BulkApproveConfirmed(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	seedGrace(fake)
	app := newTestApp(t, fake)
	d := NewTestDriver(t, app)
	d.OpenReview()

	d.PressKey('A')
	require.Equal(t, ViewForm, d.ActiveViewID())

	// Stand in for the user filling the form and submitting it.
	rv := d.ReviewView()
	rv.bulkConfirmed = true
	rv.bulkNote = "  all good  "
	d.Send(wizardCompleteMsg{nextCmd: func() tea.Msg { return bulkSubmitMsg{userID: "u-1"} }})

	assert.Equal(t, ViewReview, d.ActiveViewID())
	calls := fake.BulkCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, testutil.BulkCall{UserID: "u-1", TimesheetID: "t-1", Note: "all good", ActionType: "accepted"}, calls[0])
	assert.Equal(t, review.Idle, rv.workflow.State())

	for _, r := range rv.workflow.Rows() {
		assert.Equal(t, domain.StatusAccepted, r.Status, "sheet reloaded after bulk action")
	}
	assert.Contains(t, d.View(), "Timesheets accepted")

	history, err := app.Decisions.ListByUser(t.Context(), "u-1", 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.ScopeSheet, history[0].Scope)
	assert.Equal(t, "Ada Admin", history[0].Reviewer)
}

func TestTUI_BulkSubmitWithoutConfirmCancels(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	seedGrace(fake)
	d := NewTestDriver(t, newTestApp(t, fake))
	d.OpenReview()

	d.PressKey('A')
	d.Send(wizardCompleteMsg{nextCmd: func() tea.Msg { return bulkSubmitMsg{userID: "u-1"} }})

	assert.Empty(t, fake.BulkCalls())
	assert.Equal(t, review.Idle, d.ReviewView().workflow.State())
}

func TestTUI_BulkFailureKeepsRows(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	seedGrace(fake)
	fake.FailMutations()
	d := NewTestDriver(t, newTestApp(t, fake))
	d.OpenReview()

	d.PressKey('R')
	d.ReviewView().bulkConfirmed = true
	d.Send(wizardCompleteMsg{nextCmd: func() tea.Msg { return bulkSubmitMsg{userID: "u-1"} }})

	rows := d.ReviewView().workflow.Rows()
	assert.Equal(t, domain.StatusPending, rows[0].Status)
	assert.Contains(t, d.View(), "Failed to reject timesheets")
	assert.Equal(t, 1, d.CountMsgs(sheetLoadedMsg{}), "no reload after a failed bulk action")
}

func TestTUI_StaleResultIsIgnored(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	seedGrace(fake)
	d := NewTestDriver(t, newTestApp(t, fake))
	d.OpenReview()

	d.Send(quickResultMsg{userID: "someone-else", result: review.QuickResult{
		TimesheetID: "t-1", Action: domain.ActionReject, OK: true,
	}})

	assert.Equal(t, domain.StatusPending, d.ReviewView().workflow.Rows()[0].Status)
}

func TestTUI_EscReturnsToDashboard(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	seedGrace(fake)
	d := NewTestDriver(t, newTestApp(t, fake))
	d.OpenReview()

	d.PressEsc()

	assert.Equal(t, []ViewID{ViewDashboard}, d.ViewStackIDs())
	assert.Empty(t, d.State().ActiveUserID)
}

func TestTUI_ReloadRefetchesSheet(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	seedGrace(fake)
	d := NewTestDriver(t, newTestApp(t, fake))
	d.OpenReview()

	d.PressKey('r')

	assert.Equal(t, 2, d.CountMsgs(sheetLoadedMsg{}))
}

func TestTUI_HistoryOutput(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	seedGrace(fake)
	d := NewTestDriver(t, newTestApp(t, fake))
	d.OpenReview()
	d.PressEnter()
	d.PressKey('a')
	d.PressEsc()

	d.PressKey('h')

	assert.Contains(t, d.LastOutput(), "REVIEW HISTORY")
	assert.Contains(t, d.LastOutput(), "t-1")
}

func TestTUI_QuitKey(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	d := NewTestDriver(t, newTestApp(t, fake))

	d.PressKey('q')

	assert.True(t, d.IsQuitting())
}

func TestTUI_QuickResultLandsUnderActionMenu(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	seedGrace(fake)
	d := NewTestDriver(t, newTestApp(t, fake))
	d.OpenReview()
	rv := d.ReviewView()

	// Start an approve on t-1 but hold its result.
	_, cmd := rv.Update(quickActionMsg{userID: "u-1", timesheetID: "t-1", action: domain.ActionApprove})
	require.NotNil(t, cmd)
	require.Equal(t, 1, rv.inflight)

	d.PressDown()
	d.PressDown()
	d.PressEnter()
	require.Equal(t, ViewActionMenu, d.ActiveViewID())

	d.Send(cmd())

	assert.Equal(t, ViewActionMenu, d.ActiveViewID(), "menu stays open")
	assert.Equal(t, domain.StatusAccepted, fake.Sheet("u-1").Timesheets[0].Status)
	assert.Equal(t, domain.StatusAccepted, rv.workflow.Rows()[0].Status)
	assert.Zero(t, rv.inflight)

	d.PressEsc()

	require.Equal(t, ViewReview, d.ActiveViewID())
	out := d.View()
	assert.Contains(t, out, "Timesheet accepted")
	assert.NotContains(t, out, "Working...")
}

func TestTUI_BulkResultAndReloadLandUnderActionMenu(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	seedGrace(fake)
	d := NewTestDriver(t, newTestApp(t, fake))
	d.OpenReview()
	rv := d.ReviewView()

	require.NoError(t, rv.workflow.BeginBulk(domain.BulkApprove))
	rv.bulkConfirmed = true
	_, cmd := rv.Update(bulkSubmitMsg{userID: "u-1"})
	require.NotNil(t, cmd)

	d.PressEnter()
	require.Equal(t, ViewActionMenu, d.ActiveViewID())

	d.Send(cmd())

	assert.Equal(t, ViewActionMenu, d.ActiveViewID())
	assert.Equal(t, review.Idle, rv.workflow.State())
	assert.Zero(t, rv.inflight)
	assert.Equal(t, 2, d.CountMsgs(sheetLoadedMsg{}), "reload after bulk action")
	for _, r := range rv.workflow.Rows() {
		assert.Equal(t, domain.StatusAccepted, r.Status)
	}
	assert.Equal(t, review.NoticeSuccess, rv.notice.Kind)
}

func TestTUI_SheetResultWithoutReviewIsDropped(t *testing.T) {
	fake := testutil.NewFakeBackend(t)
	seedGrace(fake)
	d := NewTestDriver(t, newTestApp(t, fake))

	d.Send(quickResultMsg{userID: "u-1", result: review.QuickResult{
		TimesheetID: "t-1", Action: domain.ActionApprove, OK: true,
	}})

	assert.Equal(t, []ViewID{ViewDashboard}, d.ViewStackIDs())
}

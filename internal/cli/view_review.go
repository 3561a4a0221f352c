package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/timereview/internal/cli/formatter"
	"github.com/alexanderramin/timereview/internal/domain"
	"github.com/alexanderramin/timereview/internal/review"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ── messages ─────────────────────────────────────────────────────────────────
// Each carries the user it belongs to so a result that arrives after the
// view was left (or replaced by another user's sheet) is dropped.

type sheetLoadedMsg struct {
	userID string
	sheet  *domain.WeekSheet
	err    error
}

type quickActionMsg struct {
	userID      string
	timesheetID string
	action      domain.ReviewAction
}

type quickResultMsg struct {
	userID string
	result review.QuickResult
}

type bulkSubmitMsg struct{ userID string }

type bulkCancelMsg struct{ userID string }

type bulkResultMsg struct {
	userID string
	notice review.Notice
}

// sheetMsg is implemented by every message above. The app model routes
// them to the review view wherever it sits on the stack, so results still
// land while a menu or form is open on top of it.
type sheetMsg interface {
	sheetUserID() string
}

func (m sheetLoadedMsg) sheetUserID() string { return m.userID }
func (m quickActionMsg) sheetUserID() string { return m.userID }
func (m quickResultMsg) sheetUserID() string { return m.userID }
func (m bulkSubmitMsg) sheetUserID() string  { return m.userID }
func (m bulkCancelMsg) sheetUserID() string  { return m.userID }
func (m bulkResultMsg) sheetUserID() string  { return m.userID }

// ── view ─────────────────────────────────────────────────────────────────────

// reviewView is the detailed week grid for one user with row and sheet
// approve/reject actions.
type reviewView struct {
	state    *SharedState
	userID   string
	userName string

	loading  bool
	inflight int // status calls awaiting a result
	err      error
	days     []domain.WeekDay
	workflow *review.Workflow
	cursor   int
	notice   review.Notice

	// Bound to the bulk confirmation form.
	bulkConfirmed bool
	bulkNote      string
}

func newReviewView(state *SharedState, userID, userName string) *reviewView {
	return &reviewView{
		state:    state,
		userID:   userID,
		userName: userName,
		loading:  true,
	}
}

func (v *reviewView) ID() ViewID { return ViewReview }

func (v *reviewView) Title() string {
	if v.userName != "" {
		return "Review: " + v.userName
	}
	return "Review: " + v.userID
}

func (v *reviewView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "actions")),
		key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "approve all")),
		key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reject all")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

func (v *reviewView) Init() tea.Cmd {
	return v.loadSheet()
}

func (v *reviewView) loadSheet() tea.Cmd {
	client, userID := v.state.App.Backend, v.userID
	return func() tea.Msg {
		sheet, err := client.FetchWeekSheet(context.Background(), userID)
		return sheetLoadedMsg{userID: userID, sheet: sheet, err: err}
	}
}

func (v *reviewView) rows() []domain.TimesheetRow {
	if v.workflow == nil {
		return nil
	}
	return v.workflow.Rows()
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *reviewView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sheetLoadedMsg:
		if msg.userID != v.userID {
			return v, nil
		}
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.days = msg.sheet.Days
		if msg.sheet.UserName != "" {
			v.userName = msg.sheet.UserName
		}
		if v.workflow == nil {
			v.workflow = v.state.App.newWorkflow(v.userID, msg.sheet.Timesheets, v.state.Identity.Name)
		} else {
			v.workflow.Reset(msg.sheet.Timesheets)
		}
		v.cursor = min(v.cursor, max(len(msg.sheet.Timesheets)-1, 0))
		return v, nil

	case quickActionMsg:
		if msg.userID != v.userID || v.workflow == nil {
			return v, nil
		}
		if err := v.workflow.CheckQuick(msg.timesheetID, msg.action); err != nil {
			v.notice = review.Notice{Kind: review.NoticeFailure, Message: blockedMessage(err)}
			return v, nil
		}
		v.inflight++
		wf, id, action, userID := v.workflow, msg.timesheetID, msg.action, v.userID
		return v, func() tea.Msg {
			return quickResultMsg{userID: userID, result: wf.RequestQuick(context.Background(), id, action)}
		}

	case quickResultMsg:
		if msg.userID != v.userID || v.workflow == nil {
			return v, nil
		}
		v.inflight = max(v.inflight-1, 0)
		_, v.notice = v.workflow.ApplyQuick(msg.result)
		return v, nil

	case bulkCancelMsg:
		if msg.userID != v.userID || v.workflow == nil {
			return v, nil
		}
		v.workflow.Cancel()
		v.notice = review.Notice{Message: "Cancelled."}
		return v, nil

	case bulkSubmitMsg:
		if msg.userID != v.userID || v.workflow == nil {
			return v, nil
		}
		if !v.bulkConfirmed {
			v.workflow.Cancel()
			v.notice = review.Notice{Message: "Cancelled."}
			return v, nil
		}
		v.workflow.SetNote(strings.TrimSpace(v.bulkNote))
		req, err := v.workflow.PrepareBulk()
		if err != nil {
			v.notice = v.workflow.FinishBulk(review.Notice{Kind: review.NoticeFailure, Message: err.Error()})
			return v, nil
		}
		v.inflight++
		wf, userID := v.workflow, v.userID
		return v, func() tea.Msg {
			return bulkResultMsg{userID: userID, notice: wf.RequestBulk(context.Background(), req)}
		}

	case bulkResultMsg:
		if msg.userID != v.userID || v.workflow == nil {
			return v, nil
		}
		v.inflight = max(v.inflight-1, 0)
		v.notice = v.workflow.FinishBulk(msg.notice)
		if msg.notice.Failed() {
			return v, nil
		}
		// The bulk endpoint does not echo row statuses, so reload the sheet.
		return v, v.loadSheet()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *reviewView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.loading || v.workflow == nil {
		return v, nil
	}
	rows := v.workflow.Rows()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(rows)-1 {
			v.cursor++
		}
	case "r":
		v.notice = review.Notice{}
		return v, v.loadSheet()
	case "enter":
		if v.cursor >= len(rows) {
			return v, nil
		}
		row := rows[v.cursor]
		if row.Status.IsTerminal() {
			v.notice = review.Notice{Kind: review.NoticeFailure, Message: "Timesheet already " + string(row.Status) + "."}
			return v, nil
		}
		return v, pushView(newActionMenuView(v.state, v.userID, row))
	case "A":
		return v, v.startBulk(domain.BulkApprove)
	case "R":
		return v, v.startBulk(domain.BulkReject)
	}
	return v, nil
}

// startBulk moves the workflow to ConfirmPending and pushes the
// confirmation form.
func (v *reviewView) startBulk(action domain.BulkAction) tea.Cmd {
	if err := v.workflow.BeginBulk(action); err != nil {
		v.notice = review.Notice{Kind: review.NoticeFailure, Message: blockedMessage(err)}
		return nil
	}
	v.bulkConfirmed = false
	v.bulkNote = ""

	name := v.userName
	if name == "" {
		name = v.userID
	}
	userID := v.userID
	form := wizardBulkConfirm(action, name, &v.bulkConfirmed, &v.bulkNote)
	wv := newWizardView(v.state, action.Verb()+" all", form, func() tea.Cmd {
		return func() tea.Msg { return bulkSubmitMsg{userID: userID} }
	})
	wv.onCancel = func() tea.Cmd {
		return func() tea.Msg { return bulkCancelMsg{userID: userID} }
	}
	return pushView(wv)
}

func blockedMessage(err error) string {
	switch {
	case errors.Is(err, review.ErrTerminalStatus):
		return "Timesheet already reviewed."
	case errors.Is(err, review.ErrNoTimesheets):
		return "There are no timesheets to review."
	case errors.Is(err, review.ErrMissingTimesheetID):
		return "This row has no timesheet id."
	}
	return err.Error()
}

// ── view rendering ───────────────────────────────────────────────────────────

func (v *reviewView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading timesheets...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n  " + formatter.Dim("press r to retry")
	}

	var b strings.Builder
	b.WriteString("\n")
	rows := v.rows()
	if len(rows) == 0 {
		b.WriteString("  " + formatter.Dim("No timesheets for this week.") + "\n")
		return b.String()
	}

	b.WriteString(formatter.FormatSheet(v.days, rows, v.cursor))
	b.WriteString(formatter.FormatSheetFooter(v.days, rows))

	switch {
	case v.inflight > 0:
		b.WriteString("\n  " + formatter.Dim("Working...") + "\n")
	case v.notice.Message != "":
		b.WriteString("\n  " + formatter.FormatNotice(v.notice) + "\n")
	}
	return b.String()
}

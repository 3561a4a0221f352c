// Package review holds the approve/reject state machine behind the
// detailed timesheet view.
//
// A Workflow owns the rows of one user's week. Quick actions change a
// single row, bulk actions go through a confirmation step and act on the
// whole sheet. The split Request/Apply methods exist for callers that run
// the network call off the UI goroutine: Request* only touch the client,
// journal and observer, while Apply*/Finish* mutate workflow state.
package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/timereview/internal/backend"
	"github.com/alexanderramin/timereview/internal/domain"
	"github.com/google/uuid"
)

var (
	ErrNoTimesheets       = errors.New("no timesheets to review")
	ErrMissingTimesheetID = errors.New("timesheet id is required")
	ErrUnknownTimesheet   = errors.New("timesheet not in this sheet")
	ErrTerminalStatus     = errors.New("timesheet already reviewed")
	ErrInvalidAction      = errors.New("invalid review action")
	ErrNotConfirming      = errors.New("no bulk action awaiting confirmation")
)

type State int

const (
	Idle State = iota
	ConfirmPending
)

func (s State) String() string {
	if s == ConfirmPending {
		return "confirm_pending"
	}
	return "idle"
}

type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeSuccess
	NoticeFailure
)

// Notice is the transient outcome message shown after an action.
type Notice struct {
	Kind    NoticeKind
	Message string
}

func (n Notice) Failed() bool { return n.Kind == NoticeFailure }

func success(msg string) Notice { return Notice{Kind: NoticeSuccess, Message: msg} }
func failure(msg string) Notice { return Notice{Kind: NoticeFailure, Message: msg} }

// StatusClient is the part of the backend the workflow calls.
type StatusClient interface {
	ManageTimesheetStatus(ctx context.Context, timesheetID string, action domain.ReviewAction) (*backend.StatusResult, error)
	ManageAllTimesheets(ctx context.Context, userID, timesheetID, note string, action domain.BulkAction) (*backend.StatusResult, error)
}

// Journal records completed calls. Failures are logged and otherwise ignored.
type Journal interface {
	Create(ctx context.Context, d *domain.ReviewDecision) error
}

type Option func(*Workflow)

func WithJournal(j Journal) Option {
	return func(w *Workflow) { w.journal = j }
}

func WithObserver(o UseCaseObserver) Option {
	return func(w *Workflow) {
		if o != nil {
			w.observer = o
		}
	}
}

// WithReviewer names the admin recorded on journal entries.
func WithReviewer(name string) Option {
	return func(w *Workflow) { w.reviewer = name }
}

func WithClock(now func() time.Time) Option {
	return func(w *Workflow) { w.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(w *Workflow) {
		if l != nil {
			w.logger = l
		}
	}
}

type Workflow struct {
	client   StatusClient
	journal  Journal
	observer UseCaseObserver
	logger   *slog.Logger
	now      func() time.Time
	reviewer string
	userID   string

	rows    []domain.TimesheetRow
	state   State
	pending domain.BulkAction
	note    string
}

// NewWorkflow starts an Idle workflow over a copy of rows.
func NewWorkflow(client StatusClient, userID string, rows []domain.TimesheetRow, opts ...Option) *Workflow {
	w := &Workflow{
		client:   client,
		observer: NoopUseCaseObserver{},
		logger:   slog.Default(),
		now:      time.Now,
		userID:   userID,
		rows:     cloneRows(rows),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Workflow) UserID() string { return w.userID }

// Rows returns a copy of the current rows.
func (w *Workflow) Rows() []domain.TimesheetRow { return cloneRows(w.rows) }

func (w *Workflow) State() State { return w.state }

// PendingAction is the bulk action awaiting confirmation, if any.
func (w *Workflow) PendingAction() domain.BulkAction { return w.pending }

func (w *Workflow) Note() string { return w.note }

// Reset replaces the rows after a reload and drops any pending confirmation.
func (w *Workflow) Reset(rows []domain.TimesheetRow) {
	w.rows = cloneRows(rows)
	w.Cancel()
}

// QuickResult is the outcome of one row status call.
type QuickResult struct {
	TimesheetID string
	Action      domain.ReviewAction
	OK          bool
	Notice      Notice
}

// CheckQuick validates a quick action against the current rows without
// calling the backend.
func (w *Workflow) CheckQuick(timesheetID string, action domain.ReviewAction) error {
	if timesheetID == "" {
		return ErrMissingTimesheetID
	}
	if !action.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
	i := w.indexOf(timesheetID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownTimesheet, timesheetID)
	}
	if w.rows[i].Status.IsTerminal() {
		return fmt.Errorf("%w: %s is %s", ErrTerminalStatus, timesheetID, w.rows[i].Status)
	}
	return nil
}

// RequestQuick performs the row status call. It does not read or write rows.
func (w *Workflow) RequestQuick(ctx context.Context, timesheetID string, action domain.ReviewAction) QuickResult {
	start := w.now()
	res, err := w.client.ManageTimesheetStatus(ctx, timesheetID, action)

	out := QuickResult{TimesheetID: timesheetID, Action: action}
	switch {
	case err != nil:
		out.Notice = failure(fmt.Sprintf("Failed to %s timesheet: %v", action, err))
	case !res.OK:
		out.Notice = failure(messageOr(res.Message, fmt.Sprintf("Failed to %s timesheet.", action)))
	default:
		out.OK = true
		out.Notice = success(messageOr(res.Message, "Timesheet "+string(action.ResultStatus())))
	}

	w.record(ctx, start, "manage_timesheet_status", err, &domain.ReviewDecision{
		Scope:       domain.ScopeRow,
		TimesheetID: timesheetID,
		Action:      string(action),
		Success:     out.OK,
		Message:     out.Notice.Message,
	})
	return out
}

// ApplyQuick patches the target row when the call succeeded. Rows are
// replaced, never modified in place.
func (w *Workflow) ApplyQuick(res QuickResult) ([]domain.TimesheetRow, Notice) {
	if !res.OK {
		return w.Rows(), res.Notice
	}
	next := make([]domain.TimesheetRow, len(w.rows))
	for i, r := range w.rows {
		if r.TimesheetID == res.TimesheetID {
			next[i] = r.WithStatus(res.Action.ResultStatus())
			continue
		}
		next[i] = r
	}
	w.rows = next
	return w.Rows(), res.Notice
}

// Dispatch runs a quick action end to end. Invalid requests never reach
// the backend.
func (w *Workflow) Dispatch(ctx context.Context, timesheetID string, action domain.ReviewAction) ([]domain.TimesheetRow, Notice) {
	if err := w.CheckQuick(timesheetID, action); err != nil {
		return w.Rows(), failure(err.Error())
	}
	return w.ApplyQuick(w.RequestQuick(ctx, timesheetID, action))
}

// BeginBulk captures action and waits for confirmation.
func (w *Workflow) BeginBulk(action domain.BulkAction) error {
	if !action.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
	if len(w.rows) == 0 {
		return ErrNoTimesheets
	}
	w.state = ConfirmPending
	w.pending = action
	w.note = ""
	return nil
}

// SetNote updates the reviewer note while confirming.
func (w *Workflow) SetNote(note string) {
	if w.state == ConfirmPending {
		w.note = note
	}
}

// Cancel drops a pending bulk action without calling the backend.
func (w *Workflow) Cancel() {
	w.state = Idle
	w.pending = ""
	w.note = ""
}

// BulkRequest is a confirmed bulk action detached from workflow state.
type BulkRequest struct {
	UserID      string
	TimesheetID string
	Note        string
	Action      domain.BulkAction
}

// PrepareBulk snapshots the pending bulk action for RequestBulk. The first
// row's id stands for the whole sheet.
func (w *Workflow) PrepareBulk() (BulkRequest, error) {
	if w.state != ConfirmPending {
		return BulkRequest{}, ErrNotConfirming
	}
	if len(w.rows) == 0 {
		return BulkRequest{}, ErrNoTimesheets
	}
	return BulkRequest{
		UserID:      w.userID,
		TimesheetID: w.rows[0].TimesheetID,
		Note:        w.note,
		Action:      w.pending,
	}, nil
}

// RequestBulk performs the sheet status call. It does not read or write rows.
func (w *Workflow) RequestBulk(ctx context.Context, req BulkRequest) Notice {
	start := w.now()
	res, err := w.client.ManageAllTimesheets(ctx, req.UserID, req.TimesheetID, req.Note, req.Action)

	var n Notice
	switch {
	case err != nil:
		n = failure(fmt.Sprintf("Failed to %s timesheets: %v", lowerVerb(req.Action), err))
	case !res.OK:
		n = failure(messageOr(res.Message, fmt.Sprintf("Failed to %s timesheets.", lowerVerb(req.Action))))
	default:
		n = success(messageOr(res.Message, "Timesheets "+string(req.Action)))
	}

	w.record(ctx, start, "manage_all_timesheets", err, &domain.ReviewDecision{
		Scope:       domain.ScopeSheet,
		TimesheetID: req.TimesheetID,
		Action:      string(req.Action),
		Note:        req.Note,
		Success:     n.Kind == NoticeSuccess,
		Message:     n.Message,
	})
	return n
}

// FinishBulk returns the workflow to Idle whatever the outcome.
func (w *Workflow) FinishBulk(n Notice) Notice {
	w.Cancel()
	return n
}

// Confirm sends the pending bulk action and returns to Idle.
func (w *Workflow) Confirm(ctx context.Context) Notice {
	req, err := w.PrepareBulk()
	if err != nil {
		return w.FinishBulk(failure(err.Error()))
	}
	return w.FinishBulk(w.RequestBulk(ctx, req))
}

func (w *Workflow) record(ctx context.Context, start time.Time, name string, callErr error, d *domain.ReviewDecision) {
	decidedAt := w.now()
	w.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  decidedAt.Sub(start),
		Success:   d.Success,
		Err:       callErr,
		StartedAt: start,
		Fields: map[string]any{
			"user_id":      w.userID,
			"timesheet_id": d.TimesheetID,
			"action":       d.Action,
		},
	})

	if w.journal == nil {
		return
	}
	d.ID = uuid.New().String()
	d.UserID = w.userID
	d.Reviewer = w.reviewer
	d.DecidedAt = decidedAt.UTC()
	if err := w.journal.Create(ctx, d); err != nil {
		w.logger.WarnContext(ctx, "journal write failed", "decision_id", d.ID, "error", err)
	}
}

func (w *Workflow) indexOf(timesheetID string) int {
	for i, r := range w.rows {
		if r.TimesheetID == timesheetID {
			return i
		}
	}
	return -1
}

func cloneRows(rows []domain.TimesheetRow) []domain.TimesheetRow {
	if rows == nil {
		return nil
	}
	out := make([]domain.TimesheetRow, len(rows))
	copy(out, rows)
	return out
}

func messageOr(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}

func lowerVerb(a domain.BulkAction) string {
	if a == domain.BulkApprove {
		return "approve"
	}
	return "reject"
}

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/alexanderramin/timereview/internal/domain"
)

// RowCall records one PUT /review-timesheets/{id}/status request.
type RowCall struct {
	TimesheetID string
	Action      string
	AuthHeader  string
}

// BulkCall records one PUT /review-timesheets/users/{userID}/status request.
type BulkCall struct {
	UserID      string
	TimesheetID string
	Note        string
	ActionType  string
}

// FakeBackend is an in-process review backend for client and TUI tests.
// Successful mutations are applied to the stored sheets so reloads see them.
type FakeBackend struct {
	Server *httptest.Server

	mu               sync.Mutex
	notifications    []domain.Notification
	notificationsErr bool
	profile          domain.AdminProfile
	profileStatus    bool
	profileErr       bool
	pending          []domain.PendingSummary
	sheets           map[string]domain.WeekSheet
	rejectMessage    string
	failMutations    bool
	rowCalls         []RowCall
	bulkCalls        []BulkCall
}

// NewFakeBackend starts the fake and closes it when the test completes.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	f := &FakeBackend{
		profile:       domain.AdminProfile{Name: "Ada Admin", ProfilePicPath: "/avatars/ada.png"},
		profileStatus: true,
		sheets:        make(map[string]domain.WeekSheet),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /dashboard/notifications", f.handleNotifications)
	mux.HandleFunc("GET /profile/admin", f.handleProfile)
	mux.HandleFunc("GET /review-timesheets/pending", f.handlePending)
	mux.HandleFunc("GET /review-timesheets/users/{userID}", f.handleSheet)
	mux.HandleFunc("PUT /review-timesheets/users/{userID}/status", f.handleBulk)
	mux.HandleFunc("PUT /review-timesheets/{id}/status", f.handleRow)

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

// URL is the base URL to hand to the backend client.
func (f *FakeBackend) URL() string { return f.Server.URL }

func (f *FakeBackend) SetNotifications(n ...domain.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications = n
}

// FailNotifications makes the notification endpoint answer 500.
func (f *FakeBackend) FailNotifications() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notificationsErr = true
}

func (f *FakeBackend) SetProfile(p domain.AdminProfile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profile = p
}

// FailProfile makes the identity endpoint answer 500.
func (f *FakeBackend) FailProfile() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profileErr = true
}

// DenyProfile makes the identity endpoint answer {"status": false}.
func (f *FakeBackend) DenyProfile() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profileStatus = false
}

// AddSheet stores a week sheet and lists it as pending.
func (f *FakeBackend) AddSheet(s domain.WeekSheet) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.Timesheets = append([]domain.TimesheetRow(nil), s.Timesheets...)
	f.sheets[s.UserID] = s
	f.pending = append(f.pending, domain.PendingSummary{
		UserID:       s.UserID,
		UserName:     s.UserName,
		Period:       periodOf(s.Days),
		PendingCount: countPending(s.Timesheets),
	})
}

// Sheet returns the stored sheet for userID.
func (f *FakeBackend) Sheet(userID string) domain.WeekSheet {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.sheets[userID]
	s.Timesheets = append([]domain.TimesheetRow(nil), s.Timesheets...)
	return s
}

// RejectMutations makes status endpoints answer {"status": false, "message": msg}.
func (f *FakeBackend) RejectMutations(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejectMessage = msg
}

// FailMutations makes status endpoints answer 500.
func (f *FakeBackend) FailMutations() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failMutations = true
}

func (f *FakeBackend) RowCalls() []RowCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RowCall(nil), f.rowCalls...)
}

func (f *FakeBackend) BulkCalls() []BulkCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]BulkCall(nil), f.bulkCalls...)
}

// ── handlers ─────────────────────────────────────────────────────────────────

type statusBody struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *FakeBackend) handleNotifications(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notificationsErr {
		writeJSON(w, http.StatusInternalServerError, statusBody{Message: "boom"})
		return
	}
	list := f.notifications
	if list == nil {
		list = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": list})
}

func (f *FakeBackend) handleProfile(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.profileErr {
		writeJSON(w, http.StatusInternalServerError, statusBody{Message: "boom"})
		return
	}
	if !f.profileStatus {
		writeJSON(w, http.StatusOK, statusBody{Status: false, Message: "profile unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, statusBody{Status: true, Data: f.profile})
}

func (f *FakeBackend) handlePending(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.pending
	if list == nil {
		list = []domain.PendingSummary{}
	}
	writeJSON(w, http.StatusOK, statusBody{Status: true, Data: list})
}

func (f *FakeBackend) handleSheet(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sheets[r.PathValue("userID")]
	if !ok {
		writeJSON(w, http.StatusNotFound, statusBody{Message: "no pending timesheet"})
		return
	}
	writeJSON(w, http.StatusOK, statusBody{Status: true, Data: s})
}

func (f *FakeBackend) handleRow(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Action string `json:"action"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	defer f.mu.Unlock()
	id := r.PathValue("id")
	f.rowCalls = append(f.rowCalls, RowCall{TimesheetID: id, Action: body.Action, AuthHeader: r.Header.Get("Authorization")})
	if f.failMutations {
		writeJSON(w, http.StatusInternalServerError, statusBody{Message: "boom"})
		return
	}
	if f.rejectMessage != "" {
		writeJSON(w, http.StatusOK, statusBody{Status: false, Message: f.rejectMessage})
		return
	}
	status := domain.ReviewAction(body.Action).ResultStatus()
	for uid, s := range f.sheets {
		for i, row := range s.Timesheets {
			if row.TimesheetID == id {
				s.Timesheets[i] = row.WithStatus(status)
			}
		}
		f.sheets[uid] = s
	}
	writeJSON(w, http.StatusOK, statusBody{Status: true, Message: "Timesheet " + string(status)})
}

func (f *FakeBackend) handleBulk(w http.ResponseWriter, r *http.Request) {
	var body struct {
		TimesheetID string `json:"timesheet_id"`
		Note        string `json:"note"`
		ActionType  string `json:"action_type"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	defer f.mu.Unlock()
	userID := r.PathValue("userID")
	f.bulkCalls = append(f.bulkCalls, BulkCall{UserID: userID, TimesheetID: body.TimesheetID, Note: body.Note, ActionType: body.ActionType})
	if f.failMutations {
		writeJSON(w, http.StatusInternalServerError, statusBody{Message: "boom"})
		return
	}
	if f.rejectMessage != "" {
		writeJSON(w, http.StatusOK, statusBody{Status: false, Message: f.rejectMessage})
		return
	}
	if s, ok := f.sheets[userID]; ok {
		for i, row := range s.Timesheets {
			if !row.Status.IsTerminal() {
				s.Timesheets[i] = row.WithStatus(domain.TimesheetStatus(body.ActionType))
			}
		}
		f.sheets[userID] = s
	}
	writeJSON(w, http.StatusOK, statusBody{Status: true, Message: "Timesheets " + body.ActionType})
}

func periodOf(days []domain.WeekDay) string {
	if len(days) == 0 {
		return ""
	}
	return days[0].FormattedDate + " – " + days[len(days)-1].FormattedDate
}

func countPending(rows []domain.TimesheetRow) int {
	n := 0
	for _, r := range rows {
		if !r.Status.IsTerminal() {
			n++
		}
	}
	return n
}

package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/timereview/internal/backend"
	"github.com/alexanderramin/timereview/internal/domain"
	"github.com/alexanderramin/timereview/internal/repository"
	"github.com/alexanderramin/timereview/internal/teatest"
	"github.com/alexanderramin/timereview/internal/testutil"
)

var testNow = time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)

// newTestApp wires an App against fake and an in-memory journal.
func newTestApp(t *testing.T, fake *testutil.FakeBackend) *App {
	t.Helper()
	cfg := backend.DefaultConfig()
	cfg.BaseURL = fake.URL()
	return &App{
		Backend:   backend.NewClient(cfg, backend.NoopObserver{}),
		Decisions: repository.NewSQLiteDecisionRepo(testutil.NewTestDB(t)),
		Config:    cfg,
		Observer:  backend.NoopObserver{},
		Now:       func() time.Time { return testNow },
	}
}

// seedGrace stores a three-row week for u-1: t-1 pending, t-2 accepted,
// t-3 pending.
func seedGrace(fake *testutil.FakeBackend) {
	hours := []string{"08:00", "07:30", "08:00", "08:00", "06:00", "", ""}
	sheet := testutil.NewTestSheet("u-1",
		testutil.NewTestRow("Dev", hours, testutil.WithTimesheetID("t-1")),
		testutil.NewTestRow("Ops", hours, testutil.WithTimesheetID("t-2"), testutil.WithStatus(domain.StatusAccepted)),
		testutil.NewTestRow("QA", hours, testutil.WithTimesheetID("t-3"), testutil.WithDisabledFrom(5)),
	)
	sheet.UserName = "Grace"
	fake.AddSheet(sheet)
}

// TestDriver wraps teatest.Driver with access to appModel internals
// (view stack, shared state) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	d := teatest.New(t, newAppModel(app), teatest.WithSize(140, 50))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

func (d *TestDriver) LastOutput() string {
	return d.appModel().lastOutput
}

// ReviewView returns the review view on the stack, if any.
func (d *TestDriver) ReviewView() *reviewView {
	for _, v := range d.appModel().viewStack {
		if rv, ok := v.(*reviewView); ok {
			return rv
		}
	}
	return nil
}

// OpenReview selects the first pending user on the dashboard.
func (d *TestDriver) OpenReview() {
	d.T.Helper()
	d.PressEnter()
}

package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/timereview/internal/cli/formatter"
	"github.com/alexanderramin/timereview/internal/dashboard"
	"github.com/alexanderramin/timereview/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── messages ─────────────────────────────────────────────────────────────────

type notificationsLoadedMsg struct {
	result dashboard.Result[[]domain.Notification]
}

type pendingLoadedMsg struct {
	result dashboard.Result[[]domain.PendingSummary]
}

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView is the home screen: the notification panel next to the
// list of users with timesheets awaiting review.
type dashboardView struct {
	state *SharedState
	panel *dashboard.NotificationPanel

	pending        []domain.PendingSummary
	pendingErr     error
	pendingLoading bool
	cursor         int
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{
		state:          state,
		panel:          dashboard.NewNotificationPanel(),
		pendingLoading: true,
	}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "review")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return tea.Batch(v.loadNotifications(), v.loadPending())
}

// ── data loading ─────────────────────────────────────────────────────────────

// loadNotifications mounts the panel's single fetch.
func (v *dashboardView) loadNotifications() tea.Cmd {
	client := v.state.App.Backend
	return func() tea.Msg {
		return notificationsLoadedMsg{result: dashboard.Mount(context.Background(), client.FetchNotifications)}
	}
}

func (v *dashboardView) loadPending() tea.Cmd {
	client := v.state.App.Backend
	return func() tea.Msg {
		return pendingLoadedMsg{result: dashboard.Mount(context.Background(), client.FetchPendingSummaries)}
	}
}

func (v *dashboardView) showHistory() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		if app.Decisions == nil {
			return cmdOutputMsg{output: "\n  " + formatter.Dim("Review history is not available.")}
		}
		list, err := app.Decisions.ListRecent(context.Background(), 50)
		if err != nil {
			return cmdOutputMsg{output: "\n  " + formatter.StyleRed.Render("Error: "+err.Error())}
		}
		return cmdOutputMsg{output: "\n" + formatter.Header("Review history") + "\n\n" + formatter.FormatHistory(list, app.now())}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsLoadedMsg:
		v.panel.Resolve(msg.result)
		return v, nil

	case pendingLoadedMsg:
		v.pendingLoading = false
		v.pendingErr = msg.result.Err
		v.pending = msg.result.Value
		if v.cursor >= len(v.pending) {
			v.cursor = max(0, len(v.pending)-1)
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.pending)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.pending) {
				p := v.pending[v.cursor]
				v.state.SetActiveUser(p.UserID, p.UserName)
				return v, pushView(newReviewView(v.state, p.UserID, p.UserName))
			}
		case "h":
			return v, v.showHistory()
		case "r":
			// A refresh is a fresh mount: the panel starts over at Loading.
			v.panel = dashboard.NewNotificationPanel()
			v.pendingLoading = true
			v.pendingErr = nil
			return v, v.Init()
		}
	}
	return v, nil
}

// ── view rendering ───────────────────────────────────────────────────────────

const dashLeftPaneWidth = 48

func (v *dashboardView) View() string {
	left := formatter.FormatNotifications(v.panel, v.state.App.now())
	right := v.renderPending()

	if v.state.Width < 100 {
		return "\n" + left + "\n" + right
	}

	rightWidth := max(v.state.Width-dashLeftPaneWidth-3, 20)
	leftCol := lipgloss.NewStyle().Width(dashLeftPaneWidth).Render(left)
	divider := lipgloss.NewStyle().Foreground(formatter.ColorDim).Render("│")
	rightCol := lipgloss.NewStyle().Width(rightWidth).Render(right)

	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " "+divider+" ", rightCol)
}

func (v *dashboardView) renderPending() string {
	switch {
	case v.pendingLoading:
		return formatter.StyleHeader.Render("PENDING REVIEWS") + "\n\n  " + formatter.Dim("Loading...")
	case v.pendingErr != nil:
		return formatter.StyleHeader.Render("PENDING REVIEWS") + "\n\n  " +
			formatter.StyleRed.Render("Failed to load pending timesheets.")
	}
	return strings.TrimRight(formatter.FormatPendingList(v.pending, v.cursor), "\n")
}

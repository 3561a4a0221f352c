package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timereview/internal/cli/formatter"
	"github.com/alexanderramin/timereview/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// menuAction represents a single option in the action menu.
type menuAction struct {
	label  string
	key    string // single-key shortcut
	action domain.ReviewAction
}

// actionMenuView offers Approve/Reject for one timesheet row. Picking an
// option pops the menu and hands the action to the review view below.
type actionMenuView struct {
	state   *SharedState
	userID  string
	row     domain.TimesheetRow
	cursor  int
	actions []menuAction
}

func newActionMenuView(state *SharedState, userID string, row domain.TimesheetRow) *actionMenuView {
	return &actionMenuView{
		state:  state,
		userID: userID,
		row:    row,
		actions: []menuAction{
			{label: "Approve", key: "a", action: domain.ActionApprove},
			{label: "Reject", key: "x", action: domain.ActionReject},
		},
	}
}

func (v *actionMenuView) ID() ViewID    { return ViewActionMenu }
func (v *actionMenuView) Title() string { return "Actions" }

func (v *actionMenuView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	}
}

func (v *actionMenuView) Init() tea.Cmd { return nil }

func (v *actionMenuView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.actions)-1 {
			v.cursor++
		}
	case "enter":
		return v, v.choose(v.actions[v.cursor])
	default:
		for i, a := range v.actions {
			if keyMsg.String() == a.key {
				v.cursor = i
				return v, v.choose(a)
			}
		}
	}
	return v, nil
}

func (v *actionMenuView) choose(a menuAction) tea.Cmd {
	return completeWith(quickActionMsg{
		userID:      v.userID,
		timesheetID: v.row.TimesheetID,
		action:      a.action,
	})
}

func (v *actionMenuView) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + formatter.StyleHeader.Render("ACTIONS") + "\n")
	b.WriteString("  " + formatter.Dim("for "))
	if v.state.ActiveUserName != "" {
		b.WriteString(formatter.Dim(v.state.ActiveUserName + ": "))
	}
	b.WriteString(formatter.Bold(v.row.CategoryName))
	if v.row.ProjectName != "" {
		b.WriteString(formatter.Dim(" · " + v.row.ProjectName))
	}
	b.WriteString("  " + formatter.StatusPill(v.row.Status) + "\n\n")

	for i, a := range v.actions {
		cursor := "  "
		style := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			style = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, style.Render(a.label), formatter.Dim("["+a.key+"]")))
	}
	return b.String()
}

package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

type pushViewMsg struct {
	view View
}

// cmdOutputMsg carries text shown transiently in the scrollable output
// area until the next non-scroll key.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg pops the top view (a form or menu) and then runs
// nextCmd against the view underneath.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func outputCmd(s string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

// completeWith pops the top view and delivers msg to the one below.
func completeWith(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return wizardCompleteMsg{nextCmd: func() tea.Msg { return msg }}
	}
}

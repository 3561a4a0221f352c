package dashboard

import (
	"github.com/alexanderramin/timereview/internal/domain"
)

const (
	NotificationsFailedMessage = "Failed to load notifications."
	NoNotificationsMessage     = "No notifications"
)

type PanelState int

const (
	PanelLoading PanelState = iota
	PanelLoaded
	PanelError
)

func (s PanelState) String() string {
	switch s {
	case PanelLoaded:
		return "loaded"
	case PanelError:
		return "error"
	default:
		return "loading"
	}
}

// NotificationPanel tracks the notification list from Loading to either
// Loaded or Error. It never goes back to Loading.
type NotificationPanel struct {
	state PanelState
	items []domain.Notification
	err   error
}

func NewNotificationPanel() *NotificationPanel {
	return &NotificationPanel{state: PanelLoading}
}

// Resolve settles the panel with a fetch result. Later calls are ignored.
func (p *NotificationPanel) Resolve(r Result[[]domain.Notification]) {
	if p.state != PanelLoading {
		return
	}
	if r.Err != nil {
		p.state = PanelError
		p.err = r.Err
		p.items = nil
		return
	}
	p.state = PanelLoaded
	p.items = r.Value
	if p.items == nil {
		p.items = []domain.Notification{}
	}
}

func (p *NotificationPanel) State() PanelState { return p.state }

// Items is empty unless the panel is Loaded.
func (p *NotificationPanel) Items() []domain.Notification {
	if p.state != PanelLoaded {
		return nil
	}
	return p.items
}

// Err is the fetch error behind the Error state.
func (p *NotificationPanel) Err() error { return p.err }

// Message is the inline text shown instead of a list, or "" when the list
// should be rendered.
func (p *NotificationPanel) Message() string {
	switch p.state {
	case PanelLoading:
		return "Loading notifications…"
	case PanelError:
		return NotificationsFailedMessage
	}
	if len(p.items) == 0 {
		return NoNotificationsMessage
	}
	return ""
}

// UnreadCount counts loaded notifications not yet read.
func (p *NotificationPanel) UnreadCount() int {
	n := 0
	for _, item := range p.Items() {
		if !item.IsRead {
			n++
		}
	}
	return n
}

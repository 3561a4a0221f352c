package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timereview/internal/dashboard"
	"github.com/alexanderramin/timereview/internal/domain"
)

// FormatNotifications renders the notification panel in whatever state it
// is in. now anchors the relative timestamps.
func FormatNotifications(p *dashboard.NotificationPanel, now time.Time) string {
	var b strings.Builder

	title := "NOTIFICATIONS"
	if unread := p.UnreadCount(); unread > 0 {
		title += " " + StyleYellow.Render(fmt.Sprintf("(%d unread)", unread))
	}
	b.WriteString(StyleHeader.Render(title) + "\n\n")

	if msg := p.Message(); msg != "" {
		switch p.State() {
		case dashboard.PanelError:
			b.WriteString("  " + StyleRed.Render(msg) + "\n")
		default:
			b.WriteString("  " + Dim(msg) + "\n")
		}
		return b.String()
	}

	for _, n := range p.Items() {
		b.WriteString(formatNotification(n, now))
	}
	return b.String()
}

func formatNotification(n domain.Notification, now time.Time) string {
	dot := StyleYellow.Render("●")
	title := Bold(n.Title)
	if n.IsRead {
		dot = Dim("○")
		title = StyleFg.Render(n.Title)
	}
	line := fmt.Sprintf("  %s %s  %s\n", dot, title, Dim(HumanTimestampFrom(n.CreatedAt, now)))
	if n.Message != "" {
		line += "    " + Dim(Truncate(n.Message, 72)) + "\n"
	}
	return line
}

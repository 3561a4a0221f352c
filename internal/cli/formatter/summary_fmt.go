package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/timereview/internal/dashboard"
	"github.com/alexanderramin/timereview/internal/domain"
	"github.com/alexanderramin/timereview/internal/review"
)

// FormatIdentity renders the header identity, e.g. "Ada Admin (/avatars/ada.png)".
func FormatIdentity(id dashboard.Identity) string {
	return Bold(id.Label()) + " " + Dim("("+id.AvatarPath+")")
}

// FormatSummary is the non-interactive dashboard: identity, notifications
// and pending reviews.
func FormatSummary(id dashboard.Identity, panel *dashboard.NotificationPanel, pending dashboard.Result[[]domain.PendingSummary], now time.Time) string {
	var b strings.Builder
	b.WriteString("\n  " + StylePurple.Render("timereview") + Dim(" · signed in as ") + FormatIdentity(id) + "\n\n")
	b.WriteString(FormatNotifications(panel, now))
	b.WriteString("\n" + StyleHeader.Render("PENDING REVIEWS") + "\n\n")
	if !pending.OK() {
		b.WriteString("  " + StyleRed.Render("Failed to load pending timesheets.") + "\n")
		return b.String()
	}
	b.WriteString(FormatPendingTable(pending.Value))
	return b.String()
}

// FormatNotice renders a workflow outcome as a one-line toast.
func FormatNotice(n review.Notice) string {
	switch n.Kind {
	case review.NoticeSuccess:
		return StyleGreen.Render("✔ " + n.Message)
	case review.NoticeFailure:
		return StyleRed.Render("✖ " + n.Message)
	default:
		return Dim(n.Message)
	}
}

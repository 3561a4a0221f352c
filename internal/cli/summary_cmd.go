package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/timereview/internal/cli/formatter"
	"github.com/alexanderramin/timereview/internal/dashboard"
	"github.com/alexanderramin/timereview/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print identity, notifications and pending reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				stop := formatter.StartSpinner(cmd.ErrOrStderr(), "Loading dashboard...")
				defer stop()
			}
			return runSummary(cmd.Context(), app, cmd.OutOrStdout())
		},
	}
}

// runSummary mounts the three dashboard fetches in parallel. Each resolves
// its own fallback, so one failing source never hides the others.
func runSummary(ctx context.Context, app *App, w io.Writer) error {
	var (
		notifications dashboard.Result[[]domain.Notification]
		pending       dashboard.Result[[]domain.PendingSummary]
		profile       dashboard.Result[*domain.AdminProfile]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		notifications = dashboard.Mount(gctx, app.Backend.FetchNotifications)
		return nil
	})
	g.Go(func() error {
		pending = dashboard.Mount(gctx, app.Backend.FetchPendingSummaries)
		return nil
	})
	g.Go(func() error {
		profile = dashboard.Mount(gctx, app.Backend.GetAdminDetails)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	panel := dashboard.NewNotificationPanel()
	panel.Resolve(notifications)
	fmt.Fprint(w, formatter.FormatSummary(dashboard.ResolveIdentity(profile), panel, pending, app.now()))
	return nil
}

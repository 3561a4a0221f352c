package cli

import (
	"fmt"

	"github.com/alexanderramin/timereview/internal/cli/formatter"
	"github.com/alexanderramin/timereview/internal/dashboard"
	"github.com/spf13/cobra"
)

func newNotificationsCmd(app *App) *cobra.Command {
	var unreadOnly bool

	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notif"},
		Short:   "List dashboard notifications",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := dashboard.Mount(cmd.Context(), app.Backend.FetchNotifications)
			if r.OK() && unreadOnly {
				unread := r.Value[:0:0]
				for _, n := range r.Value {
					if !n.IsRead {
						unread = append(unread, n)
					}
				}
				r.Value = unread
			}

			panel := dashboard.NewNotificationPanel()
			panel.Resolve(r)
			fmt.Fprint(cmd.OutOrStdout(), "\n"+formatter.FormatNotifications(panel, app.now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&unreadOnly, "unread", false, "Only show unread notifications")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/alexanderramin/timereview/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPendingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List users with timesheets awaiting review",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Backend.FetchPendingSummaries(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading pending timesheets: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), "\n"+formatter.Header("Pending reviews")+"\n\n"+formatter.FormatPendingTable(list))
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/alexanderramin/timereview/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show USER_ID",
		Short: "Show a user's week as a review grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				stop := formatter.StartSpinner(cmd.ErrOrStderr(), "Loading timesheets...")
				defer stop()
			}
			sheet, err := app.Backend.FetchWeekSheet(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("loading timesheets for %s: %w", args[0], err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeekSheet(sheet))
			return nil
		},
	}
}

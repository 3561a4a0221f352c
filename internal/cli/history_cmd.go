package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/timereview/internal/cli/formatter"
	"github.com/alexanderramin/timereview/internal/domain"
	"github.com/spf13/cobra"
)

var errNoJournal = errors.New("review history is not available: no local journal configured")

func newHistoryCmd(app *App) *cobra.Command {
	var limit int
	var userID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show review decisions recorded on this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Decisions == nil {
				return errNoJournal
			}
			var (
				list []*domain.ReviewDecision
				err  error
			)
			if userID != "" {
				list, err = app.Decisions.ListByUser(cmd.Context(), userID, limit)
			} else {
				list, err = app.Decisions.ListRecent(cmd.Context(), limit)
			}
			if err != nil {
				return fmt.Errorf("reading review history: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), "\n"+formatter.Header("Review history")+"\n\n"+formatter.FormatHistory(list, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of decisions (0 = all)")
	cmd.Flags().StringVar(&userID, "user", "", "Only decisions for this user ID")
	return cmd
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/timereview/internal/cli/formatter"
	"github.com/alexanderramin/timereview/internal/dashboard"
	"github.com/alexanderramin/timereview/internal/domain"
	"github.com/alexanderramin/timereview/internal/review"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	errActionFailed         = errors.New("review action failed")
	errConfirmationRequired = errors.New("bulk actions need --yes when not running in a terminal")
)

// newDecideCmd builds "approve" or "reject". With a TIMESHEET_ID it acts on
// that row; without one it acts on the user's whole sheet after
// confirmation.
func newDecideCmd(app *App, action domain.ReviewAction) *cobra.Command {
	var note string
	var yes bool

	verb := "Approve"
	if action == domain.ActionReject {
		verb = "Reject"
	}

	cmd := &cobra.Command{
		Use:   string(action) + " USER_ID [TIMESHEET_ID]",
		Short: verb + " one timesheet row, or every row of a user's week",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sheet, identity, err := loadSheetAndIdentity(ctx, app, args[0])
			if err != nil {
				return err
			}
			wf := app.newWorkflow(args[0], sheet.Timesheets, identity.Name)

			var n review.Notice
			if len(args) == 2 {
				_, n = wf.Dispatch(ctx, args[1], action)
			} else {
				n, err = runBulkDecision(ctx, app, wf, bulkActionFor(action), sheet, note, yes, cmd.OutOrStdout())
				if err != nil {
					return err
				}
			}
			return reportNotice(cmd.OutOrStdout(), n)
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Reviewer note sent with a whole-sheet decision")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt for whole-sheet decisions")
	return cmd
}

func bulkActionFor(a domain.ReviewAction) domain.BulkAction {
	if a == domain.ActionApprove {
		return domain.BulkApprove
	}
	return domain.BulkReject
}

func runBulkDecision(ctx context.Context, app *App, wf *review.Workflow, action domain.BulkAction, sheet *domain.WeekSheet, note string, yes bool, w io.Writer) (review.Notice, error) {
	if err := wf.BeginBulk(action); err != nil {
		return review.Notice{}, fmt.Errorf("%s: %w", sheet.UserID, err)
	}

	if !yes {
		if !app.interactive() {
			wf.Cancel()
			return review.Notice{}, errConfirmationRequired
		}
		name := sheet.UserName
		if name == "" {
			name = sheet.UserID
		}
		confirmed := false
		if err := wizardBulkConfirm(action, name, &confirmed, &note).Run(); err != nil {
			wf.Cancel()
			return review.Notice{}, fmt.Errorf("confirmation: %w", err)
		}
		if !confirmed {
			wf.Cancel()
			fmt.Fprintln(w, formatter.Dim("Cancelled."))
			return review.Notice{}, nil
		}
	}

	wf.SetNote(note)
	return wf.Confirm(ctx), nil
}

// loadSheetAndIdentity fetches the sheet and the reviewer identity in
// parallel. Only a sheet failure is an error.
func loadSheetAndIdentity(ctx context.Context, app *App, userID string) (*domain.WeekSheet, dashboard.Identity, error) {
	var sheet *domain.WeekSheet
	identity := dashboard.FallbackIdentity()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := app.Backend.FetchWeekSheet(gctx, userID)
		if err != nil {
			return fmt.Errorf("loading timesheets for %s: %w", userID, err)
		}
		sheet = s
		return nil
	})
	g.Go(func() error {
		identity = dashboard.ResolveIdentity(dashboard.Mount(gctx, app.Backend.GetAdminDetails))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, identity, err
	}
	return sheet, identity, nil
}

func reportNotice(w io.Writer, n review.Notice) error {
	switch n.Kind {
	case review.NoticeFailure:
		return fmt.Errorf("%w: %s", errActionFailed, n.Message)
	case review.NoticeSuccess:
		fmt.Fprintln(w, formatter.FormatNotice(n))
	}
	return nil
}

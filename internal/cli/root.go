package cli

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/timereview/internal/backend"
	"github.com/alexanderramin/timereview/internal/domain"
	"github.com/alexanderramin/timereview/internal/repository"
	"github.com/alexanderramin/timereview/internal/review"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the collaborators shared by the CLI commands and the TUI.
type App struct {
	Backend   backend.Client
	Decisions repository.DecisionRepo

	// Config and Observer rebuild Backend when connection flags are given.
	Config   backend.Config
	Observer backend.Observer

	ReviewObserver review.UseCaseObserver
	Logger         *slog.Logger

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// Now is overridable for deterministic output.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// newWorkflow builds a review workflow wired to the journal and observers.
func (a *App) newWorkflow(userID string, rows []domain.TimesheetRow, reviewer string) *review.Workflow {
	opts := []review.Option{
		review.WithReviewer(reviewer),
		review.WithObserver(a.ReviewObserver),
		review.WithLogger(a.Logger),
	}
	if a.Decisions != nil {
		opts = append(opts, review.WithJournal(a.Decisions))
	}
	if a.Now != nil {
		opts = append(opts, review.WithClock(a.Now))
	}
	return review.NewWorkflow(a.Backend, userID, rows, opts...)
}

// NewRootCmd creates the top-level "timereview" command. Without a
// subcommand it opens the TUI on a terminal and prints the summary
// otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "timereview",
		Short:         "Review pending timesheets and notifications",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyConnectionFlags(cmd.Flags(), app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(app)
			}
			return runSummary(cmd.Context(), app, cmd.OutOrStdout())
		},
	}

	fs := root.PersistentFlags()
	fs.String("api-url", "", "Backend base URL (overrides TIMEREVIEW_API_URL)")
	fs.String("token", "", "Bearer token (overrides TIMEREVIEW_API_TOKEN)")

	root.AddCommand(
		newSummaryCmd(app),
		newNotificationsCmd(app),
		newPendingCmd(app),
		newShowCmd(app),
		newDecideCmd(app, domain.ActionApprove),
		newDecideCmd(app, domain.ActionReject),
		newHistoryCmd(app),
	)
	return root
}

// applyConnectionFlags rebuilds the backend client when --api-url or
// --token were passed.
func applyConnectionFlags(fs *pflag.FlagSet, app *App) error {
	changed := false
	cfg := app.Config
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "api-url":
			cfg.BaseURL = backend.NormalizeBaseURL(f.Value.String())
			changed = true
		case "token":
			cfg.Token = f.Value.String()
			changed = true
		}
	})
	if !changed {
		return nil
	}
	app.Config = cfg
	app.Backend = backend.NewClient(cfg, app.Observer)
	return nil
}

func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

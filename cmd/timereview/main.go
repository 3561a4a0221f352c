package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/timereview/internal/backend"
	"github.com/alexanderramin/timereview/internal/cli"
	"github.com/alexanderramin/timereview/internal/db"
	"github.com/alexanderramin/timereview/internal/repository"
	"github.com/alexanderramin/timereview/internal/review"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A local .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	cfg := backend.LoadConfig()
	var observer backend.Observer = backend.NoopObserver{}
	var useCaseObserver review.UseCaseObserver = review.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = backend.NewLogObserver(os.Stderr)
		useCaseObserver = review.NewLogUseCaseObserver(os.Stderr)
	}

	// Warnings go to stderr except under the TUI, where they would tear
	// the alt screen.
	var logOut io.Writer = os.Stderr
	if interactive && !cfg.LogCalls {
		logOut = io.Discard
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelWarn}))

	dbPath, err := journalPath()
	if err != nil {
		return err
	}
	decisions, closeJournal := openJournal(dbPath, logger)
	defer closeJournal()

	app := &cli.App{
		Backend:        backend.NewClient(cfg, observer),
		Decisions:      decisions,
		Config:         cfg,
		Observer:       observer,
		ReviewObserver: useCaseObserver,
		Logger:         logger,
		IsInteractive:  func() bool { return interactive },
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// journalPath is TIMEREVIEW_DB or ~/.timereview/timereview.db.
func journalPath() (string, error) {
	if p := os.Getenv("TIMEREVIEW_DB"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".timereview", "timereview.db"), nil
}

// openJournal opens the decision journal. The journal is optional: when it
// cannot be opened the failure is logged and a nil repo is returned, and
// reviewing works without history.
func openJournal(path string, logger *slog.Logger) (repository.DecisionRepo, func()) {
	database, err := db.OpenDB(path)
	if err != nil {
		logger.Warn("review journal unavailable", "path", path, "error", err)
		return nil, func() {}
	}
	return repository.NewSQLiteDecisionRepo(database), func() { database.Close() }
}

package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/timereview/internal/domain"
	"github.com/alexanderramin/timereview/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenJournal_UnwritableDirContinues(t *testing.T) {
	// A regular file where the journal directory should be makes
	// MkdirAll fail, like a read-only home.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	repo, closeJournal := openJournal(filepath.Join(blocker, "sub", "timereview.db"), logger)
	defer closeJournal()

	assert.Nil(t, repo)
	assert.Contains(t, logs.String(), "review journal unavailable")
}

func TestOpenJournal_Writable(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	repo, closeJournal := openJournal(filepath.Join(t.TempDir(), "j", "timereview.db"), logger)
	defer closeJournal()

	require.NotNil(t, repo)
	assert.Empty(t, logs.String())
	require.NoError(t, repo.Create(context.Background(), testutil.NewTestDecision("u-1", "t-1", domain.ScopeRow)))
}

func TestJournalPath_Env(t *testing.T) {
	t.Setenv("TIMEREVIEW_DB", "/tmp/custom.db")

	p, err := journalPath()

	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", p)
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/timereview/internal/db"
	"github.com/alexanderramin/timereview/internal/domain"
)

const decisionColumns = `id, scope, user_id, reviewer, timesheet_id, action, note, success, message, decided_at`

// SQLiteDecisionRepo implements DecisionRepo using a SQLite database.
type SQLiteDecisionRepo struct {
	db db.DBTX
}

// NewSQLiteDecisionRepo creates a new SQLiteDecisionRepo.
func NewSQLiteDecisionRepo(conn db.DBTX) *SQLiteDecisionRepo {
	return &SQLiteDecisionRepo{db: conn}
}

func (r *SQLiteDecisionRepo) Create(ctx context.Context, d *domain.ReviewDecision) error {
	query := `INSERT INTO review_decisions (` + decisionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		string(d.Scope),
		d.UserID,
		d.Reviewer,
		d.TimesheetID,
		d.Action,
		d.Note,
		boolToInt(d.Success),
		d.Message,
		d.DecidedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting review decision: %w", err)
	}
	return nil
}

func (r *SQLiteDecisionRepo) GetByID(ctx context.Context, id string) (*domain.ReviewDecision, error) {
	query := `SELECT ` + decisionColumns + ` FROM review_decisions WHERE id = ?`
	d, err := scanDecision(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("review decision: %w", ErrNotFound)
	}
	return d, err
}

// ListRecent returns the newest decisions first. limit <= 0 means no limit.
func (r *SQLiteDecisionRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ReviewDecision, error) {
	query := `SELECT ` + decisionColumns + ` FROM review_decisions
		ORDER BY decided_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing recent decisions: %w", err)
	}
	defer rows.Close()
	return scanDecisions(rows)
}

func (r *SQLiteDecisionRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.ReviewDecision, error) {
	query := `SELECT ` + decisionColumns + ` FROM review_decisions
		WHERE user_id = ?
		ORDER BY decided_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, userID, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing decisions by user: %w", err)
	}
	defer rows.Close()
	return scanDecisions(rows)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDecision(row scanner) (*domain.ReviewDecision, error) {
	var d domain.ReviewDecision
	var scope, decidedAt string
	var success int

	err := row.Scan(&d.ID, &scope, &d.UserID, &d.Reviewer, &d.TimesheetID,
		&d.Action, &d.Note, &success, &d.Message, &decidedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning review decision: %w", err)
	}

	d.Scope = domain.DecisionScope(scope)
	d.Success = success != 0
	d.DecidedAt, err = time.Parse(time.RFC3339, decidedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing decided_at: %w", err)
	}
	return &d, nil
}

func scanDecisions(rows *sql.Rows) ([]*domain.ReviewDecision, error) {
	var out []*domain.ReviewDecision
	for rows.Next() {
		d, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating decisions: %w", err)
	}
	return out, nil
}

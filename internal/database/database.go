// Package database handles PostgreSQL connections and queries.
//
// Go Pattern: We use the `sqlx` package which extends Go's standard `database/sql`
// with convenient features like scanning rows into structs. Unlike an ORM,
// you write raw SQL — which gives you full control.
//
// Go's database/sql has built-in connection pooling — you create one *sql.DB
// (or *sqlx.DB) at startup and share it across your entire application.
// It's safe for concurrent use by multiple goroutines.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver — the underscore import runs its init()

	"github.com/docuwise/pdf-insights-api/internal/models"
)

// DB wraps the sqlx database connection with our application-specific methods.
// Go Pattern: Embedding (*sqlx.DB) gives us all of sqlx's methods automatically,
// plus we can add our own. This is Go's version of inheritance — composition.
type DB struct {
	*sqlx.DB
}

// New creates a new database connection with connection pooling configured.
func New(databaseURL string) (*DB, error) {
	// sqlx.Connect both opens the connection and pings the database
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Configure connection pool for serverless PostgreSQL (Neon).
	// Serverless PG closes idle connections aggressively, so we keep few
	// connections and recycle them frequently.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(2 * time.Minute)
	db.SetConnMaxIdleTime(30 * time.Second)

	return &DB{db}, nil
}

// HealthCheck verifies the database connection is alive.
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.PingContext(ctx)
}

// --- Saved Analysis Operations ---
//
// Every read and delete takes the owning user's ID as a mandatory filter.
// The user_id column is the sole authorization boundary for this table —
// queries never trust a client-supplied row ID on its own.

// CreatePDFSummary inserts a new saved analysis row.
// Returns the created row with its generated ID and timestamp.
func (db *DB) CreatePDFSummary(ctx context.Context, s *models.PDFSummary) error {
	if s.Status == "" {
		s.Status = models.StatusCompleted
	}

	query := `
		INSERT INTO pdf_summaries (user_id, original_file_url, summary_text, title, file_name, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	// QueryRowContext executes a query that returns a single row.
	// Scan() reads the returned columns into our struct fields.
	err := db.QueryRowContext(ctx, query,
		s.UserID, s.OriginalFileURL, s.SummaryText, s.Title, s.FileName, s.Status,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// GetPDFSummaryForUser retrieves a single saved analysis, scoped to its owner.
// A row that exists but belongs to another user is indistinguishable from
// one that doesn't exist.
func (db *DB) GetPDFSummaryForUser(ctx context.Context, id, userID string) (*models.PDFSummary, error) {
	var s models.PDFSummary
	err := db.GetContext(ctx, &s,
		`SELECT * FROM pdf_summaries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return nil, fmt.Errorf("analysis not found: %w", err)
	}
	return &s, nil
}

// ListPDFSummariesForUser returns the user's saved analyses, newest first.
// The summary text body is omitted — listings only need metadata.
func (db *DB) ListPDFSummariesForUser(ctx context.Context, userID string) ([]models.PDFSummaryListItem, error) {
	var items []models.PDFSummaryListItem
	err := db.SelectContext(ctx, &items,
		`SELECT id, title, file_name, status, created_at
		 FROM pdf_summaries
		 WHERE user_id = $1
		 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return items, nil
}

// DeletePDFSummaryForUser removes a saved analysis only if the row belongs
// to the given user. Returns whether a row was actually removed — false
// covers both "no such row" and "owned by someone else", so cross-user
// deletion is silently denied rather than surfaced as an error.
func (db *DB) DeletePDFSummaryForUser(ctx context.Context, id, userID string) (bool, error) {
	result, err := db.ExecContext(ctx,
		`DELETE FROM pdf_summaries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	return rows > 0, nil
}

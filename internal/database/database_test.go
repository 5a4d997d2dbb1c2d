// database_test.go — Query tests against a sqlmock connection.
//
// Go Pattern: go-sqlmock stands in for the real driver, so we can assert
// the exact SQL, arguments, and row handling without a running Postgres.
package database

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/docuwise/pdf-insights-api/internal/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New failed: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })
	return &DB{sqlx.NewDb(mockDB, "sqlmock")}, mock
}

const (
	summaryID = "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	ownerID   = "11111111-2222-3333-4444-555555555555"
	otherID   = "99999999-8888-7777-6666-555555555555"
)

func TestCreatePDFSummary(t *testing.T) {
	db, mock := newMockDB(t)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO pdf_summaries (user_id, original_file_url, summary_text, title, file_name, status)`)).
		WithArgs(ownerID, "https://uploads.example.com/report.pdf", "extracted text", "Report", "report.pdf", string(models.StatusCompleted)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(summaryID, now))

	s := &models.PDFSummary{
		UserID:          ownerID,
		OriginalFileURL: "https://uploads.example.com/report.pdf",
		SummaryText:     "extracted text",
		Title:           "Report",
		FileName:        "report.pdf",
	}
	if err := db.CreatePDFSummary(context.Background(), s); err != nil {
		t.Fatalf("CreatePDFSummary failed: %v", err)
	}

	if s.ID != summaryID {
		t.Errorf("ID = %q, want %q", s.ID, summaryID)
	}
	if s.Status != models.StatusCompleted {
		t.Errorf("Status = %q, want completed default", s.Status)
	}
	if !s.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt = %v, want %v", s.CreatedAt, now)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestGetPDFSummaryForUser_ScopedToOwner(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT * FROM pdf_summaries WHERE id = $1 AND user_id = $2`)).
		WithArgs(summaryID, otherID).
		WillReturnError(sql.ErrNoRows)

	// Same row ID, wrong user — must come back as not found.
	if _, err := db.GetPDFSummaryForUser(context.Background(), summaryID, otherID); err == nil {
		t.Error("expected an error for a row owned by another user")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestListPDFSummariesForUser(t *testing.T) {
	db, mock := newMockDB(t)

	newer := time.Now()
	older := newer.Add(-time.Hour)
	rows := sqlmock.NewRows([]string{"id", "title", "file_name", "status", "created_at"}).
		AddRow("id-newer", "Newer Doc", "newer.pdf", "completed", newer).
		AddRow("id-older", "Older Doc", "older.pdf", "completed", older)

	mock.ExpectQuery(`SELECT id, title, file_name, status, created_at\s+FROM pdf_summaries\s+WHERE user_id = \$1\s+ORDER BY created_at DESC`).
		WithArgs(ownerID).
		WillReturnRows(rows)

	items, err := db.ListPDFSummariesForUser(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("ListPDFSummariesForUser failed: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ID != "id-newer" {
		t.Errorf("first item = %q, want the newest row first", items[0].ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDeletePDFSummaryForUser(t *testing.T) {
	t.Run("owned row is removed", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(regexp.QuoteMeta(
			`DELETE FROM pdf_summaries WHERE id = $1 AND user_id = $2`)).
			WithArgs(summaryID, ownerID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		removed, err := db.DeletePDFSummaryForUser(context.Background(), summaryID, ownerID)
		if err != nil {
			t.Fatalf("DeletePDFSummaryForUser failed: %v", err)
		}
		if !removed {
			t.Error("removed = false, want true for owned row")
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("someone else's row is silently denied", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(regexp.QuoteMeta(
			`DELETE FROM pdf_summaries WHERE id = $1 AND user_id = $2`)).
			WithArgs(summaryID, otherID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		removed, err := db.DeletePDFSummaryForUser(context.Background(), summaryID, otherID)
		if err != nil {
			t.Fatalf("DeletePDFSummaryForUser failed: %v", err)
		}
		if removed {
			t.Error("removed = true, want false when the row belongs to another user")
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})
}

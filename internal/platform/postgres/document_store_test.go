package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/quizfolio/quizfolio-api/internal/domain"
	"github.com/quizfolio/quizfolio-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocumentStore(t *testing.T) (*PostgresDocumentStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewPostgresDocumentStore(db, nil), mock
}

func validDocument() *domain.PDFDocument {
	now := time.Now().UTC()
	return &domain.PDFDocument{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		CreatedAt:       now,
		ModifiedAt:      now,
		GeneratedP:      0.8,
		RecommendedP:    0.6,
		RiskRecommended: true,
		Content:         []byte("%PDF-1.4"),
	}
}

func TestPostgresDocumentStore_Create(t *testing.T) {
	t.Run("inserts the full record", func(t *testing.T) {
		s, mock := newDocumentStore(t)
		doc := validDocument()

		mock.ExpectExec("INSERT INTO documents").
			WithArgs(doc.ID, doc.UserID, doc.CreatedAt, doc.ModifiedAt,
				doc.GeneratedP, doc.RecommendedP, doc.RiskRecommended, doc.Content).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := s.Create(context.Background(), doc)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid document never reaches the database", func(t *testing.T) {
		s, mock := newDocumentStore(t)
		doc := validDocument()
		doc.UserID = uuid.Nil

		err := s.Create(context.Background(), doc)

		assert.ErrorIs(t, err, domain.ErrEmptyDocumentUserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing owner maps to invalid entity", func(t *testing.T) {
		s, mock := newDocumentStore(t)
		doc := validDocument()

		mock.ExpectExec("INSERT INTO documents").
			WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolationCode})

		err := s.Create(context.Background(), doc)

		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestPostgresDocumentStore_Update(t *testing.T) {
	t.Run("updates everything except the creation time", func(t *testing.T) {
		s, mock := newDocumentStore(t)
		doc := validDocument()

		mock.ExpectExec("UPDATE documents").
			WithArgs(doc.ModifiedAt, doc.GeneratedP, doc.RecommendedP,
				doc.RiskRecommended, doc.Content, doc.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := s.Update(context.Background(), doc)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent row maps to not found", func(t *testing.T) {
		s, mock := newDocumentStore(t)
		doc := validDocument()

		mock.ExpectExec("UPDATE documents").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.Update(context.Background(), doc)

		assert.ErrorIs(t, err, store.ErrDocumentNotFound)
	})
}

func TestPostgresDocumentStore_Delete(t *testing.T) {
	pdfID := uuid.New()

	t.Run("removes the row", func(t *testing.T) {
		s, mock := newDocumentStore(t)

		mock.ExpectExec("DELETE FROM documents").
			WithArgs(pdfID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := s.Delete(context.Background(), pdfID)

		require.NoError(t, err)
	})

	t.Run("absent row maps to not found", func(t *testing.T) {
		s, mock := newDocumentStore(t)

		mock.ExpectExec("DELETE FROM documents").
			WithArgs(pdfID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.Delete(context.Background(), pdfID)

		assert.ErrorIs(t, err, store.ErrDocumentNotFound)
	})
}

func TestPostgresDocumentStore_DeleteForUser(t *testing.T) {
	userID := uuid.New()

	t.Run("removing zero rows is not an error", func(t *testing.T) {
		s, mock := newDocumentStore(t)

		mock.ExpectExec("DELETE FROM documents").
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := s.DeleteForUser(context.Background(), userID)

		assert.NoError(t, err)
	})
}

func TestPostgresDocumentStore_ListForUser(t *testing.T) {
	userID := uuid.New()

	t.Run("scans rows in creation order", func(t *testing.T) {
		s, mock := newDocumentStore(t)

		older := validDocument()
		older.UserID = userID
		newer := validDocument()
		newer.UserID = userID
		newer.CreatedAt = older.CreatedAt.Add(time.Hour)

		rows := sqlmock.NewRows([]string{
			"id", "user_id", "created_at", "modified_at",
			"generated_p", "recommended_p", "risk_recommended", "content",
		}).
			AddRow(older.ID, older.UserID, older.CreatedAt, older.ModifiedAt,
				older.GeneratedP, older.RecommendedP, older.RiskRecommended, older.Content).
			AddRow(newer.ID, newer.UserID, newer.CreatedAt, newer.ModifiedAt,
				newer.GeneratedP, newer.RecommendedP, newer.RiskRecommended, newer.Content)

		mock.ExpectQuery("FROM documents").
			WithArgs(userID).
			WillReturnRows(rows)

		docs, err := s.ListForUser(context.Background(), userID)

		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, older.ID, docs[0].ID)
		assert.Equal(t, newer.ID, docs[1].ID)
		assert.Equal(t, older.Content, docs[0].Content)
	})

	t.Run("no documents yields an empty slice", func(t *testing.T) {
		s, mock := newDocumentStore(t)

		rows := sqlmock.NewRows([]string{
			"id", "user_id", "created_at", "modified_at",
			"generated_p", "recommended_p", "risk_recommended", "content",
		})
		mock.ExpectQuery("FROM documents").
			WithArgs(userID).
			WillReturnRows(rows)

		docs, err := s.ListForUser(context.Background(), userID)

		require.NoError(t, err)
		assert.NotNil(t, docs)
		assert.Empty(t, docs)
	})
}

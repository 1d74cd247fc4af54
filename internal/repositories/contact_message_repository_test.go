package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetmagnets/platform/internal/models"
)

func TestContactMessageRepository_ListNewSince(t *testing.T) {
	columns := []string{"id", "name", "email", "phone", "subject", "message", "status", "priority", "created_at", "updated_at"}
	since := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	later := since.Add(2 * time.Hour)

	tests := []struct {
		name        string
		cursor      models.DigestCursor
		rows        func() *sqlmock.Rows
		expectedIDs []string
	}{
		{
			name:   "no cursor",
			cursor: models.DigestCursor{},
			rows: func() *sqlmock.Rows {
				return sqlmock.NewRows(columns).
					AddRow("m-1", "Jane", "jane@example.com", "", "Pricing", "Hello", "new", "high", later, later)
			},
			expectedIDs: []string{"m-1"},
		},
		{
			name:   "skips messages reported in the cursor second",
			cursor: models.DigestCursor{CreatedAt: since, IDs: []string{"m-1"}},
			rows: func() *sqlmock.Rows {
				return sqlmock.NewRows(columns).
					AddRow("m-1", "Jane", "jane@example.com", "", "Pricing", "Hello", "new", "high", since, since).
					AddRow("m-0", "Late", "late@example.com", "", "Same second", "Hi", "new", "medium", since, since).
					AddRow("m-2", "John", "john@example.com", "", "Training", "Hi", "new", "low", later, later)
			},
			expectedIDs: []string{"m-0", "m-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewContactMessageRepository(db)
			mock.ExpectQuery(regexp.QuoteMeta("FROM contact_messages WHERE status = ? AND created_at >= ? ORDER BY created_at ASC, id ASC")).
				WithArgs("new", tt.cursor.CreatedAt).
				WillReturnRows(tt.rows())

			messages, err := repo.ListNewSince(context.Background(), tt.cursor)
			require.NoError(t, err)

			ids := make([]string, 0, len(messages))
			for _, m := range messages {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, models.MessageStatusNew, messages[0].Status)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

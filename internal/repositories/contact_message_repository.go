package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/assetmagnets/platform/internal/models"
)

// contactMessageRepository implements contact message persistence
type contactMessageRepository struct {
	*tableRepository[*models.ContactMessage]
}

// NewContactMessageRepository creates a new contact message repository
func NewContactMessageRepository(db *sql.DB) *contactMessageRepository {
	return &contactMessageRepository{
		tableRepository: NewTableRepository(db, ContactMessageSchema),
	}
}

// ListNewSince retrieves unhandled messages not yet reported by cursor, oldest first
func (r *contactMessageRepository) ListNewSince(ctx context.Context, cursor models.DigestCursor) ([]*models.ContactMessage, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM contact_messages WHERE status = ? AND created_at >= ? ORDER BY created_at ASC, id ASC",
		r.selectColumns(),
	)
	messages, err := r.query(ctx, query, models.MessageStatusNew, cursor.CreatedAt)
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(messages, cursor.Reported), nil
}

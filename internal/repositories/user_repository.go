package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/assetmagnets/platform/internal/models"
)

// userRepository implements user persistence on top of the users table
type userRepository struct {
	*tableRepository[*models.User]
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{
		tableRepository: NewTableRepository(db, UserSchema),
	}
}

// GetByEmail retrieves a user by normalized email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = ? LIMIT 1", r.selectColumns())
	return r.queryOne(ctx, query, email)
}

// ExistsByEmail checks if a user exists with the given email
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

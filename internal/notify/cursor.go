package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/assetmagnets/platform/internal/models"
)

// DigestCursorKey holds the position of the newest messages already sent in a digest
const DigestCursorKey = "assetmagnets:digest:cursor"

// DigestCursor remembers how far the digest has reported
type DigestCursor interface {
	Load(ctx context.Context) (models.DigestCursor, error)
	Save(ctx context.Context, cursor models.DigestCursor) error
}

// RedisCursor stores the digest cursor in Redis as JSON
type RedisCursor struct {
	rdb *redis.Client
	key string
}

// NewRedisCursor creates a new Redis digest cursor
func NewRedisCursor(rdb *redis.Client) *RedisCursor {
	return &RedisCursor{rdb: rdb, key: DigestCursorKey}
}

// Load returns the stored cursor, or the zero cursor when none was saved
func (c *RedisCursor) Load(ctx context.Context) (models.DigestCursor, error) {
	var cursor models.DigestCursor
	val, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return cursor, nil
	}
	if err != nil {
		return cursor, fmt.Errorf("failed to load digest cursor: %w", err)
	}
	if err := json.Unmarshal(val, &cursor); err != nil {
		return models.DigestCursor{}, fmt.Errorf("invalid digest cursor %q: %w", val, err)
	}
	return cursor, nil
}

// Save stores cursor as the new position
func (c *RedisCursor) Save(ctx context.Context, cursor models.DigestCursor) error {
	cursor.CreatedAt = cursor.CreatedAt.UTC()
	val, err := json.Marshal(cursor)
	if err != nil {
		return fmt.Errorf("failed to encode digest cursor: %w", err)
	}
	if err := c.rdb.Set(ctx, c.key, val, 0).Err(); err != nil {
		return fmt.Errorf("failed to save digest cursor: %w", err)
	}
	return nil
}

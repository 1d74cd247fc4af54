package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/assetmagnets/platform/internal/models"
)

// Schema describes how an entity maps onto its table
//
// Every table has id, created_at and updated_at columns besides Columns.
type Schema[T models.Record] struct {
	Table   string
	Columns []string
	OrderBy string
	New     func() T
	// Fields returns pointers to the entity fields in Columns order.
	// They serve both as scan destinations and as query arguments.
	Fields func(item T) []any
}

// tableRepository implements CRUD access to one entity table
type tableRepository[T models.Record] struct {
	db     *sql.DB
	schema Schema[T]
}

// NewTableRepository creates a new repository for the table described by schema
func NewTableRepository[T models.Record](db *sql.DB, schema Schema[T]) *tableRepository[T] {
	return &tableRepository[T]{
		db:     db,
		schema: schema,
	}
}

func (r *tableRepository[T]) selectColumns() string {
	cols := make([]string, 0, len(r.schema.Columns)+3)
	cols = append(cols, "id")
	cols = append(cols, r.schema.Columns...)
	cols = append(cols, "created_at", "updated_at")
	return strings.Join(cols, ", ")
}

func (r *tableRepository[T]) scanDest(item T) []any {
	base := item.Meta()
	dest := make([]any, 0, len(r.schema.Columns)+3)
	dest = append(dest, &base.ID)
	dest = append(dest, r.schema.Fields(item)...)
	dest = append(dest, &base.CreatedAt, &base.UpdatedAt)
	return dest
}

// List retrieves all rows in display order
func (r *tableRepository[T]) List(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", r.selectColumns(), r.schema.Table, r.schema.OrderBy)
	return r.query(ctx, query)
}

// query runs a select over the schema columns and scans every row
func (r *tableRepository[T]) query(ctx context.Context, query string, args ...any) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.schema.Table, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item := r.schema.New()
		if err := rows.Scan(r.scanDest(item)...); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", r.schema.Table, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", r.schema.Table, err)
	}

	return items, nil
}

// GetByID retrieves a row by id
func (r *tableRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", r.selectColumns(), r.schema.Table)
	return r.queryOne(ctx, query, id)
}

// queryOne runs a select expected to match at most one row
func (r *tableRepository[T]) queryOne(ctx context.Context, query string, args ...any) (T, error) {
	item := r.schema.New()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(r.scanDest(item)...)
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, ErrNotFound
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to get %s: %w", r.schema.Table, err)
	}
	return item, nil
}

// Count returns the number of rows in the table
func (r *tableRepository[T]) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", r.schema.Table)

	var count int
	if err := r.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.schema.Table, err)
	}
	return count, nil
}

// Create inserts a new row
//
// The caller assigns the id and timestamps.
func (r *tableRepository[T]) Create(ctx context.Context, item T) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(r.schema.Columns)+3), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", r.schema.Table, r.selectColumns(), placeholders)

	if _, err := r.db.ExecContext(ctx, query, r.scanDest(item)...); err != nil {
		err = mapError(err)
		if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrInvalidReference) {
			return err
		}
		return fmt.Errorf("failed to create %s: %w", r.schema.Table, err)
	}
	return nil
}

// Update replaces every column of the row with item's id
//
// created_at is never rewritten.
func (r *tableRepository[T]) Update(ctx context.Context, item T) error {
	sets := make([]string, 0, len(r.schema.Columns)+1)
	for _, col := range r.schema.Columns {
		sets = append(sets, col+" = ?")
	}
	sets = append(sets, "updated_at = ?")
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", r.schema.Table, strings.Join(sets, ", "))

	base := item.Meta()
	args := append(r.schema.Fields(item), &base.UpdatedAt, base.ID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		err = mapError(err)
		if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrInvalidReference) {
			return err
		}
		return fmt.Errorf("failed to update %s: %w", r.schema.Table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete deletes a row by id
func (r *tableRepository[T]) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", r.schema.Table)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.schema.Table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/assetmagnets/platform/internal/models"
)

// EntityRepository is the interface that wraps methods for entity table data access
type EntityRepository[T models.Record] interface {
	// Method List retrieves all records in display order.
	//
	// If some error occurs during data retrieve, the error will be returned together with "nil" value.
	List(ctx context.Context) ([]T, error)
	// Method GetByID retrieves a record by ID.
	//
	// "id" parameter is used to retrieve a record by ID.
	//
	// If record with such ID does not exist, repositories.ErrNotFound will be returned.
	GetByID(ctx context.Context, id string) (T, error)
	// Method Create inserts a new record.
	//
	// "item" parameter must already carry its ID and timestamps.
	//
	// If some error occurs during record creation, the error will be returned.
	Create(ctx context.Context, item T) error
	// Method Update replaces the mutable fields of a record.
	//
	// If record with such ID does not exist, repositories.ErrNotFound will be returned.
	Update(ctx context.Context, item T) error
	// Method Delete deletes a record by ID.
	//
	// If record with such ID does not exist, repositories.ErrNotFound will be returned.
	Delete(ctx context.Context, id string) error
}

// entityService implements CRUD business logic shared by all content entities
type entityService[T models.Record] struct {
	repo   EntityRepository[T]
	logger *zap.Logger
	now    func() time.Time
}

// NewEntityService creates a new entity service
func NewEntityService[T models.Record](repo EntityRepository[T], logger *zap.Logger) *entityService[T] {
	return &entityService[T]{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

// List returns every record
func (s *entityService[T]) List(ctx context.Context) ([]T, error) {
	return s.repo.List(ctx)
}

// Get returns a record by id
func (s *entityService[T]) Get(ctx context.Context, id string) (T, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates item, assigns a new id and timestamps and stores it
func (s *entityService[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	if err := item.Validate(); err != nil {
		return zero, err
	}

	meta := item.Meta()
	meta.ID = uuid.NewString()
	meta.CreatedAt = time.Time{}
	meta.Touch(s.now())

	if err := s.repo.Create(ctx, item); err != nil {
		return zero, err
	}
	return item, nil
}

// Update replaces the record with id by item
//
// The id and creation time of the stored record are kept.
func (s *entityService[T]) Update(ctx context.Context, id string, item T) (T, error) {
	var zero T
	if err := item.Validate(); err != nil {
		return zero, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}

	meta := item.Meta()
	meta.ID = id
	meta.CreatedAt = existing.Meta().CreatedAt
	meta.Touch(s.now())

	if err := s.repo.Update(ctx, item); err != nil {
		return zero, fmt.Errorf("failed to update %s: %w", id, err)
	}
	return item, nil
}

// Delete removes the record with id
func (s *entityService[T]) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

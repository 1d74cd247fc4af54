package services

import (
	"context"
	"sync"
	"time"

	"github.com/assetmagnets/platform/internal/models"
	"github.com/assetmagnets/platform/internal/repositories"
)

// mockEntityRepository is an in-memory implementation of EntityRepository
type mockEntityRepository[T models.Record] struct {
	mu        sync.Mutex
	items     map[string]T
	order     []string
	err       error
	createErr error
	updateErr error
}

func newMockEntityRepository[T models.Record](items ...T) *mockEntityRepository[T] {
	m := &mockEntityRepository[T]{items: map[string]T{}}
	for _, item := range items {
		m.items[item.Meta().ID] = item
		m.order = append(m.order, item.Meta().ID)
	}
	return m
}

func (m *mockEntityRepository[T]) List(ctx context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.items[id])
	}
	return out, nil
}

func (m *mockEntityRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero T
	if m.err != nil {
		return zero, m.err
	}
	item, ok := m.items[id]
	if !ok {
		return zero, repositories.ErrNotFound
	}
	return item, nil
}

func (m *mockEntityRepository[T]) Create(ctx context.Context, item T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	id := item.Meta().ID
	m.items[id] = item
	m.order = append(m.order, id)
	return nil
}

func (m *mockEntityRepository[T]) Update(ctx context.Context, item T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	id := item.Meta().ID
	if _, ok := m.items[id]; !ok {
		return repositories.ErrNotFound
	}
	m.items[id] = item
	return nil
}

func (m *mockEntityRepository[T]) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.items, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// mockUserRepository is a mock implementation of UserRepository
type mockUserRepository struct {
	*mockEntityRepository[*models.User]
	existsErr error
}

func newMockUserRepository(users ...*models.User) *mockUserRepository {
	return &mockUserRepository{mockEntityRepository: newMockEntityRepository(users...)}
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

// mockNotifier is a mock implementation of NotificationEnqueuer
type mockNotifier struct {
	calls []*models.ContactMessage
	err   error
}

func (m *mockNotifier) EnqueueContactMessage(ctx context.Context, msg *models.ContactMessage) error {
	m.calls = append(m.calls, msg)
	return m.err
}

// mockTokenIssuer is a mock implementation of TokenIssuer
type mockTokenIssuer struct {
	err error
}

func (m *mockTokenIssuer) GenerateToken(userID, email string, role models.Role) (string, time.Time, error) {
	if m.err != nil {
		return "", time.Time{}, m.err
	}
	return "token-" + userID, time.Unix(1700000000, 0), nil
}

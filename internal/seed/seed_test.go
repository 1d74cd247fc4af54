package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/assetmagnets/platform/internal/models"
)

type mockUserStore struct {
	users     map[string]*models.User
	existsErr error
}

func (m *mockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.users[email]
	return ok, nil
}

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	m.users[user.Email] = user
	return nil
}

type mockTableStore[T models.Record] struct {
	items    []T
	countErr error
}

func (m *mockTableStore[T]) Count(ctx context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.items), nil
}

func (m *mockTableStore[T]) Create(ctx context.Context, item T) error {
	m.items = append(m.items, item)
	return nil
}

type testStores struct {
	users       *mockUserStore
	services    *mockTableStore[*models.Service]
	contactInfo *mockTableStore[*models.ContactInfo]
	faqs        *mockTableStore[*models.FAQ]
	offices     *mockTableStore[*models.GlobalOffice]
}

func newTestSeeder(t *testing.T) (*Seeder, *testStores) {
	t.Helper()
	ts := &testStores{
		users:       &mockUserStore{users: map[string]*models.User{}},
		services:    &mockTableStore[*models.Service]{},
		contactInfo: &mockTableStore[*models.ContactInfo]{},
		faqs:        &mockTableStore[*models.FAQ]{},
		offices:     &mockTableStore[*models.GlobalOffice]{},
	}
	logger, _ := zap.NewDevelopment()
	s := NewSeeder(Stores{
		Users:       ts.users,
		Services:    ts.services,
		ContactInfo: ts.contactInfo,
		FAQs:        ts.faqs,
		Offices:     ts.offices,
	}, logger)
	s.cost = bcrypt.MinCost
	return s, ts
}

func TestSeeder_Run(t *testing.T) {
	s, ts := newTestSeeder(t)

	require.NoError(t, s.Run(context.Background()))

	require.Len(t, ts.users.users, 3)
	admin := ts.users.users["admin@assetmagnets.com"]
	require.NotNil(t, admin)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NotEmpty(t, admin.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	assert.NotEmpty(t, ts.services.items)
	assert.NotEmpty(t, ts.contactInfo.items)
	assert.NotEmpty(t, ts.faqs.items)
	assert.NotEmpty(t, ts.offices.items)
	for _, svc := range ts.services.items {
		assert.NotEmpty(t, svc.ID)
		assert.False(t, svc.CreatedAt.IsZero())
	}
}

func TestSeeder_RunIsIdempotent(t *testing.T) {
	s, ts := newTestSeeder(t)

	require.NoError(t, s.Run(context.Background()))
	services := len(ts.services.items)
	admin := ts.users.users["admin@assetmagnets.com"]

	require.NoError(t, s.Run(context.Background()))

	assert.Len(t, ts.users.users, 3)
	assert.Len(t, ts.services.items, services)
	assert.Same(t, admin, ts.users.users["admin@assetmagnets.com"])
}

func TestSeeder_RunSkipsNonEmptyTables(t *testing.T) {
	s, ts := newTestSeeder(t)
	ts.faqs.items = []*models.FAQ{{Question: "Existing?", Answer: "Yes"}}

	require.NoError(t, s.Run(context.Background()))

	assert.Len(t, ts.faqs.items, 1)
	assert.NotEmpty(t, ts.services.items)
}

func TestSeeder_RunErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(ts *testStores)
	}{
		{
			name:  "user check fails",
			setup: func(ts *testStores) { ts.users.existsErr = errors.New("db down") },
		},
		{
			name:  "count fails",
			setup: func(ts *testStores) { ts.offices.countErr = errors.New("db down") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ts := newTestSeeder(t)
			tt.setup(ts)

			err := s.Run(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "db down")
		})
	}
}

package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/assetmagnets/platform/internal/localstore"
	"github.com/assetmagnets/platform/internal/models"
)

func newTestFallback(store localstore.Storage) *Fallback {
	f := NewFallback(store)
	f.hashCost = bcrypt.MinCost
	return f
}

func TestCollection_SeedsOnce(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()
	f := newTestFallback(store)

	faqs, err := f.FAQs.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, faqs)
	for _, faq := range faqs {
		assert.NotEmpty(t, faq.ID)
		assert.False(t, faq.CreatedAt.IsZero())
	}

	for _, faq := range faqs {
		require.NoError(t, f.FAQs.Delete(ctx, faq.ID))
	}

	// An emptied collection stays empty
	faqs, err = f.FAQs.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, faqs)
}

func TestCollection_UnseededIsEmpty(t *testing.T) {
	f := newTestFallback(localstore.NewMemory())

	jobs, err := f.Jobs.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestCollection_CreateKeepsOrder(t *testing.T) {
	ctx := context.Background()
	f := newTestFallback(localstore.NewMemory())

	_, err := f.ContactInfo.List(ctx)
	require.NoError(t, err)

	created, err := f.ContactInfo.Create(ctx, &models.ContactInfo{
		Type: models.ContactInfoPhone, Value: "+1 555 0100", Order: 0,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	items, err := f.ContactInfo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, items[0].ID)
	assertSortedByOrder(t, items)

	// Moving it to the end re-sorts the list
	created.Order = 100
	updated, err := f.ContactInfo.Update(ctx, created.ID, created)
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	items, err = f.ContactInfo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, items[len(items)-1].ID)
	assertSortedByOrder(t, items)
}

func assertSortedByOrder(t *testing.T, items []*models.ContactInfo) {
	t.Helper()
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Order, items[i].Order)
	}
}

func TestCollection_StableForEqualOrder(t *testing.T) {
	ctx := context.Background()
	f := newTestFallback(localstore.NewMemory())
	_, err := f.Services.List(ctx)
	require.NoError(t, err)

	first, err := f.Services.Create(ctx, &models.Service{Title: "First", Description: "d", Order: 50})
	require.NoError(t, err)
	second, err := f.Services.Create(ctx, &models.Service{Title: "Second", Description: "d", Order: 50})
	require.NoError(t, err)

	items, err := f.Services.List(ctx)
	require.NoError(t, err)
	n := len(items)
	assert.Equal(t, first.ID, items[n-2].ID)
	assert.Equal(t, second.ID, items[n-1].ID)
}

func TestCollection_Errors(t *testing.T) {
	ctx := context.Background()
	f := newTestFallback(localstore.NewMemory())

	_, err := f.Jobs.Create(ctx, &models.Job{Title: "No location"})
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = f.Jobs.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.Jobs.Update(ctx, "missing", &models.Job{Title: "T", Location: "L"})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, f.Jobs.Delete(ctx, "missing"), ErrNotFound)
}

func TestCollection_Persists(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()

	job, err := newTestFallback(store).Jobs.Create(ctx, &models.Job{Title: "Analyst", Location: "Dubai", Requirements: models.StringList{"CPA"}})
	require.NoError(t, err)

	got, err := newTestFallback(store).Jobs.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Analyst", got.Title)
	assert.Equal(t, models.StringList{"CPA"}, got.Requirements)
}

func TestFallback_Login(t *testing.T) {
	ctx := context.Background()
	f := newTestFallback(localstore.NewMemory())

	resp, err := f.Login(ctx, " Admin@AssetMagnets.com ", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
	assert.NotEmpty(t, resp.Token)
	assert.Empty(t, resp.User.PasswordHash)

	_, err = f.Login(ctx, "admin@assetmagnets.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.Login(ctx, "nobody@assetmagnets.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestFallback_Register(t *testing.T) {
	ctx := context.Background()
	f := newTestFallback(localstore.NewMemory())

	resp, err := f.Register(ctx, &models.RegisterRequest{Email: "new@example.com", Password: "secret1", Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, resp.User.Role)

	// The new account can sign in
	_, err = f.Login(ctx, "new@example.com", "secret1")
	assert.NoError(t, err)

	tests := []struct {
		name    string
		req     *models.RegisterRequest
		wantErr error
	}{
		{"duplicate email", &models.RegisterRequest{Email: "new@example.com", Password: "secret1", Name: "N"}, ErrEmailExists},
		{"invalid email", &models.RegisterRequest{Email: "nope", Password: "secret1", Name: "N"}, models.ErrValidation},
		{"short password", &models.RegisterRequest{Email: "x@example.com", Password: "123", Name: "N"}, models.ErrValidation},
		{"missing name", &models.RegisterRequest{Email: "x@example.com", Password: "secret1"}, models.ErrValidation},
		{"admin role", &models.RegisterRequest{Email: "x@example.com", Password: "secret1", Name: "N", Role: "admin"}, models.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.Register(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetmagnets/platform/internal/localstore"
	"github.com/assetmagnets/platform/internal/models"
)

func TestSession_SetAndLoad(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()

	s := NewSession(store)
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, ModeOnline, s.Mode())
	assert.Equal(t, DefaultTheme, s.Theme())

	user := &models.User{Base: models.Base{ID: "u1"}, Email: "admin@assetmagnets.com", Name: "Admin", Role: models.RoleAdmin}
	require.NoError(t, s.Set(ctx, "token-1", user))
	require.NoError(t, s.SetMode(ctx, ModeDemo))
	require.NoError(t, s.SetTheme(ctx, "dark"))

	restored := NewSession(store)
	require.NoError(t, restored.Load(ctx))

	assert.True(t, restored.IsAuthenticated())
	assert.Equal(t, "token-1", restored.Token())
	assert.Equal(t, "admin@assetmagnets.com", restored.User().Email)
	assert.Equal(t, models.RoleAdmin, restored.User().Role)
	assert.Equal(t, ModeDemo, restored.Mode())
	assert.Equal(t, "dark", restored.Theme())
}

func TestSession_Clear(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()

	s := NewSession(store)
	require.NoError(t, s.Set(ctx, "token-1", &models.User{Email: "a@b.co"}))
	require.NoError(t, s.SetTheme(ctx, "dark"))
	require.NoError(t, s.Clear(ctx))

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())

	_, ok, err := store.Get(ctx, localstore.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)

	// Preferences survive sign out
	theme, ok, err := store.Get(ctx, localstore.KeyTheme)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", theme)
}

func TestSession_LoadIgnoresInvalidState(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()
	require.NoError(t, store.Set(ctx, localstore.KeyToken, "orphan"))
	require.NoError(t, store.Set(ctx, localstore.KeyMode, "offline"))

	s := NewSession(store)
	require.NoError(t, s.Load(ctx))

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	assert.Equal(t, ModeOnline, s.Mode())
}

func TestSession_LoadCorruptUser(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()
	require.NoError(t, store.Set(ctx, localstore.KeyUser, "{not json"))

	err := NewSession(store).Load(ctx)
	assert.Error(t, err)
}

func TestSession_UserIsCopied(t *testing.T) {
	ctx := context.Background()
	s := NewSession(localstore.NewMemory())

	user := &models.User{Email: "a@b.co", Name: "A"}
	require.NoError(t, s.Set(ctx, "t", user))
	user.Name = "changed"

	got := s.User()
	assert.Equal(t, "A", got.Name)
	got.Name = "changed again"
	assert.Equal(t, "A", s.User().Name)
}

func TestSession_SetRequiresTokenAndUser(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()
	s := NewSession(store)

	assert.ErrorIs(t, s.Set(ctx, "t", nil), ErrIncompleteSession)
	assert.ErrorIs(t, s.Set(ctx, "", &models.User{Email: "a@b.co"}), ErrIncompleteSession)

	assert.False(t, s.IsAuthenticated())
	_, ok, err := store.Get(ctx, localstore.KeyToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

// Package client talks to the Asset Magnets API and serves a local demo copy of the data when the API is unreachable
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/assetmagnets/platform/internal/localstore"
	"github.com/assetmagnets/platform/internal/models"
)

// Mode tells whether data comes from the API or from the local demo store
type Mode string

// Mode constants
const (
	ModeOnline Mode = "online"
	ModeDemo   Mode = "demo"
)

// ErrIncompleteSession is returned when a sign-in answer lacks the token or the user
var ErrIncompleteSession = errors.New("session requires a token and a user")

// DefaultTheme is used until the user picks one
const DefaultTheme = "light"

// Session holds the signed-in user and client preferences and persists them to local storage
type Session struct {
	store localstore.Storage

	mu    sync.RWMutex
	token string
	user  *models.User
	mode  Mode
	theme string
}

// NewSession creates an empty session backed by store
func NewSession(store localstore.Storage) *Session {
	return &Session{
		store: store,
		mode:  ModeOnline,
		theme: DefaultTheme,
	}
}

// Load rehydrates the session from local storage
func (s *Session) Load(ctx context.Context) error {
	token, _, err := s.store.Get(ctx, localstore.KeyToken)
	if err != nil {
		return err
	}

	var user *models.User
	raw, ok, err := s.store.Get(ctx, localstore.KeyUser)
	if err != nil {
		return err
	}
	if ok && raw != "" {
		user = &models.User{}
		if err := json.Unmarshal([]byte(raw), user); err != nil {
			return fmt.Errorf("failed to decode stored user: %w", err)
		}
	}

	mode, ok, err := s.store.Get(ctx, localstore.KeyMode)
	if err != nil {
		return err
	}
	if !ok || (Mode(mode) != ModeOnline && Mode(mode) != ModeDemo) {
		mode = string(ModeOnline)
	}

	theme, ok, err := s.store.Get(ctx, localstore.KeyTheme)
	if err != nil {
		return err
	}
	if !ok || theme == "" {
		theme = DefaultTheme
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	// A token without a user cannot be shown, treat it as signed out
	if s.user == nil {
		s.token = ""
	}
	s.mode = Mode(mode)
	s.theme = theme
	return nil
}

// Set stores a new token and user
func (s *Session) Set(ctx context.Context, token string, user *models.User) error {
	if token == "" || user == nil {
		return ErrIncompleteSession
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	if err := s.store.Set(ctx, localstore.KeyToken, token); err != nil {
		return err
	}
	if err := s.store.Set(ctx, localstore.KeyUser, string(raw)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	copied := *user
	s.user = &copied
	return nil
}

// Clear signs the user out
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Remove(ctx, localstore.KeyToken); err != nil {
		return err
	}
	return s.store.Remove(ctx, localstore.KeyUser)
}

// Token returns the bearer token, empty when signed out
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the signed-in user, nil when signed out
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

// IsAuthenticated reports whether a user is signed in
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// Mode returns where data currently comes from
func (s *Session) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// SetMode records where data currently comes from
func (s *Session) SetMode(ctx context.Context, mode Mode) error {
	s.mu.Lock()
	changed := s.mode != mode
	s.mode = mode
	s.mu.Unlock()

	if !changed {
		return nil
	}
	return s.store.Set(ctx, localstore.KeyMode, string(mode))
}

// Theme returns the preferred theme
func (s *Session) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme stores the preferred theme
func (s *Session) SetTheme(ctx context.Context, theme string) error {
	if err := s.store.Set(ctx, localstore.KeyTheme, theme); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return nil
}

package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetmagnets/platform/internal/localstore"
	"github.com/assetmagnets/platform/internal/models"
)

func writeEnvelope(w http.ResponseWriter, status int, env models.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}

func newSignedInSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(localstore.NewMemory())
	require.NoError(t, s.Set(context.Background(), "secret-token", &models.User{Email: "a@b.co", Role: models.RoleAdmin}))
	return s
}

func TestGateway_Do(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		assert.Equal(t, "/api/faqs", r.URL.Path)
		writeEnvelope(w, http.StatusCreated, models.Envelope{Success: true, Data: map[string]string{"id": "f1", "question": "Q?"}})
	}))
	defer srv.Close()

	g := NewGateway(srv.URL+"/api/", 0, newSignedInSession(t))

	var out models.FAQ
	err := g.Do(context.Background(), http.MethodPost, "/faqs", map[string]string{"question": "Q?"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Q?", gotBody["question"])
	assert.Equal(t, "f1", out.ID)
	assert.Equal(t, "Q?", out.Question)
}

func TestGateway_NoTokenWhenSignedOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, models.Envelope{Success: true, Data: []string{}})
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, time.Second, NewSession(localstore.NewMemory()))
	require.NoError(t, g.Do(context.Background(), http.MethodGet, "/services", nil, nil))
}

func TestGateway_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, models.Envelope{Success: false, Message: "invalid token"})
	}))
	defer srv.Close()

	session := newSignedInSession(t)
	g := NewGateway(srv.URL, time.Second, session)
	called := false
	g.OnUnauthorized = func() { called = true }

	err := g.Do(context.Background(), http.MethodGet, "/auth/me", nil, nil)

	assert.ErrorIs(t, err, ErrUnauthorized)
	var unauthorized *UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)
	assert.Equal(t, "invalid token", unauthorized.Message)
	assert.Equal(t, "unauthorized: invalid token", err.Error())
	assert.True(t, called)
	assert.False(t, session.IsAuthenticated())
}

func TestGateway_APIError(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		wantStatus  int
		wantMessage string
	}{
		{
			name: "envelope message",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(w, http.StatusBadRequest, models.Envelope{Message: "title is required"})
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "title is required",
		},
		{
			name: "plain text body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "bad gateway", http.StatusBadGateway)
			},
			wantStatus:  http.StatusBadGateway,
			wantMessage: "bad gateway",
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			wantStatus:  http.StatusForbidden,
			wantMessage: "Forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			session := newSignedInSession(t)
			g := NewGateway(srv.URL, time.Second, session)

			err := g.Do(context.Background(), http.MethodGet, "/x", nil, nil)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.wantStatus, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.True(t, session.IsAuthenticated())
		})
	}
}

func TestGateway_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	g := NewGateway(url, time.Second, NewSession(localstore.NewMemory()))
	err := g.Do(context.Background(), http.MethodGet, "/services", nil, nil)

	assert.ErrorIs(t, err, ErrNetwork)
	assert.Contains(t, err.Error(), "network error: unable to reach the server")
}

func TestGateway_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	g := NewGateway(srv.URL, 50*time.Millisecond, NewSession(localstore.NewMemory()))
	err := g.Do(context.Background(), http.MethodGet, "/services", nil, nil)

	assert.ErrorIs(t, err, ErrNetwork)
}

func TestGateway_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	g := NewGateway(srv.URL, time.Second, NewSession(localstore.NewMemory()))
	err := g.Do(context.Background(), http.MethodGet, "/services", nil, nil)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNetwork)
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetmagnets/platform/internal/client"
	"github.com/assetmagnets/platform/internal/localstore"
	"github.com/assetmagnets/platform/internal/models"
)

type nopCloser struct{ closed int }

func (n *nopCloser) Close() error {
	n.closed++
	return nil
}

// run executes one assetctl invocation against store, the way separate processes would
func run(t *testing.T, store localstore.Storage, baseURL string, args ...string) (string, error) {
	t.Helper()
	closer := &nopCloser{}
	open := func(ctx context.Context) (*client.Client, io.Closer, error) {
		c := client.New(store, client.Options{BaseURL: baseURL, Timeout: time.Second, DemoFallback: true})
		if err := c.Session().Load(ctx); err != nil {
			return nil, nil, err
		}
		return c, closer, nil
	}

	var out bytes.Buffer
	cmd := newRootCmd(open, &out)
	cmd.SetArgs(args)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	if err == nil {
		assert.Equal(t, 1, closer.closed)
	}
	return out.String(), err
}

func unreachableURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()
	return url
}

func TestCLI_DemoSession(t *testing.T) {
	store := localstore.NewMemory()
	url := unreachableURL(t)

	out, err := run(t, store, url, "me")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assetctl login")

	out, err = run(t, store, url, "login", "admin@assetmagnets.com", "admin123")
	require.NoError(t, err)
	assert.Contains(t, out, `"role": "admin"`)
	assert.Contains(t, out, "mode: demo")

	out, err = run(t, store, url, "me")
	require.NoError(t, err)
	assert.Contains(t, out, "admin@assetmagnets.com")

	out, err = run(t, store, url, "mode")
	require.NoError(t, err)
	assert.Equal(t, "mode: demo\n", out)

	out, err = run(t, store, url, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "logged out")

	_, err = run(t, store, url, "me")
	assert.Error(t, err)
}

func TestCLI_ListAndDelete(t *testing.T) {
	store := localstore.NewMemory()
	url := unreachableURL(t)

	out, err := run(t, store, url, "list", "offices")
	require.NoError(t, err)
	assert.Contains(t, out, "Dubai")

	c := client.New(store, client.Options{BaseURL: url, Timeout: time.Second, DemoFallback: true})
	offices, err := c.Offices.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, offices)

	out, err = run(t, store, url, "delete", "offices", offices[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, offices[0].ID)

	_, err = run(t, store, url, "delete", "offices", offices[0].ID)
	assert.ErrorIs(t, err, client.ErrNotFound)

	_, err = run(t, store, url, "list", "planets")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown collection")
}

func TestCLI_Theme(t *testing.T) {
	store := localstore.NewMemory()
	url := unreachableURL(t)

	out, err := run(t, store, url, "theme")
	require.NoError(t, err)
	assert.Equal(t, "theme: light\n", out)

	_, err = run(t, store, url, "theme", "dark")
	require.NoError(t, err)

	out, err = run(t, store, url, "theme")
	require.NoError(t, err)
	assert.Equal(t, "theme: dark\n", out)
}

func TestCLI_ArgumentValidation(t *testing.T) {
	_, err := run(t, localstore.NewMemory(), "http://localhost", "login", "only-email")
	assert.Error(t, err)
}

func TestCLI_LoginRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(models.Envelope{Message: "invalid credentials"})
	}))
	defer srv.Close()

	tests := []struct {
		name    string
		baseURL string
	}{
		{name: "api", baseURL: srv.URL},
		{name: "demo", baseURL: unreachableURL(t)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, localstore.NewMemory(), tt.baseURL, "login", "admin@assetmagnets.com", "wrong")

			require.Error(t, err)
			assert.Equal(t, "login failed: invalid credentials", err.Error())
		})
	}
}

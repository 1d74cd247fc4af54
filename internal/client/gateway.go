package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/assetmagnets/platform/internal/models"
)

// DefaultTimeout bounds every API request
const DefaultTimeout = 10 * time.Second

var (
	// ErrUnauthorized is returned when the API rejected the bearer token; the session is cleared
	ErrUnauthorized = errors.New("unauthorized: please log in again")
	// ErrNetwork is returned when the API could not be reached
	ErrNetwork = errors.New("network error: unable to reach the server")
)

// UnauthorizedError is a 401 answer of the API
//
// It matches ErrUnauthorized with errors.Is and keeps the reason the API gave.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	if e.Message == "" {
		return ErrUnauthorized.Error()
	}
	return "unauthorized: " + e.Message
}

// Unwrap returns ErrUnauthorized
func (e *UnauthorizedError) Unwrap() error { return ErrUnauthorized }

// APIError is a non-2xx answer of the API other than 401
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error (status %d)", e.Status)
	}
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Gateway sends authenticated JSON requests to the API and unwraps the response envelope
type Gateway struct {
	baseURL string
	http    *http.Client
	session *Session
	// OnUnauthorized, when set, is called after a 401 cleared the session
	OnUnauthorized func()
}

// NewGateway creates a new gateway; a zero timeout means DefaultTimeout
func NewGateway(baseURL string, timeout time.Duration, session *Session) *Gateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		session: session,
	}
}

// Do sends body as JSON to path and decodes the envelope data into out
//
// body and out may be nil.
func (g *Gateway) Do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := g.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w (%v)", ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w (%v)", ErrNetwork, err)
	}

	var env models.RawEnvelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusUnauthorized {
		if err := g.session.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		if g.OnUnauthorized != nil {
			g.OnUnauthorized()
		}
		return &UnauthorizedError{Message: env.Message}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := env.Message
		if decodeErr != nil {
			message = strings.TrimSpace(string(raw))
		}
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if decodeErr != nil {
		return fmt.Errorf("invalid response from %s: %w", path, decodeErr)
	}
	if !env.Success {
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

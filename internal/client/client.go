package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/assetmagnets/platform/internal/localstore"
	"github.com/assetmagnets/platform/internal/models"
)

// Options configures New
type Options struct {
	BaseURL string
	Timeout time.Duration
	// DemoFallback serves calls from the local demo store when the API is unreachable
	DemoFallback bool
}

// Client is the entry point of the API client
type Client struct {
	gateway      *Gateway
	session      *Session
	fallback     *Fallback
	demoFallback bool

	Auth            *AuthClient
	Services        *EntityClient[*models.Service]
	Courses         *EntityClient[*models.Course]
	Jobs            *EntityClient[*models.Job]
	ContactInfo     *EntityClient[*models.ContactInfo]
	FAQs            *EntityClient[*models.FAQ]
	Offices         *EntityClient[*models.GlobalOffice]
	ContactMessages *EntityClient[*models.ContactMessage]
}

// New creates a client whose state lives in store
//
// Call Session().Load before the first request to restore a previous session.
func New(store localstore.Storage, opts Options) *Client {
	session := NewSession(store)
	c := &Client{
		gateway:      NewGateway(opts.BaseURL, opts.Timeout, session),
		session:      session,
		fallback:     NewFallback(store),
		demoFallback: opts.DemoFallback,
	}

	c.Auth = &AuthClient{client: c}
	c.Services = newEntityClient(c, "/services", c.fallback.Services, func() *models.Service { return &models.Service{} })
	c.Courses = newEntityClient(c, "/courses", c.fallback.Courses, func() *models.Course { return &models.Course{} })
	c.Jobs = newEntityClient(c, "/jobs", c.fallback.Jobs, func() *models.Job { return &models.Job{} })
	c.ContactInfo = newEntityClient(c, "/contact-info", c.fallback.ContactInfo, func() *models.ContactInfo { return &models.ContactInfo{} })
	c.FAQs = newEntityClient(c, "/faqs", c.fallback.FAQs, func() *models.FAQ { return &models.FAQ{} })
	c.Offices = newEntityClient(c, "/offices", c.fallback.Offices, func() *models.GlobalOffice { return &models.GlobalOffice{} })
	c.ContactMessages = newEntityClient(c, "/contact-messages", c.fallback.ContactMessages, func() *models.ContactMessage { return &models.ContactMessage{} })
	return c
}

// Session returns the client session
func (c *Client) Session() *Session { return c.session }

// Gateway returns the underlying gateway
func (c *Client) Gateway() *Gateway { return c.gateway }

// Mode returns where the last call was served from
func (c *Client) Mode() Mode { return c.session.Mode() }

// CollectionClient is the untyped view of an entity client used by the CLI
type CollectionClient interface {
	ListAny(ctx context.Context) (any, error)
	Delete(ctx context.Context, id string) error
}

// Collections returns the entity clients by collection name
func (c *Client) Collections() map[string]CollectionClient {
	return map[string]CollectionClient{
		"services":         c.Services,
		"courses":          c.Courses,
		"jobs":             c.Jobs,
		"contact-info":     c.ContactInfo,
		"faqs":             c.FAQs,
		"offices":          c.Offices,
		"contact-messages": c.ContactMessages,
	}
}

// CollectionNames returns the sorted collection names
func (c *Client) CollectionNames() []string {
	names := make([]string, 0, 7)
	for name := range c.Collections() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// serve runs online and, when it fails with ErrNetwork and demo fallback is enabled, demo
//
// The session mode records which of the two answered.
func serve[T any](ctx context.Context, c *Client, online, demo func() (T, error)) (T, error) {
	result, err := online()
	if err == nil {
		if err := c.session.SetMode(ctx, ModeOnline); err != nil {
			return result, err
		}
		return result, nil
	}

	var zero T
	if answeredByAPI(err) {
		if modeErr := c.session.SetMode(ctx, ModeOnline); modeErr != nil {
			return zero, modeErr
		}
		return zero, err
	}
	if !errors.Is(err, ErrNetwork) || !c.demoFallback {
		return zero, err
	}

	result, err = demo()
	if err != nil {
		return zero, err
	}
	if err := c.session.SetMode(ctx, ModeDemo); err != nil {
		return result, err
	}
	return result, nil
}

// answeredByAPI reports whether err is an answer of a reachable API
func answeredByAPI(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) || errors.Is(err, ErrUnauthorized)
}

// AuthClient signs users in and out
type AuthClient struct {
	client *Client
}

// Login signs in with email and password and stores the session
func (a *AuthClient) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	c := a.client
	req := &models.LoginRequest{Email: email, Password: password}

	resp, err := serve(ctx, c,
		func() (*models.AuthResponse, error) {
			var out models.AuthResponse
			if err := c.gateway.Do(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
				return nil, err
			}
			return &out, nil
		},
		func() (*models.AuthResponse, error) {
			return c.fallback.Login(ctx, email, password)
		},
	)
	if err != nil {
		return nil, err
	}

	if err := c.session.Set(ctx, resp.Token, resp.User); err != nil {
		return nil, err
	}
	return resp, nil
}

// Register creates an account and stores the session
func (a *AuthClient) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	c := a.client

	resp, err := serve(ctx, c,
		func() (*models.AuthResponse, error) {
			var out models.AuthResponse
			if err := c.gateway.Do(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
				return nil, err
			}
			return &out, nil
		},
		func() (*models.AuthResponse, error) {
			return c.fallback.Register(ctx, req)
		},
	)
	if err != nil {
		return nil, err
	}

	if err := c.session.Set(ctx, resp.Token, resp.User); err != nil {
		return nil, err
	}
	return resp, nil
}

// Me returns the signed-in user
//
// In demo mode the stored session user is returned.
func (a *AuthClient) Me(ctx context.Context) (*models.User, error) {
	c := a.client
	if !c.session.IsAuthenticated() {
		return nil, ErrUnauthorized
	}

	return serve(ctx, c,
		func() (*models.User, error) {
			var out models.User
			if err := c.gateway.Do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
				return nil, err
			}
			return &out, nil
		},
		func() (*models.User, error) {
			user := c.session.User()
			if user == nil {
				return nil, ErrUnauthorized
			}
			return user, nil
		},
	)
}

// Logout clears the stored session
func (a *AuthClient) Logout(ctx context.Context) error {
	return a.client.session.Clear(ctx)
}

// EntityClient calls the CRUD endpoints of one collection
type EntityClient[T models.Record] struct {
	client   *Client
	path     string
	fallback *Collection[T]
	newItem  func() T
}

func newEntityClient[T models.Record](c *Client, path string, fallback *Collection[T], newItem func() T) *EntityClient[T] {
	return &EntityClient[T]{client: c, path: path, fallback: fallback, newItem: newItem}
}

func (e *EntityClient[T]) itemPath(id string) string {
	return e.path + "/" + url.PathEscape(id)
}

// List returns every record of the collection
func (e *EntityClient[T]) List(ctx context.Context) ([]T, error) {
	return serve(ctx, e.client,
		func() ([]T, error) {
			out := []T{}
			if err := e.client.gateway.Do(ctx, http.MethodGet, e.path, nil, &out); err != nil {
				return nil, err
			}
			return out, nil
		},
		func() ([]T, error) { return e.fallback.List(ctx) },
	)
}

// ListAny implements CollectionClient
func (e *EntityClient[T]) ListAny(ctx context.Context) (any, error) {
	return e.List(ctx)
}

// Get returns one record
func (e *EntityClient[T]) Get(ctx context.Context, id string) (T, error) {
	return serve(ctx, e.client,
		func() (T, error) {
			out := e.newItem()
			err := e.client.gateway.Do(ctx, http.MethodGet, e.itemPath(id), nil, out)
			return out, err
		},
		func() (T, error) { return e.fallback.Get(ctx, id) },
	)
}

// Create stores a new record and returns it with its id and timestamps
func (e *EntityClient[T]) Create(ctx context.Context, item T) (T, error) {
	return serve(ctx, e.client,
		func() (T, error) {
			out := e.newItem()
			err := e.client.gateway.Do(ctx, http.MethodPost, e.path, item, out)
			return out, err
		},
		func() (T, error) { return e.fallback.Create(ctx, item) },
	)
}

// Update replaces the record with id
func (e *EntityClient[T]) Update(ctx context.Context, id string, item T) (T, error) {
	return serve(ctx, e.client,
		func() (T, error) {
			out := e.newItem()
			err := e.client.gateway.Do(ctx, http.MethodPut, e.itemPath(id), item, out)
			return out, err
		},
		func() (T, error) { return e.fallback.Update(ctx, id, item) },
	)
}

// Delete removes the record with id
func (e *EntityClient[T]) Delete(ctx context.Context, id string) error {
	_, err := serve(ctx, e.client,
		func() (struct{}, error) {
			return struct{}{}, e.client.gateway.Do(ctx, http.MethodDelete, e.itemPath(id), nil, nil)
		},
		func() (struct{}, error) { return struct{}{}, e.fallback.Delete(ctx, id) },
	)
	return err
}

package client

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/assetmagnets/platform/internal/defaults"
	"github.com/assetmagnets/platform/internal/localstore"
	"github.com/assetmagnets/platform/internal/models"
)

var (
	// ErrNotFound is returned by the fallback store for an unknown id
	ErrNotFound = errors.New("record not found")
	// ErrInvalidCredentials is returned by a demo login with a wrong email or password
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailExists is returned by a demo registration of a known email
	ErrEmailExists = errors.New("email already exists")
)

// Collection is one entity list kept in local storage
type Collection[T models.Record] struct {
	store localstore.Storage
	key   string
	seed  func() []T
	now   func() time.Time
	mu    sync.Mutex
}

// NewCollection creates a collection stored under the key of name
//
// seed may be nil; otherwise its records fill the collection the first time it is read.
func NewCollection[T models.Record](store localstore.Storage, name string, seed func() []T) *Collection[T] {
	return &Collection[T]{
		store: store,
		key:   localstore.CollectionKey(name),
		seed:  seed,
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

// load returns the stored items, seeding an absent collection
func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}

	if !ok {
		items := []T{}
		if c.seed != nil {
			now := c.now()
			for _, item := range c.seed() {
				base := item.Meta()
				base.ID = uuid.NewString()
				base.Touch(now)
				items = append(items, item)
			}
		}
		sortByOrder(items)
		if err := c.save(ctx, items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) save(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	return c.store.Set(ctx, c.key, string(raw))
}

// sortByOrder sorts order-bearing records ascending, keeping ties in place
func sortByOrder[T models.Record](items []T) {
	if len(items) == 0 {
		return
	}
	if _, ok := any(items[0]).(models.Ordered); !ok {
		return
	}
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(any(a).(models.Ordered).GetOrder(), any(b).(models.Ordered).GetOrder())
	})
}

func indexOf[T models.Record](items []T, id string) int {
	return slices.IndexFunc(items, func(item T) bool { return item.Meta().ID == id })
}

// List returns every record
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Get returns the record with id
func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return zero, ErrNotFound
	}
	return items[i], nil
}

// Create validates item, assigns an id and timestamps and stores it
func (c *Collection[T]) Create(ctx context.Context, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	if err := item.Validate(); err != nil {
		return zero, err
	}

	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}

	base := item.Meta()
	base.ID = uuid.NewString()
	base.CreatedAt = time.Time{}
	base.Touch(c.now())

	items = append(items, item)
	sortByOrder(items)
	if err := c.save(ctx, items); err != nil {
		return zero, err
	}
	return item, nil
}

// Update replaces the record with id, keeping its creation time
func (c *Collection[T]) Update(ctx context.Context, id string, item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	if err := item.Validate(); err != nil {
		return zero, err
	}

	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return zero, ErrNotFound
	}

	base := item.Meta()
	base.ID = id
	base.CreatedAt = items[i].Meta().CreatedAt
	base.Touch(c.now())

	items[i] = item
	sortByOrder(items)
	if err := c.save(ctx, items); err != nil {
		return zero, err
	}
	return item, nil
}

// Delete removes the record with id
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(items, id)
	if i < 0 {
		return ErrNotFound
	}
	return c.save(ctx, slices.Delete(items, i, i+1))
}

// demoUser is a user kept by the fallback store together with its password hash
type demoUser struct {
	models.User
	PasswordHash string `json:"passwordHash"`
}

// Fallback is the local demo copy of the API data
type Fallback struct {
	Services        *Collection[*models.Service]
	Courses         *Collection[*models.Course]
	Jobs            *Collection[*models.Job]
	ContactInfo     *Collection[*models.ContactInfo]
	FAQs            *Collection[*models.FAQ]
	Offices         *Collection[*models.GlobalOffice]
	ContactMessages *Collection[*models.ContactMessage]

	users    *Collection[*demoUser]
	hashCost int
}

// NewFallback creates the fallback store over store
func NewFallback(store localstore.Storage) *Fallback {
	f := &Fallback{
		Services:        NewCollection(store, "services", defaults.Services),
		Courses:         NewCollection[*models.Course](store, "courses", nil),
		Jobs:            NewCollection[*models.Job](store, "jobs", nil),
		ContactInfo:     NewCollection(store, "contact-info", defaults.ContactInfo),
		FAQs:            NewCollection(store, "faqs", defaults.FAQs),
		Offices:         NewCollection(store, "offices", defaults.Offices),
		ContactMessages: NewCollection[*models.ContactMessage](store, "contact-messages", nil),
		hashCost:        bcrypt.DefaultCost,
	}
	f.users = NewCollection(store, "users", f.demoUsers)
	return f
}

// demoUsers builds the demo accounts with hashed passwords
func (f *Fallback) demoUsers() []*demoUser {
	accounts := defaults.DemoAccounts()
	users := make([]*demoUser, 0, len(accounts))
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), f.hashCost)
		if err != nil {
			continue
		}
		users = append(users, &demoUser{
			User:         models.User{Email: a.Email, Name: a.Name, Role: a.Role},
			PasswordHash: string(hash),
		})
	}
	return users
}

// Login checks demo credentials and returns a locally issued session
func (f *Fallback) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	users, err := f.users.List(ctx)
	if err != nil {
		return nil, err
	}

	email = models.NormalizeEmail(email)
	i := slices.IndexFunc(users, func(u *demoUser) bool { return u.Email == email })
	if i < 0 {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return demoAuth(&users[i].User, f.users.now()), nil
}

// Register creates a demo account
func (f *Fallback) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := models.NormalizeEmail(req.Email)
	if !models.ValidEmail(email) {
		return nil, models.NewValidationError("email", "is invalid")
	}
	if len(req.Password) < 6 {
		return nil, models.NewValidationError("password", "must be at least 6 characters")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.NewValidationError("name", "is required")
	}

	role := models.RoleStudent
	if req.Role != "" {
		parsed, ok := models.ParseRole(req.Role)
		if !ok || (parsed != models.RoleStudent && parsed != models.RoleApplicant) {
			return nil, models.NewValidationError("role", "must be student or applicant")
		}
		role = parsed
	}

	users, err := f.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if slices.ContainsFunc(users, func(u *demoUser) bool { return u.Email == email }) {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), f.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := f.users.Create(ctx, &demoUser{
		User:         models.User{Email: email, Name: name, Role: role},
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}
	return demoAuth(&created.User, f.users.now()), nil
}

// demoAuth issues an opaque local token that the API never accepts
func demoAuth(user *models.User, now time.Time) *models.AuthResponse {
	out := *user
	out.PasswordHash = ""
	return &models.AuthResponse{
		Token:     "demo-" + uuid.NewString(),
		ExpiresAt: now.Add(24 * time.Hour),
		User:      &out,
	}
}

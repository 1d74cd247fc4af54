package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/assetmagnets/platform/internal/models"
	"github.com/assetmagnets/platform/internal/repositories"
)

const minPasswordLength = 6

// UserRepository is the interface that wraps methods for User table data access
type UserRepository interface {
	EntityRepository[*models.User]
	// Method GetByEmail retrieves a user by normalized email.
	//
	// "email" parameter must already be trimmed and lower-cased.
	//
	// If user with such email does not exist, repositories.ErrNotFound will be returned.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Method ExistsByEmail checks if a user with such email exists.
	//
	// If some error occurs during check, the error will be returned together with "false" value.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// userService implements user administration
type userService struct {
	repo   UserRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository, logger *zap.Logger) *userService {
	return &userService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

// sanitizeUser strips the password hash and lower-cases the role
func sanitizeUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	out := *u
	out.PasswordHash = ""
	out.Role = models.Role(strings.ToLower(string(u.Role)))
	return &out
}

// List returns every user without password hashes
func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i, u := range users {
		users[i] = sanitizeUser(u)
	}
	return users, nil
}

// Get returns a user by id
func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

// Create creates a user with any role
func (s *userService) Create(ctx context.Context, req *models.UserRequest) (*models.User, error) {
	user, err := s.buildUser(req, true)
	if err != nil {
		return nil, err
	}

	user.ID = uuid.NewString()
	user.Touch(s.now())

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

// Update replaces a user's email, name and role
//
// The password is re-hashed only when a new one is supplied.
func (s *userService) Update(ctx context.Context, id string, req *models.UserRequest) (*models.User, error) {
	user, err := s.buildUser(req, false)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.ID = id
	user.CreatedAt = existing.CreatedAt
	user.Touch(s.now())
	if user.PasswordHash == "" {
		user.PasswordHash = existing.PasswordHash
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

// Delete removes a user
//
// Courses taught by the user keep existing with no instructor.
func (s *userService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// buildUser validates req and hashes its password
func (s *userService) buildUser(req *models.UserRequest, passwordRequired bool) (*models.User, error) {
	role, ok := models.ParseRole(req.Role)
	if !ok {
		return nil, models.NewValidationError("role", "is not a known role")
	}

	email, name, err := validateIdentity(req.Email, req.Name)
	if err != nil {
		return nil, err
	}

	user := &models.User{Email: email, Name: name, Role: role}

	if req.Password != "" || passwordRequired {
		hash, err := hashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	return user, nil
}

// validateIdentity normalizes and checks an email and display name
func validateIdentity(email, name string) (string, string, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return "", "", models.NewValidationError("email", "is required")
	}
	if !models.ValidEmail(email) {
		return "", "", models.NewValidationError("email", "is not a valid address")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", models.NewValidationError("name", "is required")
	}
	return email, name, nil
}

// hashPassword checks the password policy and returns its bcrypt hash
func hashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", models.NewValidationError("password", fmt.Sprintf("must be at least %d characters", minPasswordLength))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

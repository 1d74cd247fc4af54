package services

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/assetmagnets/platform/internal/models"
	"github.com/assetmagnets/platform/internal/repositories"
)

// TokenIssuer signs session tokens
type TokenIssuer interface {
	// Method GenerateToken signs a token carrying the user's id, email and role.
	//
	// Returns the token and its expiry time.
	GenerateToken(userID, email string, role models.Role) (string, time.Time, error)
}

// selfRegisterRoles lists the roles a visitor may pick when registering
var selfRegisterRoles = []models.Role{models.RoleStudent, models.RoleApplicant}

// dummyHash is compared against when the email is unknown so both failures cost one bcrypt run
var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("assetmagnets-dummy-password"), bcrypt.DefaultCost)
	return hash
})

// authService implements login, registration and current user lookup
type authService struct {
	userRepo       UserRepository
	tokenGenerator TokenIssuer
	logger         *zap.Logger
	now            func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, tokenGenerator TokenIssuer, logger *zap.Logger) *authService {
	return &authService{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
		now:            func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

// Login authenticates a user by email and password
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := models.NormalizeEmail(req.Email)
	if email == "" {
		return nil, models.NewValidationError("email", "is required")
	}
	if req.Password == "" {
		return nil, models.NewValidationError("password", "is required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		bcrypt.CompareHashAndPassword(dummyHash(), []byte(req.Password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

// Register creates a student or applicant account and signs it in
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email, name, err := validateIdentity(req.Email, req.Name)
	if err != nil {
		return nil, err
	}

	role := models.RoleStudent
	if req.Role != "" {
		parsed, ok := models.ParseRole(req.Role)
		if !ok || !slices.Contains(selfRegisterRoles, parsed) {
			return nil, models.NewValidationError("role", "must be student or applicant")
		}
		role = parsed
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	user := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
	}
	user.ID = uuid.NewString()
	user.Touch(s.now())

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	s.logger.Info("user registered", zap.String("userId", user.ID), zap.String("role", string(role)))
	return s.issue(user)
}

// Me returns the user identified by a token
func (s *authService) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

// issue signs a token for user
func (s *authService) issue(user *models.User) (*models.AuthResponse, error) {
	safe := sanitizeUser(user)
	token, expiresAt, err := s.tokenGenerator.GenerateToken(safe.ID, safe.Email, safe.Role)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, ExpiresAt: expiresAt, User: safe}, nil
}

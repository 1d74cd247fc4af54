package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/assetmagnets/platform/internal/auth/middleware"
	"github.com/assetmagnets/platform/internal/models"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Login checks the credentials and signs a token.
	//
	// "req" parameter contains email and password.
	//
	// If the email is unknown or the password is wrong, services.ErrInvalidCredentials will be returned.
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	// Method Register creates a student or applicant account and signs a token.
	//
	// "req" parameter contains email, password, name and the optional role.
	//
	// If the input is invalid or the email is taken, the error will be returned together with "nil" value.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	// Method Me returns the user the token was issued to.
	//
	// If the user was deleted, repositories.ErrNotFound will be returned.
	Me(ctx context.Context, userID string) (*models.User, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger, exposeErrors bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger, ExposeErrors: exposeErrors},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes
// Note: This assumes the router is already scoped to /api
func (h *AuthHandler) RegisterRoutes(r chi.Router, authenticate func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.With(authenticate).Get("/me", h.Me)
	})
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Exchange email and password for a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Envelope{data=models.AuthResponse}
// @Failure 400 {object} models.Envelope "Missing email or password"
// @Failure 401 {object} models.Envelope "Invalid credentials"
// @Failure 500 {object} models.Envelope "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, r, err, "user")
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Register handles POST /auth/register
// @Summary Register a new user
// @Description Create a student or applicant account and return a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "New account"
// @Success 201 {object} models.Envelope{data=models.AuthResponse}
// @Failure 400 {object} models.Envelope "Invalid input or email already exists"
// @Failure 500 {object} models.Envelope "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, r, err, "user")
		return
	}

	h.RespondJSON(w, http.StatusCreated, resp)
}

// Me handles GET /auth/me
// @Summary Current user
// @Description Return the user the bearer token was issued to
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Envelope{data=models.User}
// @Failure 401 {object} models.Envelope "Missing or invalid token"
// @Failure 404 {object} models.Envelope "User no longer exists"
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.authService.Me(r.Context(), claims.UserID)
	if err != nil {
		h.RespondServiceError(w, r, err, "user")
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

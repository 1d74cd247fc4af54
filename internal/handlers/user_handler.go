package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/assetmagnets/platform/internal/models"
)

// UserService is the interface that wraps methods for user administration
type UserService interface {
	// Method List returns every user without password hashes.
	//
	// If some error occurs, the error will be returned together with nil.
	List(ctx context.Context) ([]*models.User, error)
	// Method Get returns a user by ID.
	//
	// If user not found, repositories.ErrNotFound will be returned together with nil.
	Get(ctx context.Context, id string) (*models.User, error)
	// Method Create creates a user with any role, hashing the supplied password.
	//
	// If the email is taken, services.ErrEmailExists will be returned together with nil.
	Create(ctx context.Context, req *models.UserRequest) (*models.User, error)
	// Method Update replaces email, name and role; the password changes only when supplied.
	//
	// If user not found, repositories.ErrNotFound will be returned together with nil.
	Update(ctx context.Context, id string, req *models.UserRequest) (*models.User, error)
	// Method Delete deletes a user by ID.
	//
	// If user not found, repositories.ErrNotFound will be returned.
	Delete(ctx context.Context, id string) error
}

// UserHandler handles user administration HTTP requests
type UserHandler struct {
	BaseHandler
	userService UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserService, logger *zap.Logger, exposeErrors bool) *UserHandler {
	return &UserHandler{
		BaseHandler: BaseHandler{Logger: logger, ExposeErrors: exposeErrors},
		userService: userService,
	}
}

// RegisterRoutes registers all user handler routes behind guard
func (h *UserHandler) RegisterRoutes(r chi.Router, guard func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Use(guard)
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// List handles GET /users
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Envelope{data=[]models.User}
// @Failure 401 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Router /users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.RespondServiceError(w, r, err, "user")
		return
	}

	h.RespondJSON(w, http.StatusOK, users)
}

// Get handles GET /users/{id}
// @Summary Get user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.Envelope{data=models.User}
// @Failure 404 {object} models.Envelope
// @Router /users/{id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, r, err, "user")
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// Create handles POST /users
// @Summary Create user
// @Description Create a user with any role
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UserRequest true "User"
// @Success 201 {object} models.Envelope{data=models.User}
// @Failure 400 {object} models.Envelope "Invalid input or email already exists"
// @Router /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.userService.Create(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, r, err, "user")
		return
	}

	h.RespondJSON(w, http.StatusCreated, user)
}

// Update handles PUT /users/{id}
// @Summary Update user
// @Description Replace email, name and role; password is changed only when supplied
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body models.UserRequest true "User"
// @Success 200 {object} models.Envelope{data=models.User}
// @Failure 400 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Router /users/{id} [put]
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.userService.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.RespondServiceError(w, r, err, "user")
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /users/{id}
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} models.Envelope{data=models.DeleteResponse}
// @Failure 404 {object} models.Envelope
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.userService.Delete(r.Context(), id); err != nil {
		h.RespondServiceError(w, r, err, "user")
		return
	}

	h.RespondJSON(w, http.StatusOK, models.DeleteResponse{ID: id})
}

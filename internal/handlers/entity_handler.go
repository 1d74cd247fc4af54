package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/assetmagnets/platform/internal/models"
)

// EntityService is the interface that wraps CRUD business logic for one entity.
type EntityService[T models.Record] interface {
	// Method List returns every record in display order.
	List(ctx context.Context) ([]T, error)
	// Method Get returns a record by ID.
	//
	// If record with such ID does not exist, repositories.ErrNotFound will be returned.
	Get(ctx context.Context, id string) (T, error)
	// Method Create validates and stores a new record, assigning its ID and timestamps.
	Create(ctx context.Context, item T) (T, error)
	// Method Update replaces the record with ID.
	//
	// If record with such ID does not exist, repositories.ErrNotFound will be returned.
	Update(ctx context.Context, id string, item T) (T, error)
	// Method Delete removes the record with ID.
	//
	// If record with such ID does not exist, repositories.ErrNotFound will be returned.
	Delete(ctx context.Context, id string) error
}

// AccessPolicy holds the middleware guarding each kind of route
//
// A nil middleware leaves the route public.
type AccessPolicy struct {
	Read  func(http.Handler) http.Handler
	Write func(http.Handler) http.Handler
	// Create overrides Write for POST when set
	Create func(http.Handler) http.Handler
}

// EntityHandler handles the CRUD routes of one entity
type EntityHandler[T models.Record] struct {
	BaseHandler
	resource string
	service  EntityService[T]
	newItem  func() T
}

// NewEntityHandler creates a new entity handler
//
// "resource" is the singular entity name used in messages.
func NewEntityHandler[T models.Record](resource string, service EntityService[T], newItem func() T, logger *zap.Logger, exposeErrors bool) *EntityHandler[T] {
	return &EntityHandler[T]{
		BaseHandler: BaseHandler{Logger: logger, ExposeErrors: exposeErrors},
		resource:    resource,
		service:     service,
		newItem:     newItem,
	}
}

// EntityRoutes holds the handler of each CRUD route of one entity
type EntityRoutes struct {
	List   http.HandlerFunc
	Get    http.HandlerFunc
	Create http.HandlerFunc
	Update http.HandlerFunc
	Delete http.HandlerFunc
}

// RegisterEntityRoutes registers the list, get, create, update and delete routes under path
func RegisterEntityRoutes(r chi.Router, path string, routes EntityRoutes, policy AccessPolicy) {
	create := policy.Create
	if create == nil {
		create = policy.Write
	}

	r.Route(path, func(r chi.Router) {
		r.With(optional(policy.Read)).Get("/", routes.List)
		r.With(optional(policy.Read)).Get("/{id}", routes.Get)
		r.With(optional(create)).Post("/", routes.Create)
		r.With(optional(policy.Write)).Put("/{id}", routes.Update)
		r.With(optional(policy.Write)).Delete("/{id}", routes.Delete)
	})
}

// optional substitutes a pass-through for a nil middleware
func optional(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw == nil {
		return passThrough
	}
	return mw
}

// List handles GET /{path}
func (h *EntityHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.RespondServiceError(w, r, err, h.resource)
		return
	}
	if items == nil {
		items = []T{}
	}

	h.RespondJSON(w, http.StatusOK, items)
}

// Get handles GET /{path}/{id}
func (h *EntityHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, r, err, h.resource)
		return
	}

	h.RespondJSON(w, http.StatusOK, item)
}

// Create handles POST /{path}
func (h *EntityHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	item := h.newItem()
	if !h.DecodeJSON(w, r, item) {
		return
	}

	created, err := h.service.Create(r.Context(), item)
	if err != nil {
		h.RespondServiceError(w, r, err, h.resource)
		return
	}

	h.RespondJSON(w, http.StatusCreated, created)
}

// Update handles PUT /{path}/{id}
func (h *EntityHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	item := h.newItem()
	if !h.DecodeJSON(w, r, item) {
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), item)
	if err != nil {
		h.RespondServiceError(w, r, err, h.resource)
		return
	}

	h.RespondJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /{path}/{id}
func (h *EntityHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.RespondServiceError(w, r, err, h.resource)
		return
	}

	h.RespondJSON(w, http.StatusOK, models.DeleteResponse{ID: id})
}

// Package handlers exposes the REST API over chi
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/assetmagnets/platform/internal/models"
	"github.com/assetmagnets/platform/internal/repositories"
	"github.com/assetmagnets/platform/internal/services"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
	// ExposeErrors puts the underlying error text into 500 responses
	ExposeErrors bool
}

// RespondJSON sends data wrapped in a success envelope
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	h.writeEnvelope(w, status, models.Envelope{Success: true, Data: data})
}

// RespondError sends an error envelope
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.writeEnvelope(w, status, models.Envelope{Success: false, Message: message})
}

func (h *BaseHandler) writeEnvelope(w http.ResponseWriter, status int, env models.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(env); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondServiceError translates a service error into a status code and envelope
//
// "resource" names the entity in not-found messages.
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, r *http.Request, err error, resource string) {
	switch {
	case errors.Is(err, models.ErrValidation):
		h.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		h.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrEmailExists):
		h.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repositories.ErrDuplicate):
		h.RespondError(w, http.StatusBadRequest, resource+" already exists")
	case errors.Is(err, repositories.ErrInvalidReference):
		h.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repositories.ErrNotFound):
		h.RespondError(w, http.StatusNotFound, resource+" not found")
	default:
		h.Logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		message := "internal server error"
		if h.ExposeErrors {
			message = err.Error()
		}
		h.RespondError(w, http.StatusInternalServerError, message)
	}
}

// DecodeJSON reads the request body into dst, answering 400 or 413 on failure
func (h *BaseHandler) DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.RespondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

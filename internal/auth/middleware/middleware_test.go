package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetmagnets/platform/internal/auth/service"
	"github.com/assetmagnets/platform/internal/models"
)

// mockValidator is a mock implementation of TokenValidator
type mockValidator struct {
	claims map[string]*service.Claims
}

func (m *mockValidator) ValidateToken(tokenString string) (*service.Claims, error) {
	if c, ok := m.claims[tokenString]; ok {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

func newMockValidator() *mockValidator {
	return &mockValidator{claims: map[string]*service.Claims{
		"admin-token":   {UserID: "1", Email: "admin@assetmagnets.com", Role: models.RoleAdmin},
		"student-token": {UserID: "2", Email: "student@assetmagnets.com", Role: models.RoleStudent},
	}}
}

func okHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaims(r.Context())
		require.True(t, ok)
		w.Write([]byte(claims.UserID))
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name            string
		header          string
		expectedStatus  int
		expectedBody    string
		expectedMessage string
	}{
		{
			name:           "valid bearer token",
			header:         "Bearer admin-token",
			expectedStatus: http.StatusOK,
			expectedBody:   "1",
		},
		{
			name:           "case insensitive scheme",
			header:         "bearer student-token",
			expectedStatus: http.StatusOK,
			expectedBody:   "2",
		},
		{
			name:            "missing header",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "authentication required",
		},
		{
			name:            "wrong scheme",
			header:          "Basic admin-token",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "authentication required",
		},
		{
			name:            "invalid token",
			header:          "Bearer forged",
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "invalid or expired token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := AuthMiddleware(newMockValidator())(okHandler(t))

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
			if tt.expectedMessage != "" {
				var env models.Envelope
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
				assert.False(t, env.Success)
				assert.Equal(t, tt.expectedMessage, env.Message)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		allowed        []models.Role
		expectedStatus int
	}{
		{
			name:           "allowed role",
			header:         "Bearer admin-token",
			allowed:        []models.Role{models.RoleAdmin, models.RoleEditor},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "role not in allow-list",
			header:         "Bearer student-token",
			allowed:        []models.Role{models.RoleAdmin, models.RoleEditor},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "no token",
			allowed:        []models.Role{models.RoleAdmin},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			header:         "Bearer expired",
			allowed:        []models.Role{models.RoleAdmin},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RoleMiddleware(newMockValidator(), tt.allowed...)(okHandler(t))

			req := httptest.NewRequest(http.MethodPost, "/api/services", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthMiddleware_RealTokens(t *testing.T) {
	tg := service.NewTokenGenerator("integration-secret", time.Hour)
	token, _, err := tg.GenerateToken("u-42", "instructor@assetmagnets.com", models.RoleInstructor)
	require.NoError(t, err)

	handler := RoleMiddleware(tg, models.RoleAdmin, models.RoleEditor, models.RoleInstructor)(okHandler(t))

	req := httptest.NewRequest(http.MethodPost, "/api/courses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u-42", w.Body.String())
}

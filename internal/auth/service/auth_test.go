package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetmagnets/platform/internal/models"
)

const testSecret = "b8a3c2267dc85f855dea9b46b452bf20"

func signClaims(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return tokenString
}

func TestNewTokenGenerator(t *testing.T) {
	tg := NewTokenGenerator("test-secret-key", 24*time.Hour)

	assert.NotNil(t, tg)
	assert.Equal(t, "test-secret-key", tg.secret)
	assert.Equal(t, 24*time.Hour, tg.tokenExpiry)
}

func TestTokenGenerator_GenerateToken(t *testing.T) {
	tg := NewTokenGenerator(testSecret, time.Hour)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tg.now = func() time.Time { return fixed }

	t.Run("expiry follows configured lifetime", func(t *testing.T) {
		_, expiresAt, err := tg.GenerateToken("u-1", "a@b.com", models.RoleAdmin)
		require.NoError(t, err)
		assert.True(t, expiresAt.Equal(fixed.Add(time.Hour)))
	})

	t.Run("token format validation", func(t *testing.T) {
		token, _, err := tg.GenerateToken("u-1", "a@b.com", models.RoleStudent)
		require.NoError(t, err)
		assert.Len(t, strings.Split(token, "."), 3)
	})

	t.Run("claims round trip", func(t *testing.T) {
		token, _, err := tg.GenerateToken("0b8f6f0e-5f57-4c55-9a55-6a4fe3a2f6c1", "editor@assetmagnets.com", models.RoleEditor)
		require.NoError(t, err)

		claims, err := tg.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "0b8f6f0e-5f57-4c55-9a55-6a4fe3a2f6c1", claims.UserID)
		assert.Equal(t, "editor@assetmagnets.com", claims.Email)
		assert.Equal(t, models.RoleEditor, claims.Role)
		assert.True(t, claims.ExpiresAt.Equal(fixed.Add(time.Hour)))
	})
}

func TestTokenGenerator_ValidateToken(t *testing.T) {
	tg := NewTokenGenerator(testSecret, time.Hour)
	now := time.Now()

	tests := []struct {
		name          string
		token         func(t *testing.T) string
		expectedError string
	}{
		{
			name:          "empty string token",
			token:         func(t *testing.T) string { return "" },
			expectedError: "failed to parse token",
		},
		{
			name:          "invalid token format",
			token:         func(t *testing.T) string { return "invalid-token" },
			expectedError: "failed to parse token",
		},
		{
			name:          "malformed JWT - invalid base64",
			token:         func(t *testing.T) string { return "not-base64.not-base64.not-base64" },
			expectedError: "failed to parse token",
		},
		{
			name: "wrong signature method - non-HMAC",
			token: func(t *testing.T) string {
				claims := jwt.MapClaims{
					"sub":  "u-1",
					"role": "admin",
					"exp":  now.Add(time.Hour).Unix(),
					"type": "access",
				}
				token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
				tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return tokenString
			},
			expectedError: "unexpected signing method",
		},
		{
			name: "token without sub claim",
			token: func(t *testing.T) string {
				return signClaims(t, testSecret, jwt.MapClaims{
					"role": "admin",
					"exp":  now.Add(time.Hour).Unix(),
					"type": "access",
				})
			},
			expectedError: "sub not found",
		},
		{
			name: "token without type claim",
			token: func(t *testing.T) string {
				return signClaims(t, testSecret, jwt.MapClaims{
					"sub":  "u-1",
					"role": "admin",
					"exp":  now.Add(time.Hour).Unix(),
				})
			},
			expectedError: "not an access token",
		},
		{
			name: "token with unknown role",
			token: func(t *testing.T) string {
				return signClaims(t, testSecret, jwt.MapClaims{
					"sub":  "u-1",
					"role": "superuser",
					"exp":  now.Add(time.Hour).Unix(),
					"type": "access",
				})
			},
			expectedError: "unknown role",
		},
		{
			name: "token without exp claim",
			token: func(t *testing.T) string {
				return signClaims(t, testSecret, jwt.MapClaims{
					"sub":  "u-1",
					"role": "admin",
					"type": "access",
				})
			},
			expectedError: "failed to parse token",
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				return signClaims(t, testSecret, jwt.MapClaims{
					"sub":  "u-1",
					"role": "admin",
					"exp":  now.Add(-time.Hour).Unix(),
					"iat":  now.Add(-2 * time.Hour).Unix(),
					"type": "access",
				})
			},
			expectedError: "failed to parse token",
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return signClaims(t, "wrong-secret", jwt.MapClaims{
					"sub":  "u-1",
					"role": "admin",
					"exp":  now.Add(time.Hour).Unix(),
					"type": "access",
				})
			},
			expectedError: "failed to parse token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tg.ValidateToken(tt.token(t))
			assert.Error(t, err)
			assert.Nil(t, claims)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestTokenGenerator_TokenExpiry(t *testing.T) {
	tg := NewTokenGenerator(testSecret, time.Minute)
	current := time.Now()
	tg.now = func() time.Time { return current }

	token, _, err := tg.GenerateToken("u-1", "a@b.com", models.RoleStudent)
	require.NoError(t, err)

	_, err = tg.ValidateToken(token)
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)

	_, err = tg.ValidateToken(token)
	assert.Error(t, err)
}

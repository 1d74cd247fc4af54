// Package service issues and verifies the signed bearer tokens of the API
package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/assetmagnets/platform/internal/models"
)

// Claims is the identity carried by a valid token
type Claims struct {
	UserID    string
	Email     string
	Role      models.Role
	ExpiresAt time.Time
}

// TokenGenerator handles JWT token generation and validation
type TokenGenerator struct {
	secret      string
	tokenExpiry time.Duration
	now         func() time.Time
}

// NewTokenGenerator creates a new token generator
func NewTokenGenerator(secret string, tokenExpiry time.Duration) *TokenGenerator {
	return &TokenGenerator{
		secret:      secret,
		tokenExpiry: tokenExpiry,
		now:         time.Now,
	}
}

// GenerateToken signs a token for a user
// Payload contains the user id as subject, the email and the role
func (tg *TokenGenerator) GenerateToken(userID, email string, role models.Role) (string, time.Time, error) {
	issuedAt := tg.now()
	expiresAt := issuedAt.Add(tg.tokenExpiry)

	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  string(role),
		"exp":   expiresAt.Unix(),
		"iat":   issuedAt.Unix(),
		"type":  "access",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tg.secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, time.Unix(expiresAt.Unix(), 0), nil
}

// ValidateToken validates a token and returns its claims
func (tg *TokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tg.secret), nil
	}, jwt.WithTimeFunc(tg.now), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "access" {
		return nil, fmt.Errorf("token is not an access token")
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return nil, fmt.Errorf("sub not found in token")
	}

	email, _ := claims["email"].(string)

	roleStr, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("role not found in token")
	}
	role, ok := models.ParseRole(roleStr)
	if !ok {
		return nil, fmt.Errorf("unknown role in token: %s", roleStr)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("exp not found in token")
	}

	return &Claims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		ExpiresAt: exp.Time,
	}, nil
}

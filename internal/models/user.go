package models

import (
	"net/mail"
	"strings"
	"time"
)

// Role is the authorization tier of a user
type Role string

// Role constants
const (
	RoleAdmin      Role = "admin"
	RoleEditor     Role = "editor"
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
	RoleApplicant  Role = "applicant"
)

// Roles lists every known role
var Roles = []Role{RoleAdmin, RoleEditor, RoleInstructor, RoleStudent, RoleApplicant}

// ParseRole normalizes s to a known role
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Roles {
		if r == known {
			return r, true
		}
	}
	return "", false
}

// User represents a user in the system
type User struct {
	Base
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // Never serialize password hash
	Role         Role   `json:"role"`
}

// Validate checks the stored form of a user
func (u *User) Validate() error {
	if err := required("email", u.Email); err != nil {
		return err
	}
	if err := required("name", u.Name); err != nil {
		return err
	}
	return oneOf("role", u.Role, Roles...)
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email is a bare address
func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email && strings.Contains(email, ".")
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents a self-registration request
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
}

// AuthResponse is returned by login and register
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *User     `json:"user"`
}

// UserRequest represents an admin request to create or replace a user
//
// Password is required on create and optional on update.
type UserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

package services

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown email or a wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailExists is returned when a user with the email is already registered
	ErrEmailExists = errors.New("email already exists")
)

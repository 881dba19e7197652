package auth

import "errors"

var (
	// ErrInvalidCredentials covers unknown user, wrong password and wrong role alike.
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrUserNotFound        = errors.New("user not found")
)

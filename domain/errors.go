package domain

import "errors"

// Registration and account errors
var (
	ErrEmailTaken   = errors.New("email is already registered")
	ErrUserNotFound = errors.New("user not found")
)

// Verification errors
var (
	ErrAlreadyVerified = errors.New("user is already verified")
	ErrNotVerified     = errors.New("user is not verified")
	ErrOtpStillValid   = errors.New("a valid otp has already been sent")
	ErrOtpExpired      = errors.New("otp has expired")
	ErrOtpMismatch     = errors.New("otp code does not match")
)

// Credential errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
	ErrMissingToken   = errors.New("token is required")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

package domain

import "time"

// User represents an account in the system. PasswordHash, Otp and
// OtpExpiresAt are credential fields: they are loaded only by the
// repository's credential lookups and are never serialized.
type User struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Otp          string     `json:"-"`
	OtpExpiresAt *time.Time `json:"-"`
	Verified     bool       `json:"verified"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Session is a persisted refresh-token record. Token is the opaque
// value the record is keyed by; a user may hold several concurrent
// sessions, one per device.
type Session struct {
	Token     string    `json:"token"`
	UserID    uint      `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenPair is an access/refresh token pair returned by verification,
// login and refresh.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResult carries the authenticated user together with the issued
// token pair.
type AuthResult struct {
	User   *User
	Tokens TokenPair
}

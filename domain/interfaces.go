package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations. FindByEmail and
// FindByID return users without credential fields; the WithCredentials
// variant loads password hash and OTP state for verification paths.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByEmailWithCredentials(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	SetOtp(ctx context.Context, userID uint, code string, expiresAt time.Time) error
	MarkVerified(ctx context.Context, userID uint) error
}

// SessionRepository defines refresh-token record operations. Records
// expire on their own once ExpiresAt passes; a record that can be
// found is guaranteed to be unexpired.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	FindByToken(ctx context.Context, token string) (*Session, error)
	Replace(ctx context.Context, oldToken string, session *Session) error
	DeleteAllForUser(ctx context.Context, userID uint) (int64, error)
}

// AuthService defines the authentication lifecycle.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*User, error)
	RequestOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, userID uint) (int64, error)
	Profile(ctx context.Context, userID uint) (*User, error)
}

// PasswordService defines password hashing operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations. Access and refresh tokens are
// signed with distinct secrets so one kind can never be replayed as
// the other.
type TokenService interface {
	GenerateAccessToken(userID uint) (string, error)
	GenerateRefreshToken(userID uint) (string, error)
	ValidateAccessToken(token string) (uint, error)
	ValidateRefreshToken(token string) (uint, error)
}

// OTPGenerator produces short numeric verification codes.
type OTPGenerator interface {
	Generate() (string, error)
}

// Mailer delivers an OTP code to a user over email.
type Mailer interface {
	SendOTP(ctx context.Context, to, code string, expiresAt time.Time) error
}

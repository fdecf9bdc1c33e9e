package mocks

import (
	"context"

	"github.com/Mehdi-ehsani/steptracker-server/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc   func(ctx context.Context, name, email, password string) (*domain.User, error)
	RequestOTPFunc func(ctx context.Context, email string) error
	VerifyOTPFunc  func(ctx context.Context, email, code string) (*domain.AuthResult, error)
	LoginFunc      func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	RefreshFunc    func(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	LogoutFunc     func(ctx context.Context, userID uint) (int64, error)
	ProfileFunc    func(ctx context.Context, userID uint) (*domain.User, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	return &domain.User{ID: 1, Name: name, Email: email}, nil
}

// RequestOTP generates and delivers an OTP
func (m *MockAuthService) RequestOTP(ctx context.Context, email string) error {
	if m.RequestOTPFunc != nil {
		return m.RequestOTPFunc(ctx, email)
	}
	return nil
}

// VerifyOTP verifies an OTP and starts a session
func (m *MockAuthService) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, code)
	}
	return &domain.AuthResult{
		User:   &domain.User{ID: 1, Email: email, Verified: true},
		Tokens: domain.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
	}, nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.AuthResult{
		User:   &domain.User{ID: 1, Email: email, Verified: true},
		Tokens: domain.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
	}, nil
}

// Refresh rotates a refresh token
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	return &domain.TokenPair{AccessToken: "access2", RefreshToken: "refresh2"}, nil
}

// Logout removes every session a user owns
func (m *MockAuthService) Logout(ctx context.Context, userID uint) (int64, error) {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID)
	}
	return 0, nil
}

// Profile returns the user's sanitized record
func (m *MockAuthService) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.ProfileFunc != nil {
		return m.ProfileFunc(ctx, userID)
	}
	return &domain.User{ID: userID, Verified: true}, nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)

package mocks

import (
	"context"
	"strconv"
	"time"

	"github.com/Mehdi-ehsani/steptracker-server/domain"
)

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default behavior: predictable hash
	return "hashed_" + password, nil
}

// Verify verifies a password against a hash
func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	// Default behavior: matches the predictable hash
	return hashedPassword == "hashed_"+password
}

// Compile-time interface compliance verification
var _ domain.PasswordService = (*MockPasswordService)(nil)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateAccessTokenFunc  func(userID uint) (string, error)
	GenerateRefreshTokenFunc func(userID uint) (string, error)
	ValidateAccessTokenFunc  func(token string) (uint, error)
	ValidateRefreshTokenFunc func(token string) (uint, error)

	issued int
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateAccessToken mints an access token
func (m *MockTokenService) GenerateAccessToken(userID uint) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(userID)
	}
	m.issued++
	return "access_token_" + strconv.Itoa(m.issued), nil
}

// GenerateRefreshToken mints a refresh token
func (m *MockTokenService) GenerateRefreshToken(userID uint) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(userID)
	}
	m.issued++
	return "refresh_token_" + strconv.Itoa(m.issued), nil
}

// ValidateAccessToken validates an access token
func (m *MockTokenService) ValidateAccessToken(token string) (uint, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	// Default behavior: user 1
	return 1, nil
}

// ValidateRefreshToken validates a refresh token
func (m *MockTokenService) ValidateRefreshToken(token string) (uint, error) {
	if m.ValidateRefreshTokenFunc != nil {
		return m.ValidateRefreshTokenFunc(token)
	}
	// Default behavior: user 1
	return 1, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)

// MockOTPGenerator implements domain.OTPGenerator for testing
type MockOTPGenerator struct {
	GenerateFunc func() (string, error)
}

// NewMockOTPGenerator creates a new MockOTPGenerator with default behaviors
func NewMockOTPGenerator() *MockOTPGenerator {
	return &MockOTPGenerator{}
}

// Generate produces an OTP code
func (m *MockOTPGenerator) Generate() (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	// Default behavior: fixed code
	return "123456", nil
}

// Compile-time interface compliance verification
var _ domain.OTPGenerator = (*MockOTPGenerator)(nil)

// MockMailer implements domain.Mailer for testing. Sent codes are
// captured so tests can replay them.
type MockMailer struct {
	SendOTPFunc func(ctx context.Context, to, code string, expiresAt time.Time) error

	SentTo    []string
	SentCodes []string
}

// NewMockMailer creates a new MockMailer with default behaviors
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// SendOTP delivers an OTP code
func (m *MockMailer) SendOTP(ctx context.Context, to, code string, expiresAt time.Time) error {
	if m.SendOTPFunc != nil {
		return m.SendOTPFunc(ctx, to, code, expiresAt)
	}
	// Default behavior: capture and succeed
	m.SentTo = append(m.SentTo, to)
	m.SentCodes = append(m.SentCodes, code)
	return nil
}

// LastCode returns the most recently captured OTP code.
func (m *MockMailer) LastCode() string {
	if len(m.SentCodes) == 0 {
		return ""
	}
	return m.SentCodes[len(m.SentCodes)-1]
}

// Compile-time interface compliance verification
var _ domain.Mailer = (*MockMailer)(nil)

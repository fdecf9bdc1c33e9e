package mocks

import (
	"context"
	"time"

	"github.com/Mehdi-ehsani/steptracker-server/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc                     func(ctx context.Context, user *domain.User) error
	FindByEmailFunc                func(ctx context.Context, email string) (*domain.User, error)
	FindByEmailWithCredentialsFunc func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc                   func(ctx context.Context, id uint) (*domain.User, error)
	SetOtpFunc                     func(ctx context.Context, userID uint, code string, expiresAt time.Time) error
	MarkVerifiedFunc               func(ctx context.Context, userID uint) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a new user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds a user by email without credential fields
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByEmailWithCredentials finds a user by email with credential fields
func (m *MockUserRepository) FindByEmailWithCredentials(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailWithCredentialsFunc != nil {
		return m.FindByEmailWithCredentialsFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by id
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrUserNotFound
}

// SetOtp stores an OTP code and its expiry on a user
func (m *MockUserRepository) SetOtp(ctx context.Context, userID uint, code string, expiresAt time.Time) error {
	if m.SetOtpFunc != nil {
		return m.SetOtpFunc(ctx, userID, code, expiresAt)
	}
	// Default behavior: success
	return nil
}

// MarkVerified marks a user verified and clears the stored OTP
func (m *MockUserRepository) MarkVerified(ctx context.Context, userID uint) error {
	if m.MarkVerifiedFunc != nil {
		return m.MarkVerifiedFunc(ctx, userID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)

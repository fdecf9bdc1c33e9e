package mocks

import (
	"context"

	"github.com/Mehdi-ehsani/steptracker-server/domain"
)

// MockSessionRepository implements domain.SessionRepository for testing
type MockSessionRepository struct {
	CreateFunc           func(ctx context.Context, session *domain.Session) error
	FindByTokenFunc      func(ctx context.Context, token string) (*domain.Session, error)
	ReplaceFunc          func(ctx context.Context, oldToken string, session *domain.Session) error
	DeleteAllForUserFunc func(ctx context.Context, userID uint) (int64, error)
}

// NewMockSessionRepository creates a new MockSessionRepository with default behaviors
func NewMockSessionRepository() *MockSessionRepository {
	return &MockSessionRepository{}
}

// Create creates a new refresh-token record
func (m *MockSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	// Default behavior: success
	return nil
}

// FindByToken finds a record by its opaque token value
func (m *MockSessionRepository) FindByToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, token)
	}
	// Default behavior: not found
	return nil, domain.ErrSessionNotFound
}

// Replace atomically swaps the old token's record for a new one
func (m *MockSessionRepository) Replace(ctx context.Context, oldToken string, session *domain.Session) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, oldToken, session)
	}
	// Default behavior: success
	return nil
}

// DeleteAllForUser removes every record owned by a user
func (m *MockSessionRepository) DeleteAllForUser(ctx context.Context, userID uint) (int64, error) {
	if m.DeleteAllForUserFunc != nil {
		return m.DeleteAllForUserFunc(ctx, userID)
	}
	// Default behavior: nothing deleted
	return 0, nil
}

// Compile-time interface compliance verification
var _ domain.SessionRepository = (*MockSessionRepository)(nil)

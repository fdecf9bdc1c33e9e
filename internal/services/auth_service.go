package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Mehdi-ehsani/steptracker-server/domain"
)

// AuthServiceImpl implements domain.AuthService. It owns the
// registration -> verification -> login -> refresh -> logout state
// machine; transport concerns stay in the HTTP layer.
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpGen      domain.OTPGenerator
	mailer      domain.Mailer
	logger      *zap.Logger
	otpTTL      time.Duration
	refreshTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpGen domain.OTPGenerator,
	mailer domain.Mailer,
	logger *zap.Logger,
	otpTTL time.Duration,
	refreshTTL time.Duration,
) domain.AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpGen:      otpGen,
		mailer:      mailer,
		logger:      logger,
		otpTTL:      otpTTL,
		refreshTTL:  refreshTTL,
	}
}

// Register implements domain.AuthService. No tokens are issued here:
// registration does not start a session.
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hashedPassword,
		Verified:     false,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", zap.Uint("user_id", user.ID), zap.String("email", user.Email))

	return sanitize(user), nil
}

// RequestOTP implements domain.AuthService. The code is delivered
// before it is persisted: a failed send leaves no stored OTP. A failed
// persist after a successful send leaves a delivered code the user
// cannot use until they retry; that case is surfaced to the caller and
// logged as an operational alert.
func (s *AuthServiceImpl) RequestOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := s.userRepo.FindByEmailWithCredentials(ctx, email)
	if err != nil {
		return err
	}

	if user.Verified {
		return domain.ErrAlreadyVerified
	}

	if user.OtpExpiresAt != nil && time.Now().Before(*user.OtpExpiresAt) {
		return domain.ErrOtpStillValid
	}

	code, err := s.otpGen.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}
	expiresAt := time.Now().Add(s.otpTTL)

	if err := s.mailer.SendOTP(ctx, user.Email, code, expiresAt); err != nil {
		return fmt.Errorf("failed to send otp: %w", err)
	}

	if err := s.userRepo.SetOtp(ctx, user.ID, code, expiresAt); err != nil {
		s.logger.Warn("otp delivered but not persisted, user must retry",
			zap.Uint("user_id", user.ID), zap.String("email", user.Email), zap.Error(err))
		return fmt.Errorf("failed to store otp: %w", err)
	}

	s.logger.Info("otp requested", zap.Uint("user_id", user.ID), zap.String("email", user.Email))

	return nil
}

// VerifyOTP implements domain.AuthService. This is the only path
// besides Login that produces a session.
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, email, code string) (*domain.AuthResult, error) {
	email = normalizeEmail(email)

	user, err := s.userRepo.FindByEmailWithCredentials(ctx, email)
	if err != nil {
		return nil, err
	}

	if user.Verified {
		return nil, domain.ErrAlreadyVerified
	}

	// Expiry is checked before the code itself: a stale code never
	// succeeds even when the digits match.
	if user.OtpExpiresAt == nil || !time.Now().Before(*user.OtpExpiresAt) {
		return nil, domain.ErrOtpExpired
	}

	if user.Otp != code {
		return nil, domain.ErrOtpMismatch
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to mark user verified: %w", err)
	}
	user.Verified = true

	pair, err := s.startSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user verified", zap.Uint("user_id", user.ID), zap.String("email", user.Email))

	return &domain.AuthResult{User: sanitize(user), Tokens: *pair}, nil
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	email = normalizeEmail(email)

	user, err := s.userRepo.FindByEmailWithCredentials(ctx, email)
	if err != nil {
		return nil, err
	}

	// Verification gates the password check: an unverified account
	// fails the same way whether or not the password is right.
	if !user.Verified {
		return nil, domain.ErrNotVerified
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.startSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.Uint("user_id", user.ID), zap.String("email", user.Email))

	return &domain.AuthResult{User: sanitize(user), Tokens: *pair}, nil
}

// Refresh implements domain.AuthService. Rotation, not an additive
// grant: the consumed token is replaced atomically and never succeeds
// again.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if _, err := s.tokenSvc.ValidateRefreshToken(refreshToken); err != nil {
		return nil, domain.ErrTokenInvalid
	}

	session, err := s.sessionRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return nil, domain.ErrTokenExpired
		}
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	pair, err := s.issuePair(session.UserID)
	if err != nil {
		return nil, err
	}

	next := &domain.Session{
		Token:     pair.RefreshToken,
		UserID:    session.UserID,
		ExpiresAt: time.Now().Add(s.refreshTTL),
		CreatedAt: time.Now(),
	}

	if err := s.sessionRepo.Replace(ctx, refreshToken, next); err != nil {
		// A concurrent refresh consumed the record first.
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to rotate session: %w", err)
	}

	return pair, nil
}

// Logout implements domain.AuthService. Removing zero sessions is
// still a success: already logged out is not an error.
func (s *AuthServiceImpl) Logout(ctx context.Context, userID uint) (int64, error) {
	deleted, err := s.sessionRepo.DeleteAllForUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sessions: %w", err)
	}

	s.logger.Info("user logged out", zap.Uint("user_id", userID), zap.Int64("sessions_deleted", deleted))

	return deleted, nil
}

// Profile implements domain.AuthService
func (s *AuthServiceImpl) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// startSession mints a token pair and persists the refresh-token
// record that backs it.
func (s *AuthServiceImpl) startSession(ctx context.Context, userID uint) (*domain.TokenPair, error) {
	pair, err := s.issuePair(userID)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{
		Token:     pair.RefreshToken,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.refreshTTL),
		CreatedAt: time.Now(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return pair, nil
}

func (s *AuthServiceImpl) issuePair(userID uint) (*domain.TokenPair, error) {
	accessToken, err := s.tokenSvc.GenerateAccessToken(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.GenerateRefreshToken(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func sanitize(user *domain.User) *domain.User {
	clean := *user
	clean.PasswordHash = ""
	clean.Otp = ""
	clean.OtpExpiresAt = nil
	return &clean
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Mehdi-ehsani/steptracker-server/domain"
	"github.com/Mehdi-ehsani/steptracker-server/internal/mocks"
)

var errNetwork = errors.New("connection refused")

func init() {
	gin.SetMode(gin.TestMode)
}

func performJSON(t *testing.T, handler gin.HandlerFunc, body string) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return w, resp
}

func TestAuthHandlers_Register(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		setupMocks      func(m *mocks.MockAuthService)
		expectedStatus  int
		expectedSuccess bool
		expectedMessage string
	}{
		{
			name:            "successful registration",
			body:            `{"name":"Ali","email":"a@x.com","password":"password123"}`,
			expectedStatus:  http.StatusCreated,
			expectedSuccess: true,
			expectedMessage: "user registered, verification code required",
		},
		{
			name:            "missing fields",
			body:            `{"email":"a@x.com"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Name is required, Password is required",
		},
		{
			name:            "short name and password",
			body:            `{"name":"Al","email":"a@x.com","password":"short"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Name must be at least 3 characters long, Password must be at least 8 characters long",
		},
		{
			name:            "invalid email",
			body:            `{"name":"Ali","email":"not-an-email","password":"password123"}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid email",
		},
		{
			name:            "malformed json",
			body:            `{"name":`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid request body",
		},
		{
			name: "email already taken",
			body: `{"name":"Ali","email":"a@x.com","password":"password123"}`,
			setupMocks: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, name, email, password string) (*domain.User, error) {
					return nil, domain.ErrEmailTaken
				}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: domain.ErrEmailTaken.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			if tt.setupMocks != nil {
				tt.setupMocks(authSvc)
			}
			h := NewAuthHandlers(authSvc)

			w, resp := performJSON(t, h.Register, tt.body)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if resp.Success != tt.expectedSuccess {
				t.Errorf("expected success=%v, got %v", tt.expectedSuccess, resp.Success)
			}
			if resp.Message != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, resp.Message)
			}
			if resp.Status != tt.expectedStatus {
				t.Errorf("expected envelope status %d, got %d", tt.expectedStatus, resp.Status)
			}
		})
	}
}

func TestAuthHandlers_Register_NoTokensInResponse(t *testing.T) {
	h := NewAuthHandlers(mocks.NewMockAuthService())

	w, _ := performJSON(t, h.Register, `{"name":"Ali","email":"a@x.com","password":"password123"}`)

	if strings.Contains(w.Body.String(), "accessToken") {
		t.Error("registration response must not carry tokens")
	}
}

func TestAuthHandlers_SendOTP(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		serviceError    error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "otp sent",
			body:            `{"email":"a@x.com"}`,
			expectedStatus:  http.StatusOK,
			expectedMessage: "otp sent",
		},
		{
			name:            "already verified",
			body:            `{"email":"a@x.com"}`,
			serviceError:    domain.ErrAlreadyVerified,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: domain.ErrAlreadyVerified.Error(),
		},
		{
			name:            "otp still valid",
			body:            `{"email":"a@x.com"}`,
			serviceError:    domain.ErrOtpStillValid,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: domain.ErrOtpStillValid.Error(),
		},
		{
			name:            "missing email",
			body:            `{}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Email is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			if tt.serviceError != nil {
				authSvc.RequestOTPFunc = func(ctx context.Context, email string) error {
					return tt.serviceError
				}
			}
			h := NewAuthHandlers(authSvc)

			w, resp := performJSON(t, h.SendOTP, tt.body)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if resp.Message != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, resp.Message)
			}
		})
	}
}

func TestAuthHandlers_VerifyOTP(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	h := NewAuthHandlers(authSvc)

	w, resp := performJSON(t, h.VerifyOTP, `{"email":"a@x.com","otp":"123456"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !resp.Success {
		t.Error("expected success envelope")
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("expected token pair in data, got %T", resp.Data)
	}
	if data["accessToken"] != "access" || data["refreshToken"] != "refresh" {
		t.Errorf("unexpected token pair: %v", data)
	}
}

func TestAuthHandlers_Login(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		serviceError    error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "login successful",
			body:            `{"email":"a@x.com","password":"password123"}`,
			expectedStatus:  http.StatusOK,
			expectedMessage: "login successful",
		},
		{
			name:            "not verified",
			body:            `{"email":"a@x.com","password":"password123"}`,
			serviceError:    domain.ErrNotVerified,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: domain.ErrNotVerified.Error(),
		},
		{
			name:            "wrong password",
			body:            `{"email":"a@x.com","password":"wrong1234"}`,
			serviceError:    domain.ErrInvalidCredentials,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: domain.ErrInvalidCredentials.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			if tt.serviceError != nil {
				authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
					return nil, tt.serviceError
				}
			}
			h := NewAuthHandlers(authSvc)

			w, resp := performJSON(t, h.Login, tt.body)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if resp.Message != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, resp.Message)
			}
		})
	}
}

func TestAuthHandlers_Refresh(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		serviceError    error
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "tokens refreshed",
			body:            `{"refreshToken":"some_token"}`,
			expectedStatus:  http.StatusOK,
			expectedMessage: "tokens refreshed",
		},
		{
			name:            "invalid token",
			body:            `{"refreshToken":"bogus"}`,
			serviceError:    domain.ErrTokenInvalid,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: domain.ErrTokenInvalid.Error(),
		},
		{
			name:            "expired token",
			body:            `{"refreshToken":"stale"}`,
			serviceError:    domain.ErrTokenExpired,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: domain.ErrTokenExpired.Error(),
		},
		{
			name:            "missing token",
			body:            `{}`,
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "RefreshToken is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc := mocks.NewMockAuthService()
			if tt.serviceError != nil {
				authSvc.RefreshFunc = func(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
					return nil, tt.serviceError
				}
			}
			h := NewAuthHandlers(authSvc)

			w, resp := performJSON(t, h.Refresh, tt.body)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if resp.Message != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, resp.Message)
			}
		})
	}
}

func TestAuthHandlers_UnknownServiceError(t *testing.T) {
	authSvc := mocks.NewMockAuthService()
	authSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
		return nil, errNetwork
	}
	h := NewAuthHandlers(authSvc)

	w, resp := performJSON(t, h.Login, `{"email":"a@x.com","password":"password123"}`)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if resp.Message != "internal server error" {
		t.Errorf("expected generic message, got %q", resp.Message)
	}
}

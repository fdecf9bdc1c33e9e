package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mehdi-ehsani/steptracker-server/domain"
	"github.com/Mehdi-ehsani/steptracker-server/internal/http/middleware"
)

// ProfileHandlers handles the authenticated profile endpoints.
type ProfileHandlers struct {
	authSvc domain.AuthService
}

// NewProfileHandlers creates new profile handlers
func NewProfileHandlers(authSvc domain.AuthService) *ProfileHandlers {
	return &ProfileHandlers{authSvc: authSvc}
}

// Me returns the authenticated user's profile
func (h *ProfileHandlers) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, domain.ErrMissingToken)
		return
	}

	user, err := h.authSvc.Profile(c.Request.Context(), userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	respondOK(c, http.StatusOK, "profile retrieved", user)
}

// Logout removes every refresh-token record the user owns.
func (h *ProfileHandlers) Logout(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, domain.ErrMissingToken)
		return
	}

	deleted, err := h.authSvc.Logout(c.Request.Context(), userID)
	if err != nil {
		respondInternal(c, err)
		return
	}

	message := "logged out from all devices"
	if deleted == 0 {
		message = "already logged out"
	}
	respondOK(c, http.StatusOK, message, nil)
}

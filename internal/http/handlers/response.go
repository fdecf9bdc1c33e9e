package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Mehdi-ehsani/steptracker-server/domain"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Status: status, Message: message, Data: data})
}

func respondError(c *gin.Context, status int, err error) {
	c.JSON(status, Response{Success: false, Status: status, Message: err.Error()})
}

// respondInternal hides the failure behind a generic message but keeps
// the underlying detail as a diagnostic. Stack traces never leave the
// process.
func respondInternal(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Status:  http.StatusInternalServerError,
		Message: "internal server error",
		Error:   err.Error(),
	})
}

// businessStatus maps domain errors to the 400 business-failure
// responses of the public endpoints. Anything unmapped is a 500.
func respondDomainError(c *gin.Context, err error) {
	for _, known := range []error{
		domain.ErrEmailTaken,
		domain.ErrUserNotFound,
		domain.ErrAlreadyVerified,
		domain.ErrNotVerified,
		domain.ErrOtpStillValid,
		domain.ErrOtpExpired,
		domain.ErrOtpMismatch,
		domain.ErrInvalidCredentials,
		domain.ErrTokenInvalid,
		domain.ErrTokenExpired,
	} {
		if errors.Is(err, known) {
			respondError(c, http.StatusBadRequest, known)
			return
		}
	}
	respondInternal(c, err)
}

// respondBindingError turns binding failures into the comma-joined
// field message list of the validation contract.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondError(c, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}
	respondError(c, http.StatusBadRequest, errors.New(strings.Join(messages, ", ")))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be less than %s characters long", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

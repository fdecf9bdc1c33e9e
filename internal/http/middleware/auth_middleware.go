package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mehdi-ehsani/steptracker-server/domain"
)

const userIDKey = "user_id"

// AuthMiddleware authenticates requests from the Authorization header.
// The "Bearer " prefix is optional: a bare token is accepted too.
func AuthMiddleware(tokenSvc domain.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if strings.HasPrefix(token, "Bearer ") {
			token = strings.TrimPrefix(token, "Bearer ")
		}
		token = strings.TrimSpace(token)
		if token == "" {
			abortUnauthorized(c, domain.ErrMissingToken)
			return
		}

		userID, err := tokenSvc.ValidateAccessToken(token)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTokenExpired):
				abortUnauthorized(c, domain.ErrTokenExpired)
			default:
				abortUnauthorized(c, domain.ErrTokenMalformed)
			}
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by AuthMiddleware.
func UserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func abortUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"status":  http.StatusUnauthorized,
		"message": err.Error(),
	})
}

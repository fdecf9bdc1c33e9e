package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Mehdi-ehsani/steptracker-server/domain"
	"github.com/Mehdi-ehsani/steptracker-server/internal/http/handlers"
	"github.com/Mehdi-ehsani/steptracker-server/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, ph *handlers.ProfileHandlers, tokenSvc domain.TokenService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/api/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/send-otp", ah.SendOTP)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.POST("/login", ah.Login)
	auth.POST("/refresh", ah.Refresh)

	profile := r.Group("/api/profile").Use(middleware.AuthMiddleware(tokenSvc))
	profile.GET("", ph.Me)
	profile.POST("/logout", ph.Logout)

	return r
}

package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Mehdi-ehsani/steptracker-server/internal/config"
	httpx "github.com/Mehdi-ehsani/steptracker-server/internal/http"
	"github.com/Mehdi-ehsani/steptracker-server/internal/http/handlers"
	"github.com/Mehdi-ehsani/steptracker-server/internal/infrastructure/auth"
	"github.com/Mehdi-ehsani/steptracker-server/internal/infrastructure/database"
	"github.com/Mehdi-ehsani/steptracker-server/internal/infrastructure/notifications"
	"github.com/Mehdi-ehsani/steptracker-server/internal/infrastructure/repositories"
	"github.com/Mehdi-ehsani/steptracker-server/internal/services"
)

func Run(cfg *config.Config, logger *zap.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(context.Background()); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)
	mailer := notifications.NewSMTPService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	sessionRepo := repositories.NewSessionRepository(rdb.Client)

	// Services
	otpGen := services.NewOTPGenerator(cfg.OTPLength)
	authSvc := services.NewAuthService(userRepo, sessionRepo, passwordSvc, tokenSvc, otpGen, mailer, logger, cfg.OTPTTL, cfg.RefreshTTL)

	// Handlers
	authH := handlers.NewAuthHandlers(authSvc)
	profileH := handlers.NewProfileHandlers(authSvc)

	r := httpx.BuildRouter(authH, profileH, tokenSvc)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}

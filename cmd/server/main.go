package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"coffee_backend/internal/app/di"
	"coffee_backend/internal/app/router"
	authadapters "coffee_backend/internal/feature/auth/adapters"
	authhandler "coffee_backend/internal/feature/auth/transport/handler"
	authusecase "coffee_backend/internal/feature/auth/usecase"
	menuhandler "coffee_backend/internal/feature/menu/transport/handler"
	menuusecase "coffee_backend/internal/feature/menu/usecase"
	orderadapters "coffee_backend/internal/feature/order/adapters"
	orderhandler "coffee_backend/internal/feature/order/transport/handler"
	orderusecase "coffee_backend/internal/feature/order/usecase"
	"coffee_backend/internal/platform/config"
	"coffee_backend/internal/platform/db"
	"coffee_backend/internal/platform/http/handler"
	jwtmw "coffee_backend/internal/platform/jwt"
	"coffee_backend/internal/platform/otp"
	infraredis "coffee_backend/internal/platform/redis"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// db
	gdb, err := db.Open(db.LoadConfigFromEnv())
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.Migrate(gdb); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
		slog.Info("migrations applied")
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		slog.Error("failed to get sql.DB", "error", err)
		os.Exit(1)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(context.Background()); err != nil {
		slog.Warn("Redis unavailable. Running without menu cache and reset throttling.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	mailer, err := di.NewMailer(cfg)
	if err != nil {
		slog.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}

	// Repository
	userRepo := authadapters.NewUserRepository(gdb)
	resetRepo := authadapters.NewPasswordResetRepository(gdb)
	menuRepo := di.NewMenuRepository(rdb, gdb, cfg.MenuCacheTTL)
	orderRepo := orderadapters.NewOrderRepository(gdb)

	// Usecase
	authUC := authusecase.NewAuthUsecase(
		userRepo,
		resetRepo,
		jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiry),
		otp.NewGenerator(),
		mailer,
		authusecase.WithLimiter(di.NewResetLimiter(rdb, cfg)),
		authusecase.WithOTPTTL(cfg.OTPTTL),
	)
	accountUC := authusecase.NewAccountUsecase(userRepo)
	menuUC := menuusecase.NewMenuUsecase(menuRepo)
	orderUC := orderusecase.NewOrderUsecase(orderRepo)

	r := router.NewRouter(router.Handlers{
		Auth:    authhandler.NewAuthHandler(authUC),
		Account: authhandler.NewAccountHandler(accountUC),
		Menu:    menuhandler.NewMenuHandler(menuUC),
		Order:   orderhandler.NewOrderHandler(orderUC),
		Ready:   handler.Ready(sqlDB),
	}, router.Options{JWTSecret: cfg.JWTSecret, AllowedOrigins: cfg.AllowedOrigins})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

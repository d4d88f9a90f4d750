// Command purge deletes expired password reset challenges. Run it from a scheduler.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	authadapters "coffee_backend/internal/feature/auth/adapters"
	"coffee_backend/internal/platform/config"
	"coffee_backend/internal/platform/db"
)

func main() {
	config.LoadDotEnv()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	gdb, err := db.Open(db.LoadConfigFromEnv())
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close(gdb) }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	n, err := authadapters.NewPasswordResetRepository(gdb).DeleteExpired(ctx, time.Now())
	if err != nil {
		slog.Error("purge failed", "error", err)
		os.Exit(1)
	}
	slog.Info("purge ok", "deleted", n)
}

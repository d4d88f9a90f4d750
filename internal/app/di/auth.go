package di

import (
	"github.com/redis/go-redis/v9"

	"coffee_backend/internal/feature/auth/usecase"
	"coffee_backend/internal/platform/config"
	"coffee_backend/internal/platform/mail"
	"coffee_backend/internal/shared/ratelimiter"
)

// NewResetLimiter returns the forgot-password throttle, or nil when Redis is unavailable.
// The nil interface disables throttling in AuthUsecase.
func NewResetLimiter(rdb *redis.Client, cfg *config.Config) usecase.RequestLimiter {
	if rdb == nil || cfg.OTPRequestLimit <= 0 {
		return nil
	}
	return ratelimiter.NewRateLimiter(rdb, cfg.OTPRequestLimit, cfg.OTPRequestWindow, "otp")
}

// NewMailer creates the SMTP mailer from configuration.
func NewMailer(cfg *config.Config) (*mail.SMTPMailer, error) {
	return mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})
}

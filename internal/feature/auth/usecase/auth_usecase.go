package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"coffee_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8

	// defaultOTPTTL is how long a reset code stays valid.
	defaultOTPTTL = 10 * time.Minute

	otpMailSubject = "Klara Coffee OTP"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrUserAlreadyExists on a duplicate phone or email.
	Create(ctx context.Context, user *entity.User) error

	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// ExistsByPhoneOrEmail reports whether either identifier is already registered.
	ExistsByPhoneOrEmail(ctx context.Context, phone, email string) (bool, error)

	// SetDisabled updates the disabled flag of a user.
	SetDisabled(ctx context.Context, id uint, disabled bool) error
}

// PasswordResetRepository stores outstanding reset challenges.
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *entity.PasswordReset) error

	// FindValid returns a challenge for userID with the given code that is unexpired at now.
	// It returns ErrInvalidOrExpiredOTP when none matches.
	FindValid(ctx context.Context, userID uint, otp string, now time.Time) (*entity.PasswordReset, error)

	// Consume atomically deletes the challenge and stores the new password hash.
	Consume(ctx context.Context, resetID, userID uint, passwordHash string) error

	// DeleteExpiredByUserID removes the user's challenges that expired at or before now.
	DeleteExpiredByUserID(ctx context.Context, userID uint, now time.Time) error
}

// TokenGenerator signs bearer tokens.
type TokenGenerator interface {
	GenerateToken(userID uint, role string) (string, error)
}

// OTPGenerator produces one-time codes.
type OTPGenerator interface {
	Generate() (string, error)
}

// Mailer delivers plaintext email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// RequestLimiter throttles repeated requests for the same key.
type RequestLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// SignupInput carries the fields accepted at registration.
type SignupInput struct {
	Username string
	Phone    string
	Email    string
	Password string
	Role     string
}

// AuthUsecase implements signup, login and the OTP password reset flow.
type AuthUsecase struct {
	users   UserRepository
	resets  PasswordResetRepository
	tokens  TokenGenerator
	otps    OTPGenerator
	mailer  Mailer
	limiter RequestLimiter // nil disables throttling
	otpTTL  time.Duration
	now     func() time.Time
}

// Option customizes an AuthUsecase.
type Option func(*AuthUsecase)

// WithLimiter throttles forgot-password requests per phone.
func WithLimiter(l RequestLimiter) Option {
	return func(u *AuthUsecase) { u.limiter = l }
}

// WithOTPTTL overrides how long reset codes stay valid.
func WithOTPTTL(ttl time.Duration) Option {
	return func(u *AuthUsecase) {
		if ttl > 0 {
			u.otpTTL = ttl
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(u *AuthUsecase) { u.now = now }
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserRepository, resets PasswordResetRepository, tokens TokenGenerator,
	otps OTPGenerator, mailer Mailer, opts ...Option) *AuthUsecase {
	u := &AuthUsecase{
		users:  users,
		resets: resets,
		tokens: tokens,
		otps:   otps,
		mailer: mailer,
		otpTTL: defaultOTPTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters long", ErrWeakPassword, minPasswordLength)
	}
	return nil
}

// Signup registers a user with a bcrypt-hashed password and returns the new ID.
func (u *AuthUsecase) Signup(ctx context.Context, in SignupInput) (uint, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if role != entity.RoleUser && role != entity.RoleAdmin {
		return 0, ErrInvalidRole
	}
	if err := validatePassword(in.Password); err != nil {
		return 0, err
	}

	exists, err := u.users.ExistsByPhoneOrEmail(ctx, in.Phone, in.Email)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return 0, ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username: in.Username,
		Phone:    in.Phone,
		Email:    in.Email,
		Password: string(hashed),
		Role:     role,
	}
	// unique indexes still catch a concurrent duplicate
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			return 0, err
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return user.ID, nil
}

// Login authenticates by phone (preferred) or email and returns a signed token.
// A disabled account is rejected before the password is checked.
func (u *AuthUsecase) Login(ctx context.Context, phone, email, password string) (string, error) {
	var (
		user *entity.User
		err  error
	)
	switch {
	case phone != "":
		user, err = u.users.FindByPhone(ctx, phone)
	case email != "":
		user, err = u.users.FindByEmail(ctx, email)
	default:
		return "", ErrCredentialRequired
	}
	if err != nil {
		return "", err
	}

	if user.Disabled {
		return "", ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ForgotPassword stores a fresh reset code for the phone's owner and emails it.
func (u *AuthUsecase) ForgotPassword(ctx context.Context, phone string) error {
	user, err := u.users.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}

	if u.limiter != nil {
		allowed, err := u.limiter.Allow(ctx, phone)
		if err != nil {
			// fail open
			slog.Warn("reset limiter unavailable", "error", err)
		} else if !allowed {
			return ErrTooManyResetRequests
		}
	}

	now := u.now()
	if err := u.resets.DeleteExpiredByUserID(ctx, user.ID, now); err != nil {
		slog.Warn("failed to sweep expired reset codes", "user_id", user.ID, "error", err)
	}

	code, err := u.otps.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}

	reset := &entity.PasswordReset{
		UserID:    user.ID,
		OTP:       code,
		ExpiresAt: now.Add(u.otpTTL),
	}
	if err := u.resets.Create(ctx, reset); err != nil {
		return fmt.Errorf("failed to store reset code: %w", err)
	}

	body := fmt.Sprintf("Your OTP is %s. It expires in %d minutes.", code, int(u.otpTTL.Minutes()))
	if err := u.mailer.Send(ctx, user.Email, otpMailSubject, body); err != nil {
		return fmt.Errorf("failed to send otp email: %w", err)
	}
	return nil
}

// ResetPassword replaces the password when otp matches an unexpired challenge of the phone's owner.
// The challenge is consumed in the same transaction as the password update.
func (u *AuthUsecase) ResetPassword(ctx context.Context, phone, otp, newPassword string) error {
	user, err := u.users.FindByPhone(ctx, phone)
	if err != nil {
		return err
	}

	reset, err := u.resets.FindValid(ctx, user.ID, otp, u.now())
	if err != nil {
		return err
	}

	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := u.resets.Consume(ctx, reset.ID, user.ID, string(hashed)); err != nil {
		if errors.Is(err, ErrInvalidOrExpiredOTP) {
			return err
		}
		return fmt.Errorf("failed to reset password: %w", err)
	}
	return nil
}

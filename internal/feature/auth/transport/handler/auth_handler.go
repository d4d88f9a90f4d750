// Package handler provides the HTTP handlers of the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"coffee_backend/internal/api"
	"coffee_backend/internal/feature/auth/usecase"
)

// AuthUsecase defines the auth operations used by the handler.
// Following Go convention, the interface is defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Signup(ctx context.Context, in usecase.SignupInput) (uint, error)
	// Login authenticates by phone or email and returns a signed token.
	Login(ctx context.Context, phone, email, password string) (string, error)
	ForgotPassword(ctx context.Context, phone string) error
	ResetPassword(ctx context.Context, phone, otp, newPassword string) error
}

// AuthHandler handles HTTP requests for the auth operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles POST /api/auth/signup.
// - binds the JSON body (400 on validation failure)
// - 409 when the phone or email is already registered
// - 201 with the new user id on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req api.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	in := usecase.SignupInput{
		Username: req.Username,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Role != nil {
		in.Role = *req.Role
	}

	id, err := h.auth.Signup(c.Request.Context(), in)
	if err != nil {
		slog.Warn("signup failed", "error", err, "phone", req.Phone, "remote_addr", c.ClientIP())
		writeError(c, err)
		return
	}
	slog.Info("user signup successful", "user_id", id, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, api.SignupResponse{Message: "User registered successfully", UserId: id})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	phone, email := deref(req.Phone), deref(req.Email)
	token, err := h.auth.Login(c.Request.Context(), phone, email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "phone", phone, "email", email, "remote_addr", c.ClientIP())
		writeError(c, err)
		return
	}
	slog.Info("user login successful", "phone", phone, "email", email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// ForgotPassword handles POST /api/auth/forgot-password.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req api.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.auth.ForgotPassword(c.Request.Context(), req.Phone); err != nil {
		slog.Warn("forgot password failed", "error", err, "phone", req.Phone, "remote_addr", c.ClientIP())
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "OTP sent to your email"})
}

// ResetPassword handles POST /api/auth/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req api.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Phone, req.Otp, req.NewPassword); err != nil {
		slog.Warn("reset password failed", "error", err, "phone", req.Phone, "remote_addr", c.ClientIP())
		writeError(c, err)
		return
	}
	slog.Info("password reset successful", "phone", req.Phone, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Password reset successfully"})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// writeError maps usecase errors to HTTP responses.
// Unknown errors become a generic 500; the cause is only logged.
func writeError(c *gin.Context, err error) {
	status, msg := http.StatusInternalServerError, "internal server error"
	switch {
	case errors.Is(err, usecase.ErrCredentialRequired),
		errors.Is(err, usecase.ErrInvalidRole),
		errors.Is(err, usecase.ErrWeakPassword),
		errors.Is(err, usecase.ErrInvalidOrExpiredOTP):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, usecase.ErrInvalidCredentials):
		status, msg = http.StatusUnauthorized, err.Error()
	case errors.Is(err, usecase.ErrAccountDisabled):
		status, msg = http.StatusForbidden, err.Error()
	case errors.Is(err, usecase.ErrUserNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, usecase.ErrUserAlreadyExists):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, usecase.ErrTooManyResetRequests):
		status, msg = http.StatusTooManyRequests, err.Error()
	default:
		slog.Error("auth request failed", "error", err, "path", c.FullPath())
	}
	c.JSON(status, api.ErrorResponse{Error: msg})
}

package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"coffee_backend/internal/api"
)

// AccountUsecase defines the admin account operations.
type AccountUsecase interface {
	Disable(ctx context.Context, id uint) error
	Enable(ctx context.Context, id uint) error
}

// AccountHandler serves the admin enable/disable routes.
type AccountHandler struct {
	accounts AccountUsecase
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts AccountUsecase) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Disable handles PUT /api/admin/disable/:id.
func (h *AccountHandler) Disable(c *gin.Context) {
	h.setDisabled(c, h.accounts.Disable, "User disabled successfully")
}

// Enable handles PUT /api/admin/enable/:id.
func (h *AccountHandler) Enable(c *gin.Context) {
	h.setDisabled(c, h.accounts.Enable, "User enabled successfully")
}

func (h *AccountHandler) setDisabled(c *gin.Context, apply func(context.Context, uint) error, msg string) {
	id, err := api.BindPathID("id", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := apply(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	slog.Info("account status changed", "user_id", id, "message", msg)
	c.JSON(http.StatusOK, api.MessageResponse{Message: msg})
}

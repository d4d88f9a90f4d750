// Package handler provides the HTTP handlers of the menu feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"coffee_backend/internal/api"
	"coffee_backend/internal/feature/menu/domain/entity"
	"coffee_backend/internal/feature/menu/usecase"
)

// MenuUsecase defines the menu operations used by the handler.
type MenuUsecase interface {
	List(ctx context.Context) ([]entity.MenuItem, error)
	Create(ctx context.Context, item entity.MenuItem) (uint, error)
	Update(ctx context.Context, id uint, item entity.MenuItem) error
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, q string) ([]entity.MenuItem, error)
}

// MenuHandler handles HTTP requests for the menu catalog.
type MenuHandler struct {
	uc MenuUsecase
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(uc MenuUsecase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// List handles GET /api/menu.
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.uc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(items))
}

// Search handles GET /api/menu/search?q=.
func (h *MenuHandler) Search(c *gin.Context) {
	var params api.GetApiMenuSearchParams
	_ = c.ShouldBindQuery(&params)

	items, err := h.uc.Search(c.Request.Context(), params.Q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toResponse(items))
}

// Create handles POST /api/menu.
func (h *MenuHandler) Create(c *gin.Context) {
	var req api.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	id, err := h.uc.Create(c.Request.Context(), fromRequest(req))
	if err != nil {
		writeError(c, err)
		return
	}
	slog.Info("menu item created", "id", id, "name", req.Name)
	c.JSON(http.StatusCreated, api.IDResponse{Id: id})
}

// Update handles PUT /api/menu/:id.
func (h *MenuHandler) Update(c *gin.Context) {
	id, err := api.BindPathID("id", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	var req api.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.uc.Update(c.Request.Context(), id, fromRequest(req)); err != nil {
		writeError(c, err)
		return
	}
	slog.Info("menu item updated", "id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Menu item updated successfully"})
}

// Delete handles DELETE /api/menu/:id.
func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := api.BindPathID("id", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	slog.Info("menu item deleted", "id", id)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Menu item deleted successfully"})
}

func fromRequest(req api.MenuItemRequest) entity.MenuItem {
	item := entity.MenuItem{Name: req.Name, Price: req.Price}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.IsSpecial != nil {
		item.IsSpecial = *req.IsSpecial
	}
	return item
}

func toResponse(items []entity.MenuItem) []api.MenuItem {
	out := make([]api.MenuItem, 0, len(items))
	for _, it := range items {
		out = append(out, api.MenuItem{
			Id:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Category:    it.Category,
			IsSpecial:   it.IsSpecial,
		})
	}
	return out
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyQuery), errors.Is(err, usecase.ErrInvalidMenuItem):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("menu request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

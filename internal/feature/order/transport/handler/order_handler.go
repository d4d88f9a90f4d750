// Package handler provides the HTTP handlers of the order feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"coffee_backend/internal/api"
	"coffee_backend/internal/feature/order/domain/entity"
	"coffee_backend/internal/feature/order/usecase"
	jwtmw "coffee_backend/internal/platform/jwt"
)

// OrderUsecase defines the order operations used by the handler.
type OrderUsecase interface {
	Place(ctx context.Context, caller usecase.Caller, in usecase.PlaceOrderInput) (uint, error)
	ListForUser(ctx context.Context, caller usecase.Caller, userID uint) ([]entity.Order, error)
}

// OrderHandler handles HTTP requests for orders. Routes must sit behind jwtmw.AuthRequired.
type OrderHandler struct {
	uc OrderUsecase
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(uc OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req api.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	in := usecase.PlaceOrderInput{
		TotalCost:      req.TotalCost,
		DeliveryMethod: req.DeliveryMethod,
		PaymentMethod:  req.PaymentMethod,
		Items:          make([]entity.OrderItem, 0, len(req.Items)),
	}
	if req.UserId != nil {
		in.UserID = *req.UserId
	}
	for _, it := range req.Items {
		in.Items = append(in.Items, entity.OrderItem{ProductID: it.ProductId, Quantity: it.Quantity})
	}

	id, err := h.uc.Place(c.Request.Context(), caller, in)
	if err != nil {
		slog.Warn("place order failed", "error", err, "caller_id", caller.UserID)
		writeError(c, err)
		return
	}
	slog.Info("order placed", "order_id", id, "caller_id", caller.UserID, "items", len(in.Items))
	c.JSON(http.StatusCreated, api.OrderCreatedResponse{Message: "Order placed successfully", OrderId: id})
}

// ListForUser handles GET /api/orders/:userId.
func (h *OrderHandler) ListForUser(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	userID, err := api.BindPathID("userId", c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	orders, err := h.uc.ListForUser(c.Request.Context(), caller, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]api.Order, 0, len(orders))
	for _, o := range orders {
		items := make([]api.OrderItem, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, api.OrderItem{Id: it.ID, ProductId: it.ProductID, Quantity: it.Quantity})
		}
		out = append(out, api.Order{
			Id:             o.ID,
			UserId:         o.UserID,
			TotalCost:      o.TotalCost,
			Status:         o.Status,
			DeliveryMethod: o.DeliveryMethod,
			PaymentMethod:  o.PaymentMethod,
			CreatedAt:      o.CreatedAt.UTC(),
			Items:          items,
		})
	}
	c.JSON(http.StatusOK, out)
}

func callerFrom(c *gin.Context) (usecase.Caller, bool) {
	id, role, ok := jwtmw.Caller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "unauthorized"})
		return usecase.Caller{}, false
	}
	return usecase.Caller{UserID: id, Role: role}, true
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmptyOrder),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrUnknownProduct):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("order request failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

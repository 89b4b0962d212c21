package http

import (
	"errors"
	"net/http"

	"storefront/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	svc service.OrderService
	log *zap.Logger
}

func NewOrderHandler(svc service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: log}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	defer func() {
		RecordCheckout(c.Writer.Status() >= 200 && c.Writer.Status() < 300)
	}()

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid checkout request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, newError("invalid request body"))
		return
	}

	result, err := h.svc.PlaceOrder(c.Request.Context(), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrOrderPersistence) {
			// Детали уже в серверном логе; клиенту только общий ответ.
			c.JSON(http.StatusInternalServerError, newError(service.ErrOrderPersistence.Error()))
			return
		}
		// Everything else surfacing from PlaceOrder is client-correctable.
		c.JSON(http.StatusBadRequest, newError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, CheckoutResponse{
		OK:        true,
		OrderID:   result.OrderID,
		OrderCode: result.OrderCode,
		Total:     result.Total,
	})
}

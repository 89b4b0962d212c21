package http

import (
	"errors"
	"net/http"

	"storefront/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	svc service.OrderService
	log *zap.Logger
}

func NewAdminHandler(svc service.OrderService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: log}
}

// GetOrder handles GET /api/admin/orders/:id (behind basic auth).
func (h *AdminHandler) GetOrder(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, newError("Invalid id"))
		return
	}

	order, items, err := h.svc.GetOrderDetail(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, newError("Invalid id"))
	case errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, newError("Order not found"))
	case err != nil:
		h.log.Error("get order detail", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, newError("internal server error"))
	default:
		c.JSON(http.StatusOK, OrderDetailResponse{Order: order, Items: items})
	}
}

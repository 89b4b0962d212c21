package http

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	svc service.CatalogService
	log *zap.Logger
}

func NewCatalogHandler(svc service.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: log}
}

// List handles GET /api/products?q=&category=&sort=
func (h *CatalogHandler) List(c *gin.Context) {
	list, err := h.svc.ListProducts(c.Request.Context(), service.ListProductsFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	})
	if err != nil {
		h.log.Error("list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, newError("internal server error"))
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get handles GET /api/products/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, newError("Invalid id"))
		return
	}

	p, err := h.svc.GetProduct(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrInvalidID):
		c.JSON(http.StatusBadRequest, newError("Invalid id"))
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, newError("Product not found"))
	case err != nil:
		h.log.Error("get product", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, newError("internal server error"))
	default:
		c.JSON(http.StatusOK, p)
	}
}

// parseID accepts well-formed positive integers only.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}

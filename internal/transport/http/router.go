package http

import (
	"storefront/config"
	"storefront/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// JSON bodies above 1 MB are rejected before binding.
const maxBodyBytes = 1 << 20

func Router(cfg *config.Config, catalog service.CatalogService, orders service.OrderService, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(PrometheusMiddleware())
	r.Use(BodyLimit(maxBodyBytes))

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	catalogHandler := NewCatalogHandler(catalog, log)
	orderHandler := NewOrderHandler(orders, log)
	adminHandler := NewAdminHandler(orders, log)

	api := r.Group("/api")
	{
		api.GET("/products", catalogHandler.List)
		api.GET("/products/:id", catalogHandler.Get)
		api.POST("/orders", orderHandler.Create)
	}

	admin := api.Group("/admin", AdminAuth(cfg.AdminUser, cfg.AdminPass, log))
	{
		admin.GET("/orders/:id", adminHandler.GetOrder)
	}

	return r
}

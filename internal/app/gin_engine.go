package app

import (
	"log/slog"

	"MercadoPagoBridge/pkg/logger"
	"MercadoPagoBridge/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(
		logger.CorrelationMiddleware(),
		metrics.GinMiddleware("/metrics", "/health/live", "/health/ready"),
		logger.GinBodyLogger(slog.Default()),
		gin.Recovery(),
	)
	return engine
}

package app

import (
	"ecomm-gateway/pkg/logger"
	"ecomm-gateway/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func NewGinEngine(l *logger.Logger, logBodies bool) *gin.Engine {
	engine := gin.New()
	engine.Use(
		metrics.GinMiddleware(),
		logger.CorrelationMiddleware(),
		l.GinRequestLogger(logBodies),
		gin.Recovery(),
	)
	return engine
}

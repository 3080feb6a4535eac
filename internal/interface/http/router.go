package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hellosamyak/AgriPulse-backend/internal/infra/config"
	"github.com/hellosamyak/AgriPulse-backend/pkg/metrics"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, collector *metrics.Collector) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(handler.logger, collector),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/", handler.Home)
	router.GET("/metrics", gin.WrapH(collector.Handler()))
	router.GET("/dashboard", handler.Dashboard)
	router.GET("/terminal", handler.Terminal)
	router.GET("/terminal/trade", handler.TradeSimulation)
	router.POST("/chat", handler.Chat)

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout.Std(),
		WriteTimeout:   cfg.HTTP.WriteTimeout.Std(),
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger, collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()
		collector.RequestServed(c.Request.Method, c.FullPath(), strconv.Itoa(status))
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", latency.Milliseconds(),
			"request_id", requestID(c),
		)
	}
}

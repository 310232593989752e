package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"taskflow/cmd/api/di"
	"taskflow/internal/adapter/gin/router"
	"taskflow/internal/config"
)

// New builds the HTTP server hosting the REST API.
func New(cfg *config.Config, l *zap.Logger, c *di.Container) *http.Server {
	engine := router.SetupRouter(
		c.AuthHandler,
		c.TaskHandler,
		c.Tokens,
		c.RateLimiter,
		cfg.App.CORSAllowOrigins,
		l,
	)

	addr := ":" + cfg.App.HTTPPort
	l.Info("REST API configured", zap.String("address", addr))

	return &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

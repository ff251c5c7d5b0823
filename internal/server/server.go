// Package server wires a logger and a router together; internal/app
// builds on top of it with the mapserver's actual routes.
package server

import (
	"context"

	"github.com/kegliz/naqmap/internal/logger"
	"github.com/kegliz/naqmap/internal/server/router"
)

type (
	// EngineOptions configures the logger a new engine is built with.
	EngineOptions struct {
		Debug bool
	}

	// Server is the minimal contract the app package's appServer
	// fulfils: start listening, and shut down cleanly.
	Server interface {
		Listen(port int, localOnly bool) error
		Shutdown(ctx context.Context) error
	}
)

// NewLoggerAndRouter builds the base logger and router a Server is
// constructed from.
func NewLoggerAndRouter(options EngineOptions, corsAllowOrigin string) (l *logger.Logger, r *router.Router) {
	l = logger.NewLogger(logger.LoggerOptions{Debug: options.Debug})
	r = router.NewRouter(router.RouterOptions{
		Logger:          l,
		CORSAllowOrigin: corsAllowOrigin,
	})
	return
}

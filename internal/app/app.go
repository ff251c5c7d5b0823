// Package app assembles the mapserver's gin routes on top of
// internal/server, mirroring the teacher's appServer/NewServer split.
package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kegliz/naqmap/internal/config"
	"github.com/kegliz/naqmap/internal/logger"
	"github.com/kegliz/naqmap/internal/server"
	"github.com/kegliz/naqmap/internal/server/router"
)

type (
	// ServerOptions configures NewServer.
	ServerOptions struct {
		C       *config.Config
		Version string
	}

	appServer struct {
		logger  *logger.Logger
		router  *router.Router
		store   *compileStore
		version string
	}

	appServerOptions struct {
		logger  *logger.Logger
		router  *router.Router
		version string
	}
)

var errInternalServerError = errors.New("internal server error")

func newAppServer(options appServerOptions) *appServer {
	a := &appServer{
		logger:  options.logger,
		router:  options.router,
		store:   newCompileStore(),
		version: options.version,
	}
	a.router.SetRoutes(a.routes())
	return a
}

// Listen implements server.Server.
func (a *appServer) Listen(port int, localOnly bool) error {
	a.logger.Debug().Str("version", a.version).Msg("debug mapserver")
	a.logger.Info().
		Int("port", port).
		Bool("localOnly", localOnly).
		Msg("starting mapserver")
	return a.router.Start(port, localOnly)
}

// Shutdown implements server.Server.
func (a *appServer) Shutdown(ctx context.Context) error {
	return a.router.Shutdown(ctx)
}

// NewServer builds the mapserver's Server from configuration.
func NewServer(options ServerOptions) (server.Server, error) {
	l, r := server.NewLoggerAndRouter(
		server.EngineOptions{Debug: options.C.GetBool("debug")},
		options.C.CORSAllowOrigin(),
	)
	l = l.SpawnForComponent("mapserver")
	app := newAppServer(appServerOptions{
		logger:  l,
		router:  r,
		version: options.Version,
	})
	return app, nil
}

func (a *appServer) getLoggerFromContext(c *gin.Context) (*logger.Logger, error) {
	if loggerInstance, ok := c.Get("logger"); ok {
		if l, ok := loggerInstance.(*logger.Logger); ok {
			return l, nil
		}
	}
	a.logger.Error().Err(errInternalServerError).Send()
	c.String(http.StatusInternalServerError, "Internal Server Error - please contact the administrator")
	return nil, errInternalServerError
}

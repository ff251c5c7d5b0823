package app

import (
	"net/http"

	"github.com/kegliz/naqmap/internal/server/router"
)

func (a *appServer) routes() []*router.Route {
	return []*router.Route{
		{
			Name:        "health",
			Method:      http.MethodGet,
			Pattern:     "/health",
			HandlerFunc: a.HealthHandler,
		},
		{
			Name:        "api.compile",
			Method:      http.MethodPost,
			Pattern:     "/api/compile",
			HandlerFunc: a.CompileCircuit,
		},
		{
			Name:        "api.compile.viz",
			Method:      http.MethodGet,
			Pattern:     "/api/compile/:id/viz",
			HandlerFunc: a.RenderCompiledLayout,
		},
	}
}

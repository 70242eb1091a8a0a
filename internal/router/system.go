package router

import (
	"net/http"

	"github.com/deppfellow/geology-api/internal/handler"
	"github.com/deppfellow/geology-api/internal/lib/media"
	"github.com/deppfellow/geology-api/internal/server"
	"github.com/deppfellow/geology-api/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes mounts endpoints outside the versioned API: health,
// docs, static assets, local media and robots.txt.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
	r.StaticFS("/static", static.Files)
	r.GET("/robots.txt", h.Robots.Serve)

	// S3 objects are served by the bucket; only local storage goes through us.
	if local, ok := s.Storage.(*media.LocalStorage); ok {
		prefix := local.MediaURL()
		r.GET(prefix+"/*", echo.WrapHandler(http.StripPrefix(prefix, local.Handler())))
	}
}

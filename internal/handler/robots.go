package handler

import (
	"net/http"

	"github.com/deppfellow/geology-api/internal/server"
	"github.com/labstack/echo/v4"
)

// RobotsHandler serves the configured /robots.txt body.
type RobotsHandler struct {
	Handler
}

func NewRobotsHandler(s *server.Server) *RobotsHandler {
	return &RobotsHandler{Handler: NewHandler(s)}
}

func (h *RobotsHandler) Serve(c echo.Context) error {
	return c.String(http.StatusOK, h.server.Config.Server.RobotsTxt)
}

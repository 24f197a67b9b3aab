package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/pscheid92/reviewpulse/internal/platform/version"
)

type indexPageData struct {
	Version string
}

func (s *Server) handleIndex(c echo.Context) error {
	return s.renderTemplate(c, "index.html", indexPageData{Version: version.Get().Version})
}

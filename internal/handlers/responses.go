package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/petcommunity/internal/shell"
	"github.com/nfrund/petcommunity/internal/view"
	"github.com/nfrund/petcommunity/web/src/templates/layouts"
	g "maragu.dev/gomponents"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health reports that the frontend is serving. It does not call the Pet API.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// renderPage wraps content in the base layout, with the navbar reflecting the
// current identity and any pending flash messages.
func renderPage(c echo.Context, status int, title string, content g.Node) error {
	page := layouts.Page{
		Title:   title,
		Flashes: view.GetFlashData(c),
	}
	if sh, err := shell.FromContext(c); err == nil {
		_, page.Authenticated = sh.Identity()
	}
	return c.Render(status, "", layouts.Base(page, view.AdaptGomponentToTempl(content)))
}

// isFragmentRequest reports whether htmx asked for a partial swap rather than
// a boosted full-page navigation.
func isFragmentRequest(c echo.Context) bool {
	r := c.Request()
	return r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Boosted") != "true"
}

// requestID returns the ID assigned by the RequestID middleware.
func requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

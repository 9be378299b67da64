package server

import (
	"errors"
	"log/slog"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/petcommunity/internal/middleware"
)

// setupErrorHandling logs errors that escaped the handlers with a stack trace
// before handing them to echo's default handler. Plain HTTP errors are
// expected outcomes and are not logged here.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			logger := middleware.FromContext(c.Request().Context())
			logger.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"method", c.Request().Method,
				"path", c.Path(),
				slog.String("stack_trace", string(debug.Stack())),
			)
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

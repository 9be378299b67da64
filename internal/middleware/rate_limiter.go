package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/petcommunity/internal/view"
	"golang.org/x/time/rate"
)

const (
	// DefaultFormBurst is how many auth form posts one client may send back to back.
	DefaultFormBurst = 10
	// DefaultPetBurst is how many pet changes one client may send back to back.
	DefaultPetBurst = 30

	// MsgSlowDown is flashed when pet changes are rate limited.
	MsgSlowDown = "Too many changes at once. Please wait a moment and try again."
)

// RateLimiter limits auth form submissions per client IP. Each client may
// send a burst of requests, refilled at one request every six seconds.
// Rejected requests get a plain 429.
func RateLimiter(burst int) echo.MiddlewareFunc {
	return newRateLimiter(burst, DefaultFormBurst, func(c echo.Context) error {
		return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
	})
}

// FlashRateLimiter limits post-redirect-get forms. A rejected request is
// answered like any other failed form: an error flash and a 303 to
// redirectTo, which boosted htmx forms follow.
func FlashRateLimiter(burst int, redirectTo string) echo.MiddlewareFunc {
	return newRateLimiter(burst, DefaultPetBurst, func(c echo.Context) error {
		view.SetFlashError(c, MsgSlowDown)
		return c.Redirect(http.StatusSeeOther, redirectTo)
	})
}

func newRateLimiter(burst, fallback int, deny echo.HandlerFunc) echo.MiddlewareFunc {
	if burst <= 0 {
		burst = fallback
	}
	config := middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Every(6 * time.Second),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			FromContext(c.Request().Context()).Warn("Rate limit exceeded", "client", identifier, "path", c.Path())
			return deny(c)
		},
	}
	return middleware.RateLimiterWithConfig(config)
}

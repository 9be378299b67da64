package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/petcommunity/internal/app"
	"github.com/nfrund/petcommunity/internal/config"
	"github.com/nfrund/petcommunity/internal/events"
	"github.com/nfrund/petcommunity/internal/handlers"
	"github.com/nfrund/petcommunity/internal/middleware"
	"github.com/nfrund/petcommunity/internal/pubsub"
	"github.com/nfrund/petcommunity/internal/session"
	"github.com/nfrund/petcommunity/internal/shell"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider
	Bus *pubsub.WatermillBridge

	authHandler      *handlers.AuthHandler
	dashboardHandler *handlers.DashboardHandler
}

// New creates a Server from cfg. Routes are registered separately with
// RegisterRoutes.
func New(cfg config.Provider) (*Server, error) {
	deps, err := app.Resolve(app.NewInjector(cfg))
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = deps.Renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger)
	e.Use(middleware.AccessLog())
	e.Use(echomw.Recover())
	e.Use(echosession.Middleware(session.NewCookieStore(cfg.GetSessionSecret())))
	e.Use(shell.Middleware())

	// Subscriptions end when the bus is closed on shutdown.
	if err := events.SubscribeAudit(context.Background(), deps.Bus, slog.Default().With("component", "audit")); err != nil {
		return nil, fmt.Errorf("subscribe audit log: %w", err)
	}

	static, err := staticFS(cfg.GetStaticDir())
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	mountStatic(e, static)

	return &Server{
		E:                e,
		Cfg:              cfg,
		Bus:              deps.Bus,
		authHandler:      deps.Auth,
		dashboardHandler: deps.Dashboard,
	}, nil
}

// Package app assembles the application services in a dependency injector.
package app

import (
	"fmt"

	"github.com/nfrund/petcommunity/internal/config"
	"github.com/nfrund/petcommunity/internal/dashboard"
	"github.com/nfrund/petcommunity/internal/events"
	"github.com/nfrund/petcommunity/internal/handlers"
	"github.com/nfrund/petcommunity/internal/petapi"
	"github.com/nfrund/petcommunity/internal/pubsub"
	"github.com/nfrund/petcommunity/internal/rendering"
	"github.com/samber/do/v2"
)

// Dependencies holds the services the HTTP server needs, resolved from the
// injector.
type Dependencies struct {
	Config    config.Provider
	API       *petapi.Client
	Bus       *pubsub.WatermillBridge
	Renderer  *rendering.UniversalRenderer
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
}

// NewInjector registers every service provider. Services are built lazily on
// first invocation.
func NewInjector(cfg config.Provider) do.Injector {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.Provide(i, newAPIClient)
	do.Provide(i, newBus)
	do.Provide(i, newRenderer)
	do.Provide(i, newPublisher)
	do.Provide(i, newLoader)
	do.Provide(i, newAuthHandler)
	do.Provide(i, newDashboardHandler)
	return i
}

// Resolve builds the server dependencies from i.
func Resolve(i do.Injector) (Dependencies, error) {
	var deps Dependencies
	var err error
	if deps.Config, err = do.Invoke[config.Provider](i); err != nil {
		return deps, fmt.Errorf("resolve config: %w", err)
	}
	if deps.API, err = do.Invoke[*petapi.Client](i); err != nil {
		return deps, fmt.Errorf("resolve api client: %w", err)
	}
	if deps.Bus, err = do.Invoke[*pubsub.WatermillBridge](i); err != nil {
		return deps, fmt.Errorf("resolve bus: %w", err)
	}
	if deps.Renderer, err = do.Invoke[*rendering.UniversalRenderer](i); err != nil {
		return deps, fmt.Errorf("resolve renderer: %w", err)
	}
	if deps.Auth, err = do.Invoke[*handlers.AuthHandler](i); err != nil {
		return deps, fmt.Errorf("resolve auth handler: %w", err)
	}
	if deps.Dashboard, err = do.Invoke[*handlers.DashboardHandler](i); err != nil {
		return deps, fmt.Errorf("resolve dashboard handler: %w", err)
	}
	return deps, nil
}

func newAPIClient(i do.Injector) (*petapi.Client, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return petapi.New(cfg.GetAPIBaseURL(), cfg.GetAPITimeout())
}

func newBus(do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(), nil
}

func newRenderer(do.Injector) (*rendering.UniversalRenderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func newPublisher(i do.Injector) (*events.Publisher, error) {
	return events.NewPublisher(do.MustInvoke[*pubsub.WatermillBridge](i)), nil
}

func newLoader(i do.Injector) (*dashboard.Loader, error) {
	return dashboard.NewLoader(do.MustInvoke[*petapi.Client](i)), nil
}

func newAuthHandler(i do.Injector) (*handlers.AuthHandler, error) {
	return handlers.NewAuthHandler(
		do.MustInvoke[*petapi.Client](i),
		do.MustInvoke[*events.Publisher](i),
	), nil
}

func newDashboardHandler(i do.Injector) (*handlers.DashboardHandler, error) {
	return handlers.NewDashboardHandler(
		do.MustInvoke[*dashboard.Loader](i),
		do.MustInvoke[*petapi.Client](i),
	), nil
}

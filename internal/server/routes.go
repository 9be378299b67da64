package server

import (
	"github.com/nfrund/petcommunity/internal/handlers"
	"github.com/nfrund/petcommunity/internal/middleware"
	"github.com/nfrund/petcommunity/internal/shell"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(middleware.DefaultFormBurst)
	petLimiter := middleware.FlashRateLimiter(middleware.DefaultPetBurst, shell.PathDashboard)

	s.E.GET(shell.PathHome, s.authHandler.LoginGet, shell.RedirectIfAuthenticated)
	s.E.POST("/login", s.authHandler.LoginPost, rateLimiter)

	s.E.GET(shell.PathRegister, s.authHandler.RegisterGet)
	s.E.POST(shell.PathRegister, s.authHandler.RegisterPost, rateLimiter)

	dash := s.E.Group(shell.PathDashboard, shell.RequireIdentity)
	dash.GET("", s.dashboardHandler.DashboardGet)
	dash.GET("/content", s.dashboardHandler.DashboardContent)
	dash.POST("/pets", s.dashboardHandler.CreatePet, petLimiter)
	dash.POST("/pets/:id", s.dashboardHandler.UpdatePet, petLimiter)
	dash.POST("/pets/:id/delete", s.dashboardHandler.DeletePet, petLimiter)

	s.E.GET("/health", handlers.Health)
}

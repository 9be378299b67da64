// Package models holds the view models handed from handlers to pages. They
// carry only display-ready values.
package models

import "github.com/nfrund/petcommunity/internal/domain"

// LoginData is the state of the login form.
type LoginData struct {
	Username string
	Error    string
}

// RegisterData is the state of the registration form. Message is shown above
// the form; Success selects its styling.
type RegisterData struct {
	Username string
	Email    string
	Message  string
	Success  bool
}

// DashboardData is what the loaded dashboard renders.
type DashboardData struct {
	Profile *domain.UserProfile
	Pets    []domain.Pet
}

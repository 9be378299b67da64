// Package shell holds the authenticated identity of a request and guards the
// routes that depend on it.
//
// A Shell is created once per request by Middleware, seeded from the session
// store, and passed down to handlers through the echo context. Its only
// transitions are Load (seed from storage) and Login (new identity).
package shell

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/petcommunity/internal/domain"
	"github.com/nfrund/petcommunity/internal/session"
)

// ContextKey is where Middleware stores the *Shell on the echo context.
const ContextKey = "shell"

// Route paths of the application.
const (
	PathHome      = "/"
	PathRegister  = "/register"
	PathDashboard = "/dashboard"
)

// IdentityStore is the subset of the session store the shell needs.
type IdentityStore interface {
	UserID() (string, bool)
	SetUserID(id string) error
	SetToken(token string) error
}

// Shell is the per-request session context.
type Shell struct {
	store  IdentityStore
	userID string
}

// Load creates a Shell seeded from the persisted identifier, if any.
func Load(store IdentityStore) *Shell {
	s := &Shell{store: store}
	if id, ok := store.UserID(); ok {
		s.userID = id
	}
	return s
}

// Identity returns the authenticated user identifier.
func (s *Shell) Identity() (string, bool) {
	return s.userID, s.userID != ""
}

// Login persists sess and marks the shell authenticated. The stored token is
// always replaced; an empty token clears the previous identity's token.
func (s *Shell) Login(sess domain.Session) error {
	if sess.UserID == "" {
		return domain.ErrNoIdentity
	}
	if err := s.store.SetUserID(sess.UserID); err != nil {
		return err
	}
	if err := s.store.SetToken(sess.Token); err != nil {
		return err
	}
	s.userID = sess.UserID
	return nil
}

// Middleware installs a Shell on every request. It must run after the
// session middleware.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextKey, Load(session.FromContext(c)))
			return next(c)
		}
	}
}

// FromContext returns the Shell installed by Middleware.
func FromContext(c echo.Context) (*Shell, error) {
	s, ok := c.Get(ContextKey).(*Shell)
	if !ok || s == nil {
		return nil, errors.New("shell middleware not installed")
	}
	return s, nil
}

// RequireIdentity redirects to the login page when no identity is present.
func RequireIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s, err := FromContext(c)
		if err != nil {
			return err
		}
		if _, ok := s.Identity(); !ok {
			return c.Redirect(http.StatusSeeOther, PathHome)
		}
		return next(c)
	}
}

// RedirectIfAuthenticated sends users who already have an identity to the
// dashboard.
func RedirectIfAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s, err := FromContext(c)
		if err != nil {
			return err
		}
		if _, ok := s.Identity(); ok {
			return c.Redirect(http.StatusSeeOther, PathDashboard)
		}
		return next(c)
	}
}

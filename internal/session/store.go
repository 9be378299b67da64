// Package session persists the logged-in identity in the browser.
//
// The identity lives in a signed cookie managed by gorilla/sessions, so it
// survives page reloads without any server-side state. Nothing in the client
// ever clears it; values are only overwritten by the next login.
package session

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// Name is the cookie session holding the identity.
	Name = "petcommunity-session"

	KeyUserID      = "user_id"
	KeyAccessToken = "access_token"

	// maxAge keeps the cookie for a year. There is no expiry semantic behind
	// it, browsers simply need a bound.
	maxAge = 86400 * 365
)

// NewCookieStore creates the cookie store used by the session middleware.
func NewCookieStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(maxAge)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}

// Store reads and writes the persisted identity of the current request.
type Store struct {
	c echo.Context
}

// FromContext returns the Store for the request behind c. The session
// middleware must have run; if it has not, every read reports absent.
func FromContext(c echo.Context) *Store {
	return &Store{c: c}
}

// UserID returns the persisted user identifier, if any.
func (s *Store) UserID() (string, bool) {
	return s.get(KeyUserID)
}

// Token returns the persisted bearer token, if any.
func (s *Store) Token() (string, bool) {
	return s.get(KeyAccessToken)
}

// SetUserID persists the user identifier.
func (s *Store) SetUserID(id string) error {
	return s.set(KeyUserID, id)
}

// SetToken persists the bearer token.
func (s *Store) SetToken(token string) error {
	return s.set(KeyAccessToken, token)
}

func (s *Store) get(key string) (string, bool) {
	sess, err := s.session()
	if err != nil {
		// An unreadable cookie is the same as no cookie.
		slog.Debug("Session unavailable, treating as absent", "key", key, "error", err)
		return "", false
	}
	v, ok := sess.Values[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (s *Store) set(key, value string) error {
	sess, err := s.session()
	if sess == nil {
		return err
	}
	// A cookie that failed to decode still yields a fresh session, which
	// the save below overwrites.
	sess.Values[key] = value
	return sess.Save(s.c.Request(), s.c.Response())
}

func (s *Store) session() (*sessions.Session, error) {
	return session.Get(Name, s.c)
}

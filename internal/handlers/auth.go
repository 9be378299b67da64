package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/petcommunity/internal/domain"
	"github.com/nfrund/petcommunity/internal/events"
	"github.com/nfrund/petcommunity/internal/middleware"
	"github.com/nfrund/petcommunity/internal/petapi"
	"github.com/nfrund/petcommunity/internal/shell"
	"github.com/nfrund/petcommunity/internal/view/models"
	"github.com/nfrund/petcommunity/web/src/templates/pages"
)

// Messages shown by the auth forms.
const (
	MsgMissingCredentials  = "Username and password are required."
	MsgMissingRegistration = "Username, email and password are required."
	MsgUnexpectedResponse  = "Unexpected response from the server."
	MsgSessionNotSaved     = "Could not save your session. Please try again."
	MsgRegistered          = "Account created successfully! Please log in."
)

// AuthAPI is the part of the Pet API client used by the auth forms.
type AuthAPI interface {
	Login(ctx context.Context, creds domain.Credentials) petapi.LoginResult
	Register(ctx context.Context, in domain.RegistrationInput) petapi.Result
}

// AuthHandler serves the login and registration forms.
type AuthHandler struct {
	api    AuthAPI
	events *events.Publisher
}

// NewAuthHandler creates a new AuthHandler. A nil publisher disables auth events.
func NewAuthHandler(api AuthAPI, publisher *events.Publisher) *AuthHandler {
	return &AuthHandler{api: api, events: publisher}
}

// LoginGet renders the empty login form (GET /).
func (h *AuthHandler) LoginGet(c echo.Context) error {
	return h.renderLogin(c, models.LoginData{})
}

// LoginPost submits the credentials to the Pet API. On success the identity
// and token are persisted and the browser is sent to the dashboard. Failures
// re-render the form with the message; the status stays 200 so htmx swaps it.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid login form")
	}
	form := models.LoginData{Username: creds.Username}

	if err := c.Validate(&creds); err != nil {
		form.Error = MsgMissingCredentials
		return h.renderLogin(c, form)
	}

	res := h.api.Login(ctx, creds)
	if !res.OK() {
		logger.Warn("Login failed", "username", creds.Username, "error", res.Err)
		form.Error = res.Message
		return h.renderLogin(c, form)
	}

	if res.User == nil || res.User.ID == "" {
		logger.Error("User ID not found in the login response", "username", creds.Username)
		form.Error = MsgUnexpectedResponse
		return h.renderLogin(c, form)
	}

	sh, err := shell.FromContext(c)
	if err != nil {
		return err
	}
	userID := res.User.ID.String()
	if err := sh.Login(domain.Session{UserID: userID, Token: res.AccessToken}); err != nil {
		logger.Error("Failed to persist session", "user_id", userID, "error", err)
		form.Error = MsgSessionNotSaved
		return h.renderLogin(c, form)
	}
	if res.AccessToken == "" {
		logger.Warn("Login response carried no access token", "user_id", userID)
	}

	logger.Info("User logged in", "user_id", userID)
	h.events.LoginSucceeded(ctx, events.AuthEvent{
		UserID:    userID,
		Username:  creds.Username,
		RequestID: requestID(c),
	})
	return c.Redirect(http.StatusSeeOther, shell.PathDashboard)
}

// RegisterGet renders the empty registration form.
func (h *AuthHandler) RegisterGet(c echo.Context) error {
	return h.renderRegister(c, models.RegisterData{})
}

// RegisterPost creates an account. The outcome is shown inline; the session
// is never touched, the user logs in separately.
func (h *AuthHandler) RegisterPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var in domain.RegistrationInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid registration form")
	}
	form := models.RegisterData{Username: in.Username, Email: in.Email}

	if err := c.Validate(&in); err != nil {
		form.Message = MsgMissingRegistration
		return h.renderRegister(c, form)
	}

	res := h.api.Register(ctx, in)
	if !res.OK() {
		logger.Warn("Registration failed", "username", in.Username, "error", res.Err)
		form.Message = res.Message
		return h.renderRegister(c, form)
	}

	logger.Info("User registered", "username", in.Username)
	h.events.Registered(ctx, events.AuthEvent{Username: in.Username, RequestID: requestID(c)})
	return h.renderRegister(c, models.RegisterData{Message: MsgRegistered, Success: true})
}

func (h *AuthHandler) renderLogin(c echo.Context, data models.LoginData) error {
	return renderPage(c, http.StatusOK, "Login", pages.Login(data))
}

func (h *AuthHandler) renderRegister(c echo.Context, data models.RegisterData) error {
	return renderPage(c, http.StatusOK, "Register", pages.Register(data))
}

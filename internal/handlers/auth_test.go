package handlers_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/nfrund/petcommunity/internal/events"
	"github.com/nfrund/petcommunity/internal/handlers"
	"github.com/nfrund/petcommunity/internal/petapi"
	"github.com/nfrund/petcommunity/internal/pubsub"
	"github.com/nfrund/petcommunity/internal/session"
	"github.com/nfrund/petcommunity/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginGet(t *testing.T) {
	b, _ := newAppWithAPI(t)

	rec := b.get(shell.PathHome)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/login"`)
	assert.Contains(t, rec.Body.String(), "Login - Pet Community")
}

func TestLoginPost(t *testing.T) {
	t.Run("valid credentials reach the dashboard", func(t *testing.T) {
		b, api := newAppWithAPI(t)
		id := api.AddUser("alice", "alice@example.com", "secret")

		rec := b.login("alice", "secret")

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, shell.PathDashboard, rec.Header().Get("Location"))

		rec = b.get(shell.PathDashboard)
		assert.Equal(t, http.StatusOK, rec.Code, "identity must survive into the next request")

		rec = b.get(shell.PathHome)
		assert.Equal(t, http.StatusSeeOther, rec.Code, "login page redirects once authenticated")

		b.get(handlers.PathDashboardContent)
		assert.Contains(t, api.Requests(), "GET /users/"+id, "profile fetch uses the stored id")
	})

	t.Run("wrong password shows the server message", func(t *testing.T) {
		b, api := newAppWithAPI(t)
		api.AddUser("alice", "alice@example.com", "secret")

		rec := b.login("alice", "wrong")

		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Invalid credentials")
		assert.Contains(t, body, `value="alice"`, "username is kept")
		assert.NotContains(t, body, `value="wrong"`, "password is never echoed")

		rec = b.get(shell.PathDashboard)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, shell.PathHome, rec.Header().Get("Location"))
	})

	t.Run("missing user id is an unexpected response", func(t *testing.T) {
		b, api := newAppWithAPI(t)
		api.SetLoginResponse(map[string]any{
			"status":       "success",
			"user":         map[string]any{"username": "alice"},
			"access_token": "tok",
		})

		rec := b.login("alice", "secret")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), handlers.MsgUnexpectedResponse)
		_, persisted := b.cookies[session.Name]
		assert.False(t, persisted, "nothing is written to the session")

		rec = b.get(shell.PathDashboard)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})

	t.Run("numeric user id is accepted", func(t *testing.T) {
		b, api := newAppWithAPI(t)
		api.SetLoginResponse(map[string]any{
			"status":       "success",
			"user":         map[string]any{"id": 42, "username": "alice"},
			"access_token": "tok",
		})

		rec := b.login("alice", "secret")
		require.Equal(t, http.StatusSeeOther, rec.Code)

		b.get(handlers.PathDashboardContent)
		assert.Contains(t, api.Requests(), "GET /users/42")
	})

	t.Run("empty fields never reach the API", func(t *testing.T) {
		b, api := newAppWithAPI(t)

		rec := b.login("alice", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), handlers.MsgMissingCredentials)
		assert.Zero(t, api.Count("POST /login"))
	})

	t.Run("unreachable API", func(t *testing.T) {
		client, err := petapi.New("http://127.0.0.1:1", time.Second)
		require.NoError(t, err)
		b := newApp(t, client)

		rec := b.login("alice", "secret")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), petapi.DefaultTransportMessage)
	})
}

func TestRegister(t *testing.T) {
	t.Run("form is reachable while authenticated", func(t *testing.T) {
		b, api := newAppWithAPI(t)
		api.AddUser("alice", "alice@example.com", "secret")
		require.Equal(t, http.StatusSeeOther, b.login("alice", "secret").Code)

		rec := b.get(shell.PathRegister)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `action="/register"`)
	})

	t.Run("register then log in", func(t *testing.T) {
		b, api := newAppWithAPI(t)

		rec := b.post(shell.PathRegister, url.Values{
			"username": {"bob"},
			"email":    {"bob@example.com"},
			"password": {"hunter2"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), handlers.MsgRegistered)
		assert.Equal(t, 1, api.Count("POST /register"))
		_, persisted := b.cookies[session.Name]
		assert.False(t, persisted, "registration does not log in")

		rec = b.login("bob", "hunter2")
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, shell.PathDashboard, rec.Header().Get("Location"))
	})

	t.Run("duplicate shows the server message", func(t *testing.T) {
		b, api := newAppWithAPI(t)
		api.AddUser("bob", "bob@example.com", "x")

		rec := b.post(shell.PathRegister, url.Values{
			"username": {"bob"},
			"email":    {"other@example.com"},
			"password": {"pw"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Username or email already exists!")
		assert.Contains(t, rec.Body.String(), `value="other@example.com"`)
	})

	t.Run("missing fields", func(t *testing.T) {
		b, api := newAppWithAPI(t)

		rec := b.post(shell.PathRegister, url.Values{"username": {"bob"}})

		assert.Contains(t, rec.Body.String(), handlers.MsgMissingRegistration)
		assert.Zero(t, api.Count("POST /register"))
	})
}

// recordingBus captures published messages.
type recordingBus struct {
	topics []string
}

func (r *recordingBus) Publish(_ context.Context, msg pubsub.Message) error {
	r.topics = append(r.topics, msg.Topic)
	return nil
}

func (r *recordingBus) Close() error { return nil }

func TestAuthEventsArePublished(t *testing.T) {
	b, api := newAppWithAPI(t)
	bus := &recordingBus{}
	auth := handlers.NewAuthHandler(api.APIClient(t), events.NewPublisher(bus))
	b.e.POST("/events/login", auth.LoginPost)
	b.e.POST("/events/register", auth.RegisterPost)

	b.post("/events/register", url.Values{"username": {"carol"}, "email": {"c@example.com"}, "password": {"pw"}})
	b.post("/events/login", url.Values{"username": {"carol"}, "password": {"pw"}})
	b.post("/events/login", url.Values{"username": {"carol"}, "password": {"bad"}})

	assert.Equal(t, []string{events.TopicRegistered, events.TopicLoginSucceeded}, bus.topics)
}

func TestHealth(t *testing.T) {
	b, _ := newAppWithAPI(t)

	rec := b.get("/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

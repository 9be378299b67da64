package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/petcommunity/internal/dashboard"
	"github.com/nfrund/petcommunity/internal/handlers"
	"github.com/nfrund/petcommunity/internal/petapi"
	"github.com/nfrund/petcommunity/internal/petapi/petapitest"
	"github.com/nfrund/petcommunity/internal/rendering"
	"github.com/nfrund/petcommunity/internal/session"
	"github.com/nfrund/petcommunity/internal/shell"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// browser drives an echo instance and keeps cookies between requests.
type browser struct {
	t       *testing.T
	e       *echo.Echo
	cookies map[string]*http.Cookie
}

// newApp wires the handlers against client the same way the server does.
func newApp(t *testing.T, client *petapi.Client) *browser {
	t.Helper()

	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	e.Use(echosession.Middleware(session.NewCookieStore(testSessionSecret)))
	e.Use(shell.Middleware())

	auth := handlers.NewAuthHandler(client, nil)
	dash := handlers.NewDashboardHandler(dashboard.NewLoader(client), client)

	e.GET(shell.PathHome, auth.LoginGet, shell.RedirectIfAuthenticated)
	e.POST("/login", auth.LoginPost)
	e.GET(shell.PathRegister, auth.RegisterGet)
	e.POST(shell.PathRegister, auth.RegisterPost)

	g := e.Group(shell.PathDashboard, shell.RequireIdentity)
	g.GET("", dash.DashboardGet)
	g.GET("/content", dash.DashboardContent)
	g.POST("/pets", dash.CreatePet)
	g.POST("/pets/:id", dash.UpdatePet)
	g.POST("/pets/:id/delete", dash.DeletePet)
	e.GET("/health", handlers.Health)

	return &browser{t: t, e: e, cookies: make(map[string]*http.Cookie)}
}

func newAppWithAPI(t *testing.T) (*browser, *petapitest.Server) {
	t.Helper()
	api := petapitest.New(t)
	return newApp(t, api.APIClient(t)), api
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.e.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return rec
}

func (b *browser) get(path string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	return b.do(req)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return b.do(req)
}

func (b *browser) login(username, password string) *httptest.ResponseRecorder {
	return b.post("/login", url.Values{"username": {username}, "password": {password}})
}

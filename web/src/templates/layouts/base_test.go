package layouts_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/nfrund/petcommunity/internal/view"
	"github.com/nfrund/petcommunity/web/src/templates/layouts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func TestBase(t *testing.T) {
	page := layouts.Page{
		Title:   "Login",
		Flashes: view.FlashData{Success: []string{"Pet added"}},
	}
	var buf bytes.Buffer
	err := layouts.Base(page, view.AdaptGomponentToTempl(g.Text("body-content"))).Render(context.Background(), &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, strings.ToLower(out), "<!doctype html>")
	assert.Contains(t, out, "<title>Login - Pet Community</title>")
	assert.Contains(t, out, `hx-boost="true"`)
	assert.Contains(t, out, "body-content")
	assert.Contains(t, out, `<p class="flash-success">Pet added</p>`)
	assert.Contains(t, out, `href="/register"`)
	assert.NotContains(t, out, `href="/dashboard"`)
}

func TestBaseAuthenticatedNav(t *testing.T) {
	var buf bytes.Buffer
	err := layouts.Base(layouts.Page{Authenticated: true}, view.AdaptGomponentToTempl(g.Text(""))).Render(context.Background(), &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `href="/dashboard"`)
	assert.NotContains(t, buf.String(), `href="/register"`)
}

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "Pet Community", layouts.CalculateTitle(""))
	assert.Equal(t, "Dashboard - Pet Community", layouts.CalculateTitle("Dashboard"))
}

package pages_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nfrund/petcommunity/internal/domain"
	"github.com/nfrund/petcommunity/internal/view/models"
	"github.com/nfrund/petcommunity/web/src/templates/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestDashboardContent(t *testing.T) {
	t.Run("one pet renders one card", func(t *testing.T) {
		out := render(t, pages.DashboardContent(models.DashboardData{
			Pets: []domain.Pet{{ID: "1", Name: "Rex", Species: "Dog", Age: 3, Description: "Friendly"}},
		}))

		assert.Equal(t, 1, strings.Count(out, `class="pet-card"`))
		assert.Contains(t, out, "Rex")
		assert.Contains(t, out, "Species: Dog")
		assert.Contains(t, out, "Age: 3 years")
		assert.Contains(t, out, "Description: Friendly")
		assert.Contains(t, out, `action="/dashboard/pets/1"`, "edit form")
		assert.Contains(t, out, `value="Rex"`, "edit form is prefilled")
		assert.Contains(t, out, `action="/dashboard/pets/1/delete"`)
		assert.NotContains(t, out, pages.NoPetsMessage)
	})

	t.Run("no pets and no profile", func(t *testing.T) {
		out := render(t, pages.DashboardContent(models.DashboardData{}))

		assert.Contains(t, out, pages.NoPetsMessage)
		assert.NotContains(t, out, "pet-card")
		assert.NotContains(t, out, "Welcome")
	})

	t.Run("profile is escaped", func(t *testing.T) {
		out := render(t, pages.DashboardContent(models.DashboardData{
			Profile: &domain.UserProfile{Username: "<b>eve</b>", Email: "eve@example.com"},
		}))

		assert.Contains(t, out, "Welcome, &lt;b&gt;eve&lt;/b&gt;")
		assert.Contains(t, out, "Email: eve@example.com")
	})
}

func TestDashboardLoading(t *testing.T) {
	out := render(t, pages.DashboardLoading("/dashboard/content"))

	assert.Contains(t, out, pages.LoadingMessage)
	assert.Contains(t, out, `hx-get="/dashboard/content"`)
	assert.Contains(t, out, `hx-trigger="load"`)
}

func TestForms(t *testing.T) {
	out := render(t, pages.Login(models.LoginData{Username: "alice", Error: "Invalid credentials"}))
	assert.Contains(t, out, "Invalid credentials")
	assert.Contains(t, out, `value="alice"`)
	assert.Contains(t, out, `action="/login"`)

	out = render(t, pages.Register(models.RegisterData{Message: "Registration failed"}))
	assert.Contains(t, out, `<p class="error">Registration failed</p>`)

	out = render(t, pages.Register(models.RegisterData{Message: "ok", Success: true}))
	assert.Contains(t, out, `<p class="success">ok</p>`)
}

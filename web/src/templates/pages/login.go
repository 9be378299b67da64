package pages

import (
	"github.com/nfrund/petcommunity/internal/view/models"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Login renders the login form. The password is never echoed back.
func Login(data models.LoginData) g.Node {
	return h.Div(
		h.H2(g.Text("Login")),
		g.If(data.Error != "", h.P(h.Class("error"), g.Text(data.Error))),
		h.Form(
			h.Method("post"),
			h.Action("/login"),
			h.Input(h.Type("text"), h.Name("username"), h.Placeholder("Username"), h.Value(data.Username), h.Required()),
			h.Input(h.Type("password"), h.Name("password"), h.Placeholder("Password"), h.Required()),
			h.Button(h.Type("submit"), g.Text("Login")),
			h.H3(
				g.Text("Don't have an account? "),
				h.A(h.Href("/register"), g.Text("Create one")),
			),
		),
	)
}

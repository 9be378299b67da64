package pages

import (
	"github.com/nfrund/petcommunity/internal/view/models"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Register renders the account creation form.
func Register(data models.RegisterData) g.Node {
	messageClass := "error"
	if data.Success {
		messageClass = "success"
	}

	return h.Div(
		h.H2(g.Text("Create Account")),
		g.If(data.Message != "", h.P(h.Class(messageClass), g.Text(data.Message))),
		h.Form(
			h.Method("post"),
			h.Action("/register"),
			h.Input(h.Type("text"), h.Name("username"), h.Placeholder("Username"), h.Value(data.Username), h.Required()),
			h.Input(h.Type("email"), h.Name("email"), h.Placeholder("Email"), h.Value(data.Email), h.Required()),
			h.Input(h.Type("password"), h.Name("password"), h.Placeholder("Password"), h.Required()),
			h.Button(h.Type("submit"), g.Text("Register")),
			h.H3(
				g.Text("Have an account? "),
				h.A(h.Href("/"), g.Text("Login")),
			),
		),
	)
}

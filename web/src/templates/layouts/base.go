package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/petcommunity/internal/view"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Page describes the chrome around a page body.
type Page struct {
	Title         string
	Authenticated bool
	Flashes       view.FlashData
}

// Base wraps content in the document shell: head, navbar and flash messages.
// Body navigation is boosted by htmx so links and forms swap in place.
func Base(page Page, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		doc := h.Doctype(
			h.HTML(
				h.Lang("en"),
				h.Head(
					h.Meta(h.Charset("utf-8")),
					h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
					h.TitleEl(g.Text(CalculateTitle(page.Title))),
					h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
					h.Script(h.Src(htmxSrc), h.Defer()),
				),
				h.Body(
					hx.Boost("true"),
					navbar(page.Authenticated),
					h.Main(
						flashes(page.Flashes),
						view.AdaptTemplToGomponent(ctx, content),
					),
				),
			),
		)
		return doc.Render(w)
	})
}

func navbar(authenticated bool) g.Node {
	return h.Nav(
		h.Class("navbar"),
		h.A(h.Class("brand"), h.Href("/"), g.Text(appName)),
		g.If(authenticated, h.A(h.Href("/dashboard"), g.Text("Dashboard"))),
		g.If(!authenticated, g.Group{
			h.A(h.Href("/"), g.Text("Login")),
			h.A(h.Href("/register"), g.Text("Register")),
		}),
	)
}

func flashes(f view.FlashData) g.Node {
	return g.Group{
		g.Map(f.Success, func(msg string) g.Node {
			return h.P(h.Class("flash-success"), g.Text(msg))
		}),
		g.Map(f.Error, func(msg string) g.Node {
			return h.P(h.Class("flash-error"), g.Text(msg))
		}),
	}
}

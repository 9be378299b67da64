package pages

import (
	"strconv"

	"github.com/nfrund/petcommunity/internal/domain"
	"github.com/nfrund/petcommunity/internal/view/models"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Messages shown by the dashboard.
const (
	LoadingMessage = "Loading user details and pets..."
	NoPetsMessage  = "No pets found for this user."
)

// DashboardLoading is the dashboard while its data is being fetched. htmx
// replaces the loading block with the content route as soon as it renders.
func DashboardLoading(contentURL string) g.Node {
	return h.Div(
		h.Class("dashboard-container"),
		h.H1(h.Class("dashboard-title"), g.Text("Dashboard")),
		h.Div(
			hx.Get(contentURL),
			hx.Trigger("load"),
			hx.Swap("outerHTML"),
			h.P(h.Class("loading-text"), g.Text(LoadingMessage)),
			h.P(h.A(h.Href(contentURL), g.Text("Taking too long? Open the dashboard directly."))),
		),
	)
}

// DashboardContent is the loaded dashboard: the profile when it could be
// fetched, then the pets or the empty message, then the add-pet form.
func DashboardContent(data models.DashboardData) g.Node {
	return h.Div(
		h.Class("user-info-card"),
		g.Iff(data.Profile != nil, func() g.Node { return profile(data.Profile) }),
		g.If(len(data.Pets) > 0, petGrid(data.Pets)),
		g.If(len(data.Pets) == 0, h.P(h.Class("no-pets"), g.Text(NoPetsMessage))),
		addPetForm(),
	)
}

// Dashboard is the full loaded page, used when the content route is opened
// without htmx.
func Dashboard(data models.DashboardData) g.Node {
	return h.Div(
		h.Class("dashboard-container"),
		h.H1(h.Class("dashboard-title"), g.Text("Dashboard")),
		DashboardContent(data),
	)
}

func profile(p *domain.UserProfile) g.Node {
	return h.Div(
		h.Class("user-details"),
		h.H2(h.Class("username"), g.Textf("Welcome, %s", p.Username)),
		h.P(h.Class("email"), g.Textf("Email: %s", p.Email)),
	)
}

func petGrid(pets []domain.Pet) g.Node {
	return h.Div(
		h.H3(h.Class("pets-title"), g.Text("Your Pets")),
		h.Div(
			h.Class("pets-grid"),
			g.Map(pets, petCard),
		),
	)
}

func petCard(p domain.Pet) g.Node {
	return h.Div(
		h.Class("pet-card"),
		h.ID("pet-"+p.ID.String()),
		h.H4(h.Class("pet-name"), g.Text(p.Name)),
		h.P(h.Class("pet-species"), g.Textf("Species: %s", p.Species)),
		h.P(h.Class("pet-age"), g.Textf("Age: %d years", p.Age)),
		h.P(h.Class("pet-description"), g.Textf("Description: %s", p.Description)),
		editPetForm(p),
		h.Form(
			h.Method("post"),
			h.Action("/dashboard/pets/"+p.ID.String()+"/delete"),
			h.Button(h.Type("submit"), g.Text("Remove")),
		),
	)
}

func editPetForm(p domain.Pet) g.Node {
	return h.Details(
		h.Class("edit-pet"),
		h.Summary(g.Text("Edit")),
		h.Form(
			h.Method("post"),
			h.Action("/dashboard/pets/"+p.ID.String()),
			h.Input(h.Type("text"), h.Name("name"), h.Value(p.Name), h.Required()),
			h.Input(h.Type("text"), h.Name("species"), h.Value(p.Species), h.Required()),
			h.Input(h.Type("number"), h.Name("age"), h.Value(strconv.Itoa(p.Age)), h.Min("0"), h.Required()),
			h.Textarea(h.Name("description"), g.Text(p.Description)),
			h.Button(h.Type("submit"), g.Text("Save")),
		),
	)
}

func addPetForm() g.Node {
	return h.Div(
		h.Class("add-pet"),
		h.H3(g.Text("Add a pet")),
		h.Form(
			h.Method("post"),
			h.Action("/dashboard/pets"),
			h.Input(h.Type("text"), h.Name("name"), h.Placeholder("Name"), h.Required()),
			h.Input(h.Type("text"), h.Name("species"), h.Placeholder("Species"), h.Required()),
			h.Input(h.Type("number"), h.Name("age"), h.Placeholder("Age"), h.Min("0"), h.Required()),
			h.Textarea(h.Name("description"), h.Placeholder("Description")),
			h.Button(h.Type("submit"), g.Text("Add pet")),
		),
	)
}

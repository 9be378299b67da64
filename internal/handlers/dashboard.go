package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/petcommunity/internal/dashboard"
	"github.com/nfrund/petcommunity/internal/domain"
	"github.com/nfrund/petcommunity/internal/middleware"
	"github.com/nfrund/petcommunity/internal/petapi"
	"github.com/nfrund/petcommunity/internal/session"
	"github.com/nfrund/petcommunity/internal/shell"
	"github.com/nfrund/petcommunity/internal/view"
	"github.com/nfrund/petcommunity/internal/view/models"
	"github.com/nfrund/petcommunity/web/src/templates/pages"
)

// PathDashboardContent is the route that performs the dashboard load.
const PathDashboardContent = shell.PathDashboard + "/content"

// Flash messages set by the pet mutations.
const (
	MsgPetAdded    = "Pet added."
	MsgPetRemoved  = "Pet removed."
	MsgPetUpdated  = "Pet updated."
	MsgInvalidPet  = "Name and species are required, and age cannot be negative."
	MsgNotLoggedIn = "Your session has no access token. Please log in again."
)

// PetAPI is the part of the Pet API client used by the pet forms.
type PetAPI interface {
	CreatePet(ctx context.Context, token string, in domain.NewPetInput) petapi.Result
	DeletePet(ctx context.Context, token, id string) petapi.Result
	UpdatePet(ctx context.Context, token, id string, in domain.NewPetInput) petapi.Result
}

// DashboardHandler serves the dashboard and its pet forms.
type DashboardHandler struct {
	loader *dashboard.Loader
	pets   PetAPI
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(loader *dashboard.Loader, pets PetAPI) *DashboardHandler {
	return &DashboardHandler{loader: loader, pets: pets}
}

// DashboardGet renders the dashboard in its loading state. The page pulls the
// content route as soon as it is displayed.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "Dashboard", pages.DashboardLoading(PathDashboardContent))
}

// DashboardContent runs the load and renders the loaded dashboard: a fragment
// for htmx, a full page otherwise.
func (h *DashboardHandler) DashboardContent(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	sh, err := shell.FromContext(c)
	if err != nil {
		return err
	}
	userID, _ := sh.Identity()

	res := h.loader.Load(ctx, userID, session.FromContext(c))
	if res.Err != nil {
		logger.Warn("Dashboard load skipped", "error", res.Err)
		return c.Redirect(http.StatusSeeOther, shell.PathHome)
	}
	logLoad(logger, userID, res)

	data := models.DashboardData{Profile: res.Profile, Pets: res.Pets}
	if isFragmentRequest(c) {
		return c.Render(http.StatusOK, "", pages.DashboardContent(data))
	}
	return renderPage(c, http.StatusOK, "Dashboard", pages.Dashboard(data))
}

// logLoad records the failures the view collapses into the empty message.
func logLoad(logger *slog.Logger, userID string, res dashboard.Result) {
	if res.ProfileErr != nil {
		logger.Error("Failed to fetch user data", "user_id", userID, "error", res.ProfileErr)
	}
	switch {
	case errors.Is(res.PetsErr, domain.ErrNoToken):
		logger.Warn("No access token found in session", "user_id", userID)
	case res.PetsErr != nil:
		logger.Error("Failed to fetch pets",
			"user_id", userID,
			"status", petapi.StatusCode(res.PetsErr),
			"error", res.PetsErr,
		)
	case !res.HasPets():
		logger.Info("User has no pets", "user_id", userID)
	}
}

// CreatePet adds a pet for the current user and returns to the dashboard.
func (h *DashboardHandler) CreatePet(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var in domain.NewPetInput
	if err := c.Bind(&in); err != nil {
		view.SetFlashError(c, MsgInvalidPet)
		return c.Redirect(http.StatusSeeOther, shell.PathDashboard)
	}
	if err := c.Validate(&in); err != nil {
		view.SetFlashError(c, MsgInvalidPet)
		return c.Redirect(http.StatusSeeOther, shell.PathDashboard)
	}

	token, ok := session.FromContext(c).Token()
	if !ok {
		view.SetFlashError(c, MsgNotLoggedIn)
		return c.Redirect(http.StatusSeeOther, shell.PathDashboard)
	}

	res := h.pets.CreatePet(ctx, token, in)
	if !res.OK() {
		logger.Warn("Failed to add pet", "name", in.Name, "error", res.Err)
		view.SetFlashError(c, res.Message)
		return c.Redirect(http.StatusSeeOther, shell.PathDashboard)
	}

	view.SetFlashSuccess(c, MsgPetAdded)
	return c.Redirect(http.StatusSeeOther, shell.PathDashboard)
}

// DeletePet removes one of the current user's pets and returns to the dashboard.
func (h *DashboardHandler) DeletePet(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var p PetIDParam
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid pet id")
	}
	if err := c.Validate(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid pet id")
	}

	token, ok := session.FromContext(c).Token()
	if !ok {
		view.SetFlashError(c, MsgNotLoggedIn)
		return c.Redirect(http.StatusSeeOther, shell.PathDashboard)
	}

	res := h.pets.DeletePet(ctx, token, p.ID)
	if !res.OK() {
		logger.Warn("Failed to remove pet", "pet_id", p.ID, "error", res.Err)
		view.SetFlashError(c, res.Message)
		return c.Redirect(http.StatusSeeOther, shell.PathDashboard)
	}

	view.SetFlashSuccess(c, MsgPetRemoved)
	return c.Redirect(http.StatusSeeOther, shell.PathDashboard)
}

// UpdatePet saves the edit form of one of the current user's pets and returns
// to the dashboard.
func (h *DashboardHandler) UpdatePet(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var req UpdatePetRequest
	if err := c.Bind(&req); err != nil {
		view.SetFlashError(c, MsgInvalidPet)
		return c.Redirect(http.StatusSeeOther, shell.PathDashboard)
	}
	if err := c.Validate(&req); err != nil {
		view.SetFlashError(c, MsgInvalidPet)
		return c.Redirect(http.StatusSeeOther, shell.PathDashboard)
	}

	token, ok := session.FromContext(c).Token()
	if !ok {
		view.SetFlashError(c, MsgNotLoggedIn)
		return c.Redirect(http.StatusSeeOther, shell.PathDashboard)
	}

	res := h.pets.UpdatePet(ctx, token, req.ID, req.NewPetInput)
	if !res.OK() {
		logger.Warn("Failed to update pet", "pet_id", req.ID, "error", res.Err)
		view.SetFlashError(c, res.Message)
		return c.Redirect(http.StatusSeeOther, shell.PathDashboard)
	}

	view.SetFlashSuccess(c, MsgPetUpdated)
	return c.Redirect(http.StatusSeeOther, shell.PathDashboard)
}

package rendering

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// UniversalRenderer implements echo.Renderer for both templ components and
// gomponents nodes, so handlers can call c.Render(status, "", component).
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode is the structural interface of gomponents.Node.
type gomponentNode interface {
	Render(w io.Writer) error
}

// Render implements echo.Renderer. The component travels in data; name is ignored.
func (tr *UniversalRenderer) Render(w io.Writer, _ string, data interface{}, c echo.Context) error {
	return tr.render(c.Request().Context(), data, w)
}

func (tr *UniversalRenderer) render(ctx context.Context, component interface{}, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}

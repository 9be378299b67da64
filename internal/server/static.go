package server

import (
	"io/fs"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/petcommunity/web"
	"github.com/spf13/afero"
)

// staticFS returns the asset filesystem: dir on disk when set, otherwise the
// assets embedded in the binary. Both are read-only.
func staticFS(dir string) (afero.Fs, error) {
	if dir != "" {
		return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
	}
	sub, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, err
	}
	return afero.FromIOFS{FS: sub}, nil
}

func mountStatic(e *echo.Echo, static afero.Fs) {
	e.StaticFS("/static", afero.NewIOFS(static))
}

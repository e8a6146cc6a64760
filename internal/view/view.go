// Package view implements Echo's Renderer interface on top of
// html/template. The templates are intentionally minimal render surfaces
// for the server-rendered forms; styling and layout are not a concern of
// this service.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-watchlist/internal/forms"
)

//go:embed templates/*.html
var files embed.FS

// Renderer renders named templates from the embedded set.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates. The "lines" helper joins a list field
// back into textarea content.
func New() *Renderer {
	t := template.Must(template.New("").Funcs(template.FuncMap{
		"lines": forms.JoinLines,
	}).ParseFS(files, "templates/*.html"))
	return &Renderer{templates: t}
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

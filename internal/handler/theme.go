package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-watchlist/internal/config"
	"github.com/iliyamo/movie-watchlist/internal/session"
)

// ThemeHandler flips the dark/light session preference.
type ThemeHandler struct {
	Cfg config.Config
}

func NewThemeHandler(cfg config.Config) *ThemeHandler {
	return &ThemeHandler{Cfg: cfg}
}

// Toggle flips the theme between dark and light and redirects back to the
// page named by the current_page query parameter. The target is only
// honored when it is a same-origin relative path; anything else falls back
// to the listing so the endpoint cannot be used as an open redirect.
func (h *ThemeHandler) Toggle(c echo.Context) error {
	s := session.FromContext(c)
	if s.Theme == "dark" {
		s.Theme = "light"
	} else {
		s.Theme = "dark"
	}
	if err := session.Save(c, h.Cfg.SessionSecret, s); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, safeRedirectTarget(c.QueryParam("current_page")))
}

// safeRedirectTarget accepts only same-origin relative paths. A leading
// "//" or "/\" would be treated as protocol-relative by browsers, so both
// are rejected along with anything not starting with "/".
func safeRedirectTarget(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") {
		return "/"
	}
	if strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	if strings.ContainsAny(target, "\r\n") {
		return "/"
	}
	return target
}

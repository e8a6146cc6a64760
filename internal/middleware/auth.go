package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for redirects

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/movie-watchlist/internal/session" // session cookie codec
)

// LoadSession returns an Echo middleware that decodes the signed session
// cookie once per request and stores the result in the request context.
// It runs on every route, guarded or not, so unauthenticated pages can
// still read the theme preference and pending flash messages.  A missing
// or tampered cookie simply yields an empty session.
func LoadSession(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            session.Store(c, session.Load(c, secret))
            return next(c)
        }
    }
}

// RequireLogin returns an Echo middleware that guards a route behind an
// authenticated session.  If the session carries no email, the request is
// short-circuited with a redirect to the login page and the wrapped handler
// never runs.  The session's claimed identity is trusted as-is; it is not
// reverified against the user store per request.
func RequireLogin() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if session.FromContext(c).Email == "" {
                return c.Redirect(http.StatusFound, "/login")
            }
            return next(c)
        }
    }
}

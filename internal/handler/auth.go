package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-watchlist/internal/config"
	"github.com/iliyamo/movie-watchlist/internal/forms"
	"github.com/iliyamo/movie-watchlist/internal/model"
	"github.com/iliyamo/movie-watchlist/internal/repository"
	"github.com/iliyamo/movie-watchlist/internal/session"
	"github.com/iliyamo/movie-watchlist/internal/utils"
)

// credentialsMessage is shown for both an unknown email and a wrong
// password so the login form leaks nothing about which one failed.
const credentialsMessage = "Login credentials not correct"

// AuthHandler bundles dependencies for the register, login and logout
// endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, u UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// Register serves GET and POST /register. An already authenticated session
// is sent straight to the listing. A valid submission mints an id, hashes
// the password and persists the account with an empty movie list, then
// flashes a success notice and redirects to the login page. A duplicate
// email becomes a field error rather than a silent second account.
func (h *AuthHandler) Register(c echo.Context) error {
	s := session.FromContext(c)
	if s.Email != "" {
		return c.Redirect(http.StatusFound, "/")
	}

	form := &forms.RegisterForm{}
	if c.Request().Method == http.MethodPost {
		values, err := c.FormParams()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
		}
		form = forms.ParseRegisterForm(values)
		if form.Validate() {
			hash, err := utils.HashPassword(form.Password, h.Cfg.BcryptCost)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "hash password failed")
			}

			ctx, cancel := reqCtx(c)
			defer cancel()

			u := model.User{
				ID:           utils.NewID(),
				Email:        form.Email,
				PasswordHash: hash,
				Movies:       []string{},
			}
			switch err := h.Users.Create(ctx, u); {
			case errors.Is(err, repository.ErrEmailExists):
				form.AddError("email", "An account with this email already exists.")
			case err != nil:
				return echo.NewHTTPError(http.StatusInternalServerError, "create user failed")
			default:
				s.Flash = &session.Flash{Message: "User registered successfully", Category: "success"}
				if err := session.Save(c, h.Cfg.SessionSecret, s); err != nil {
					return err
				}
				return c.Redirect(http.StatusFound, "/login")
			}
		}
	}

	return c.Render(http.StatusOK, "register.html", map[string]any{
		"Title": "Movies Watchlist - Register",
		"Theme": s.Theme,
		"Flash": session.PopFlash(c, h.Cfg.SessionSecret),
		"Form":  form,
	})
}

// Login serves GET and POST /login. An unknown email flashes the generic
// failure and redirects back to the login page; a wrong password shows the
// same message but re-renders the form in place. A successful verification
// stores the user's id and email in the session.
func (h *AuthHandler) Login(c echo.Context) error {
	s := session.FromContext(c)
	if s.Email != "" {
		return c.Redirect(http.StatusFound, "/")
	}

	form := &forms.LoginForm{}
	var flash *session.Flash

	if c.Request().Method == http.MethodPost {
		values, err := c.FormParams()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
		}
		form = forms.ParseLoginForm(values)
		if form.Validate() {
			ctx, cancel := reqCtx(c)
			defer cancel()

			u, err := h.Users.GetByEmail(ctx, form.Email)
			if errors.Is(err, repository.ErrUserNotFound) {
				s.Flash = &session.Flash{Message: credentialsMessage, Category: "danger"}
				if err := session.Save(c, h.Cfg.SessionSecret, s); err != nil {
					return err
				}
				return c.Redirect(http.StatusFound, "/login")
			}
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "query failed")
			}

			if utils.VerifyPassword(u.PasswordHash, form.Password) {
				s.UserID = u.ID
				s.Email = u.Email
				if err := session.Save(c, h.Cfg.SessionSecret, s); err != nil {
					return err
				}
				return c.Redirect(http.StatusFound, "/")
			}
			// Wrong password: same generic message, rendered inline.
			flash = &session.Flash{Message: credentialsMessage, Category: "danger"}
		}
	}

	if flash == nil {
		flash = session.PopFlash(c, h.Cfg.SessionSecret)
	}
	return c.Render(http.StatusOK, "login.html", map[string]any{
		"Title": "Movies Watchlist - Login",
		"Theme": s.Theme,
		"Flash": flash,
		"Form":  form,
	})
}

// Logout clears the session while preserving the cosmetic theme
// preference, then redirects to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	s := session.FromContext(c)
	if err := session.Save(c, h.Cfg.SessionSecret, session.Session{Theme: s.Theme}); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/login")
}

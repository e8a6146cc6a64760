package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-watchlist/internal/config"
	"github.com/iliyamo/movie-watchlist/internal/forms"
	"github.com/iliyamo/movie-watchlist/internal/model"
	"github.com/iliyamo/movie-watchlist/internal/queue"
	"github.com/iliyamo/movie-watchlist/internal/repository"
	"github.com/iliyamo/movie-watchlist/internal/session"
	"github.com/iliyamo/movie-watchlist/internal/utils"
)

// Ratings must fall in [0,10]; anything else is rejected rather than
// clamped so a malformed link fails loudly.
const maxRating = 10

// MovieHandler bundles dependencies for the watchlist endpoints.
type MovieHandler struct {
	Cfg    config.Config
	Users  UserStore
	Movies MovieStore
	Events ActivityPublisher // nil disables activity events
}

func NewMovieHandler(cfg config.Config, u UserStore, m MovieStore, ev ActivityPublisher) *MovieHandler {
	return &MovieHandler{Cfg: cfg, Users: u, Movies: m, Events: ev}
}

// Index lists the current user's movies in the order they were added.
func (h *MovieHandler) Index(c echo.Context) error {
	s := session.FromContext(c)

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, s.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		// The session references an account that no longer exists; drop it.
		if err := session.Save(c, h.Cfg.SessionSecret, session.Session{Theme: s.Theme}); err != nil {
			return err
		}
		return c.Redirect(http.StatusFound, "/login")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "query failed")
	}

	movies, err := h.Movies.GetByIDs(ctx, u.Movies)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "query failed")
	}

	return c.Render(http.StatusOK, "index.html", map[string]any{
		"Title":  "Movies Watchlist",
		"Theme":  s.Theme,
		"Flash":  session.PopFlash(c, h.Cfg.SessionSecret),
		"Movies": movies,
	})
}

// Add serves GET and POST /add. A valid submission creates the movie with
// only title, director and year, appends its id to the session user's
// list and redirects to the new movie's detail page. The two writes are
// independent; a crash in between leaves an orphan movie, never a
// dangling reference on the user.
func (h *MovieHandler) Add(c echo.Context) error {
	s := session.FromContext(c)

	form := &forms.MovieForm{}
	if c.Request().Method == http.MethodPost {
		values, err := c.FormParams()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
		}
		form = forms.ParseMovieForm(values)
		if form.Validate() {
			ctx, cancel := reqCtx(c)
			defer cancel()

			m := model.Movie{
				ID:       utils.NewID(),
				Title:    form.Title,
				Director: form.Director,
				Year:     form.Year,
				Cast:     []string{},
				Series:   []string{},
				Tags:     []string{},
			}
			if err := h.Movies.Create(ctx, m); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "create movie failed")
			}
			if err := h.Users.AppendMovie(ctx, s.UserID, m.ID); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "update watchlist failed")
			}
			if h.Events != nil {
				_ = h.Events.PublishMovieAdded(ctx, queue.MovieAddedEvent{
					MovieID:  m.ID,
					UserID:   s.UserID,
					Title:    m.Title,
					Director: m.Director,
					Year:     m.Year,
					AddedAt:  time.Now().UTC().Format(time.RFC3339),
				})
			}
			return c.Redirect(http.StatusFound, "/movie/"+m.ID)
		}
	}

	return c.Render(http.StatusOK, "new_movie.html", map[string]any{
		"Title": "Movies Watchlist - Add Movie",
		"Theme": s.Theme,
		"Form":  form,
	})
}

// Detail renders a movie's detail page. Unknown ids are a 404, never an
// empty movie.
func (h *MovieHandler) Detail(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.loadMovie(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "movie_details.html", map[string]any{
		"Theme": session.FromContext(c).Theme,
		"Movie": m,
	})
}

// Edit serves GET and POST /edit/:id. GET pre-populates the extended form
// with the stored movie; a valid POST overwrites every editable field and
// persists the full replacement keyed by id. The id itself never changes.
func (h *MovieHandler) Edit(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.loadMovie(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	var form *forms.ExtendedMovieForm
	if c.Request().Method == http.MethodPost {
		values, err := c.FormParams()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
		}
		form = forms.ParseExtendedMovieForm(values)
		if form.Validate() {
			form.Apply(&m)
			if err := h.Movies.Replace(ctx, m); err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "update movie failed")
			}
			return c.Redirect(http.StatusFound, "/movie/"+m.ID)
		}
	} else {
		form = forms.ExtendedFromMovie(m)
	}

	return c.Render(http.StatusOK, "movie_form.html", map[string]any{
		"Title": "Movies Watchlist - Edit Movie",
		"Theme": session.FromContext(c).Theme,
		"Movie": m,
		"Form":  form,
	})
}

// Watch stamps last_watched with the current time and redirects back to
// the detail page.
func (h *MovieHandler) Watch(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.loadMovie(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if err := h.Movies.SetLastWatched(ctx, m.ID, now); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "update movie failed")
	}
	if h.Events != nil {
		_ = h.Events.PublishMovieWatched(ctx, queue.MovieWatchedEvent{
			MovieID:   m.ID,
			UserID:    session.FromContext(c).UserID,
			Title:     m.Title,
			WatchedAt: now.Format(time.RFC3339),
		})
	}
	return c.Redirect(http.StatusFound, "/movie/"+m.ID)
}

// Rate persists the rating from the query string and redirects back to the
// detail page.
func (h *MovieHandler) Rate(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.loadMovie(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(c.QueryParam("rating"))
	if err != nil || rating < 0 || rating > maxRating {
		return echo.NewHTTPError(http.StatusBadRequest, "rating must be an integer between 0 and 10")
	}
	if err := h.Movies.SetRating(ctx, m.ID, rating); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "update movie failed")
	}
	return c.Redirect(http.StatusFound, "/movie/"+m.ID)
}

func (h *MovieHandler) loadMovie(ctx context.Context, id string) (model.Movie, error) {
	m, err := h.Movies.GetByID(ctx, id)
	if errors.Is(err, repository.ErrMovieNotFound) {
		return model.Movie{}, echo.NewHTTPError(http.StatusNotFound, "movie not found")
	}
	if err != nil {
		return model.Movie{}, echo.NewHTTPError(http.StatusInternalServerError, "query failed")
	}
	return m, nil
}

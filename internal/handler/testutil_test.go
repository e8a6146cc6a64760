package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/movie-watchlist/internal/config"
	"github.com/iliyamo/movie-watchlist/internal/handler"
	"github.com/iliyamo/movie-watchlist/internal/model"
	"github.com/iliyamo/movie-watchlist/internal/repository"
	"github.com/iliyamo/movie-watchlist/internal/router"
	"github.com/iliyamo/movie-watchlist/internal/session"
	"github.com/iliyamo/movie-watchlist/internal/view"
)

const testSecret = "handler-test-secret"

// newTestApp wires a full echo instance through the real router with
// in-memory stores, no redis and no event publisher.
func newTestApp(t *testing.T) (*echo.Echo, *fakeUsers, *fakeMovies) {
	t.Helper()
	users := newFakeUsers()
	movies := newFakeMovies()
	cfg := config.Config{
		Env:           "test",
		SessionSecret: testSecret,
		BcryptCost:    bcrypt.MinCost,
	}

	e := echo.New()
	e.Renderer = view.New()
	router.RegisterRoutes(e, cfg, config.RateLimitConfig{}, nil,
		handler.NewAuthHandler(cfg, users),
		handler.NewMovieHandler(cfg, users, movies, nil),
		handler.NewThemeHandler(cfg))
	return e, users, movies
}

// request performs a single request against the app and returns the
// recorder. Form values, when given, are posted urlencoded.
func request(e *echo.Echo, method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, ck := range cookies {
		if ck != nil {
			req.AddCookie(ck)
		}
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// sessionCookie returns the session cookie set by the response, falling
// back to prev when the response did not touch it.
func sessionCookie(rec *httptest.ResponseRecorder, prev *http.Cookie) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			return ck
		}
	}
	return prev
}

// loginAs registers and logs in a user, returning the authenticated
// session cookie.
func loginAs(t *testing.T, e *echo.Echo, email, password string) *http.Cookie {
	t.Helper()
	rec := request(e, http.MethodPost, "/register", url.Values{
		"email":            {email},
		"password":         {password},
		"confirm_password": {password},
	})
	if rec.Code != http.StatusFound {
		t.Fatalf("register: expected 302, got %d (%s)", rec.Code, rec.Body.String())
	}
	rec = request(e, http.MethodPost, "/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("login: expected 302 to /, got %d -> %q", rec.Code, rec.Header().Get("Location"))
	}
	ck := sessionCookie(rec, nil)
	if ck == nil {
		t.Fatalf("login did not set a session cookie")
	}
	return ck
}

// ----- in-memory stores -----

type fakeUsers struct {
	mu   sync.Mutex
	byID map[string]model.User
}

func newFakeUsers() *fakeUsers { return &fakeUsers{byID: map[string]model.User{}} }

func (f *fakeUsers) Create(_ context.Context, u model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.Email = normalize(u.Email)
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return repository.ErrEmailExists
		}
	}
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email = normalize(email)
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) AppendMovie(_ context.Context, userID, movieID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.Movies = append(u.Movies, movieID)
	f.byID[userID] = u
	return nil
}

type fakeMovies struct {
	mu   sync.Mutex
	byID map[string]model.Movie
}

func newFakeMovies() *fakeMovies { return &fakeMovies{byID: map[string]model.Movie{}} }

func (f *fakeMovies) Create(_ context.Context, m model.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[m.ID] = m
	return nil
}

func (f *fakeMovies) GetByID(_ context.Context, id string) (model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.byID[id]
	if !ok {
		return model.Movie{}, repository.ErrMovieNotFound
	}
	return m, nil
}

func (f *fakeMovies) GetByIDs(_ context.Context, ids []string) ([]model.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Movie, 0, len(ids))
	for _, id := range ids {
		if m, ok := f.byID[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMovies) Replace(_ context.Context, m model.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[m.ID]; !ok {
		return repository.ErrMovieNotFound
	}
	f.byID[m.ID] = m
	return nil
}

func (f *fakeMovies) SetLastWatched(_ context.Context, id string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.byID[id]
	if !ok {
		return repository.ErrMovieNotFound
	}
	m.LastWatched = &at
	f.byID[id] = m
	return nil
}

func (f *fakeMovies) SetRating(_ context.Context, id string, rating int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.byID[id]
	if !ok {
		return repository.ErrMovieNotFound
	}
	m.Rating = rating
	f.byID[id] = m
	return nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

package router // package router defines how HTTP routes are registered for the application

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-watchlist/internal/config"
	"github.com/iliyamo/movie-watchlist/internal/handler"
	"github.com/iliyamo/movie-watchlist/internal/middleware"
)

// RegisterRoutes wires every route of the watchlist application onto the
// provided Echo instance. The session cookie is decoded once per request;
// guarded routes additionally pass the login gate. The redis-backed token
// bucket is applied only to the credential endpoints; when rdb is nil the
// limiter degrades to a pass-through.
func RegisterRoutes(e *echo.Echo, cfg config.Config, rlCfg config.RateLimitConfig, rdb *redis.Client,
	auth *handler.AuthHandler, movies *handler.MovieHandler, theme *handler.ThemeHandler) {

	e.Use(middleware.LoadSession(cfg.SessionSecret))

	limiter := middleware.NewTokenBucket(rlCfg, rdb)
	gate := middleware.RequireLogin()

	// Liveness probe for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Credential endpoints: open, but rate limited.
	e.GET("/register", auth.Register, limiter)
	e.POST("/register", auth.Register, limiter)
	e.GET("/login", auth.Login, limiter)
	e.POST("/login", auth.Login, limiter)
	e.GET("/logout/", auth.Logout)

	// Watchlist endpoints. The detail page is deliberately public; the
	// mutating routes sit behind the login gate.
	e.GET("/", movies.Index, gate)
	e.GET("/add", movies.Add, gate)
	e.POST("/add", movies.Add, gate)
	e.GET("/movie/:id", movies.Detail)
	e.GET("/edit/:id", movies.Edit, gate)
	e.POST("/edit/:id", movies.Edit, gate)
	e.GET("/movie/:id/watch", movies.Watch, gate)
	e.GET("/movie/:id/rate", movies.Rate, gate)

	// Theme toggling works for guests too.
	e.GET("/toggle-theme", theme.Toggle)
}

package main // Entry point package

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-watchlist/internal/config"
	"github.com/iliyamo/movie-watchlist/internal/database"
	"github.com/iliyamo/movie-watchlist/internal/handler"
	"github.com/iliyamo/movie-watchlist/internal/logging"
	"github.com/iliyamo/movie-watchlist/internal/queue"
	"github.com/iliyamo/movie-watchlist/internal/repository"
	"github.com/iliyamo/movie-watchlist/internal/router"
	queue_publisher "github.com/iliyamo/movie-watchlist/internal/service/queue_publisher"
	"github.com/iliyamo/movie-watchlist/internal/view"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly
	logging.Setup()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Bootstrap(db); err != nil {
		log.Fatal(err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		slog.Warn("redis unavailable, rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	movies := repository.NewMovieRepo(db)
	events := queue_publisher.New()

	// Record watchlist activity in the background; the consumer reconnects
	// on its own and never takes the server down.
	go queue.StartActivityConsumer()

	e := echo.New()
	e.HideBanner = true
	e.Renderer = view.New()

	auth := handler.NewAuthHandler(cfg, users)
	watchlist := handler.NewMovieHandler(cfg, users, movies, events)
	theme := handler.NewThemeHandler(cfg)
	router.RegisterRoutes(e, cfg, config.LoadRateLimitConfig(), rdb, auth, watchlist, theme)

	addr := ":" + cfg.Port
	slog.Info("listening", "addr", addr, "env", cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

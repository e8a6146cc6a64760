package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-watchlist/internal/model"
	"github.com/iliyamo/movie-watchlist/internal/queue"
)

// UserStore is the slice of user persistence the handlers need. It is
// satisfied by *repository.UserRepo; tests substitute in-memory fakes.
type UserStore interface {
	Create(ctx context.Context, u model.User) error
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	AppendMovie(ctx context.Context, userID, movieID string) error
}

// MovieStore is the slice of movie persistence the handlers need.
// Satisfied by *repository.MovieRepo.
type MovieStore interface {
	Create(ctx context.Context, m model.Movie) error
	GetByID(ctx context.Context, id string) (model.Movie, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.Movie, error)
	Replace(ctx context.Context, m model.Movie) error
	SetLastWatched(ctx context.Context, id string, at time.Time) error
	SetRating(ctx context.Context, id string, rating int) error
}

// ActivityPublisher emits best-effort watchlist activity events.
// Satisfied by *queue_publisher.Publisher; a nil publisher disables events.
type ActivityPublisher interface {
	PublishMovieAdded(ctx context.Context, ev queue.MovieAddedEvent) error
	PublishMovieWatched(ctx context.Context, ev queue.MovieWatchedEvent) error
}

// reqCtx bounds the duration of store calls made while serving a request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

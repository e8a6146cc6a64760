// Package queue defines the activity event payloads exchanged over the
// message broker and the background consumer that records them.
package queue

// MovieAddedEvent is published when a user adds a movie to their watchlist.
// It carries enough information for downstream consumers to log or notify
// without querying the primary database.
type MovieAddedEvent struct {
	MovieID  string `json:"movie_id"`
	UserID   string `json:"user_id"`
	Title    string `json:"title"`
	Director string `json:"director"`
	Year     int    `json:"year"`
	AddedAt  string `json:"added_at"`
}

// MovieWatchedEvent is published when a user stamps a movie as watched.
type MovieWatchedEvent struct {
	MovieID   string `json:"movie_id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	WatchedAt string `json:"watched_at"`
}

// Queue names. Both queues are declared durable by publisher and consumer.
const (
	MovieAddedQueue   = "watchlist.movie.added"
	MovieWatchedQueue = "watchlist.movie.watched"
)

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/iliyamo/movie-watchlist/internal/model"
)

// MovieRepo manages persistence for movies. `cast` and `year` are quoted in
// every statement because both are reserved words in MySQL.
type MovieRepo struct{ DB *sql.DB }

func NewMovieRepo(db *sql.DB) *MovieRepo { return &MovieRepo{DB: db} }

const movieColumns = "id,title,director,`year`,`cast`,series,tags,last_watched,rating,description,video_link"

// Create inserts a new movie. Freshly added movies carry only title,
// director and year; the list fields are stored as empty JSON arrays.
func (r *MovieRepo) Create(ctx context.Context, m model.Movie) error {
	cast, series, tags, err := marshalLists(m)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO movies (id,title,director,`year`,`cast`,series,tags,rating,description,video_link) VALUES (?,?,?,?,?,?,?,?,?,?)",
		m.ID, m.Title, m.Director, m.Year, cast, series, tags, m.Rating, m.Description, m.VideoLink)
	return err
}

// GetByID fetches a movie by id.
func (r *MovieRepo) GetByID(ctx context.Context, id string) (model.Movie, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+movieColumns+" FROM movies WHERE id=? LIMIT 1", id)
	m, err := scanMovie(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Movie{}, ErrMovieNotFound
		}
		return model.Movie{}, err
	}
	return m, nil
}

// GetByIDs fetches the movies for the given ids and returns them in the
// order the ids were supplied. Ids without a matching row are skipped, so a
// dangling reference in a user's list degrades to a missing entry.
func (r *MovieRepo) GetByIDs(ctx context.Context, ids []string) ([]model.Movie, error) {
	if len(ids) == 0 {
		return []model.Movie{}, nil
	}
	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+movieColumns+" FROM movies WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]model.Movie, len(ids))
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		byID[m.ID] = m
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	out := make([]model.Movie, 0, len(byID))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

// Replace overwrites every editable field of the movie keyed by its id.
// The id itself and last_watched/rating are untouched: the edit flow does
// not expose them.
func (r *MovieRepo) Replace(ctx context.Context, m model.Movie) error {
	cast, series, tags, err := marshalLists(m)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		"UPDATE movies SET title=?,director=?,`year`=?,`cast`=?,series=?,tags=?,description=?,video_link=? WHERE id=?",
		m.Title, m.Director, m.Year, cast, series, tags, m.Description, m.VideoLink, m.ID)
	return err
}

// SetLastWatched stamps the last_watched column.
func (r *MovieRepo) SetLastWatched(ctx context.Context, id string, at time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE movies SET last_watched=? WHERE id=?", at.UTC(), id)
	return err
}

// SetRating persists a new rating for the movie.
func (r *MovieRepo) SetRating(ctx context.Context, id string, rating int) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE movies SET rating=? WHERE id=?", rating, id)
	return err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...any) error }

func scanMovie(s scanner) (model.Movie, error) {
	var (
		m           model.Movie
		cast        []byte
		series      []byte
		tags        []byte
		lastWatched sql.NullTime
		description sql.NullString
		videoLink   sql.NullString
	)
	err := s.Scan(&m.ID, &m.Title, &m.Director, &m.Year,
		&cast, &series, &tags, &lastWatched, &m.Rating, &description, &videoLink)
	if err != nil {
		return model.Movie{}, err
	}
	if err := json.Unmarshal(cast, &m.Cast); err != nil {
		return model.Movie{}, err
	}
	if err := json.Unmarshal(series, &m.Series); err != nil {
		return model.Movie{}, err
	}
	if err := json.Unmarshal(tags, &m.Tags); err != nil {
		return model.Movie{}, err
	}
	if lastWatched.Valid {
		t := lastWatched.Time
		m.LastWatched = &t
	}
	m.Description = description.String
	m.VideoLink = videoLink.String
	return m, nil
}

func marshalLists(m model.Movie) (cast, series, tags []byte, err error) {
	if cast, err = json.Marshal(emptyIfNil(m.Cast)); err != nil {
		return
	}
	if series, err = json.Marshal(emptyIfNil(m.Series)); err != nil {
		return
	}
	tags, err = json.Marshal(emptyIfNil(m.Tags))
	return
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/iliyamo/movie-watchlist/internal/model"
)

// UserRepo manages persistence for users.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a new user. The caller supplies the id and the already
// hashed password. A duplicate email maps to ErrEmailExists (MySQL 1062).
func (r *UserRepo) Create(ctx context.Context, u model.User) error {
	movies, err := json.Marshal(emptyIfNil(u.Movies))
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO users (id, email, password_hash, movies) VALUES (?,?,?,?)",
		u.ID, normalizeEmail(u.Email), u.PasswordHash, movies)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getWhere(ctx, "email=?", normalizeEmail(email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	return r.getWhere(ctx, "id=?", id)
}

func (r *UserRepo) getWhere(ctx context.Context, where string, arg any) (model.User, error) {
	var (
		u      model.User
		movies []byte
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,movies,created_at FROM users WHERE "+where+" LIMIT 1",
		arg).Scan(&u.ID, &u.Email, &u.PasswordHash, &movies, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	if err := json.Unmarshal(movies, &u.Movies); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// AppendMovie appends a movie id to the user's ordered movies list in a
// single statement, avoiding a read-modify-write round trip.
func (r *UserRepo) AppendMovie(ctx context.Context, userID, movieID string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE users SET movies = JSON_ARRAY_APPEND(movies, '$', ?) WHERE id=?",
		movieID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

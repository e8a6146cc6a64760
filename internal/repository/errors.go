// Package repository defines sentinel error values reused across the user
// and movie repositories. Handlers match on these with errors.Is to decide
// between a field error, a 404 and a 5xx; they never inspect driver errors
// directly.
package repository

import "errors"

// ErrEmailExists is returned when registration hits the unique index on
// users.email. The registration handler turns this into a field error.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when no user row matches the given id or email.
var ErrUserNotFound = errors.New("user not found")

// ErrMovieNotFound is returned when no movie row matches the given id.
// Handlers translate this into an HTTP 404 response; an absent movie is
// never silently turned into an empty entity.
var ErrMovieNotFound = errors.New("movie not found")

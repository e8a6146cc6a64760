package model

import "time"

// User represents an account record as stored in the `users` table.
// The password is persisted only as a bcrypt hash; the plaintext never
// reaches the repository layer.
//
// Movies holds the ordered ids of the movies this user owns. It is the
// sole authority for ownership: movie rows carry no back-reference.
//
// Fields:
//  ID           – opaque 32-character hex identifier.
//  Email        – unique email address, stored lower-cased.
//  PasswordHash – bcrypt hashed password.
//  Movies       – ordered movie ids owned by this user (users.movies, JSON).
//  CreatedAt    – timestamp of registration.
type User struct {
	ID           string    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Movies       []string  // users.movies (JSON array)
	CreatedAt    time.Time // users.created_at
}

package database

import (
	"context"
	"database/sql"
	"time"
)

// schema holds the DDL executed at startup. Statements are idempotent so the
// server can be restarted against an existing database. List-valued fields
// (cast, series, tags, a user's movie ids) are JSON columns; `cast` is a
// reserved word in MySQL and must stay backtick-quoted everywhere.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            CHAR(32)     NOT NULL PRIMARY KEY,
		email         VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		movies        JSON         NOT NULL,
		created_at    TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS movies (
		id           CHAR(32)     NOT NULL PRIMARY KEY,
		title        VARCHAR(255) NOT NULL,
		director     VARCHAR(255) NOT NULL,
		` + "`year`" + `       INT          NOT NULL,
		` + "`cast`" + `       JSON         NOT NULL,
		series       JSON         NOT NULL,
		tags         JSON         NOT NULL,
		last_watched DATETIME     NULL,
		rating       INT          NOT NULL DEFAULT 0,
		description  TEXT         NULL,
		video_link   VARCHAR(512) NULL,
		created_at   TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Bootstrap creates the application tables if they do not exist yet.
func Bootstrap(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

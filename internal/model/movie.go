package model

import "time"

// Movie represents a single entry in a user's watchlist as stored in the
// `movies` table. A movie is created with only Title, Director and Year;
// every other field is filled in later through the edit flow.
//
// Fields:
//  ID          – opaque 32-character hex identifier, assigned at creation.
//  Title       – movie title (required).
//  Director    – movie director (required).
//  Year        – release year, never earlier than 1878.
//  Cast        – ordered list of actor names (movies.cast, JSON).
//  Series      – ordered list of series the movie belongs to (JSON).
//  Tags        – ordered list of free-form tags (JSON).
//  LastWatched – when the movie was last watched; nil until set.
//  Rating      – user-assigned rating, 0 when unrated.
//  Description – free-text description.
//  VideoLink   – link to a trailer or stream.
type Movie struct {
	ID          string     // movies.id
	Title       string     // movies.title
	Director    string     // movies.director
	Year        int        // movies.year
	Cast        []string   // movies.cast (JSON array)
	Series      []string   // movies.series (JSON array)
	Tags        []string   // movies.tags (JSON array)
	LastWatched *time.Time // movies.last_watched (nullable)
	Rating      int        // movies.rating
	Description string     // movies.description
	VideoLink   string     // movies.video_link
}

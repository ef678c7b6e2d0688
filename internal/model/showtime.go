package model

import "time"

// Showtime represents one scheduled screening of a movie in a theater.
// Showtimes are created at catalog-load time and their metadata never
// changes afterwards; only the seat states of the owned seat map mutate.
//
// Fields:
//  ID       – catalog-wide numeric identifier.
//  Movie    – title of the movie being shown.
//  Theater  – name of the theater showing it.
//  StartsAt – when the screening begins.
type Showtime struct {
	ID       uint64    `json:"id"`
	Movie    string    `json:"movie"`
	Theater  string    `json:"theater"`
	StartsAt time.Time `json:"starts_at"`
}

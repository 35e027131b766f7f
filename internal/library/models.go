package library

import "time"

// User is a collection owner. Users are created explicitly, never mutated,
// and never deleted.
type User struct {
	ID        int64
	Username  string
	CreatedAt time.Time
}

// Movie is a single record in a user's collection. The (Title, UserID) pair
// is unique; different users may each own a movie with the same title.
type Movie struct {
	ID        int64
	UserID    int64
	Title     string
	Year      int
	Rating    float64
	Director  string
	PosterURL string
	Plot      string
	Actors    string
	Genre     string
}

package report

import (
	"math/rand/v2"
	"sort"
	"strings"

	"filmshelf/internal/library"
)

// Summary aggregates rating statistics over one user's collection.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	Max    float64
	Min    float64
}

// Stats computes rating statistics. It reports false for an empty collection
// so callers can short-circuit instead of dividing by zero.
func Stats(movies []library.Movie) (Summary, bool) {
	if len(movies) == 0 {
		return Summary{}, false
	}

	ratings := make([]float64, len(movies))
	var sum float64
	for i, movie := range movies {
		ratings[i] = movie.Rating
		sum += movie.Rating
	}
	sort.Float64s(ratings)

	summary := Summary{
		Count: len(ratings),
		Mean:  sum / float64(len(ratings)),
		Min:   ratings[0],
		Max:   ratings[len(ratings)-1],
	}

	mid := len(ratings) / 2
	if len(ratings)%2 == 0 {
		summary.Median = (ratings[mid-1] + ratings[mid]) / 2
	} else {
		summary.Median = ratings[mid]
	}
	return summary, true
}

// RandomPick selects a movie uniformly at random. It reports false for an
// empty collection.
func RandomPick(movies []library.Movie) (*library.Movie, bool) {
	if len(movies) == 0 {
		return nil, false
	}
	pick := movies[rand.IntN(len(movies))]
	return &pick, true
}

// SortByRating returns a copy sorted descending by rating, with ascending
// title as the tiebreak so output stays deterministic.
func SortByRating(movies []library.Movie) []library.Movie {
	sorted := make([]library.Movie, len(movies))
	copy(sorted, movies)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Rating != sorted[j].Rating {
			return sorted[i].Rating > sorted[j].Rating
		}
		return sorted[i].Title < sorted[j].Title
	})
	return sorted
}

// SearchTitles returns the movies whose title contains the term,
// case-insensitively, preserving input order.
func SearchTitles(movies []library.Movie, term string) []library.Movie {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var matches []library.Movie
	for _, movie := range movies {
		if strings.Contains(strings.ToLower(movie.Title), term) {
			matches = append(matches, movie)
		}
	}
	return matches
}

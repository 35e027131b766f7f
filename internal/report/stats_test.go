package report_test

import (
	"bytes"
	"strings"
	"testing"

	"filmshelf/internal/library"
	"filmshelf/internal/report"
)

func moviesWithRatings(ratings ...float64) []library.Movie {
	movies := make([]library.Movie, len(ratings))
	for i, r := range ratings {
		movies[i] = library.Movie{Title: strings.Repeat("x", i+1), Rating: r}
	}
	return movies
}

func TestStatsEvenCount(t *testing.T) {
	summary, ok := report.Stats(moviesWithRatings(4.0, 6.0, 8.0, 10.0))
	if !ok {
		t.Fatal("expected stats for non-empty collection")
	}
	if summary.Count != 4 {
		t.Fatalf("expected count 4, got %d", summary.Count)
	}
	if summary.Mean != 7.0 || summary.Median != 7.0 {
		t.Fatalf("expected mean 7.0 and median 7.0, got %v and %v", summary.Mean, summary.Median)
	}
	if summary.Max != 10.0 || summary.Min != 4.0 {
		t.Fatalf("expected max 10.0 and min 4.0, got %v and %v", summary.Max, summary.Min)
	}
}

func TestStatsOddCount(t *testing.T) {
	summary, ok := report.Stats(moviesWithRatings(9.0, 3.0, 6.0))
	if !ok {
		t.Fatal("expected stats for non-empty collection")
	}
	if summary.Median != 6.0 {
		t.Fatalf("expected middle element as median, got %v", summary.Median)
	}
}

func TestStatsEmpty(t *testing.T) {
	if _, ok := report.Stats(nil); ok {
		t.Fatal("expected short-circuit for empty collection")
	}
}

func TestRandomPick(t *testing.T) {
	if _, ok := report.RandomPick(nil); ok {
		t.Fatal("expected short-circuit for empty collection")
	}

	movies := moviesWithRatings(5.0, 6.0, 7.0)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		pick, ok := report.RandomPick(movies)
		if !ok {
			t.Fatal("expected a pick")
		}
		seen[pick.Title] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected picks to vary across 100 draws, saw %d distinct", len(seen))
	}
}

func TestSortByRating(t *testing.T) {
	movies := []library.Movie{
		{Title: "B", Rating: 7.0},
		{Title: "A", Rating: 7.0},
		{Title: "C", Rating: 9.0},
	}
	sorted := report.SortByRating(movies)

	want := []string{"C", "A", "B"}
	for i, title := range want {
		if sorted[i].Title != title {
			t.Fatalf("position %d: expected %q, got %q", i, title, sorted[i].Title)
		}
	}
	// Input order is untouched.
	if movies[0].Title != "B" {
		t.Fatal("expected input slice to be left alone")
	}
}

func TestSearchTitles(t *testing.T) {
	movies := []library.Movie{
		{Title: "The Matrix"},
		{Title: "Matrix Reloaded"},
		{Title: "Inception"},
	}

	matches := report.SearchTitles(movies, "mAtRiX")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches := report.SearchTitles(movies, "  "); matches != nil {
		t.Fatalf("expected no matches for blank term, got %v", matches)
	}
	if matches := report.SearchTitles(movies, "zzz"); len(matches) != 0 {
		t.Fatalf("expected no matches, got %v", matches)
	}
}

func TestHistogramBinning(t *testing.T) {
	bins := report.Histogram(moviesWithRatings(1.0, 1.5, 5.5, 10.0, 0.5, 11.0))

	if len(bins) != 10 {
		t.Fatalf("expected 10 bins, got %d", len(bins))
	}
	if bins[0].Lo != 1.0 || bins[9].Hi != 10.0 {
		t.Fatalf("unexpected bin edges: first %+v last %+v", bins[0], bins[9])
	}
	// 1.0 and 1.5 land in the first bin, 10.0 in the last, out-of-range drop.
	if bins[0].Count != 2 {
		t.Fatalf("expected 2 in the first bin, got %d", bins[0].Count)
	}
	if bins[9].Count != 1 {
		t.Fatalf("expected 10.0 in the last bin, got %d", bins[9].Count)
	}
	total := 0
	for _, bin := range bins {
		total += bin.Count
	}
	if total != 4 {
		t.Fatalf("expected out-of-range ratings dropped, counted %d", total)
	}
}

func TestRenderHistogram(t *testing.T) {
	movies := moviesWithRatings(4.0, 6.0, 8.0, 10.0)
	bins := report.Histogram(movies)
	summary, _ := report.Stats(movies)

	var buf bytes.Buffer
	report.RenderHistogram(&buf, bins, summary.Mean, false)

	out := buf.String()
	if !strings.Contains(out, "7.0") {
		t.Fatalf("expected mean footer in output:\n%s", out)
	}
	if !strings.Contains(out, "#") {
		t.Fatalf("expected at least one bar in output:\n%s", out)
	}
}

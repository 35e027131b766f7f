package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"filmshelf/internal/library"
	"filmshelf/internal/report"
)

func (c *Controller) selectUser(ctx context.Context) {
	users, err := c.store.ListUsers(ctx)
	if err != nil {
		c.reportStoreError("list users", err)
		return
	}
	if len(users) == 0 {
		fmt.Fprintln(c.out, "No users found. Create a new user first.")
		return
	}

	fmt.Fprintln(c.out, "\nSelect a user:")
	for i, user := range users {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, user.Username)
	}
	fmt.Fprintf(c.out, "%d. Cancel\n", len(users)+1)

	line, ok := c.readLine("Enter choice: ")
	if !ok {
		return
	}
	choice, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(c.out, "Please enter a number.")
		return
	}
	switch {
	case choice >= 1 && choice <= len(users):
		selected := users[choice-1]
		c.user = &selected
		c.state = stateUserActive
		fmt.Fprintf(c.out, "\nWelcome back, %s!\n", selected.Username)
	case choice == len(users)+1:
		// Cancelled.
	default:
		fmt.Fprintln(c.out, "Invalid choice.")
	}
}

func (c *Controller) createUser(ctx context.Context) {
	username, ok := c.readLine("Enter new username: ")
	if !ok {
		return
	}
	if username == "" {
		fmt.Fprintln(c.out, "Username cannot be empty.")
		return
	}

	user, err := c.store.CreateUser(ctx, username)
	if err != nil {
		if errors.Is(err, library.ErrUsernameTaken) {
			fmt.Fprintf(c.out, "Username %q is already taken.\n", username)
			return
		}
		c.reportStoreError("create user", err)
		return
	}

	c.user = user
	c.state = stateUserActive
	fmt.Fprintf(c.out, "\nWelcome, %s! Account created.\n", user.Username)
}

func (c *Controller) listMovies(ctx context.Context) {
	user := c.requireUser()
	if user == nil {
		return
	}

	movies, err := c.store.ListMovies(ctx, user.ID)
	if err != nil {
		c.reportStoreError("list movies", err)
		return
	}
	if len(movies) == 0 {
		fmt.Fprintf(c.out, "%s, your collection is empty.\n", user.Username)
		return
	}
	c.renderMovies(movies)
}

func (c *Controller) addMovie(ctx context.Context) {
	user := c.requireUser()
	if user == nil {
		return
	}
	if c.meta == nil {
		fmt.Fprintln(c.out, "Metadata lookups are unavailable: set omdb.api_key in the configuration.")
		return
	}

	title, ok := c.readLine("Enter movie title: ")
	if !ok {
		return
	}
	if title == "" {
		fmt.Fprintln(c.out, "Title cannot be empty.")
		return
	}

	// Local duplicate check before spending a network call.
	if _, err := c.store.GetMovie(ctx, user.ID, title); err == nil {
		fmt.Fprintf(c.out, "%q is already in your collection.\n", title)
		return
	} else if !errors.Is(err, library.ErrMovieNotFound) {
		c.reportStoreError("check duplicate", err)
		return
	}

	fmt.Fprintf(c.out, "Searching OMDb for %q...\n", title)
	result, err := c.meta.Lookup(ctx, title)
	if err != nil {
		fmt.Fprintf(c.out, "Lookup failed: %v\n", err)
		return
	}
	if result == nil {
		fmt.Fprintln(c.out, "Movie not found (or the metadata service is unreachable).")
		return
	}

	fmt.Fprintln(c.out, "\nFound movie details:")
	fmt.Fprintf(c.out, "Title: %s\n", result.Title)
	fmt.Fprintf(c.out, "Year: %d\n", result.Year)
	fmt.Fprintf(c.out, "Rating: %s\n", formatRating(result.Rating))
	if result.Director != "" {
		fmt.Fprintf(c.out, "Director: %s\n", result.Director)
	}
	if result.PosterURL != "" {
		fmt.Fprintln(c.out, "Poster available")
	}

	confirm, ok := c.readLine("Add this movie to your collection? (y/n): ")
	if !ok || !isAffirmative(confirm) {
		fmt.Fprintln(c.out, "Not added.")
		return
	}

	movie := library.Movie{
		Title:     result.Title,
		Year:      result.Year,
		Rating:    result.Rating,
		Director:  result.Director,
		PosterURL: result.PosterURL,
		Plot:      result.Plot,
		Actors:    result.Actors,
		Genre:     result.Genre,
	}
	if _, err := c.store.AddMovie(ctx, user.ID, movie); err != nil {
		if errors.Is(err, library.ErrDuplicateTitle) {
			fmt.Fprintf(c.out, "%q is already in your collection.\n", movie.Title)
			return
		}
		c.reportStoreError("add movie", err)
		return
	}
	fmt.Fprintf(c.out, "Added %q to your collection.\n", movie.Title)
}

func (c *Controller) deleteMovie(ctx context.Context) {
	user := c.requireUser()
	if user == nil {
		return
	}

	title, ok := c.readLine("Enter movie title to delete: ")
	if !ok {
		return
	}
	if title == "" {
		fmt.Fprintln(c.out, "Title cannot be empty.")
		return
	}

	removed, err := c.store.DeleteMovie(ctx, user.ID, title)
	if err != nil {
		c.reportStoreError("delete movie", err)
		return
	}
	if !removed {
		fmt.Fprintf(c.out, "%q is not in your collection.\n", title)
		return
	}
	fmt.Fprintf(c.out, "Deleted %q from your collection.\n", title)
}

func (c *Controller) updateRating(ctx context.Context) {
	user := c.requireUser()
	if user == nil {
		return
	}

	title, ok := c.readLine("Enter movie title to update: ")
	if !ok {
		return
	}
	if title == "" {
		fmt.Fprintln(c.out, "Title cannot be empty.")
		return
	}

	movie, err := c.store.GetMovie(ctx, user.ID, title)
	if err != nil {
		if errors.Is(err, library.ErrMovieNotFound) {
			fmt.Fprintf(c.out, "%q is not in your collection.\n", title)
			return
		}
		c.reportStoreError("get movie", err)
		return
	}

	fmt.Fprintf(c.out, "Current rating: %s\n", formatRating(movie.Rating))
	line, ok := c.readLine("Enter new rating (1-10): ")
	if !ok {
		return
	}
	rating, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Fprintln(c.out, "Please enter a valid number.")
		return
	}
	// The store accepts any value; the 1-10 domain is enforced here.
	if rating < 1 || rating > 10 {
		fmt.Fprintln(c.out, "Rating must be between 1 and 10.")
		return
	}

	updated, err := c.store.UpdateRating(ctx, user.ID, title, rating)
	if err != nil {
		c.reportStoreError("update rating", err)
		return
	}
	if !updated {
		fmt.Fprintln(c.out, "Failed to update rating.")
		return
	}
	fmt.Fprintf(c.out, "Updated %q rating to %s.\n", title, formatRating(rating))
}

func (c *Controller) showStats(ctx context.Context) {
	user := c.requireUser()
	if user == nil {
		return
	}

	movies, err := c.store.ListMovies(ctx, user.ID)
	if err != nil {
		c.reportStoreError("list movies", err)
		return
	}
	summary, ok := report.Stats(movies)
	if !ok {
		fmt.Fprintf(c.out, "%s, your collection is empty.\n", user.Username)
		return
	}

	fmt.Fprintf(c.out, "\n===== %s's Statistics =====\n", user.Username)
	fmt.Fprintf(c.out, "Total movies: %d\n", summary.Count)
	fmt.Fprintf(c.out, "Average rating: %s\n", formatRating(summary.Mean))
	fmt.Fprintf(c.out, "Median rating: %s\n", formatRating(summary.Median))
	fmt.Fprintf(c.out, "Highest rating: %s\n", formatRating(summary.Max))
	fmt.Fprintf(c.out, "Lowest rating: %s\n", formatRating(summary.Min))
}

func (c *Controller) randomMovie(ctx context.Context) {
	user := c.requireUser()
	if user == nil {
		return
	}

	movies, err := c.store.ListMovies(ctx, user.ID)
	if err != nil {
		c.reportStoreError("list movies", err)
		return
	}
	pick, ok := report.RandomPick(movies)
	if !ok {
		fmt.Fprintf(c.out, "%s, your collection is empty.\n", user.Username)
		return
	}

	fmt.Fprintln(c.out, "\n===== Random Movie =====")
	fmt.Fprintf(c.out, "Title: %s (%d)\n", pick.Title, pick.Year)
	fmt.Fprintf(c.out, "Rating: %s\n", formatRating(pick.Rating))
	if pick.Director != "" {
		fmt.Fprintf(c.out, "Director: %s\n", pick.Director)
	}
	if pick.Plot != "" {
		fmt.Fprintf(c.out, "Plot: %s\n", pick.Plot)
	}
}

func (c *Controller) searchMovies(ctx context.Context) {
	user := c.requireUser()
	if user == nil {
		return
	}

	term, ok := c.readLine("Enter search term: ")
	if !ok {
		return
	}
	if term == "" {
		fmt.Fprintln(c.out, "Please enter a search term.")
		return
	}

	movies, err := c.store.ListMovies(ctx, user.ID)
	if err != nil {
		c.reportStoreError("list movies", err)
		return
	}
	matches := report.SearchTitles(movies, term)
	if len(matches) == 0 {
		fmt.Fprintln(c.out, "No matching movies found in your collection.")
		return
	}
	c.renderMovies(matches)
}

func (c *Controller) sortByRating(ctx context.Context) {
	user := c.requireUser()
	if user == nil {
		return
	}

	movies, err := c.store.ListMovies(ctx, user.ID)
	if err != nil {
		c.reportStoreError("list movies", err)
		return
	}
	if len(movies) == 0 {
		fmt.Fprintf(c.out, "%s, your collection is empty.\n", user.Username)
		return
	}
	c.renderMovies(report.SortByRating(movies))
}

func (c *Controller) showHistogram(ctx context.Context) {
	user := c.requireUser()
	if user == nil {
		return
	}

	movies, err := c.store.ListMovies(ctx, user.ID)
	if err != nil {
		c.reportStoreError("list movies", err)
		return
	}
	summary, ok := report.Stats(movies)
	if !ok {
		fmt.Fprintf(c.out, "%s, your collection is empty.\n", user.Username)
		return
	}

	fmt.Fprintf(c.out, "\n===== %s's Rating Histogram =====\n", user.Username)
	report.RenderHistogram(c.out, report.Histogram(movies), summary.Mean, c.styled)
}

func (c *Controller) generateSite(ctx context.Context) {
	user := c.requireUser()
	if user == nil {
		return
	}
	if c.exporter == nil {
		fmt.Fprintln(c.out, "Site export is not configured.")
		return
	}

	movies, err := c.store.ListMovies(ctx, user.ID)
	if err != nil {
		c.reportStoreError("list movies", err)
		return
	}
	path, err := c.exporter.Generate(user, movies)
	if err != nil {
		fmt.Fprintf(c.out, "Failed to generate site: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Generated collection page at %s\n", path)
}

func (c *Controller) reportStoreError(operation string, err error) {
	c.logger.Error("store operation failed", "operation", operation, "error", err)
	fmt.Fprintf(c.out, "Something went wrong (%s). See the log for details.\n", operation)
}

func isAffirmative(answer string) bool {
	return answer == "y" || answer == "Y"
}

package library

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"filmshelf/internal/config"
)

//go:embed schema.sql
var schemaSQL string

// Store manages collection persistence backed by SQLite. The database is
// exclusively owned by one running process, enforced with a lock file next to
// the database.
type Store struct {
	db     *sql.DB
	lock   *flock.Flock
	path   string
	logger *slog.Logger
}

// Open initializes or connects to the collection database. When the config
// requests it (the default), existing tables are dropped and recreated, so
// persisted collections do not survive restarts.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	lock := flock.New(dbPath + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire database lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("database %s is in use by another process", dbPath)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, lock: lock, path: dbPath, logger: logger}
	if err := store.initSchema(context.Background(), cfg.Database.ResetOnOpen); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	if cfg.Database.ResetOnOpen {
		logger.Debug("collection schema reset", "path", dbPath)
	}

	return store, nil
}

// Close closes the database connection and releases the ownership lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}

// Path returns the location of the backing database file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context, reset bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if reset {
		for _, stmt := range []string{
			"DROP TABLE IF EXISTS movies",
			"DROP TABLE IF EXISTS users",
		} {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("reset schema: %w", err)
			}
		}
	}

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// CreateUser registers a new collection owner.
func (s *Store) CreateUser(ctx context.Context, username string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username must not be empty")
	}

	now := time.Now().UTC()
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO users (username, created_at) VALUES (?, ?)`,
		username,
		now.Format(time.RFC3339Nano),
	)
	if err != nil {
		if isUniqueViolation(err, "users.username") {
			return nil, ErrUsernameTaken
		}
		return nil, storeErr("insert user", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeErr("last insert id", err)
	}

	return &User{ID: id, Username: username, CreatedAt: now}, nil
}

// ListUsers returns all registered users ordered by id.
func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, username, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, storeErr("list users", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, storeErr("scan user", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate users", err)
	}
	return users, nil
}

// GetUser fetches a user by id.
func (s *Store) GetUser(ctx context.Context, id int64) (*User, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, username, created_at FROM users WHERE id = ?`, id)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, storeErr("get user", err)
	}
	return user, nil
}

// AddMovie inserts a movie into the owning user's collection. The (title,
// user) uniqueness invariant is enforced here; a violation reports
// ErrDuplicateTitle without mutating state. Rating is stored as given: the
// 1-10 domain is the caller's responsibility.
func (s *Store) AddMovie(ctx context.Context, userID int64, movie Movie) (*Movie, error) {
	movie.Title = strings.TrimSpace(movie.Title)
	if movie.Title == "" {
		return nil, errors.New("title must not be empty")
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO movies (title, year, rating, director, poster_url, plot, actors, genre, user_id)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		movie.Title,
		movie.Year,
		movie.Rating,
		nullableString(movie.Director),
		nullableString(movie.PosterURL),
		nullableString(movie.Plot),
		nullableString(movie.Actors),
		nullableString(movie.Genre),
		userID,
	)
	if err != nil {
		if isUniqueViolation(err, "movies.title") {
			return nil, ErrDuplicateTitle
		}
		if isForeignKeyViolation(err) {
			return nil, ErrUserNotFound
		}
		return nil, storeErr("insert movie", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, storeErr("last insert id", err)
	}

	movie.ID = id
	movie.UserID = userID
	return &movie, nil
}

// ListMovies returns the user's collection in insertion order.
func (s *Store) ListMovies(ctx context.Context, userID int64) ([]Movie, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+movieColumns+` FROM movies WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, storeErr("list movies", err)
	}
	defer rows.Close()

	var movies []Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, storeErr("scan movie", err)
		}
		movies = append(movies, *movie)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate movies", err)
	}
	return movies, nil
}

// GetMovie fetches a movie by exact, case-sensitive title match.
func (s *Store) GetMovie(ctx context.Context, userID int64, title string) (*Movie, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+movieColumns+` FROM movies WHERE user_id = ? AND title = ?`,
		userID,
		title,
	)
	movie, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, storeErr("get movie", err)
	}
	return movie, nil
}

// DeleteMovie removes a movie by title. It reports true iff a row was removed.
func (s *Store) DeleteMovie(ctx context.Context, userID int64, title string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM movies WHERE user_id = ? AND title = ?`, userID, title)
	if err != nil {
		return false, storeErr("delete movie", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("rows affected", err)
	}
	return affected > 0, nil
}

// UpdateRating changes the stored rating for a title. It reports true iff a
// row was updated. The rating value is not range-checked here.
func (s *Store) UpdateRating(ctx context.Context, userID int64, title string, rating float64) (bool, error) {
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE movies SET rating = ? WHERE user_id = ? AND title = ?`,
		rating,
		userID,
		title,
	)
	if err != nil {
		return false, storeErr("update rating", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("rows affected", err)
	}
	return affected > 0, nil
}

const movieColumns = "id, title, year, rating, director, poster_url, plot, actors, genre, user_id"

func scanMovie(scanner interface{ Scan(dest ...any) error }) (*Movie, error) {
	var (
		id        int64
		title     string
		year      int
		rating    float64
		director  sql.NullString
		posterURL sql.NullString
		plot      sql.NullString
		actors    sql.NullString
		genre     sql.NullString
		userID    int64
	)

	if err := scanner.Scan(&id, &title, &year, &rating, &director, &posterURL, &plot, &actors, &genre, &userID); err != nil {
		return nil, err
	}

	return &Movie{
		ID:        id,
		UserID:    userID,
		Title:     title,
		Year:      year,
		Rating:    rating,
		Director:  director.String,
		PosterURL: posterURL.String,
		Plot:      plot.String,
		Actors:    actors.String,
		Genre:     genre.String,
	}, nil
}

func scanUser(scanner interface{ Scan(dest ...any) error }) (*User, error) {
	var (
		id         int64
		username   string
		createdRaw string
	)
	if err := scanner.Scan(&id, &username, &createdRaw); err != nil {
		return nil, err
	}

	user := &User{ID: id, Username: username}
	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		user.CreatedAt = created
	}
	return user, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

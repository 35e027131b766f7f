package library

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUsernameTaken reports a duplicate username on user creation.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrDuplicateTitle reports a movie title already present in the owning
	// user's collection.
	ErrDuplicateTitle = errors.New("movie already in collection")
	// ErrUserNotFound reports a lookup for an unknown user id.
	ErrUserNotFound = errors.New("user not found")
	// ErrMovieNotFound reports a lookup for a title absent from the collection.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrStore tags underlying engine failures so callers never see raw
	// driver errors.
	ErrStore = errors.New("store failure")
)

// storeErr wraps an engine failure with operation context while tagging it
// with ErrStore for errors.Is checks at the session boundary.
func storeErr(operation string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, operation, err)
}

func isUniqueViolation(err error, constraint string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, constraint)
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

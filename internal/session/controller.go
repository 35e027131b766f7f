package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"filmshelf/internal/export"
	"filmshelf/internal/library"
	"filmshelf/internal/omdb"
)

// state tags the two levels of the interactive menu.
type state int

const (
	stateNoUser state = iota
	stateUserActive
	stateExit
)

// menuEntry maps one input token to a labelled transition.
type menuEntry struct {
	key   string
	label string
	run   func(ctx context.Context)
}

// Controller drives the interactive session: user selection, then the
// per-user action menu. All reads and writes go through injected streams so
// tests can script a full session.
type Controller struct {
	store    *library.Store
	meta     omdb.Fetcher
	exporter *export.Exporter
	logger   *slog.Logger

	in     *bufio.Scanner
	out    io.Writer
	styled bool

	state state
	user  *library.User
}

// Option configures a Controller.
type Option func(*Controller)

// WithInput overrides the input stream (stdin by default).
func WithInput(r io.Reader) Option {
	return func(c *Controller) {
		if r != nil {
			c.in = bufio.NewScanner(r)
		}
	}
}

// WithOutput overrides the output stream (stdout by default).
func WithOutput(w io.Writer) Option {
	return func(c *Controller) {
		if w != nil {
			c.out = w
		}
	}
}

// WithStyledOutput toggles rounded table borders; plain output suits pipes.
func WithStyledOutput(styled bool) Option {
	return func(c *Controller) {
		c.styled = styled
	}
}

// New creates a session controller over the supplied collaborators. The
// metadata fetcher may be nil; the add-movie flow then reports that lookups
// are unavailable instead of failing at startup.
func New(store *library.Store, meta omdb.Fetcher, exporter *export.Exporter, logger *slog.Logger, opts ...Option) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Controller{
		store:    store,
		meta:     meta,
		exporter: exporter,
		logger:   logger,
		in:       bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
		state:    stateNoUser,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes the menu loop until the user exits or input ends.
func (c *Controller) Run(ctx context.Context) error {
	logger := c.logger.With("session_id", uuid.NewString())
	logger.Info("session started")

	fmt.Fprintln(c.out, "Welcome to filmshelf!")

	for c.state != stateExit {
		entries := c.menu()
		c.renderMenu(entries)

		choice, ok := c.readLine("Enter choice: ")
		if !ok {
			// Input ended; treat like an explicit exit.
			break
		}

		entry, found := lookupEntry(entries, choice)
		if !found {
			fmt.Fprintln(c.out, "Invalid choice.")
			continue
		}
		entry.run(ctx)
	}

	logger.Info("session ended")
	return nil
}

func (c *Controller) menu() []menuEntry {
	if c.state == stateUserActive {
		return c.userMenu()
	}
	return c.noUserMenu()
}

func (c *Controller) noUserMenu() []menuEntry {
	return []menuEntry{
		{"1", "Select user", c.selectUser},
		{"2", "Create new user", c.createUser},
		{"0", "Exit", c.exitApp},
	}
}

func (c *Controller) userMenu() []menuEntry {
	return []menuEntry{
		{"1", "List my movies", c.listMovies},
		{"2", "Add movie (OMDb lookup)", c.addMovie},
		{"3", "Delete movie", c.deleteMovie},
		{"4", "Update movie rating", c.updateRating},
		{"5", "View statistics", c.showStats},
		{"6", "Get random movie", c.randomMovie},
		{"7", "Search my movies", c.searchMovies},
		{"8", "Sort by rating", c.sortByRating},
		{"9", "Rating histogram", c.showHistogram},
		{"10", "Generate my site", c.generateSite},
		{"0", "Logout", c.logout},
	}
}

func (c *Controller) renderMenu(entries []menuEntry) {
	if c.state == stateUserActive && c.user != nil {
		fmt.Fprintf(c.out, "\n===== %s's Collection =====\n", c.user.Username)
	} else {
		fmt.Fprintln(c.out, "\n===== Movie Collections =====")
	}
	for _, entry := range entries {
		fmt.Fprintf(c.out, "%s. %s\n", entry.key, entry.label)
	}
}

func lookupEntry(entries []menuEntry, choice string) (menuEntry, bool) {
	for _, entry := range entries {
		if entry.key == choice {
			return entry, true
		}
	}
	return menuEntry{}, false
}

func (c *Controller) exitApp(context.Context) {
	fmt.Fprintln(c.out, "Goodbye!")
	c.state = stateExit
}

func (c *Controller) logout(context.Context) {
	if c.user != nil {
		fmt.Fprintf(c.out, "Goodbye, %s!\n", c.user.Username)
	}
	c.user = nil
	c.state = stateNoUser
}

// requireUser returns the active user, or nil after printing a hint.
// Per-user actions must not touch the store without one.
func (c *Controller) requireUser() *library.User {
	if c.user == nil {
		fmt.Fprintln(c.out, "Select a user first.")
		return nil
	}
	return c.user
}

// readLine prompts and reads one trimmed line. The second result is false
// when input has ended.
func (c *Controller) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func formatRating(rating float64) string {
	return fmt.Sprintf("%.1f", rating)
}

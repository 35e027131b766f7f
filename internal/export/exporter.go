package export

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"filmshelf/internal/library"
	"filmshelf/internal/report"
)

//go:embed templates/collection.html
var templateFS embed.FS

// timestampFormat matches the generation stamp shown in the page footer.
const timestampFormat = "2006-01-02 15:04"

// Exporter renders a user's collection into a static HTML page.
type Exporter struct {
	dir    string
	tmpl   *template.Template
	logger *slog.Logger
	now    func() time.Time
}

type pageData struct {
	Heading     string
	Movies      []library.Movie
	GeneratedAt string
}

// New creates an Exporter writing into the supplied directory.
func New(dir string, logger *slog.Logger) (*Exporter, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("export directory required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	tmpl, err := template.ParseFS(templateFS, "templates/collection.html")
	if err != nil {
		return nil, fmt.Errorf("parse collection template: %w", err)
	}
	return &Exporter{dir: dir, tmpl: tmpl, logger: logger, now: time.Now}, nil
}

// Generate writes one page for the user, movies sorted descending by rating,
// and returns the written path. The file is named from the username.
func (e *Exporter) Generate(user *library.User, movies []library.Movie) (string, error) {
	if user == nil {
		return "", fmt.Errorf("user required")
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	data := pageData{
		Heading:     cases.Title(language.English).String(user.Username),
		Movies:      report.SortByRating(movies),
		GeneratedAt: e.now().Format(timestampFormat),
	}

	path := filepath.Join(e.dir, sanitizeFilename(user.Username)+".html")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create page file: %w", err)
	}
	defer file.Close()

	if err := e.tmpl.Execute(file, data); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}

	e.logger.Info("collection page generated", "user", user.Username, "movies", len(movies), "path", path)
	return path, nil
}

// sanitizeFilename keeps usernames safe as file names. Anything outside a
// conservative character set becomes an underscore.
func sanitizeFilename(name string) string {
	var builder strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			builder.WriteRune(r)
		default:
			builder.WriteByte('_')
		}
	}
	if builder.Len() == 0 {
		return "collection"
	}
	return builder.String()
}

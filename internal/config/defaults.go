package config

const (
	defaultLibraryDir         = "~/.local/share/filmshelf"
	defaultExportDir          = "~/.local/share/filmshelf/site"
	defaultLogDir             = "~/.local/share/filmshelf/logs"
	defaultOMDBBaseURL        = "http://www.omdbapi.com/"
	defaultOMDBTimeoutSeconds = 10
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			ExportDir:  defaultExportDir,
			LogDir:     defaultLogDir,
		},
		Database: Database{
			ResetOnOpen: true,
		},
		OMDB: OMDB{
			BaseURL:        defaultOMDBBaseURL,
			TimeoutSeconds: defaultOMDBTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

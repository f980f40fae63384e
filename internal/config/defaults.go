package config

const (
	defaultConfigPath         = "~/.config/costar/config.toml"
	defaultStateDir           = "~/.local/share/costar"
	defaultLogDir             = "~/.local/share/costar/logs"
	defaultHistoryFile        = "history.db"
	defaultHistoryLimit       = 20
	defaultTMDBBaseURL        = "https://api.themoviedb.org/3"
	defaultTMDBImageBaseURL   = "https://image.tmdb.org/t/p"
	defaultTMDBLanguage       = "en-US"
	defaultTMDBRequestsPerSec = 4.0
	defaultTMDBBurst          = 8
	defaultTMDBTimeoutSeconds = 10
	defaultMinQueryLength     = 2
	defaultMaxSearchResults   = 8
	defaultServerBind         = "127.0.0.1:7490"
	defaultServerReadTimeout  = 15
	defaultServerWriteTimeout = 30
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		TMDB: TMDB{
			BaseURL:           defaultTMDBBaseURL,
			ImageBaseURL:      defaultTMDBImageBaseURL,
			Language:          defaultTMDBLanguage,
			RequestsPerSecond: defaultTMDBRequestsPerSec,
			Burst:             defaultTMDBBurst,
			TimeoutSeconds:    defaultTMDBTimeoutSeconds,
		},
		Search: Search{
			MinQueryLength: defaultMinQueryLength,
			MaxResults:     defaultMaxSearchResults,
		},
		Server: Server{
			Bind:                defaultServerBind,
			ReadTimeoutSeconds:  defaultServerReadTimeout,
			WriteTimeoutSeconds: defaultServerWriteTimeout,
		},
		History: History{
			Enabled: true,
			Limit:   defaultHistoryLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

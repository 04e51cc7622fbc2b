package config

// LogLevel controls the minimum level of emitted log entries.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// Config is the top-level pillars configuration, corresponding to .pillars.yml.
type Config struct {
	// CatalogFile and CatalogDir replace the built-in curriculum. CatalogDir
	// wins when both are set.
	CatalogFile string `yaml:"catalog_file" koanf:"catalog_file"`
	CatalogDir  string `yaml:"catalog_dir" koanf:"catalog_dir"`

	Port                  int      `yaml:"port" koanf:"port"`
	AllowAllOrigins       bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	RequestTimeoutSeconds int      `yaml:"request_timeout_seconds" koanf:"request_timeout_seconds"`
	MaxSessions           int      `yaml:"max_sessions" koanf:"max_sessions"`
	SessionIdleMinutes    int      `yaml:"session_idle_minutes" koanf:"session_idle_minutes"`
	OutputDir             string   `yaml:"output_dir" koanf:"output_dir"`
	SiteTitle             string   `yaml:"site_title" koanf:"site_title"`
	LogLevel              LogLevel `yaml:"log_level" koanf:"log_level"`
}

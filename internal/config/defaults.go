package config

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".pillars.yml"

// DefaultConfig returns a Config with sensible defaults. The built-in
// catalog is used unless a catalog file or directory is configured.
func DefaultConfig() *Config {
	return &Config{
		Port:                  8080,
		RequestTimeoutSeconds: 30,
		MaxSessions:           10000,
		SessionIdleMinutes:    120,
		OutputDir:             "site",
		SiteTitle:             "Financial Literacy Pillars",
		LogLevel:              LogInfo,
	}
}

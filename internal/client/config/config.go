package config

import (
	"fmt"
	"time"
)

const (
	BackendSQLite = "sqlite"
	BackendSecure = "secure"
	BackendMemory = "memory"
)

// Config holds runtime settings for the StreamTube client.
type Config struct {
	ServerBaseURL     string        `env:"BASE_URL"`
	RequestTimeout    time.Duration `env:"TIMEOUT"`
	StorageBackend    string        `env:"STORAGE"`
	DataDir           string        `env:"DATA_DIR"`
	SecurePassphrase  string        `env:"PASSPHRASE"`
	LogLevel          string        `env:"LOG_LEVEL"`
	LogFormat         string        `env:"LOG_FORMAT"`
	RequestsPerSecond float64       `env:"RPS"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://backend-youtube-lubk.onrender.com/api/v1"
	c.RequestTimeout = 30 * time.Second
	c.StorageBackend = BackendSQLite
	c.DataDir = ".streamtube"
	c.SecurePassphrase = ""
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.RequestsPerSecond = 0
}

// Validate reports settings the client cannot start with.
func (c *Config) Validate() error {
	if c.ServerBaseURL == "" {
		return fmt.Errorf("server base url is empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	switch c.StorageBackend {
	case BackendSQLite, BackendMemory:
	case BackendSecure:
		if c.SecurePassphrase == "" {
			return fmt.Errorf("storage backend %q requires a passphrase", c.StorageBackend)
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("requests per second must not be negative")
	}
	return nil
}

// LoadConfig constructs a Config from defaults, then overlays JSON, the
// environment and finally the given command-line args (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg, nil); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

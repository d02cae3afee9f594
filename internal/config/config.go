// Package config defines the careerform configuration and its defaults.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config is the process configuration.
type Config struct {
	// DBPath is the SQLite file holding drafts and submission history.
	// Empty means the XDG default.
	DBPath string `koanf:"db_path"`

	Sink  SinkConfig  `koanf:"sink"`
	Draft DraftConfig `koanf:"draft"`
	Log   LogConfig   `koanf:"log"`
}

// SinkConfig configures the webhook receiving finished records.
type SinkConfig struct {
	URL string `koanf:"url"`

	// Opaque ignores the webhook's response and only reports transport
	// failures.
	Opaque bool `koanf:"opaque"`

	Timeout time.Duration `koanf:"timeout"`
}

// DraftConfig configures draft persistence.
type DraftConfig struct {
	// Debounce is the quiet period after an edit before the draft is saved.
	Debounce time.Duration `koanf:"debounce"`
}

// LogConfig configures the file logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level"`

	// File is the log destination. Empty means the XDG state default.
	File string `koanf:"file"`
}

// DefaultSinkURL points at the receiver started by `careerform sink`.
const DefaultSinkURL = "http://127.0.0.1:8787/submit"

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		Sink: SinkConfig{
			URL:     DefaultSinkURL,
			Timeout: 15 * time.Second,
		},
		Draft: DraftConfig{
			Debounce: 500 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Sink.URL)
	if err != nil {
		return fmt.Errorf("%w: sink.url: %v", ErrInvalidConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: sink.url must be an absolute http(s) URL", ErrInvalidConfig)
	}
	if c.Sink.Timeout <= 0 {
		return fmt.Errorf("%w: sink.timeout must be positive", ErrInvalidConfig)
	}
	if c.Draft.Debounce <= 0 {
		return fmt.Errorf("%w: draft.debounce must be positive", ErrInvalidConfig)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

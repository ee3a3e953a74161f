package linkprof

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"
	defaultTimeout = 10 * time.Second
)

// Config configures a Scraper. Validated once in New; the value is never
// mutated afterwards and is passed by value to every component.
type Config struct {
	// SessionToken is the li_at cookie value of an already-authenticated
	// LinkedIn account. Required.
	SessionToken string

	// UserAgent applied to every page. Defaults to a fixed Chrome UA.
	UserAgent string

	// Timeout bounds every navigation. Defaults to 10s.
	Timeout time.Duration

	// Headful runs Chrome with a visible, maximized window. The default
	// (false) is headless single-process, suited to server environments.
	Headful bool

	// KeepAlive leaves the session ready for further Run calls after a
	// successful run instead of terminating the browser.
	KeepAlive bool

	// Logger for structured status lines. Defaults to slog.Default().
	Logger *slog.Logger
}

// validate checks fields in fixed order: token, then timeout. Field types
// are enforced by the compiler, so only presence and range remain.
func (c *Config) validate() error {
	if c.SessionToken == "" {
		return fmt.Errorf("%w: session token is required", ErrConfiguration)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrConfiguration)
	}
	return nil
}

func (c *Config) defaults() {
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// fileConfig is the YAML shape of a config file. Timeout is carried in
// milliseconds so the file stays engine-agnostic.
type fileConfig struct {
	SessionToken string `yaml:"session_token"`
	UserAgent    string `yaml:"user_agent"`
	TimeoutMs    int    `yaml:"timeout_ms"`
	Headful      bool   `yaml:"headful"`
	KeepAlive    bool   `yaml:"keep_alive"`
}

// LoadConfigFile reads a YAML configuration file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if fc.TimeoutMs < 0 {
		return nil, fmt.Errorf("%w: timeout_ms must not be negative", ErrConfiguration)
	}

	return &Config{
		SessionToken: fc.SessionToken,
		UserAgent:    fc.UserAgent,
		Timeout:      time.Duration(fc.TimeoutMs) * time.Millisecond,
		Headful:      fc.Headful,
		KeepAlive:    fc.KeepAlive,
	}, nil
}

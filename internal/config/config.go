package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/xolan/mood/internal/osutil"
)

const (
	// AppName is the application name used for config directory
	AppName = osutil.AppName
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
	// EnvFile is the dotenv file read from the working directory
	EnvFile = ".env"
)

// Environment variables that override values from the config file.
const (
	EnvAPIURL        = "MOOD_API_URL"
	EnvTheme         = "MOOD_THEME"
	EnvLogFile       = "MOOD_LOG_FILE"
	EnvNoticeSeconds = "MOOD_NOTICE_SECONDS"
)

const maxNoticeSeconds = 60

var (
	ErrInvalidAPIURL        = errors.New("api_url must be an absolute http or https URL")
	ErrInvalidNoticeSeconds = fmt.Errorf("notice_seconds must be between 0 and %d", maxNoticeSeconds)
	ErrInvalidTimeout       = errors.New("request_timeout_seconds must not be negative")
)

// Config represents the application configuration
type Config struct {
	// APIURL is the base URL of the journaling API (without a trailing slash)
	APIURL string `toml:"api_url"`
	// Theme is the bubbletint theme ID used by the TUI
	Theme string `toml:"theme"`
	// NoticeSeconds is how long save notices stay on screen (0 = dismiss immediately)
	NoticeSeconds int `toml:"notice_seconds"`
	// RequestTimeoutSeconds bounds every API request (0 = no timeout)
	RequestTimeoutSeconds int `toml:"request_timeout_seconds"`
	// LogFile receives debug logs; empty discards them
	LogFile string `toml:"log_file"`
}

// DefaultConfig returns a Config with sensible defaults.
// - api_url: "http://localhost:5000"
// - theme: "" (TUI default theme)
// - notice_seconds: 3
// - request_timeout_seconds: 0 (no timeout)
// - log_file: "" (logging disabled)
func DefaultConfig() Config {
	return Config{
		APIURL:        "http://localhost:5000",
		NoticeSeconds: 3,
	}
}

// NoticeDuration returns NoticeSeconds as a time.Duration.
func (c Config) NoticeDuration() time.Duration {
	return time.Duration(c.NoticeSeconds) * time.Second
}

// RequestTimeout returns RequestTimeoutSeconds as a time.Duration.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Normalize trims whitespace and drops trailing slashes from the API URL.
func (c *Config) Normalize() {
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.LogFile = strings.TrimSpace(c.LogFile)
}

// Validate checks that all values are usable.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidAPIURL, c.APIURL)
	}
	if c.NoticeSeconds < 0 || c.NoticeSeconds > maxNoticeSeconds {
		return fmt.Errorf("%w: %d", ErrInvalidNoticeSeconds, c.NoticeSeconds)
	}
	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTimeout, c.RequestTimeoutSeconds)
	}
	return nil
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	return osutil.AppPath(ConfigFile, 0755)
}

// Load reads the config file at path. Missing keys keep their defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns DefaultConfig when the file
// does not exist.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Save writes cfg to path in TOML format.
func Save(path string, cfg Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// LoadEnvFile loads variables from the given dotenv files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadEnvFile(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with MOOD_* variables found through lookup
// (os.LookupEnv in production) and re-validates the result.
func ApplyEnv(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	if v, ok := lookup(EnvAPIURL); ok && strings.TrimSpace(v) != "" {
		cfg.APIURL = v
	}
	if v, ok := lookup(EnvTheme); ok && strings.TrimSpace(v) != "" {
		cfg.Theme = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvNoticeSeconds); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvNoticeSeconds, err)
		}
		cfg.NoticeSeconds = n
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// GenerateSampleConfig returns a commented config file with default values.
func GenerateSampleConfig() string {
	d := DefaultConfig()
	return fmt.Sprintf(`# mood configuration file

# Base URL of the journaling API
api_url = %q

# TUI theme (any bubbletint theme ID, e.g. "dracula", "nord"); empty uses the default
theme = ""

# Seconds a "saved"/"failed" notice stays visible (0 dismisses immediately)
notice_seconds = %d

# Per-request timeout in seconds (0 disables the timeout)
request_timeout_seconds = %d

# Debug log destination; empty disables logging
log_file = ""
`, d.APIURL, d.NoticeSeconds, d.RequestTimeoutSeconds)
}

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/xolan/mood/internal/config"
	"github.com/xolan/mood/internal/service"
	"github.com/xolan/mood/internal/tui"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Stdin      io.Reader
	Exit       func(code int)
	LookupEnv  func(key string) (string, bool)
	ConfigPath func() (string, error)
	Services   func() (*service.Services, error)
	RunTUI     func(services *service.Services) error
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
		Exit:       os.Exit,
		LookupEnv:  os.LookupEnv,
		ConfigPath: config.GetConfigPath,
		Services:   defaultServices,
		RunTUI:     tui.Run,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps *Deps

func init() {
	deps = DefaultDeps()
}

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// effectiveConfig loads the config file and applies MOOD_* overrides.
func effectiveConfig() (string, config.Config, error) {
	configPath, err := deps.ConfigPath()
	if err != nil {
		return "", config.Config{}, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return configPath, config.Config{}, err
	}

	cfg, err = config.ApplyEnv(cfg, deps.LookupEnv)
	if err != nil {
		return configPath, config.Config{}, err
	}
	return configPath, cfg, nil
}

func defaultServices() (*service.Services, error) {
	_, cfg, err := effectiveConfig()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		return nil, err
	}
	return service.NewServices(cfg, logger)
}

// newLogger returns a debug-level text logger appending to path, or a
// logger that discards everything when path is empty.
func newLogger(path string) (*slog.Logger, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), nil
}

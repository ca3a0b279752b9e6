package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/mood/internal/config"
	"github.com/xolan/mood/internal/service"
	"github.com/xolan/mood/internal/tui/ui"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the effective configuration: the config file merged with
defaults and MOOD_* environment variables.

mood works without a config file. All settings have defaults:
  - api_url: http://localhost:5000
  - theme: (TUI default)
  - notice_seconds: 3
  - request_timeout_seconds: 0 (no timeout)
  - log_file: (logging disabled)

Environment overrides: MOOD_API_URL, MOOD_THEME, MOOD_NOTICE_SECONDS,
MOOD_LOG_FILE. A .env file in the working directory is read first.

Configuration file location:
  ~/.config/mood/config.toml          Linux
  %APPDATA%\mood\config.toml          Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

var configThemeCmd = &cobra.Command{
	Use:   "theme [id]",
	Short: "List themes, or set the TUI theme",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			listThemes()
			return
		}
		setTheme(args[0])
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configThemeCmd)
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, cfg, err := effectiveConfig()
	if err != nil {
		if configPath == "" {
			fail("Failed to determine config file location", err, "Check that your home directory is accessible")
			return
		}
		fail("Failed to load configuration", err,
			fmt.Sprintf("Check %s and the MOOD_* environment variables; api_url must be an http(s) URL", configPath))
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for mood")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "API URL:         %s%s\n", cfg.APIURL, overridden(config.EnvAPIURL))
	_, _ = fmt.Fprintf(deps.Stdout, "Theme:           %s%s\n", orDefault(cfg.Theme, ui.DefaultTheme+" (default)"), overridden(config.EnvTheme))
	_, _ = fmt.Fprintf(deps.Stdout, "Notice:          %s%s\n", cfg.NoticeDuration(), overridden(config.EnvNoticeSeconds))
	if cfg.RequestTimeoutSeconds == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Request timeout: none")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Request timeout: %s\n", cfg.RequestTimeout())
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Log file:        %s%s\n", orDefault(cfg.LogFile, "(disabled)"), overridden(config.EnvLogFile))
	_, _ = fmt.Fprintln(deps.Stdout)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'mood config init' to create a config file with all options.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

func overridden(env string) string {
	if v, ok := deps.LookupEnv(env); ok && strings.TrimSpace(v) != "" {
		return fmt.Sprintf("  (from %s)", env)
	}
	return ""
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// fileConfigService returns a ConfigService bound to the config file only,
// so that environment overrides are never written back.
func fileConfigService() *service.ConfigService {
	configPath, err := deps.ConfigPath()
	if err != nil {
		fail("Failed to determine config file location", err, "Check that your home directory is accessible")
		return nil
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		fail("Failed to load configuration", err, fmt.Sprintf("Fix or remove %s", configPath))
		return nil
	}
	return service.NewConfigService(configPath, cfg)
}

// initConfig writes the sample config file
func initConfig() {
	svc := fileConfigService()
	if svc == nil {
		return
	}

	if err := svc.Init(); err != nil {
		fail("Failed to create config file", err, "")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Created %s\n", svc.GetPath())
}

// listThemes prints the available theme IDs, marking the current one
func listThemes() {
	svc := fileConfigService()
	if svc == nil {
		return
	}

	themes := ui.NewThemeProvider(svc.Get().Theme)
	current := themes.Current()
	for _, id := range themes.Themes() {
		marker := " "
		if id == current {
			marker = "*"
		}
		_, _ = fmt.Fprintf(deps.Stdout, "%s %s\n", marker, id)
	}
}

// setTheme validates and persists the TUI theme
func setTheme(id string) {
	id = strings.ToLower(strings.TrimSpace(id))
	if !ui.NewThemeProvider("").SetTheme(id) {
		fail(fmt.Sprintf("Unknown theme '%s'", id), nil, "Run 'mood config theme' to list the available themes")
		return
	}

	svc := fileConfigService()
	if svc == nil {
		return
	}
	if err := svc.SetTheme(id); err != nil {
		fail("Failed to save theme", err, "")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Theme set to %s\n", id)
}

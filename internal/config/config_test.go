package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xolan/mood/internal/osutil"
)

// Helper to create a temporary config file
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.toml")
	// Always write the file, even if content is empty
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}
	return tmpFile
}

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.APIURL != "http://localhost:5000" {
		t.Errorf("DefaultConfig().APIURL = %q, expected %q", cfg.APIURL, "http://localhost:5000")
	}
	if cfg.NoticeSeconds != 3 {
		t.Errorf("DefaultConfig().NoticeSeconds = %d, expected 3", cfg.NoticeSeconds)
	}
	if cfg.NoticeDuration() != 3*time.Second {
		t.Errorf("NoticeDuration() = %v, expected 3s", cfg.NoticeDuration())
	}
	if cfg.RequestTimeout() != 0 {
		t.Errorf("RequestTimeout() = %v, expected 0", cfg.RequestTimeout())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid, got %v", err)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	tests := []struct {
		name           string
		configContent  string
		expectedURL    string
		expectedTheme  string
		expectedNotice int
	}{
		{
			name: "all fields set",
			configContent: `api_url = "https://journal.example.com"
theme = "nord"
notice_seconds = 5
request_timeout_seconds = 10
log_file = "/tmp/mood.log"`,
			expectedURL:    "https://journal.example.com",
			expectedTheme:  "nord",
			expectedNotice: 5,
		},
		{
			name:           "empty file keeps defaults",
			configContent:  ``,
			expectedURL:    "http://localhost:5000",
			expectedTheme:  "",
			expectedNotice: 3,
		},
		{
			name:           "trailing slash trimmed",
			configContent:  `api_url = "http://api.local:8080/"`,
			expectedURL:    "http://api.local:8080",
			expectedNotice: 3,
		},
		{
			name: "theme normalized",
			configContent: `theme = "  Dracula "
notice_seconds = 0`,
			expectedURL:    "http://localhost:5000",
			expectedTheme:  "dracula",
			expectedNotice: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := createTempConfigFile(t, tt.configContent)

			cfg, err := Load(tmpFile)
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}

			if cfg.APIURL != tt.expectedURL {
				t.Errorf("APIURL = %q, expected %q", cfg.APIURL, tt.expectedURL)
			}
			if cfg.Theme != tt.expectedTheme {
				t.Errorf("Theme = %q, expected %q", cfg.Theme, tt.expectedTheme)
			}
			if cfg.NoticeSeconds != tt.expectedNotice {
				t.Errorf("NoticeSeconds = %d, expected %d", cfg.NoticeSeconds, tt.expectedNotice)
			}
		})
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name          string
		configContent string
		expectedErr   error
	}{
		{"relative url", `api_url = "localhost:5000"`, ErrInvalidAPIURL},
		{"ftp url", `api_url = "ftp://example.com"`, ErrInvalidAPIURL},
		{"negative notice", `notice_seconds = -1`, ErrInvalidNoticeSeconds},
		{"notice too long", `notice_seconds = 61`, ErrInvalidNoticeSeconds},
		{"negative timeout", `request_timeout_seconds = -5`, ErrInvalidTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := createTempConfigFile(t, tt.configContent)

			_, err := Load(tmpFile)
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("Load() error = %v, expected %v", err, tt.expectedErr)
			}
		})
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	tmpFile := createTempConfigFile(t, `api_url = "unterminated`)

	if _, err := Load(tmpFile); err == nil {
		t.Error("Load() should return error for malformed TOML")
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	nonExistentFile := filepath.Join(tmpDir, "does_not_exist.toml")

	cfg, err := LoadOrDefault(nonExistentFile)
	if err != nil {
		t.Fatalf("LoadOrDefault() returned unexpected error for non-existent file: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadOrDefault() = %+v, expected defaults", cfg)
	}
}

func TestLoadOrDefault_ExistingInvalidFile(t *testing.T) {
	tmpFile := createTempConfigFile(t, `notice_seconds = "soon"`)

	if _, err := LoadOrDefault(tmpFile); err == nil {
		t.Error("LoadOrDefault() should return error for invalid config file")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Config{
		APIURL:                "https://journal.example.com/",
		Theme:                 "nord",
		NoticeSeconds:         7,
		RequestTimeoutSeconds: 15,
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	cfg.Normalize()
	if loaded != cfg {
		t.Errorf("Load() after Save() = %+v, expected %+v", loaded, cfg)
	}
}

func TestSave_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.APIURL = "not a url"

	if err := Save(path, cfg); !errors.Is(err, ErrInvalidAPIURL) {
		t.Errorf("Save() error = %v, expected %v", err, ErrInvalidAPIURL)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("Save() should not create a file for an invalid config")
	}
}

func TestApplyEnv(t *testing.T) {
	cfg, err := ApplyEnv(DefaultConfig(), lookupFrom(map[string]string{
		EnvAPIURL:        "https://override.example.com/",
		EnvTheme:         "Nord",
		EnvLogFile:       "/tmp/mood.log",
		EnvNoticeSeconds: "0",
	}))
	if err != nil {
		t.Fatalf("ApplyEnv() returned error: %v", err)
	}

	if cfg.APIURL != "https://override.example.com" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.Theme != "nord" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
	if cfg.LogFile != "/tmp/mood.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if cfg.NoticeSeconds != 0 {
		t.Errorf("NoticeSeconds = %d", cfg.NoticeSeconds)
	}
}

func TestApplyEnv_NoVariables(t *testing.T) {
	cfg, err := ApplyEnv(DefaultConfig(), lookupFrom(nil))
	if err != nil {
		t.Fatalf("ApplyEnv() returned error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("ApplyEnv() with no variables changed config: %+v", cfg)
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	if _, err := ApplyEnv(DefaultConfig(), lookupFrom(map[string]string{EnvNoticeSeconds: "three"})); err == nil {
		t.Error("ApplyEnv() should reject a non-numeric notice duration")
	}
	if _, err := ApplyEnv(DefaultConfig(), lookupFrom(map[string]string{EnvAPIURL: "nope"})); !errors.Is(err, ErrInvalidAPIURL) {
		t.Errorf("ApplyEnv() error = %v, expected %v", err, ErrInvalidAPIURL)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("MOOD_TEST_ONLY_VAR=from-dotenv\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Unsetenv("MOOD_TEST_ONLY_VAR") })

	if err := LoadEnvFile(filepath.Join(dir, "missing.env"), envPath); err != nil {
		t.Fatalf("LoadEnvFile() returned error: %v", err)
	}

	if got := os.Getenv("MOOD_TEST_ONLY_VAR"); got != "from-dotenv" {
		t.Errorf("MOOD_TEST_ONLY_VAR = %q, expected %q", got, "from-dotenv")
	}
}

func TestGetConfigPath(t *testing.T) {
	defer osutil.ResetProvider()

	tmpDir := t.TempDir()
	osutil.SetProvider(&mockPathProvider{configDir: tmpDir})

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() returned error: %v", err)
	}
	if path != filepath.Join(tmpDir, AppName, ConfigFile) {
		t.Errorf("GetConfigPath() = %q", path)
	}
}

func TestGetConfigPath_Error(t *testing.T) {
	defer osutil.ResetProvider()

	osutil.SetProvider(&mockPathProvider{err: errors.New("no home")})

	if _, err := GetConfigPath(); err == nil {
		t.Error("GetConfigPath() should fail when the config dir is unavailable")
	}
}

func TestGenerateSampleConfig_IsLoadable(t *testing.T) {
	tmpFile := createTempConfigFile(t, GenerateSampleConfig())

	cfg, err := Load(tmpFile)
	if err != nil {
		t.Fatalf("sample config should load, got %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("sample config = %+v, expected defaults", cfg)
	}
}

type mockPathProvider struct {
	configDir string
	err       error
}

func (m *mockPathProvider) UserConfigDir() (string, error) {
	return m.configDir, m.err
}

func (m *mockPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

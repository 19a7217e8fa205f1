package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"stepify-cli/internal/localstate"
)

const (
	DefaultAPIBaseURL     = "http://localhost:8000"
	DefaultPollIntervalS  = 3
	DefaultTimeoutSeconds = 30

	envAPIBaseURL   = "STEPIFY_API_URL"
	envTokenPath    = "STEPIFY_TOKEN_FILE"
	envPollInterval = "STEPIFY_POLL_INTERVAL_S"
	envTimeout      = "STEPIFY_REQUEST_TIMEOUT_S"
)

// Settings is the client-side runtime configuration. Zero values mean
// "use the default"; Normalize fills them in.
type Settings struct {
	APIBaseURL            string `json:"api_base_url,omitempty"`
	TokenPath             string `json:"token_path,omitempty"`
	PollIntervalSeconds   int    `json:"poll_interval_s,omitempty"`
	RequestTimeoutSeconds int    `json:"request_timeout_s,omitempty"`
}

type UpdateSettingsResult struct {
	ConfigPath string   `json:"config_path"`
	Settings   Settings `json:"settings"`
}

func defaultSettings() Settings {
	return Settings{
		APIBaseURL:            DefaultAPIBaseURL,
		PollIntervalSeconds:   DefaultPollIntervalS,
		RequestTimeoutSeconds: DefaultTimeoutSeconds,
	}
}

func normalizeSettings(raw Settings) Settings {
	norm := raw
	norm.APIBaseURL = strings.TrimRight(strings.TrimSpace(norm.APIBaseURL), "/")
	if norm.APIBaseURL == "" {
		norm.APIBaseURL = DefaultAPIBaseURL
	}
	norm.TokenPath = strings.TrimSpace(norm.TokenPath)
	if norm.PollIntervalSeconds <= 0 {
		norm.PollIntervalSeconds = DefaultPollIntervalS
	}
	if norm.RequestTimeoutSeconds <= 0 {
		norm.RequestTimeoutSeconds = DefaultTimeoutSeconds
	}
	return norm
}

// DefaultSettingsPath resolves the settings file location, preferring the
// user config dir and falling back to ~/.config.
func DefaultSettingsPath() (string, error) {
	configRoot, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(configRoot) == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", homeErr
		}
		configRoot = filepath.Join(home, ".config")
	}
	return filepath.Join(configRoot, "stepify", "settings.json"), nil
}

// Load reads the settings file, normalizes it, and applies environment
// overrides. A missing file yields defaults; an unreadable one is an error.
// A local .env file is honored when present (and silently skipped otherwise).
func Load(configPath string) (Settings, error) {
	_ = godotenv.Load()

	settings := defaultSettings()
	path := strings.TrimSpace(configPath)
	if path != "" {
		var fromFile Settings
		err := localstate.ReadJSON(path, &fromFile)
		switch {
		case err == nil:
			settings = fromFile
		case os.IsNotExist(err):
			// first run, keep defaults
		default:
			return Settings{}, err
		}
	}
	settings = normalizeSettings(settings)

	if v := strings.TrimSpace(os.Getenv(envAPIBaseURL)); v != "" {
		settings.APIBaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv(envTokenPath)); v != "" {
		settings.TokenPath = v
	}
	if v := strings.TrimSpace(os.Getenv(envPollInterval)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			settings.PollIntervalSeconds = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(envTimeout)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			settings.RequestTimeoutSeconds = n
		}
	}
	return settings, nil
}

// Update persists normalized settings to the config file.
func Update(configPath string, settings Settings) (UpdateSettingsResult, error) {
	path := strings.TrimSpace(configPath)
	norm := normalizeSettings(settings)
	if err := localstate.WriteJSON(path, norm, 0o644); err != nil {
		return UpdateSettingsResult{}, err
	}
	return UpdateSettingsResult{ConfigPath: path, Settings: norm}, nil
}

func (s Settings) PollInterval() time.Duration {
	return time.Duration(s.PollIntervalSeconds) * time.Second
}

func (s Settings) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

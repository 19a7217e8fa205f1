package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "settings.json"))
	if err != nil {
		t.Fatal(err)
	}
	if settings.APIBaseURL != DefaultAPIBaseURL {
		t.Fatalf("unexpected base URL %q", settings.APIBaseURL)
	}
	if settings.PollIntervalSeconds != DefaultPollIntervalS {
		t.Fatalf("unexpected poll interval %d", settings.PollIntervalSeconds)
	}
	if settings.RequestTimeoutSeconds != DefaultTimeoutSeconds {
		t.Fatalf("unexpected timeout %d", settings.RequestTimeoutSeconds)
	}
}

func TestUpdateThenLoad_Normalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	res, err := Update(path, Settings{
		APIBaseURL:          "https://api.example.com/",
		PollIntervalSeconds: 0,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Settings.APIBaseURL != "https://api.example.com" {
		t.Fatalf("expected trailing slash trimmed, got %q", res.Settings.APIBaseURL)
	}
	if res.Settings.PollIntervalSeconds != DefaultPollIntervalS {
		t.Fatalf("expected zero interval normalized to default, got %d", res.Settings.PollIntervalSeconds)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.APIBaseURL != "https://api.example.com" {
		t.Fatalf("unexpected loaded base URL %q", loaded.APIBaseURL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if _, err := Update(path, Settings{APIBaseURL: "https://file.example.com"}); err != nil {
		t.Fatal(err)
	}

	t.Setenv("STEPIFY_API_URL", "https://env.example.com/")
	t.Setenv("STEPIFY_POLL_INTERVAL_S", "7")
	t.Setenv("STEPIFY_REQUEST_TIMEOUT_S", "11")

	settings, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if settings.APIBaseURL != "https://env.example.com" {
		t.Fatalf("env override lost: %q", settings.APIBaseURL)
	}
	if settings.PollIntervalSeconds != 7 {
		t.Fatalf("env poll interval lost: %d", settings.PollIntervalSeconds)
	}
	if settings.RequestTimeoutSeconds != 11 {
		t.Fatalf("env timeout lost: %d", settings.RequestTimeoutSeconds)
	}
}

func TestLoad_IgnoresBadEnvNumbers(t *testing.T) {
	t.Setenv("STEPIFY_POLL_INTERVAL_S", "not-a-number")
	settings, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if settings.PollIntervalSeconds != DefaultPollIntervalS {
		t.Fatalf("bad env value must keep default, got %d", settings.PollIntervalSeconds)
	}
}

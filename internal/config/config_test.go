package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"costar/internal/config"
)

func TestLoadDefaultConfigUsesEnvTMDBKeyAndExpandsPaths(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "test-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantState := filepath.Join(tempHome, ".local", "share", "costar")
	if cfg.Paths.StateDir != wantState {
		t.Fatalf("unexpected state dir: got %q want %q", cfg.Paths.StateDir, wantState)
	}
	if cfg.History.Path != filepath.Join(wantState, "history.db") {
		t.Fatalf("unexpected history path: %q", cfg.History.Path)
	}
	if cfg.TMDB.APIKey != "test-key" {
		t.Fatalf("expected TMDB key from env, got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != config.Default().TMDB.BaseURL {
		t.Fatalf("unexpected TMDB base url: %q", cfg.TMDB.BaseURL)
	}
	if cfg.Search.MinQueryLength != 2 || cfg.Search.MaxResults != 8 {
		t.Fatalf("unexpected search limits: %+v", cfg.Search)
	}
	if cfg.Server.Bind != "127.0.0.1:7490" {
		t.Fatalf("unexpected server bind: %q", cfg.Server.Bind)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.StateDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "env-key")
	t.Chdir(t.TempDir())
	configPath := filepath.Join(t.TempDir(), "costar.toml")

	type payload struct {
		TMDB struct {
			APIKey  string `toml:"api_key"`
			BaseURL string `toml:"base_url"`
		} `toml:"tmdb"`
		Search struct {
			MaxResults int `toml:"max_results"`
		} `toml:"search"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.TMDB.APIKey = "abc123"
	custom.TMDB.BaseURL = "https://example.com/tmdb/"
	custom.Search.MaxResults = 5
	custom.Logging.Format = "JSON"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.TMDB.APIKey != "abc123" {
		t.Fatalf("expected TMDB key from file to win over env, got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.BaseURL != "https://example.com/tmdb" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.TMDB.BaseURL)
	}
	if cfg.Search.MaxResults != 5 {
		t.Fatalf("expected max results 5, got %d", cfg.Search.MaxResults)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected normalized json format, got %q", cfg.Logging.Format)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	// Registers cleanup; unset so the .env value is used.
	t.Setenv("TMDB_API_KEY", "")
	os.Unsetenv("TMDB_API_KEY")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("TMDB_API_KEY=from-dotenv\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TMDB.APIKey != "from-dotenv" {
		t.Fatalf("expected key from .env, got %q", cfg.TMDB.APIKey)
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TMDB_API_KEY", "")
	os.Unsetenv("TMDB_API_KEY")

	_, _, _, err := config.Load("")
	if err == nil {
		t.Fatal("expected error when api key missing")
	}
	if !strings.Contains(err.Error(), "tmdb.api_key is required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "TMDB_API_KEY") {
		t.Fatalf("sample config missing TMDB key hint: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if !cfg.History.Enabled {
		t.Fatal("expected sample to enable history")
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error without api key")
	}

	cfg = config.Default()
	cfg.TMDB.APIKey = "key"
	cfg.Server.Bind = "no-port"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for bind without port")
	}

	cfg = config.Default()
	cfg.TMDB.APIKey = "key"
	cfg.Search.MaxResults = 50
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for oversized result limit")
	}

	cfg = config.Default()
	cfg.TMDB.APIKey = "key"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown log level")
	}

	cfg = config.Default()
	cfg.TMDB.APIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults with key to validate, got %v", err)
	}
}

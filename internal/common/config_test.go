package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.API.PageSize != 20 {
		t.Fatalf("PageSize = %d, want default 20", cfg.API.PageSize)
	}
	if cfg.Cache.NewsLimit != 10 {
		t.Fatalf("NewsLimit = %d, want default 10", cfg.Cache.NewsLimit)
	}
	if cfg.Server.GRPCAddr != "127.0.0.1:9090" {
		t.Fatalf("GRPCAddr = %q, want default local address", cfg.Server.GRPCAddr)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[api]
base_url = "https://api.example.org"
page_size = 50
request_timeout = "30s"

[cache]
news_limit = 25

[connectivity]
probe_interval = "5s"
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.API.BaseURL != "https://api.example.org" {
		t.Fatalf("BaseURL = %q, want file value", cfg.API.BaseURL)
	}
	if cfg.API.PageSize != 50 {
		t.Fatalf("PageSize = %d, want 50", cfg.API.PageSize)
	}
	if cfg.API.RequestTimeout != 30*time.Second {
		t.Fatalf("RequestTimeout = %v, want 30s", cfg.API.RequestTimeout)
	}
	if cfg.Cache.NewsLimit != 25 {
		t.Fatalf("NewsLimit = %d, want 25", cfg.Cache.NewsLimit)
	}
	if cfg.Connectivity.ProbeInterval != 5*time.Second {
		t.Fatalf("ProbeInterval = %v, want 5s", cfg.Connectivity.ProbeInterval)
	}
	// Untouched sections keep their defaults.
	if cfg.Cache.GalleryLimit != 10 {
		t.Fatalf("GalleryLimit = %d, want default 10", cfg.Cache.GalleryLimit)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[api]\nbase_url = \"https://file.example.org\"\n"), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	t.Setenv("API_BASE_URL", "https://env.example.org")
	t.Setenv("API_PAGE_SIZE", "7")
	t.Setenv("PROBE_TIMEOUT", "9s")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.API.BaseURL != "https://env.example.org" {
		t.Fatalf("BaseURL = %q, want env value to win", cfg.API.BaseURL)
	}
	if cfg.API.PageSize != 7 {
		t.Fatalf("PageSize = %d, want 7", cfg.API.PageSize)
	}
	if cfg.Connectivity.ProbeTimeout != 9*time.Second {
		t.Fatalf("ProbeTimeout = %v, want 9s", cfg.Connectivity.ProbeTimeout)
	}
}

func TestLoadConfig_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[api\nbase_url ="), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig with malformed TOML succeeded, want error")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg := defaultConfig()
		cfg.API.BaseURL = "https://api.example.org"
		cfg.Auth.Secret = "s3cret"
		return cfg
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("Validate returned error for valid config: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing base URL", func(c *Config) { c.API.BaseURL = "" }},
		{"non-positive page size", func(c *Config) { c.API.PageSize = 0 }},
		{"missing secret", func(c *Config) { c.Auth.Secret = "" }},
		{"missing grpc addr", func(c *Config) { c.Server.GRPCAddr = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate succeeded, want error")
			}
		})
	}
}

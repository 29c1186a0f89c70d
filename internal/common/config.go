package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration
type Config struct {
	API          APIConfig
	Cache        CacheConfig
	Auth         AuthConfig
	Server       ServerConfig
	Connectivity ConnectivityConfig
}

// APIConfig holds backend REST API configuration
type APIConfig struct {
	BaseURL        string
	PageSize       int
	RequestTimeout time.Duration
}

// CacheConfig holds the on-device snapshot database configuration
type CacheConfig struct {
	Path             string
	NewsLimit        int
	GalleryLimit     int
	TransactionLimit int
}

// AuthConfig holds token-store configuration
type AuthConfig struct {
	TokenPath string
	Secret    string
}

// ServerConfig holds the local gRPC surface configuration
type ServerConfig struct {
	GRPCAddr string
}

// ConnectivityConfig holds network-probe configuration
type ConnectivityConfig struct {
	ProbeInterval time.Duration
	ProbeTimeout  time.Duration
}

// fileConfig is the TOML shape of the optional config file. Durations are
// strings in time.ParseDuration syntax.
type fileConfig struct {
	API struct {
		BaseURL        string `toml:"base_url"`
		PageSize       int    `toml:"page_size"`
		RequestTimeout string `toml:"request_timeout"`
	} `toml:"api"`
	Cache struct {
		Path             string `toml:"path"`
		NewsLimit        int    `toml:"news_limit"`
		GalleryLimit     int    `toml:"gallery_limit"`
		TransactionLimit int    `toml:"transaction_limit"`
	} `toml:"cache"`
	Auth struct {
		TokenPath string `toml:"token_path"`
	} `toml:"auth"`
	Server struct {
		GRPCAddr string `toml:"grpc_addr"`
	} `toml:"server"`
	Connectivity struct {
		ProbeInterval string `toml:"probe_interval"`
		ProbeTimeout  string `toml:"probe_timeout"`
	} `toml:"connectivity"`
}

// LoadConfig reads the optional TOML config file at path (falling back to
// defaults when missing) and then applies environment-variable overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else {
			var fc fileConfig
			if err := toml.Unmarshal(raw, &fc); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
			applyFile(cfg, &fc)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			PageSize:       20,
			RequestTimeout: 15 * time.Second,
		},
		Cache: CacheConfig{
			Path:             filepath.Join("data", "snapshot.db"),
			NewsLimit:        10,
			GalleryLimit:     10,
			TransactionLimit: 10,
		},
		Auth: AuthConfig{
			TokenPath: filepath.Join("data", "token.bin"),
		},
		Server: ServerConfig{
			GRPCAddr: "127.0.0.1:9090",
		},
		Connectivity: ConnectivityConfig{
			ProbeInterval: 10 * time.Second,
			ProbeTimeout:  3 * time.Second,
		},
	}
}

func applyFile(cfg *Config, fc *fileConfig) {
	if v := strings.TrimSpace(fc.API.BaseURL); v != "" {
		cfg.API.BaseURL = v
	}
	if fc.API.PageSize > 0 {
		cfg.API.PageSize = fc.API.PageSize
	}
	if d, err := time.ParseDuration(fc.API.RequestTimeout); err == nil && d > 0 {
		cfg.API.RequestTimeout = d
	}
	if v := strings.TrimSpace(fc.Cache.Path); v != "" {
		cfg.Cache.Path = v
	}
	if fc.Cache.NewsLimit > 0 {
		cfg.Cache.NewsLimit = fc.Cache.NewsLimit
	}
	if fc.Cache.GalleryLimit > 0 {
		cfg.Cache.GalleryLimit = fc.Cache.GalleryLimit
	}
	if fc.Cache.TransactionLimit > 0 {
		cfg.Cache.TransactionLimit = fc.Cache.TransactionLimit
	}
	if v := strings.TrimSpace(fc.Auth.TokenPath); v != "" {
		cfg.Auth.TokenPath = v
	}
	if v := strings.TrimSpace(fc.Server.GRPCAddr); v != "" {
		cfg.Server.GRPCAddr = v
	}
	if d, err := time.ParseDuration(fc.Connectivity.ProbeInterval); err == nil && d > 0 {
		cfg.Connectivity.ProbeInterval = d
	}
	if d, err := time.ParseDuration(fc.Connectivity.ProbeTimeout); err == nil && d > 0 {
		cfg.Connectivity.ProbeTimeout = d
	}
}

func applyEnv(cfg *Config) {
	cfg.API.BaseURL = getEnv("API_BASE_URL", cfg.API.BaseURL)
	cfg.API.PageSize = getEnvAsInt("API_PAGE_SIZE", cfg.API.PageSize)
	cfg.API.RequestTimeout = getEnvAsDuration("API_REQUEST_TIMEOUT", cfg.API.RequestTimeout)
	cfg.Cache.Path = getEnv("CACHE_PATH", cfg.Cache.Path)
	cfg.Cache.NewsLimit = getEnvAsInt("CACHE_NEWS_LIMIT", cfg.Cache.NewsLimit)
	cfg.Cache.GalleryLimit = getEnvAsInt("CACHE_GALLERY_LIMIT", cfg.Cache.GalleryLimit)
	cfg.Cache.TransactionLimit = getEnvAsInt("CACHE_TRANSACTION_LIMIT", cfg.Cache.TransactionLimit)
	cfg.Auth.TokenPath = getEnv("AUTH_TOKEN_PATH", cfg.Auth.TokenPath)
	cfg.Auth.Secret = getEnv("AUTH_SECRET", cfg.Auth.Secret)
	cfg.Server.GRPCAddr = getEnv("GRPC_ADDR", cfg.Server.GRPCAddr)
	cfg.Connectivity.ProbeInterval = getEnvAsDuration("PROBE_INTERVAL", cfg.Connectivity.ProbeInterval)
	cfg.Connectivity.ProbeTimeout = getEnvAsDuration("PROBE_TIMEOUT", cfg.Connectivity.ProbeTimeout)
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "API_BASE_URL is required", ErrInvalidInput)
	}
	if c.API.PageSize <= 0 {
		return NewAppError("CONFIG_ERROR", "page size must be positive", ErrInvalidInput)
	}
	if c.Auth.Secret == "" {
		return NewAppError("CONFIG_ERROR", "AUTH_SECRET is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}

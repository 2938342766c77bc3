// Package config resolves the proxy configuration for one command
// invocation. Values come from an optional YAML file at
// ~/.config/codetime/config.yaml, overridden by the CODETIME_PROXY_URL and
// CODETIME_API_KEY environment variables. Nothing is cached between calls.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/xylex-group/code-time/pkg/model"
)

// Environment variables recognized by every command.
const (
	EnvProxyURL = "CODETIME_PROXY_URL"
	EnvAPIKey   = "CODETIME_API_KEY"
)

// fileConfig mirrors the optional YAML config file.
type fileConfig struct {
	ProxyURL string `yaml:"proxy_url"`
	APIKey   string `yaml:"api_key"`
}

// Path returns the config file location, or "" when the user config
// directory cannot be determined.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "codetime", "config.yaml")
}

// Load resolves the effective configuration: defaults, then the config
// file, then environment overrides.
func Load() (model.Config, error) {
	return LoadFrom(Path())
}

// LoadFrom resolves configuration using the given config file path. A
// missing file is not an error; an unreadable or malformed one is.
func LoadFrom(path string) (model.Config, error) {
	cfg := model.DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// No config file, env and defaults apply.
		case err != nil:
			return model.Config{}, fmt.Errorf("read config file: %w", err)
		default:
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return model.Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
			if fc.ProxyURL != "" {
				cfg.BaseURL = fc.ProxyURL
			}
			if fc.APIKey != "" {
				cfg.APIKey = fc.APIKey
			}
		}
	}

	if v := os.Getenv(EnvProxyURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}

	cfg.BaseURL = NormalizeBaseURL(cfg.BaseURL)
	return cfg, nil
}

// NormalizeBaseURL trims whitespace and trailing slashes from a configured
// base URL. Values not starting with http:// or https:// fall back to the
// default proxy address.
func NormalizeBaseURL(raw string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if strings.HasPrefix(trimmed, "https://") || strings.HasPrefix(trimmed, "http://") {
		return trimmed
	}
	return model.DefaultBaseURL
}

package model

import "strings"

// DefaultBaseURL is the proxy address used when none is configured.
const DefaultBaseURL = "http://localhost:9492"

// Config holds the proxy configuration resolved for a single invocation.
type Config struct {
	BaseURL string // Validated proxy base URL, no trailing slash
	APIKey  string // Optional bearer token; empty means unauthenticated
}

// DefaultConfig returns a Config pointing at the default local proxy.
func DefaultConfig() Config {
	return Config{BaseURL: DefaultBaseURL}
}

// HasAPIKey reports whether a bearer token is configured.
func (c Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// DisplayURL returns the base URL reduced to scheme and host, so that
// path-embedded secrets never reach UI surfaces.
func (c Config) DisplayURL() string {
	for _, scheme := range []string{"https://", "http://"} {
		if after, ok := strings.CutPrefix(c.BaseURL, scheme); ok {
			host, _, _ := strings.Cut(after, "/")
			return scheme + host
		}
	}
	return c.BaseURL
}

// Package rpc is a JSON-RPC client for a PIVX full node.
//
// A Client bounds the number of requests in flight, retries transient
// transport failures and decodes results into the types of package pivxjson.
// Every typed method is a thin wrapper around Client.Call.
package rpc

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ConnConfig holds the settings of one Client. It is copied at construction
// and never changes afterwards.
type ConnConfig struct {
	// Endpoint is host:port or a full http(s) URL.
	Endpoint string
	User     string
	Pass     string

	// MaxConcurrent bounds simultaneous in-flight requests. Must be >= 1.
	MaxConcurrent int
	// MaxRetries is the number of extra attempts after a retryable failure.
	MaxRetries int
	// Timeout bounds every single attempt. Must be > 0.
	Timeout time.Duration
	// RetryDelay is the fixed pause between attempts.
	RetryDelay time.Duration

	// HTTPClient is used by the default transport. Optional.
	HTTPClient *http.Client
	// Transport replaces the default HTTP transport. Optional.
	Transport Transport
}

func (cfg ConnConfig) validate() (ConnConfig, error) {
	if cfg.MaxConcurrent < 1 {
		return cfg, &ConfigError{Field: "MaxConcurrent", Reason: "must be at least 1"}
	}
	if cfg.MaxRetries < 0 {
		return cfg, &ConfigError{Field: "MaxRetries", Reason: "must not be negative"}
	}
	if cfg.Timeout <= 0 {
		return cfg, &ConfigError{Field: "Timeout", Reason: "must be positive"}
	}
	if cfg.RetryDelay < 0 {
		return cfg, &ConfigError{Field: "RetryDelay", Reason: "must not be negative"}
	}
	if cfg.Transport != nil && cfg.Endpoint == "" {
		return cfg, nil
	}

	endpoint, err := normalizeEndpoint(cfg.Endpoint)
	if err != nil {
		return cfg, err
	}
	cfg.Endpoint = endpoint
	return cfg, nil
}

func normalizeEndpoint(endpoint string) (string, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return "", &ConfigError{Field: "Endpoint", Reason: "is required"}
	}
	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", &ConfigError{Field: "Endpoint", Reason: err.Error()}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &ConfigError{Field: "Endpoint", Reason: "scheme must be http or https"}
	}
	if u.Host == "" {
		return "", &ConfigError{Field: "Endpoint", Reason: "has no host"}
	}
	return u.String(), nil
}

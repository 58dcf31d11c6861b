// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the service configuration. It can be loaded from a JSON file;
// missing values fall back to defaults, and secrets always come from the
// environment.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Data
	Catalog    string `json:"catalog,omitempty"`    // Path to the static job catalog JSON
	Vocabulary string `json:"vocabulary,omitempty"` // Optional path to a vocabulary JSON (built-in default when empty)

	// Behavior
	TopN               int `json:"top_n,omitempty"`                // Ranked matches returned per scan
	ScanTimeoutSeconds int `json:"scan_timeout_seconds,omitempty"` // Upper bound for one scan pipeline run
	SessionTTLHours    int `json:"session_ttl_hours,omitempty"`    // In-memory session lifetime

	// Logging
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
	LogFormat string `json:"log_format,omitempty"` // json or console

	// Billing (the secret key comes from STRIPE_SECRET_KEY, never the file)
	StripePriceID   string `json:"stripe_price_id,omitempty"`
	CheckoutSuccess string `json:"checkout_success_url,omitempty"`
	CheckoutCancel  string `json:"checkout_cancel_url,omitempty"`
}

// Defaults returns the configuration used when no file overrides it.
func Defaults() Config {
	return Config{
		Port:               8080,
		Catalog:            "data/catalog.json",
		TopN:               5,
		ScanTimeoutSeconds: 30,
		SessionTTLHours:    24,
		LogLevel:           "info",
		LogFormat:          "console",
		CheckoutSuccess:    "http://localhost:8080/billing/confirm",
		CheckoutCancel:     "http://localhost:8080/",
	}
}

// Load reads configuration from a JSON file and fills unset fields from
// Defaults. An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return &cfg, nil
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fileCfg Config
	if err := json.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return merge(fileCfg, cfg), nil
}

// merge returns cfg with empty fields filled from defaults.
func merge(cfg, defaults Config) *Config {
	if cfg.Port == 0 {
		cfg.Port = defaults.Port
	}
	if cfg.Catalog == "" {
		cfg.Catalog = defaults.Catalog
	}
	if cfg.TopN == 0 {
		cfg.TopN = defaults.TopN
	}
	if cfg.ScanTimeoutSeconds == 0 {
		cfg.ScanTimeoutSeconds = defaults.ScanTimeoutSeconds
	}
	if cfg.SessionTTLHours == 0 {
		cfg.SessionTTLHours = defaults.SessionTTLHours
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = defaults.LogFormat
	}
	if cfg.CheckoutSuccess == "" {
		cfg.CheckoutSuccess = defaults.CheckoutSuccess
	}
	if cfg.CheckoutCancel == "" {
		cfg.CheckoutCancel = defaults.CheckoutCancel
	}
	return &cfg
}

// Validate checks that the configuration has valid values. A missing catalog
// file is fatal: the service refuses to start without one.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in 1..65535, got %d", c.Port)
	}
	if c.TopN < 1 {
		return fmt.Errorf("config error: 'top_n' must be positive, got %d", c.TopN)
	}
	if c.ScanTimeoutSeconds < 1 {
		return fmt.Errorf("config error: 'scan_timeout_seconds' must be positive")
	}
	if c.SessionTTLHours < 1 {
		return fmt.Errorf("config error: 'session_ttl_hours' must be positive")
	}

	if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
		return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
	}
	if c.Vocabulary != "" {
		if _, err := os.Stat(c.Vocabulary); os.IsNotExist(err) {
			return fmt.Errorf("config error: vocabulary file not found: %s", c.Vocabulary)
		}
	}

	return nil
}

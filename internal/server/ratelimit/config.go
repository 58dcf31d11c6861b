package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule is the rate limiting rule for one endpoint. A path ending in "/"
// matches by prefix.
type Rule struct {
	Path   string
	Method string
	Limit  int           // requests per window; <= 0 means unlimited
	Window time.Duration
	Burst  int // burst capacity, defaults to Limit
}

// Config holds the limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Rules           []Rule
}

// DefaultConfig returns the limiter configuration used in production,
// overridable through RATE_LIMIT_* environment variables.
func DefaultConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 300),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Rules: []Rule{
			// Scans run document parsing and ranking; keep them tight.
			{Path: "/scan", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},
			// Billing endpoints hit the payment provider.
			{Path: "/billing/", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
			{Path: "/billing/", Method: "GET", Limit: 60, Window: time.Hour, Burst: 10},
			// Session creation is cheap but abusable.
			{Path: "/sessions", Method: "POST", Limit: 60, Window: time.Hour, Burst: 10},
		},
	}
}

// match finds the rule for a path and method, falling back to the default
// limit. Health checks are unlimited.
func (c *Config) match(path, method string) Rule {
	if path == "/health" && method == "GET" {
		return Rule{}
	}

	for _, rule := range c.Rules {
		if rule.Method != method {
			continue
		}
		if rule.Path == path {
			return rule
		}
		if strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) {
			return rule
		}
	}

	return Rule{Limit: c.DefaultLimit, Window: c.DefaultWindow, Burst: c.DefaultLimit}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

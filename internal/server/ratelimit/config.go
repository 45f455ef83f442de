package ratelimit

import (
	"strings"
	"time"

	"github.com/jonathan/salary-predictor/internal/config"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// FromSettings builds the limiter configuration from the rate_limit config section.
func FromSettings(rc config.RateLimitConfig) *Config {
	if !rc.Enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    rc.DefaultLimit,
		DefaultWindow:   rc.DefaultWindow,
		CleanupInterval: rc.CleanupInterval,
		Whitelist:       ipSet(rc.Whitelist),
		Blacklist:       ipSet(rc.Blacklist),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Batches fan out up to 500 estimates per call.
		{Path: "/estimate/batch", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},

		{Path: "/estimate", Method: "POST", Limit: 600, Window: time.Minute, Burst: 60},
		{Path: "/estimate/summary", Method: "POST", Limit: 600, Window: time.Minute, Burst: 60},

		// GET /options falls through to the default limit; /health and /metrics are unlimited.
	}
}

// ipSet turns a list of addresses into a lookup set, skipping blanks.
func ipSet(list []string) map[string]bool {
	result := make(map[string]bool, len(list))
	for _, ip := range list {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}

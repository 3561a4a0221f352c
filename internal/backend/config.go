package backend

import (
	"os"
	"strconv"
	"strings"
)

// Config holds everything needed to reach the review backend.
type Config struct {
	BaseURL           string
	Token             string
	TimeoutMs         int
	MutationTimeoutMs int // overrides TimeoutMs for status changes if > 0
	LogCalls          bool
}

// DefaultConfig returns a Config pointing at a local backend.
func DefaultConfig() Config {
	return Config{
		BaseURL:           "http://localhost:8080/api",
		TimeoutMs:         10000,
		MutationTimeoutMs: 15000,
	}
}

// LoadConfig reads backend configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TIMEREVIEW_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TIMEREVIEW_API_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("TIMEREVIEW_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TIMEREVIEW_MUTATION_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MutationTimeoutMs = n
		}
	}
	if v := os.Getenv("TIMEREVIEW_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	cfg.BaseURL = NormalizeBaseURL(cfg.BaseURL)
	return cfg
}

// NormalizeBaseURL trims whitespace and trailing slashes so paths can be
// appended directly.
func NormalizeBaseURL(u string) string {
	return strings.TrimRight(strings.TrimSpace(u), "/")
}

// CallTimeout returns the effective timeout for a read or a mutation.
func (c Config) CallTimeout(mutation bool) int {
	if mutation && c.MutationTimeoutMs > 0 {
		return c.MutationTimeoutMs
	}
	return c.TimeoutMs
}

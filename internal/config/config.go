// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading functions accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

// Run modes. Mode controls diagnostic verbosity only; the canned
// responses are identical in both.
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

// Default simulated processing delay, matching the backend this server
// stands in for.
const defaultDelayMS = 1000

// Config contains process configuration. Extend as needed.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":5001".
	Addr string `koanf:"addr"`

	// Mode selects development or production diagnostics.
	Mode string `koanf:"mode"`

	// LogLevel controls verbosity: debug, info, warn, error.
	// Development mode forces debug regardless of this value.
	LogLevel string `koanf:"log_level"`

	// ScanDelayMS is the simulated OCR latency for POST /api/upload.
	ScanDelayMS int `koanf:"scan_delay_ms"`

	// SubmitDelayMS is the simulated latency for POST /api/submit.
	SubmitDelayMS int `koanf:"submit_delay_ms"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:          ":5001",
		Mode:          ModeProduction,
		LogLevel:      "info",
		ScanDelayMS:   defaultDelayMS,
		SubmitDelayMS: defaultDelayMS,
	}
}

// Development reports whether verbose diagnostics are enabled.
func (c *Config) Development() bool {
	return c.Mode == ModeDevelopment
}

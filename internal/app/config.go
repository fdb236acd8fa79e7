// Package app wires the line source, scanner, and detectors into a single
// analysis run and carries the run configuration.
package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/awais-ramzan/log-security-analyzer/internal/adapters/detection"
)

// Config holds the validated detection settings for one run.
type Config struct {
	BruteForceThreshold int      // static per-address failure threshold
	WindowThreshold     int      // failures inside the sliding window
	WindowMinutes       float64  // sliding window length
	UsernameThreshold   int      // distinct usernames per address
	Keywords            []string // failed-login keywords
	Workers             int      // extraction pass goroutines
	Year                int      // substituted into yearless timestamps; 0 = current
}

// DefaultConfig returns the built-in detection defaults.
func DefaultConfig() Config {
	return Config{
		BruteForceThreshold: detection.DefaultBruteForceThreshold,
		WindowThreshold:     detection.DefaultWindowThreshold,
		WindowMinutes:       detection.DefaultWindowMinutes,
		UsernameThreshold:   detection.DefaultUsernameThreshold,
		Keywords:            detection.DefaultFailedLoginKeywords,
		Workers:             4,
	}
}

// ConfigFromViper builds a Config from the given viper instance. Validation
// is per field: an invalid value (non-positive threshold, empty keyword
// list) falls back to its default with a warning. Bad configuration never
// stops an analysis run.
func ConfigFromViper(v *viper.Viper) Config {
	cfg := DefaultConfig()

	cfg.BruteForceThreshold = positiveInt(v, "detection.brute_force_threshold", cfg.BruteForceThreshold)
	cfg.WindowThreshold = positiveInt(v, "detection.time_window_threshold", cfg.WindowThreshold)
	cfg.UsernameThreshold = positiveInt(v, "detection.multiple_username_threshold", cfg.UsernameThreshold)
	cfg.Workers = positiveInt(v, "workers.count", cfg.Workers)

	if minutes := v.GetFloat64("detection.time_window_minutes"); minutes > 0 {
		cfg.WindowMinutes = minutes
	} else if v.IsSet("detection.time_window_minutes") {
		warnFallback("detection.time_window_minutes", v.Get("detection.time_window_minutes"))
	}

	if keywords := v.GetStringSlice("detection.failed_login_keywords"); len(keywords) > 0 {
		cfg.Keywords = keywords
	} else if v.IsSet("detection.failed_login_keywords") {
		warnFallback("detection.failed_login_keywords", "empty list")
	}

	return cfg
}

func positiveInt(v *viper.Viper, key string, fallback int) int {
	value := v.GetInt(key)
	if value > 0 {
		return value
	}
	if v.IsSet(key) {
		warnFallback(key, v.Get(key))
	}
	return fallback
}

func warnFallback(key string, value interface{}) {
	log.Warn().
		Str("key", key).
		Interface("value", value).
		Msg("Invalid config value, using default")
}

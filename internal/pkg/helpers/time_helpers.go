package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// LastN returns at most the last n items of s, in their original order.
func LastN[T any](s []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timing values.
// These values can be customized via environment variables.
type Timeouts struct {
	StackCreate       time.Duration // Overall budget for stack creation to reach a terminal state
	PollInterval      time.Duration // Delay between stack event polls
	RetryMaxAttempts  int           // Maximum attempts for transient provider faults mid-poll
	RetryInitialDelay time.Duration // Initial delay between retry attempts
}

// LoadTimeouts loads timing configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - STACKPILOT_TIMEOUT_STACK_CREATE (default: 600s)
//   - STACKPILOT_POLL_INTERVAL (default: 10s)
//   - STACKPILOT_RETRY_MAX_ATTEMPTS (default: 5)
//   - STACKPILOT_RETRY_INITIAL_DELAY (default: 1s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		StackCreate:       parseDuration("STACKPILOT_TIMEOUT_STACK_CREATE", 600*time.Second),
		PollInterval:      parseDuration("STACKPILOT_POLL_INTERVAL", 10*time.Second),
		RetryMaxAttempts:  parseInt("STACKPILOT_RETRY_MAX_ATTEMPTS", 5),
		RetryInitialDelay: parseDuration("STACKPILOT_RETRY_INITIAL_DELAY", 1*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return i
}

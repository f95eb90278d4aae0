package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds CLI configuration for sbdrain.
type Config struct {
	ConnectionString string
	Namespace        string

	Topic        string
	Subscription string

	Active bool
	DLQ    bool

	Limit     int
	BatchSize int
	MaxWait   time.Duration

	NoBrowser bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Limit:            -1,
		BatchSize:        1000,
		MaxWait:          5 * time.Second,
		ConnectionString: os.Getenv("SERVICE_BUS_CONNECTION_STR"),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Topic == "" {
		return fmt.Errorf("topic is required (--topic or SERVICE_BUS_TOPIC)")
	}
	if c.Subscription == "" {
		return fmt.Errorf("subscription is required (--subscription or SERVICE_BUS_SUBSCRIPTION)")
	}

	// cobra already rejects --active together with --dlq; this guards
	// callers that build a Config directly.
	if c.Active && c.DLQ {
		return fmt.Errorf("active and dlq are mutually exclusive")
	}

	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive")
	}
	if c.MaxWait < 0 {
		return fmt.Errorf("wait must not be negative")
	}
	if c.Limit < -1 {
		return fmt.Errorf("limit must be -1 (no limit) or non-negative")
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setWaitFromString parses a duration from string, accepting either a Go
// duration or a bare number of seconds, and sets the destination if valid
// and flag not changed. Used for environment variables that come as strings.
func (s *configSetter) setWaitFromString(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return nil
		}
		*dst = time.Duration(secs) * time.Second
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrInvalidPort is returned for ports outside 0-65535.
var ErrInvalidPort = errors.New("port is out of range")

// Validate checks the configuration for values the server cannot use.
// A port of 0 asks the OS for a free port.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d (valid: 0-65535)", ErrInvalidPort, c.Port)
	}
	for key, dir := range c.Remaps {
		if key == "" || strings.Contains(key, "/") {
			return fmt.Errorf("remaps: %q must be a single path segment", key)
		}
		if dir == "" {
			return fmt.Errorf("remaps: %q has no directory", key)
		}
	}
	for _, pattern := range c.Hide {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("hide: invalid pattern %q", pattern)
		}
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("logFormat %q is not one of text, json", c.LogFormat)
	}
	return nil
}

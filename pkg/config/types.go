// Package config provides configuration types and loading for stagehttpd.
package config

import (
	"net"
	"strconv"
)

// Config represents the complete configuration for stagehttpd.
// Configuration values can come from multiple sources with the following precedence:
// 1. Command-line flags and the positional port argument (highest priority)
// 2. Environment variables
// 3. Config file named with --config or STAGEHTTPD_CONFIG
// 4. Local config file (.stagehttpdrc.yaml in current directory)
// 5. Global config file (~/.config/stagehttpd/config.yaml)
// 6. Default values (lowest priority)
type Config struct {
	// Server settings
	Host    string `yaml:"host" json:"host"`
	Port    int    `yaml:"port" json:"port"`
	DocRoot string `yaml:"docRoot,omitempty" json:"docRoot,omitempty"`

	// Root is the base directory the default remap roots point into.
	Root string `yaml:"root,omitempty" json:"root,omitempty"`

	// Remaps adds remap roots on top of the built-in ones.
	Remaps map[string]string `yaml:"remaps,omitempty" json:"remaps,omitempty"`

	// Hide lists doublestar patterns for paths that always answer 404.
	Hide []string `yaml:"hide,omitempty" json:"hide,omitempty"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// Source tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)

// Addr returns the host:port the server binds.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

package config

import (
	"os"
	"strconv"
)

// Environment variable names
const (
	EnvHost      = "STAGEHTTPD_HOST"
	EnvPort      = "STAGEHTTPD_PORT"
	EnvDocRoot   = "STAGEHTTPD_DOC_ROOT"
	EnvRoot      = "STAGEHTTPD_ROOT"
	EnvConfig    = "STAGEHTTPD_CONFIG"
	EnvLogLevel  = "STAGEHTTPD_LOG_LEVEL"
	EnvLogFormat = "STAGEHTTPD_LOG_FORMAT"

	// EnvGinsuRoot is the variable the test harness exports for the
	// checkout root. STAGEHTTPD_ROOT takes precedence over it.
	EnvGinsuRoot = "GINSU_ROOT"
)

// LoadEnvConfig loads configuration from environment variables.
// It only sets values that are present in the environment.
func LoadEnvConfig(cfg *Config) {
	loadEnv(cfg, os.Getenv)
}

func loadEnv(cfg *Config, getenv func(string) string) {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	// STAGEHTTPD_HOST
	if v := getenv(EnvHost); v != "" {
		cfg.Host = v
		cfg.Sources["host"] = SourceEnv
	}

	// STAGEHTTPD_PORT
	if v := getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
			cfg.Sources["port"] = SourceEnv
		}
	}

	// STAGEHTTPD_DOC_ROOT
	if v := getenv(EnvDocRoot); v != "" {
		cfg.DocRoot = v
		cfg.Sources["docRoot"] = SourceEnv
	}

	// GINSU_ROOT, then STAGEHTTPD_ROOT
	if v := getenv(EnvGinsuRoot); v != "" {
		cfg.Root = v
		cfg.Sources["root"] = SourceEnv
	}
	if v := getenv(EnvRoot); v != "" {
		cfg.Root = v
		cfg.Sources["root"] = SourceEnv
	}

	// STAGEHTTPD_LOG_LEVEL
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources["logLevel"] = SourceEnv
	}

	// STAGEHTTPD_LOG_FORMAT
	if v := getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.Sources["logFormat"] = SourceEnv
	}
}

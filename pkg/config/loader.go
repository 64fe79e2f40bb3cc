package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// GlobalConfigDir is the directory for global config
	GlobalConfigDir = "stagehttpd"
)

// LocalConfigFileNames are the names to search for local config (in order).
var LocalConfigFileNames = []string{".stagehttpdrc.yaml", ".stagehttpdrc.yml"}

// GlobalConfigFileNames are the names to search for global config (in order).
var GlobalConfigFileNames = []string{"config.yaml", "config.yml"}

// FindLocalConfig searches dir for .stagehttpdrc.yaml or .stagehttpdrc.yml.
// Returns empty string if not found.
func FindLocalConfig(dir string) string {
	for _, name := range LocalConfigFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// FindGlobalConfig returns the path to the global config file.
// Returns empty string if not found.
func FindGlobalConfig() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range GlobalConfigFileNames {
		path := filepath.Join(configDir, GlobalConfigDir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadConfigFile loads a Config from a YAML file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		cerr := &ConfigError{Path: path, Message: err.Error()}
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
			cerr.Message = typeErr.Errors[0]
		}
		return nil, cerr
	}

	cfg.Sources = make(map[string]string)
	return &cfg, nil
}

// ConfigError represents a configuration file error.
type ConfigError struct {
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Path + ": " + e.Message
}

// LoadAll loads configuration from all sources and merges them.
// Precedence: env > explicit file > local config > global config > defaults.
// Flags are merged by the caller with MergeConfig(cfg, flags, SourceFlag).
//
// explicitPath may be empty; STAGEHTTPD_CONFIG is used in that case.
// Unlike the global and local files, an explicit file that cannot be read
// is an error.
func LoadAll(workDir, explicitPath string) (*Config, error) {
	// Start with defaults
	cfg := NewDefault()

	// Load global config
	if globalPath := FindGlobalConfig(); globalPath != "" {
		if globalCfg, err := LoadConfigFile(globalPath); err == nil {
			MergeConfig(cfg, globalCfg, SourceGlobal)
		}
	}

	// Load local config
	if localPath := FindLocalConfig(workDir); localPath != "" {
		if localCfg, err := LoadConfigFile(localPath); err == nil {
			MergeConfig(cfg, localCfg, SourceLocal)
		}
	}

	if explicitPath == "" {
		explicitPath = os.Getenv(EnvConfig)
	}
	if explicitPath != "" {
		fileCfg, err := LoadConfigFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		MergeConfig(cfg, fileCfg, SourceFile)
	}

	// Load environment variables
	LoadEnvConfig(cfg)

	return cfg, nil
}

// ResolveDocRoot returns the document root, defaulting to workDir.
func (c *Config) ResolveDocRoot(workDir string) string {
	if c.DocRoot == "" {
		return workDir
	}
	if filepath.IsAbs(c.DocRoot) {
		return c.DocRoot
	}
	return filepath.Join(workDir, c.DocRoot)
}

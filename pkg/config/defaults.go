package config

// DefaultPort is the default HTTP server port.
const DefaultPort = 5103

// DefaultHost binds every interface.
const DefaultHost = ""

// DefaultLogLevel is the default log level.
const DefaultLogLevel = "info"

// DefaultLogFormat is the default log format.
const DefaultLogFormat = "text"

// NewDefault creates a new Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		Host:      DefaultHost,
		Port:      DefaultPort,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		Sources:   make(map[string]string),
	}

	cfg.Sources["host"] = SourceDefault
	cfg.Sources["port"] = SourceDefault
	cfg.Sources["logLevel"] = SourceDefault
	cfg.Sources["logFormat"] = SourceDefault

	return cfg
}

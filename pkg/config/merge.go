package config

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied. Remap entries are merged
// key by key; hide patterns from source are appended.
func MergeConfig(target, source *Config, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.Host != "" {
		target.Host = source.Host
		target.Sources["host"] = sourceType
	}
	if source.Port != 0 {
		target.Port = source.Port
		target.Sources["port"] = sourceType
	}
	if source.DocRoot != "" {
		target.DocRoot = source.DocRoot
		target.Sources["docRoot"] = sourceType
	}
	if source.Root != "" {
		target.Root = source.Root
		target.Sources["root"] = sourceType
	}
	if len(source.Remaps) > 0 {
		if target.Remaps == nil {
			target.Remaps = make(map[string]string, len(source.Remaps))
		}
		for k, v := range source.Remaps {
			target.Remaps[k] = v
		}
		target.Sources["remaps"] = sourceType
	}
	if len(source.Hide) > 0 {
		target.Hide = append(target.Hide, source.Hide...)
		target.Sources["hide"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
}

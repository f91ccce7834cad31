package config

// DefaultConfig returns a Config populated with all default values. The API
// key and channel list have no defaults and must come from the config file.
func DefaultConfig() *Config {
	return &Config{
		OutputFile:        "monthly_channel_statistics.xlsx",
		CacheDir:          ".",
		RequestsPerSecond: 4,
	}
}

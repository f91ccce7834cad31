package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the CLI looks for settings when --config is not
// given.
const DefaultConfigPath = "tubereport.yaml"

// Config holds all tubereport settings.
type Config struct {
	// APIKey is the YouTube Data API v3 key. Required.
	APIKey string `yaml:"api_key"`

	// ChannelIDs is a comma-separated list of channel IDs to report on.
	// Required non-empty; channels are processed in the order given.
	ChannelIDs string `yaml:"channel_ids"`

	// OutputFile is the xlsx report path, overwritten in full on every run.
	OutputFile string `yaml:"output_file"`

	// CacheDir holds the per-channel video cache files.
	CacheDir string `yaml:"cache_dir"`

	// RequestsPerSecond caps outbound API calls.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// Load reads a YAML config file at path and merges it with defaults. Returns
// an error if the file cannot be read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings that must be present before any network call.
// A missing API key or an empty channel list is a fatal startup error.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("api_key is not set; add it to the config file")
	}
	if len(c.Channels()) == 0 {
		return fmt.Errorf("channel_ids is empty; list at least one channel ID")
	}
	return nil
}

// Channels splits the configured channel list, trimming whitespace and
// dropping empty entries, preserving order.
func (c *Config) Channels() []string {
	var out []string
	for _, id := range strings.Split(c.ChannelIDs, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		out = append(out, id)
	}
	return out
}

// CachePath returns the cache file path for a channel, keyed by its sanitized
// display name.
func (c *Config) CachePath(sanitizedName string) string {
	return filepath.Join(c.CacheDir, "video_cache_"+sanitizedName+".json")
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/runnerr0/tubereport/internal/config"
	"github.com/runnerr0/tubereport/internal/stats"
	"github.com/runnerr0/tubereport/internal/videocache"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version    string            `json:"version"`
	ConfigPath string            `json:"config_path"`
	CacheDir   string            `json:"cache_dir"`
	ReportFile string            `json:"report_file"`
	ReportSize int64             `json:"report_size_bytes,omitempty"`
	Caches     []cacheStatusJSON `json:"caches"`
}

type cacheStatusJSON struct {
	File        string `json:"file"`
	Videos      int    `json:"videos"`
	Cursor      string `json:"cursor,omitempty"`
	OldestMonth string `json:"oldest_month,omitempty"`
	NewestMonth string `json:"newest_month,omitempty"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	cfg, err := config.Load(c.globals.Config)
	if err != nil {
		return err
	}
	return c.executeWithConfig(cfg)
}

// executeWithConfig runs status against a provided config (for testing). It
// inspects local cache files only and never talks to the platform.
func (c *StatusCommand) executeWithConfig(cfg *config.Config) error {
	paths, err := filepath.Glob(filepath.Join(cfg.CacheDir, "video_cache_*.json"))
	if err != nil {
		return fmt.Errorf("scanning cache dir: %w", err)
	}
	sort.Strings(paths)

	out := statusJSON{
		Version:    c.version,
		ConfigPath: c.globals.Config,
		CacheDir:   cfg.CacheDir,
		ReportFile: cfg.OutputFile,
	}
	if info, err := os.Stat(cfg.OutputFile); err == nil {
		out.ReportSize = info.Size()
	}

	for _, path := range paths {
		cache := videocache.Load(path)
		st := cacheStatusJSON{File: filepath.Base(path), Videos: cache.Len()}
		if cur := cache.Cursor(); cur != nil {
			st.Cursor = cur.UTC().Format(time.RFC3339)
		}
		if oldest, newest, ok := monthSpan(cache); ok {
			st.OldestMonth = oldest
			st.NewestMonth = newest
		}
		out.Caches = append(out.Caches, st)
	}

	if c.globals != nil && c.globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	return printStatusHuman(out)
}

func printStatusHuman(out statusJSON) error {
	fmt.Println("tubereport Status")
	fmt.Println("=================")
	fmt.Printf("Version:   %s\n", out.Version)
	fmt.Printf("Config:    %s\n", out.ConfigPath)
	fmt.Printf("Cache dir: %s\n", out.CacheDir)
	if out.ReportSize > 0 {
		fmt.Printf("Report:    %s (%s)\n", out.ReportFile, humanize.Bytes(uint64(out.ReportSize)))
	} else {
		fmt.Printf("Report:    %s (not written yet)\n", out.ReportFile)
	}

	fmt.Println()
	if len(out.Caches) == 0 {
		fmt.Println("No channel caches found.")
		return nil
	}

	fmt.Println("Caches:")
	for _, st := range out.Caches {
		line := fmt.Sprintf("  %-40s %s videos", st.File, humanize.Comma(int64(st.Videos)))
		if st.OldestMonth != "" {
			line += fmt.Sprintf("  %s .. %s", st.OldestMonth, st.NewestMonth)
		}
		if st.Cursor != "" {
			line += fmt.Sprintf("  cursor %s", st.Cursor)
		}
		fmt.Println(line)
	}
	return nil
}

// monthSpan returns the oldest and newest publish months in the cache.
func monthSpan(cache *videocache.Cache) (string, string, bool) {
	var oldest, newest time.Time
	first := true
	for _, e := range cache.Videos {
		if first {
			oldest, newest = e.PublishedAt, e.PublishedAt
			first = false
			continue
		}
		if e.PublishedAt.Before(oldest) {
			oldest = e.PublishedAt
		}
		if e.PublishedAt.After(newest) {
			newest = e.PublishedAt
		}
	}
	if first {
		return "", "", false
	}
	return stats.MonthKey(oldest), stats.MonthKey(newest), true
}

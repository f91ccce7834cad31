package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/runnerr0/tubereport/internal/config"
	"github.com/runnerr0/tubereport/internal/platform"
	"github.com/runnerr0/tubereport/internal/report"
	"github.com/runnerr0/tubereport/internal/stats"
	"github.com/runnerr0/tubereport/internal/videocache"
)

// Execute implements the go-flags Commander interface for RunCommand.
func (c *RunCommand) Execute(args []string) error {
	cfg, err := config.Load(c.globals.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if c.Output != "" {
		cfg.OutputFile = c.Output
	}
	if c.CacheDir != "" {
		cfg.CacheDir = c.CacheDir
	}

	ctx := context.Background()
	api, err := platform.New(ctx, cfg.APIKey, cfg.RequestsPerSecond)
	if err != nil {
		return fmt.Errorf("initializing platform client: %w", err)
	}

	return c.executeWithAPI(ctx, cfg, api)
}

// executeWithAPI runs the full report pipeline against a provided platform
// client (injectable for tests). Channels are processed sequentially in
// configured order; a failed channel is logged and skipped, never fatal.
func (c *RunCommand) executeWithAPI(ctx context.Context, cfg *config.Config, api platform.API) error {
	wb, err := report.NewWorkbook()
	if err != nil {
		return fmt.Errorf("creating workbook: %w", err)
	}
	defer wb.Close()

	skipped := 0
	for _, channelID := range cfg.Channels() {
		progressf("Updating channel %s...", channelID)
		if err := c.updateChannel(ctx, cfg, api, wb, channelID); err != nil {
			warnf("channel %s skipped: %v", channelID, err)
			skipped++
		}
	}

	if wb.Sheets() == 0 {
		return fmt.Errorf("no channel could be updated; report left untouched")
	}
	if err := wb.Save(cfg.OutputFile); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	successf("Report saved to %s (%d channels, %d skipped)", cfg.OutputFile, wb.Sheets(), skipped)
	return nil
}

// updateChannel fetches new uploads for one channel, merges them into its
// cache, and renders the merged monthly table into the workbook. Any upstream
// failure returns before the cache is modified, so the next run retries the
// same window.
func (c *RunCommand) updateChannel(ctx context.Context, cfg *config.Config, api platform.API, wb *report.Workbook, channelID string) error {
	overview, err := api.ChannelOverview(ctx, channelID)
	if err != nil {
		return err
	}

	sheetName := report.SanitizeSheetName(overview.Title)
	if sheetName == "" {
		sheetName = report.SanitizeSheetName(channelID)
	}
	if c.globals.Verbose {
		progressf("  channel name: %s", overview.Title)
	}

	cachePath := cfg.CachePath(sheetName)
	cache := videocache.Load(cachePath)

	uploadsID, err := api.UploadsPlaylistID(ctx, channelID)
	if err != nil {
		return err
	}

	listing, err := api.NewSince(ctx, uploadsID, cache.Cursor())
	if err != nil {
		return err
	}

	if len(listing) > 0 {
		ids := make([]string, len(listing))
		for i, e := range listing {
			ids[i] = e.VideoID
		}
		details, err := api.Details(ctx, ids)
		if err != nil {
			return err
		}

		items := make([]videocache.Item, len(details))
		for i, v := range details {
			items[i] = videocache.Item{
				ID:          v.ID,
				Duration:    v.Duration,
				ViewCount:   v.ViewCount,
				PublishedAt: v.PublishedAt,
			}
		}
		added := cache.Merge(items)
		if c.globals.Verbose {
			progressf("  %s new videos cached", humanize.Comma(int64(added)))
		}
		if err := cache.Save(cachePath); err != nil {
			// The in-memory merge stands; the next run loads the last
			// successfully saved cursor and refetches the gap.
			warnf("saving cache for %s: %v", sheetName, err)
		}
	}

	history := report.ReadHistory(cfg.OutputFile, sheetName)
	fresh := stats.Aggregate(c.cachedVideos(cache, sheetName), overview.Subscribers)
	table := stats.MergeHistory(history, fresh)

	return wb.AddSheet(sheetName, table)
}

// cachedVideos normalizes every cached entry for aggregation. A malformed
// duration string degrades to zero seconds for that one video instead of
// dropping it or aborting the channel.
func (c *RunCommand) cachedVideos(cache *videocache.Cache, sheetName string) []stats.Video {
	videos := make([]stats.Video, 0, cache.Len())
	for id, e := range cache.Videos {
		seconds, err := stats.ParseDuration(e.Duration)
		if err != nil {
			warnf("video %s in %s: %v; counting as 0s", id, sheetName, err)
			seconds = 0
		}
		videos = append(videos, stats.Video{
			DurationSeconds: seconds,
			ViewCount:       e.ViewCount,
			PublishedAt:     e.PublishedAt,
		})
	}
	return videos
}

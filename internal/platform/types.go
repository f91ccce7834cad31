package platform

import (
	"context"
	"time"
)

// ChannelOverview is the per-run channel snapshot: display name and current
// subscriber count.
type ChannelOverview struct {
	Title       string
	Subscribers int64
}

// ListingEntry is one row of the uploads playlist: enough to decide whether
// the video is new and to hydrate it later.
type ListingEntry struct {
	VideoID     string
	PublishedAt time.Time
}

// Video is a fully hydrated upload. Duration stays in its upstream ISO 8601
// form; normalization to seconds happens at aggregation time.
type Video struct {
	ID          string
	Duration    string
	ViewCount   int64
	PublishedAt time.Time
}

// API is the subset of the platform the report pipeline consumes. The
// production implementation is Client; tests substitute a fake.
type API interface {
	// ChannelOverview fetches the channel's display name and current
	// subscriber count.
	ChannelOverview(ctx context.Context, channelID string) (*ChannelOverview, error)

	// UploadsPlaylistID resolves a channel ID to its uploads playlist ID.
	UploadsPlaylistID(ctx context.Context, channelID string) (string, error)

	// NewSince lists uploads published strictly after since, newest first.
	// A nil since lists the whole playlist.
	NewSince(ctx context.Context, playlistID string, since *time.Time) ([]ListingEntry, error)

	// Details hydrates full metadata for the given video IDs.
	Details(ctx context.Context, ids []string) ([]Video, error)
}

// Package platform wraps the YouTube Data API v3 behind the narrow contract
// the report pipeline needs: channel overview, uploads-playlist resolution,
// incremental playlist listing, and batched video detail hydration.
package platform

import (
	"context"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	// listingPageSize is the upstream maximum page size for playlist items.
	listingPageSize = 50

	// detailBatchSize is the upstream per-call limit on video ID lookups.
	detailBatchSize = 50

	// zeroDuration is the sentinel the upstream substitutes when a video has
	// no duration field.
	zeroDuration = "PT0S"

	defaultRequestsPerSecond = 4
)

// Client talks to the YouTube Data API v3 with an API key, rate-limiting
// every call.
type Client struct {
	svc     *youtube.Service
	limiter *rate.Limiter
}

var _ API = (*Client)(nil)

// New builds a Client authenticated with an API key. requestsPerSecond caps
// the outbound call rate; values <= 0 fall back to the default.
func New(ctx context.Context, apiKey string, requestsPerSecond float64) (*Client, error) {
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &StageError{Stage: "service", ID: "youtube", Err: err}
	}
	if requestsPerSecond <= 0 {
		requestsPerSecond = defaultRequestsPerSecond
	}
	return &Client{
		svc:     svc,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}, nil
}

// ChannelOverview fetches the channel's display name and current subscriber
// count in a single call.
func (c *Client) ChannelOverview(ctx context.Context, channelID string) (*ChannelOverview, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	resp, err := c.svc.Channels.List([]string{"snippet", "statistics"}).Id(channelID).Context(ctx).Do()
	if err != nil {
		return nil, &StageError{Stage: "overview", ID: channelID, Err: err}
	}
	if len(resp.Items) == 0 {
		return nil, &StageError{Stage: "overview", ID: channelID, Err: ErrChannelNotFound}
	}

	item := resp.Items[0]
	overview := &ChannelOverview{}
	if item.Snippet != nil {
		overview.Title = item.Snippet.Title
	}
	if item.Statistics != nil {
		overview.Subscribers = int64(item.Statistics.SubscriberCount)
	}
	return overview, nil
}

// UploadsPlaylistID resolves a channel ID to its uploads playlist ID.
func (c *Client) UploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	resp, err := c.svc.Channels.List([]string{"contentDetails"}).Id(channelID).Context(ctx).Do()
	if err != nil {
		return "", &StageError{Stage: "uploads", ID: channelID, Err: err}
	}
	if len(resp.Items) == 0 || resp.Items[0].ContentDetails == nil ||
		resp.Items[0].ContentDetails.RelatedPlaylists == nil {
		return "", &StageError{Stage: "uploads", ID: channelID, Err: ErrChannelNotFound}
	}
	return resp.Items[0].ContentDetails.RelatedPlaylists.Uploads, nil
}

// NewSince lists uploads published strictly after since, in the upstream's
// natural newest-first order.
//
// Paging stops at the first entry published at or before the cursor. This
// assumes the uploads playlist is sorted newest-first; if the upstream ever
// returned out-of-order pages, entries behind that point would be silently
// missed. Known constraint, kept to avoid rescanning whole playlists on
// every run.
func (c *Client) NewSince(ctx context.Context, playlistID string, since *time.Time) ([]ListingEntry, error) {
	var out []ListingEntry
	pageToken := ""
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		call := c.svc.PlaylistItems.List([]string{"snippet", "contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(listingPageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, &StageError{Stage: "listing", ID: playlistID, Err: err}
		}

		page := make([]ListingEntry, 0, len(resp.Items))
		for _, it := range resp.Items {
			if it.Snippet == nil || it.ContentDetails == nil {
				continue
			}
			ts, err := time.Parse(time.RFC3339, it.Snippet.PublishedAt)
			if err != nil {
				continue
			}
			page = append(page, ListingEntry{
				VideoID:     it.ContentDetails.VideoId,
				PublishedAt: ts,
			})
		}

		kept, reachedCursor := takeNewer(page, since)
		out = append(out, kept...)
		if reachedCursor || resp.NextPageToken == "" {
			return out, nil
		}
		pageToken = resp.NextPageToken
	}
}

// takeNewer keeps the leading entries published strictly after since and
// reports whether the cursor was reached within the page.
func takeNewer(page []ListingEntry, since *time.Time) ([]ListingEntry, bool) {
	if since == nil {
		return page, false
	}
	for i, e := range page {
		if !e.PublishedAt.After(*since) {
			return page[:i], true
		}
	}
	return page, false
}

// Details hydrates full metadata for the given video IDs, batching lookups at
// the upstream per-call limit. Any transport error fails the whole hydration
// so the caller leaves its cache untouched and retries next run.
func (c *Client) Details(ctx context.Context, ids []string) ([]Video, error) {
	out := make([]Video, 0, len(ids))
	for _, batch := range chunk(ids, detailBatchSize) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		resp, err := c.svc.Videos.List([]string{"contentDetails", "statistics", "snippet"}).
			Id(batch...).
			Context(ctx).
			Do()
		if err != nil {
			return nil, &StageError{Stage: "details", ID: strings.Join(batch, ","), Err: err}
		}

		for _, v := range resp.Items {
			video := Video{ID: v.Id, Duration: zeroDuration}
			if v.ContentDetails != nil && v.ContentDetails.Duration != "" {
				video.Duration = v.ContentDetails.Duration
			}
			if v.Statistics != nil {
				video.ViewCount = int64(v.Statistics.ViewCount)
			}
			if v.Snippet != nil {
				if ts, err := time.Parse(time.RFC3339, v.Snippet.PublishedAt); err == nil {
					video.PublishedAt = ts
				}
			}
			out = append(out, video)
		}
	}
	return out, nil
}

// chunk splits ids into slices of at most size elements, preserving order.
func chunk(ids []string, size int) [][]string {
	if len(ids) == 0 {
		return nil
	}
	var out [][]string
	for size < len(ids) {
		out = append(out, ids[:size])
		ids = ids[size:]
	}
	return append(out, ids)
}

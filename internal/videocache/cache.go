// Package videocache is the durable per-channel video metadata store. Each
// channel owns one JSON cache file holding every upload ever fetched plus the
// incremental-fetch cursor, so a run only has to pull uploads published since
// the previous run.
package videocache

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// Entry is the immutable cached record for one video. Fields are never
// rewritten after first insertion; in particular the first-seen view count is
// retained even if it changes upstream.
type Entry struct {
	Duration    string    `json:"duration"`
	ViewCount   int64     `json:"viewCount"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Item is a fully hydrated video about to be merged into a cache.
type Item struct {
	ID          string
	Duration    string
	ViewCount   int64
	PublishedAt time.Time
}

// Meta holds the incremental-fetch cursor: the latest publish time among all
// videos ever merged in, or null for a cache that has never been fetched.
type Meta struct {
	LastFetched *time.Time `json:"last_fetched_date"`
}

// Entries maps video ID to its cached record. It serializes with keys ordered
// by publish time ascending so cache files produce reproducible diffs.
type Entries map[string]Entry

// MarshalJSON writes the entries as a JSON object ordered by publish time
// ascending, with the video ID as a tiebreaker.
func (e Entries) MarshalJSON() ([]byte, error) {
	ids := make([]string, 0, len(e))
	for id := range e {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := e[ids[i]], e[ids[j]]
		if !a.PublishedAt.Equal(b.PublishedAt) {
			return a.PublishedAt.Before(b.PublishedAt)
		}
		return ids[i] < ids[j]
	})

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(e[id])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Cache is one channel's video store plus its fetch cursor.
type Cache struct {
	Meta   Meta    `json:"meta"`
	Videos Entries `json:"videos"`
}

// New returns an empty cache with a nil cursor.
func New() *Cache {
	return &Cache{Videos: make(Entries)}
}

// Load reads the cache file at path. A missing or malformed file degrades to
// a fresh empty cache; corruption never aborts the run, the worst case is a
// full refetch.
func Load(path string) *Cache {
	data, err := os.ReadFile(path)
	if err != nil {
		return New()
	}

	var c Cache
	if err := json.Unmarshal(data, &c); err != nil {
		return New()
	}
	if c.Videos == nil {
		c.Videos = make(Entries)
	}
	return &c
}

// Save writes the full cache back to path. A failed save is reported to the
// caller but the in-memory merge stands: the next run loads the last
// successfully saved cursor and simply refetches the gap.
func (c *Cache) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}
	return nil
}

// Cursor returns the incremental-fetch cursor, or nil when nothing has been
// fetched yet.
func (c *Cache) Cursor() *time.Time {
	return c.Meta.LastFetched
}

// Merge inserts items whose IDs are not yet cached; existing entries win and
// are never overwritten. The cursor advances to the maximum publish time
// among items, never backwards. Merging an empty slice is a no-op. Returns
// the number of entries inserted.
func (c *Cache) Merge(items []Item) int {
	if len(items) == 0 {
		return 0
	}

	added := 0
	var newest time.Time
	for _, it := range items {
		if it.PublishedAt.After(newest) {
			newest = it.PublishedAt
		}
		if _, ok := c.Videos[it.ID]; ok {
			continue
		}
		c.Videos[it.ID] = Entry{
			Duration:    it.Duration,
			ViewCount:   it.ViewCount,
			PublishedAt: it.PublishedAt,
		}
		added++
	}

	if c.Meta.LastFetched == nil || newest.After(*c.Meta.LastFetched) {
		cursor := newest
		c.Meta.LastFetched = &cursor
	}
	return added
}

// Len returns the number of cached videos.
func (c *Cache) Len() int {
	return len(c.Videos)
}

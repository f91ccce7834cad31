package stats

import (
	"sort"
	"time"
)

// Duration bounds classifying an upload. Long-form is inclusive on both ends;
// anything under the minimum counts as a short. Uploads longer than the
// maximum belong to neither category and only contribute to total views.
const (
	longFormMinSeconds = 180
	longFormMaxSeconds = 3600
)

// Video is one cached upload as the aggregator sees it: duration already
// normalized to seconds, publish time in UTC.
type Video struct {
	DurationSeconds int64
	ViewCount       int64
	PublishedAt     time.Time
}

// Bucket is one month's rollup for a channel.
type Bucket struct {
	Month             string
	Subscribers       int64
	GainedSubscribers int64
	LongFormCount     int64
	ShortFormViews    int64
	TotalViews        int64
}

// snapshotSubscribers returns the subscriber figure recorded into every
// bucket of the current run. It is the latest known count, not a per-month
// historical value: regenerating the report stamps all months with the same
// number. Kept in one place so a per-month figure is a one-line change.
func snapshotSubscribers(current int64) int64 {
	return current
}

// Aggregate rolls all cached videos up into monthly buckets, sorted by month
// ascending. Each video lands in exactly one bucket (by publish month) and in
// at most one of the two categories, while always adding to the bucket's
// total view count.
func Aggregate(videos []Video, subscriberCount int64) []Bucket {
	byMonth := make(map[string]*Bucket)

	for _, v := range videos {
		key := MonthKey(v.PublishedAt)
		b, ok := byMonth[key]
		if !ok {
			b = &Bucket{
				Month:       key,
				Subscribers: snapshotSubscribers(subscriberCount),
			}
			byMonth[key] = b
		}

		switch {
		case v.DurationSeconds >= longFormMinSeconds && v.DurationSeconds <= longFormMaxSeconds:
			b.LongFormCount++
		case v.DurationSeconds < longFormMinSeconds:
			b.ShortFormViews += v.ViewCount
		}
		b.TotalViews += v.ViewCount
	}

	keys := make([]string, 0, len(byMonth))
	for key := range byMonth {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]Bucket, 0, len(keys))
	for _, key := range keys {
		out = append(out, *byMonth[key])
	}
	return out
}

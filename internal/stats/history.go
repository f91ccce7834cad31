package stats

import "sort"

// MergeHistory folds freshly aggregated buckets into the table recovered from
// the previous report. Rows with an unparseable month key are dropped, months
// appearing in both inputs collapse to a single row with the fresh
// computation winning, and the result is sorted by month ascending. The
// gained-subscribers column is recomputed over the merged table as the first
// difference of the subscriber column, with the first row pinned to zero.
func MergeHistory(existing, fresh []Bucket) []Bucket {
	byMonth := make(map[string]Bucket)
	for _, b := range existing {
		if !validMonthKey(b.Month) {
			continue
		}
		byMonth[b.Month] = b
	}
	for _, b := range fresh {
		if !validMonthKey(b.Month) {
			continue
		}
		byMonth[b.Month] = b
	}

	merged := make([]Bucket, 0, len(byMonth))
	for _, b := range byMonth {
		merged = append(merged, b)
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Month < merged[j].Month })

	for i := range merged {
		if i == 0 {
			merged[i].GainedSubscribers = 0
			continue
		}
		merged[i].GainedSubscribers = merged[i].Subscribers - merged[i-1].Subscribers
	}
	return merged
}

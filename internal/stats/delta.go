package stats

import "fmt"

// Metric is one tracked report row: a label plus an accessor into a Bucket.
type Metric struct {
	Label string
	Value func(Bucket) int64
}

// Metrics returns the five tracked metrics in report row order.
func Metrics() []Metric {
	return []Metric{
		{Label: "Subscribers", Value: func(b Bucket) int64 { return b.Subscribers }},
		{Label: "Gained subscribers", Value: func(b Bucket) int64 { return b.GainedSubscribers }},
		{Label: "Long-form posts", Value: func(b Bucket) int64 { return b.LongFormCount }},
		{Label: "Short-form views", Value: func(b Bucket) int64 { return b.ShortFormViews }},
		{Label: "Total views", Value: func(b Bucket) int64 { return b.TotalViews }},
	}
}

// Trend classifies the sign of an absolute month-over-month change.
type Trend int

const (
	TrendDown Trend = -1
	TrendFlat Trend = 0
	TrendUp   Trend = 1
)

// DeltaCell is one rendered month-over-month change: the display string and
// the sign that drives its presentation color.
type DeltaCell struct {
	Text  string
	Trend Trend
}

// Deltas computes the month-over-month change cells for one metric over a
// sorted table. The first cell has an absolute change of zero. The percentage
// is available only when the previous month's value exists and is non-zero;
// otherwise it renders as "N/A".
func Deltas(table []Bucket, value func(Bucket) int64) []DeltaCell {
	cells := make([]DeltaCell, len(table))
	for i := range table {
		var abs int64
		pct := "N/A"
		if i > 0 {
			prev := value(table[i-1])
			abs = value(table[i]) - prev
			if prev != 0 {
				pct = fmt.Sprintf("%.2f%%", float64(abs)/float64(prev)*100)
			}
		}

		trend := TrendFlat
		switch {
		case abs < 0:
			trend = TrendDown
		case abs > 0:
			trend = TrendUp
		}
		cells[i] = DeltaCell{
			Text:  fmt.Sprintf("%d (%s)", abs, pct),
			Trend: trend,
		}
	}
	return cells
}

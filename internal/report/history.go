package report

import (
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/runnerr0/tubereport/internal/stats"
)

// ReadHistory recovers a channel's historical table from its sheet in the
// previous report file. Any failure (missing file, missing sheet, a layout
// too short to hold the metric rows) degrades to "no prior history" rather
// than an error; the run then proceeds with freshly computed rows only.
//
// The row positions mirror the layout AddSheet writes: month header first,
// then one row per metric in stats.Metrics() order.
func ReadHistory(path, sheetName string) []stats.Bucket {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil || len(rows) < firstMetricRow-1+len(stats.Metrics()) {
		return nil
	}

	header := rows[0]
	var out []stats.Bucket
	for col := 1; col < len(header); col++ {
		month := strings.TrimSpace(header[col])
		if month == "" {
			continue
		}
		out = append(out, stats.Bucket{
			Month:             month,
			Subscribers:       cellInt(rows, 1, col),
			GainedSubscribers: cellInt(rows, 2, col),
			LongFormCount:     cellInt(rows, 3, col),
			ShortFormViews:    cellInt(rows, 4, col),
			TotalViews:        cellInt(rows, 5, col),
		})
	}
	return out
}

// cellInt parses one numeric cell, tolerating thousands separators and float
// renderings. Missing or unparseable cells read as zero.
func cellInt(rows [][]string, row, col int) int64 {
	if row >= len(rows) || col >= len(rows[row]) {
		return 0
	}
	s := strings.ReplaceAll(strings.TrimSpace(rows[row][col]), ",", "")
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}

// Package report renders merged monthly tables into a styled multi-sheet
// xlsx workbook, one sheet per channel, and reads prior sheets back as the
// historical table for the next merge.
package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/xuri/excelize/v2"

	"github.com/runnerr0/tubereport/internal/stats"
)

// Sheet layout: row 1 is the month header, one row per metric follows, then
// one row per metric's month-over-month delta.
const (
	headerRow      = 1
	firstMetricRow = 2
)

// Workbook accumulates one rendered sheet per channel and writes the whole
// report in one save, replacing any previous file.
type Workbook struct {
	f      *excelize.File
	sheets int

	headerStyle int
	labelStyle  int
	numberStyle int
	deltaStyles map[stats.Trend]int
}

// NewWorkbook creates an empty workbook with all cell styles registered.
func NewWorkbook() (*Workbook, error) {
	f := excelize.NewFile()
	w := &Workbook{f: f, deltaStyles: make(map[stats.Trend]int)}

	var err error
	w.headerStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("register header style: %w", err)
	}

	w.labelStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "left"},
	})
	if err != nil {
		return nil, fmt.Errorf("register label style: %w", err)
	}

	// NumFmt 3 is the builtin "#,##0" thousands format.
	w.numberStyle, err = f.NewStyle(&excelize.Style{
		NumFmt:    3,
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("register number style: %w", err)
	}

	colors := map[stats.Trend]string{
		stats.TrendDown: "FF0000",
		stats.TrendFlat: "000000",
		stats.TrendUp:   "0000FF",
	}
	for trend, color := range colors {
		id, err := f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Color: color},
			Alignment: &excelize.Alignment{Horizontal: "right"},
		})
		if err != nil {
			return nil, fmt.Errorf("register delta style: %w", err)
		}
		w.deltaStyles[trend] = id
	}

	return w, nil
}

// AddSheet renders one channel's merged table, including the delta rows, into
// a new sheet.
func (w *Workbook) AddSheet(name string, table []stats.Bucket) error {
	if _, err := w.f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}
	w.sheets++

	metrics := stats.Metrics()
	widths := make([]float64, len(table)+1)

	// Label column and month header.
	if err := w.setCell(name, 1, headerRow, "Metric", w.headerStyle); err != nil {
		return err
	}
	widths[0] = cellWidth("Metric")
	for i, b := range table {
		if err := w.setCell(name, i+2, headerRow, b.Month, w.headerStyle); err != nil {
			return err
		}
		widths[i+1] = cellWidth(b.Month)
	}

	// One row per metric.
	for r, m := range metrics {
		row := firstMetricRow + r
		if err := w.setCell(name, 1, row, m.Label, w.labelStyle); err != nil {
			return err
		}
		widths[0] = maxWidth(widths[0], cellWidth(m.Label))

		for i, b := range table {
			v := m.Value(b)
			if err := w.setCell(name, i+2, row, v, w.numberStyle); err != nil {
				return err
			}
			widths[i+1] = maxWidth(widths[i+1], cellWidth(humanize.Comma(v)))
		}
	}

	// One row per metric's month-over-month delta.
	for r, m := range metrics {
		row := firstMetricRow + len(metrics) + r
		label := m.Label + " increase"
		if err := w.setCell(name, 1, row, label, w.labelStyle); err != nil {
			return err
		}
		widths[0] = maxWidth(widths[0], cellWidth(label))

		for i, cell := range stats.Deltas(table, m.Value) {
			if err := w.setCell(name, i+2, row, cell.Text, w.deltaStyles[cell.Trend]); err != nil {
				return err
			}
			widths[i+1] = maxWidth(widths[i+1], cellWidth(cell.Text))
		}
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("resolve column %d: %w", i+1, err)
		}
		if err := w.f.SetColWidth(name, col, col, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}
	return nil
}

// Sheets returns the number of channel sheets added so far.
func (w *Workbook) Sheets() int {
	return w.sheets
}

// Save drops the default empty sheet and writes the workbook to path,
// overwriting any existing file.
func (w *Workbook) Save(path string) error {
	if w.sheets > 0 {
		if err := w.f.DeleteSheet("Sheet1"); err != nil {
			return fmt.Errorf("drop default sheet: %w", err)
		}
		w.f.SetActiveSheet(0)
	}
	if err := w.f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// Close releases the underlying workbook resources.
func (w *Workbook) Close() error {
	return w.f.Close()
}

func (w *Workbook) setCell(sheet string, col, row int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("resolve cell (%d,%d): %w", col, row, err)
	}
	if err := w.f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	if err := w.f.SetCellStyle(sheet, cell, cell, style); err != nil {
		return fmt.Errorf("style cell %s: %w", cell, err)
	}
	return nil
}

// cellWidth is the column width a value needs: its display length plus
// padding.
func cellWidth(s string) float64 {
	return float64(len([]rune(s)) + 2)
}

func maxWidth(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

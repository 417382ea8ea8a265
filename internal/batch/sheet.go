package batch

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"01/02/2006",
	"1/2/06",
}

// sheetRow gives access to one spreadsheet row by trimmed header name.
type sheetRow struct {
	line    int
	cells   []string
	columns map[string]int
}

func readSheet(r io.Reader, sheet string) ([]sheetRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.TrimSpace(name)] = i
	}

	out := make([]sheetRow, 0, len(rows)-1)
	for i, cells := range rows[1:] {
		if isBlank(cells) {
			continue
		}
		out = append(out, sheetRow{line: i + 2, cells: cells, columns: columns})
	}
	return out, nil
}

func (r sheetRow) text(column string) (string, error) {
	idx, ok := r.columns[column]
	if !ok {
		return "", fmt.Errorf("missing column %q", column)
	}
	if idx >= len(r.cells) || strings.TrimSpace(r.cells[idx]) == "" {
		return "", fmt.Errorf("empty value in column %q", column)
	}
	return strings.TrimSpace(r.cells[idx]), nil
}

func (r sheetRow) number(column string) (float64, error) {
	s, err := r.text(column)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %q is not a number", column, s)
	}
	return v, nil
}

func (r sheetRow) integer(column string) (int64, error) {
	v, err := r.number(column)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("column %q: %v is not a whole number", column, v)
	}
	return int64(v), nil
}

// date accepts an Excel serial day number or a formatted date.
func (r sheetRow) date(column string) (time.Time, error) {
	s, err := r.text(column)
	if err != nil {
		return time.Time{}, err
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, fmt.Errorf("column %q: %w", column, err)
		}
		return truncateToDate(t), nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateToDate(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("column %q: %q is not a date", column, s)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

package sheet

import (
	"strings"
	"time"
)

// Spreadsheet date serials count days from 1899-12-30 (the convention both
// Excel and LibreOffice use for post-1900 dates).
var serialEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// Plausible serial window: 1900-03-01 through roughly year 2200. Anything
// outside is treated as an ordinary number, not a date.
const (
	minSerial = 61
	maxSerial = 109574
)

// ParseDate interprets a cell as a date. Accepted representations: a native
// date cell, a numeric day offset from 1899-12-30, and the textual forms
// YYYY-MM-DD, DD/MM/YYYY, DD-MM-YYYY and DD.MM.YYYY, each with an optional
// time suffix.
func ParseDate(c CellValue) (time.Time, bool) {
	switch c.Kind() {
	case KindDate:
		d, _ := c.Date()
		return truncateDay(d), true
	case KindNumber:
		n, _ := c.Number()
		return fromSerial(n)
	case KindText:
		return parseDateString(c.String())
	}
	return time.Time{}, false
}

func fromSerial(n float64) (time.Time, bool) {
	if n < minSerial || n > maxSerial {
		return time.Time{}, false
	}
	return truncateDay(serialEpoch.AddDate(0, 0, int(n))), true
}

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	// Drop an optional time suffix ("2021-05-01 10:30", "2021-05-01T10:30").
	if i := strings.IndexAny(s, " T"); i >= 8 {
		s = s[:i]
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateDay(t), true
		}
	}
	return time.Time{}, false
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package sheet

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the loosely-typed scalar a spreadsheet cell holds.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindNumber
	KindDate
)

// CellValue is the closed sum over spreadsheet cell contents. Downstream
// heuristics switch on Kind instead of doing runtime type tests.
type CellValue struct {
	kind Kind
	text string
	num  float64
	date time.Time
}

func Empty() CellValue            { return CellValue{kind: KindEmpty} }
func Text(s string) CellValue     { return CellValue{kind: KindText, text: s} }
func Number(f float64) CellValue  { return CellValue{kind: KindNumber, num: f} }
func Date(t time.Time) CellValue  { return CellValue{kind: KindDate, date: t} }

func (c CellValue) Kind() Kind { return c.kind }

func (c CellValue) IsEmpty() bool { return c.kind == KindEmpty }

// Number returns the numeric payload when the cell is a number.
func (c CellValue) Number() (float64, bool) {
	if c.kind != KindNumber {
		return 0, false
	}
	return c.num, true
}

// Date returns the native date payload when the cell is a date.
func (c CellValue) Date() (time.Time, bool) {
	if c.kind != KindDate {
		return time.Time{}, false
	}
	return c.date, true
}

// String renders the cell the way the importer stores it: dates as
// YYYY-MM-DD, numbers without a trailing ".0" for integral values.
func (c CellValue) String() string {
	switch c.kind {
	case KindText:
		return c.text
	case KindNumber:
		if c.num == math.Trunc(c.num) && math.Abs(c.num) < 1e15 {
			return strconv.FormatInt(int64(c.num), 10)
		}
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case KindDate:
		return c.date.Format("2006-01-02")
	default:
		return ""
	}
}

// Normalized returns the trimmed string form of the cell, reporting absence
// for empty cells, blank strings and NaN numbers. Native dates are truncated
// to their YYYY-MM-DD prefix; text passes through untouched apart from
// trimming, so free-form notes that merely start with a date keep their tail.
func (c CellValue) Normalized() (string, bool) {
	switch c.kind {
	case KindEmpty:
		return "", false
	case KindNumber:
		if math.IsNaN(c.num) {
			return "", false
		}
	case KindDate:
		return c.date.Format("2006-01-02"), true
	}
	s := strings.TrimSpace(c.String())
	if s == "" {
		return "", false
	}
	return s, true
}

// classify builds a CellValue from a raw excelize cell string.
func classify(raw string) CellValue {
	if strings.TrimSpace(raw) == "" {
		return Empty()
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Number(f)
	}
	return Text(raw)
}

package catalog

import (
	"time"

	"github.com/apx-soporte/warranty-tracker/internal/sheet"
)

// Heuristics bounds and anchors the metadata extraction. The defaults
// encode the spreadsheet template family the department uses today; other
// templates get their own values instead of code changes. Zero values fall
// back to the defaults.
type Heuristics struct {
	// MaxRows / MaxCols bound the scanned region of the first sheet, both
	// to cap I/O on big workbooks and to avoid picking up unrelated tables
	// further down.
	MaxRows int
	MaxCols int
	// SerialAnchor is the case-insensitive label marking the serial block.
	SerialAnchor string
	// SerialColOffset is added to the anchor's column; the serial is the
	// first non-empty cell below the anchor row in that column. The -2
	// default matches the template's merged-cell layout.
	SerialColOffset int
}

const (
	defaultMaxRows      = 40
	defaultMaxCols      = 11
	defaultSerialAnchor = "technical department"
	defaultColOffset    = -2
)

func (h Heuristics) withDefaults() Heuristics {
	if h.MaxRows <= 0 {
		h.MaxRows = defaultMaxRows
	}
	if h.MaxCols <= 0 {
		h.MaxCols = defaultMaxCols
	}
	if h.SerialAnchor == "" {
		h.SerialAnchor = defaultSerialAnchor
	}
	if h.SerialColOffset == 0 {
		h.SerialColOffset = defaultColOffset
	}
	return h
}

// Extract pulls the base serial and creation date out of a workbook. Any
// open or parse failure degrades to "no serial, no date"; a single
// unreadable workbook must never abort a whole scan.
func (h Heuristics) Extract(path string) (serial string, created *time.Time) {
	h = h.withDefaults()
	grid, err := sheet.ReadGrid(path, h.MaxRows, h.MaxCols)
	if err != nil {
		return "", nil
	}

	if d, ok := sheet.EarliestDate(grid); ok {
		created = &d
	}
	if row, col, ok := sheet.FindAnchor(grid, h.SerialAnchor); ok {
		if v, ok := sheet.FirstNonEmptyBelow(grid, row+1, col+h.SerialColOffset); ok {
			serial = v
		}
	}
	return serial, created
}

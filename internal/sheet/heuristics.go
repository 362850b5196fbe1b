package sheet

import (
	"strings"
	"time"
)

// EarliestDate scans every cell of the grid and returns the minimum of all
// parseable dates. The date cell's position varies across workbook
// revisions, but the oldest plausible date in the header region is reliably
// the creation date rather than a later revision date.
func EarliestDate(grid [][]CellValue) (time.Time, bool) {
	var best time.Time
	found := false
	for _, row := range grid {
		for _, cell := range row {
			d, ok := ParseDate(cell)
			if !ok {
				continue
			}
			if !found || d.Before(best) {
				best = d
				found = true
			}
		}
	}
	return best, found
}

// FindAnchor returns the position of the first cell (row-major order) whose
// trimmed text contains substr, case-insensitively.
func FindAnchor(grid [][]CellValue, substr string) (row, col int, ok bool) {
	needle := strings.ToLower(substr)
	for r, cells := range grid {
		for c, cell := range cells {
			if cell.Kind() != KindText {
				continue
			}
			if strings.Contains(strings.ToLower(strings.TrimSpace(cell.String())), needle) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// FirstNonEmptyBelow scans downward from startRow in the given column and
// returns the trimmed text of the first non-empty cell.
func FirstNonEmptyBelow(grid [][]CellValue, startRow, col int) (string, bool) {
	if col < 0 {
		return "", false
	}
	for r := startRow; r < len(grid); r++ {
		if col >= len(grid[r]) {
			continue
		}
		cell := grid[r][col]
		if cell.IsEmpty() {
			continue
		}
		if s := strings.TrimSpace(cell.String()); s != "" {
			return s, true
		}
	}
	return "", false
}

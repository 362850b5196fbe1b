package sheet

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is the first worksheet of a workbook read as an ordered header row
// plus data rows. Row cells are aligned to the header count; short rows are
// padded with empty cells.
type Table struct {
	Headers []string
	Rows    [][]CellValue
}

// Cell returns the cell at (row, col), Empty when out of range.
func (t *Table) Cell(row, col int) CellValue {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return Empty()
	}
	return t.Rows[row][col]
}

// ReadWorkbook reads the first sheet of the workbook at path.
func ReadWorkbook(path string) (*Table, error) {
	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readTable(f)
}

// ReadWorkbookBytes reads the first sheet of an uploaded workbook.
func ReadWorkbookBytes(data []byte) (*Table, error) {
	return readWorkbookReader(bytes.NewReader(data))
}

func readWorkbookReader(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readTable(f)
}

func readTable(f *excelize.File) (*Table, error) {
	name, err := firstSheet(f)
	if err != nil {
		return nil, err
	}
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	headers := make([]string, len(rows[0]))
	copy(headers, rows[0])

	table := &Table{Headers: headers, Rows: make([][]CellValue, 0, len(rows)-1)}
	for ri, raw := range rows[1:] {
		cells := make([]CellValue, len(headers))
		for ci := range cells {
			var s string
			if ci < len(raw) {
				s = raw[ci]
			}
			// ri+1 skips the header row; excelize rows are 1-based.
			cells[ci] = decodeCell(f, name, s, ci, ri+2)
		}
		table.Rows = append(table.Rows, cells)
	}
	return table, nil
}

// ReadGrid reads a bounded header-less region of the first sheet: at most
// maxRows rows and maxCols columns. Bounding the region is what keeps the
// catalog scan cheap on large workbooks.
func ReadGrid(path string, maxRows, maxCols int) ([][]CellValue, error) {
	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name, err := firstSheet(f)
	if err != nil {
		return nil, err
	}
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) > maxRows {
		rows = rows[:maxRows]
	}

	grid := make([][]CellValue, len(rows))
	for ri, raw := range rows {
		if len(raw) > maxCols {
			raw = raw[:maxCols]
		}
		cells := make([]CellValue, len(raw))
		for ci, s := range raw {
			cells[ci] = decodeCell(f, name, s, ci, ri+1)
		}
		grid[ri] = cells
	}
	return grid, nil
}

func firstSheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	return sheets[0], nil
}

// decodeCell classifies a raw cell string, upgrading date-styled numbers to
// native dates. col is 0-based, row is 1-based (excelize convention).
// String-typed cells stay text even when their content parses as a number,
// so values like zero-padded serials keep their exact form.
func decodeCell(f *excelize.File, sheetName, raw string, col, row int) CellValue {
	cell, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return classify(raw)
	}
	if ct, err := f.GetCellType(sheetName, cell); err == nil {
		switch ct {
		case excelize.CellTypeSharedString, excelize.CellTypeInlineString:
			if strings.TrimSpace(raw) == "" {
				return Empty()
			}
			return Text(raw)
		}
	}
	cv := classify(raw)
	if n, ok := cv.Number(); ok && isDateStyled(f, sheetName, cell) {
		if t, ok := fromSerial(n); ok {
			return Date(t)
		}
	}
	return cv
}

// Built-in number formats Excel reserves for dates and times.
var builtinDateFormats = map[int]struct{}{
	14: {}, 15: {}, 16: {}, 17: {}, 18: {}, 19: {}, 20: {}, 21: {}, 22: {},
	45: {}, 46: {}, 47: {},
}

func isDateStyled(f *excelize.File, sheetName, cell string) bool {
	styleID, err := f.GetCellStyle(sheetName, cell)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if _, ok := builtinDateFormats[style.NumFmt]; ok {
		return true
	}
	return looksLikeDateFormat(style.CustomNumFmt)
}

func looksLikeDateFormat(numFmt *string) bool {
	if numFmt == nil {
		return false
	}
	for _, r := range *numFmt {
		switch r {
		case 'y', 'Y', 'd', 'D':
			return true
		}
	}
	return false
}

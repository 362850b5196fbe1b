package sheet_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/apx-soporte/warranty-tracker/internal/sheet"
)

// writeWorkbook builds an xlsx fixture; rows[0] is the header row.
func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	name := f.GetSheetName(0)
	for ri, row := range rows {
		for ci, v := range row {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(name, cell, v))
		}
	}
	path := filepath.Join(t.TempDir(), "fixture.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Nº DE RMA", "PRODUCTO", "Nº DE SERIE"},
		{"RMA-001", "Router X1", "SN1"},
		{"RMA-002"}, // short row, padded
		{12345, "Switch", "SN3"},
	})

	table, err := sheet.ReadWorkbook(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Nº DE RMA", "PRODUCTO", "Nº DE SERIE"}, table.Headers)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, sheet.KindText, table.Cell(0, 0).Kind())
	assert.Equal(t, "RMA-001", table.Cell(0, 0).String())

	// Short rows are padded up to the header width.
	assert.Len(t, table.Rows[1], 3)
	assert.True(t, table.Cell(1, 1).IsEmpty())
	assert.True(t, table.Cell(1, 2).IsEmpty())

	// Numeric cells classify as numbers and normalize without a float tail.
	assert.Equal(t, sheet.KindNumber, table.Cell(2, 0).Kind())
	s, ok := table.Cell(2, 0).Normalized()
	assert.True(t, ok)
	assert.Equal(t, "12345", s)

	// Out-of-range lookups are empty, not panics.
	assert.True(t, table.Cell(99, 0).IsEmpty())
	assert.True(t, table.Cell(0, 99).IsEmpty())
}

func TestReadWorkbookTextCellsKeepNumericStrings(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	name := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(name, "A1", "Nº DE SERIE"))
	require.NoError(t, f.SetCellValue(name, "B1", "TELEFONO"))
	// Stored as string cells: the leading zeros are part of the value.
	require.NoError(t, f.SetCellStr(name, "A2", "007"))
	require.NoError(t, f.SetCellStr(name, "B2", "0034600111222"))

	path := filepath.Join(t.TempDir(), "text.xlsx")
	require.NoError(t, f.SaveAs(path))

	table, err := sheet.ReadWorkbook(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)

	serial := table.Cell(0, 0)
	assert.Equal(t, sheet.KindText, serial.Kind())
	s, ok := serial.Normalized()
	require.True(t, ok)
	assert.Equal(t, "007", s)

	phone, ok := table.Cell(0, 1).Normalized()
	require.True(t, ok)
	assert.Equal(t, "0034600111222", phone)
}

func TestReadWorkbookDateStyledCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	name := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(name, "A1", "FECHA RECIBIDO"))
	// 44317 days after 1899-12-30 is 2021-05-01.
	require.NoError(t, f.SetCellValue(name, "A2", 44317))
	style, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(name, "A2", "A2", style))
	// Same serial without a date style stays numeric.
	require.NoError(t, f.SetCellValue(name, "B2", 44317))

	path := filepath.Join(t.TempDir(), "dates.xlsx")
	require.NoError(t, f.SaveAs(path))

	table, err := sheet.ReadWorkbook(path)
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)

	dated := table.Cell(0, 0)
	assert.Equal(t, sheet.KindDate, dated.Kind())
	s, ok := dated.Normalized()
	assert.True(t, ok)
	assert.Equal(t, "2021-05-01", s)

	plain := table.Cell(0, 1)
	assert.Equal(t, sheet.KindNumber, plain.Kind())
}

func TestReadWorkbookMissingFile(t *testing.T) {
	_, err := sheet.ReadWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestReadWorkbookBytes(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Nº DE RMA"},
		{"RMA-010"},
	})
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	table, err := sheet.ReadWorkbookBytes(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "RMA-010", table.Cell(0, 0).String())
}

func TestReadGridBounds(t *testing.T) {
	rows := make([][]any, 0, 6)
	rows = append(rows, []any{"FICHA", "x", "y", "z"})
	for i := 0; i < 5; i++ {
		rows = append(rows, []any{"a", "b", "c", "d"})
	}
	path := writeWorkbook(t, rows)

	grid, err := sheet.ReadGrid(path, 3, 2)
	require.NoError(t, err)

	assert.Len(t, grid, 3)
	for _, row := range grid {
		assert.LessOrEqual(t, len(row), 2)
	}
	assert.Equal(t, "FICHA", grid[0][0].String())
}

func TestReadGridFindsAnchorAndSerial(t *testing.T) {
	// Visual-sheet shape: an anchor cell with the serial a row below and
	// two columns to the left of the anchor's neighborhood.
	rows := make([][]any, 8)
	for i := range rows {
		rows[i] = make([]any, 8)
		for j := range rows[i] {
			rows[i][j] = ""
		}
	}
	rows[0][0] = "FICHA TECNICA"
	rows[1][1] = "03/02/2019"
	rows[5][7] = "Technical Department"
	rows[6][5] = "SN-100"
	path := writeWorkbook(t, rows)

	grid, err := sheet.ReadGrid(path, 40, 11)
	require.NoError(t, err)

	row, col, ok := sheet.FindAnchor(grid, "technical department")
	require.True(t, ok)
	assert.Equal(t, 5, row)
	assert.Equal(t, 7, col)

	serial, ok := sheet.FirstNonEmptyBelow(grid, row+1, col-2)
	require.True(t, ok)
	assert.Equal(t, "SN-100", serial)

	created, ok := sheet.EarliestDate(grid)
	require.True(t, ok)
	assert.Equal(t, time.Date(2019, time.February, 3, 0, 0, 0, 0, time.UTC), created)
}

package sheet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/apx-soporte/warranty-tracker/internal/sheet"
)

func TestEarliestDate(t *testing.T) {
	grid := [][]sheet.CellValue{
		{sheet.Text("FICHA TECNICA"), sheet.Text("2021-05-01")},
		{sheet.Empty(), sheet.Text("03/02/2019")},
		{sheet.Number(44317), sheet.Text("not a date")},
	}

	got, ok := sheet.EarliestDate(grid)
	assert.True(t, ok)
	assert.Equal(t, day(2019, time.February, 3), got)
}

func TestEarliestDateNoDates(t *testing.T) {
	grid := [][]sheet.CellValue{
		{sheet.Text("hola"), sheet.Number(3)},
	}
	_, ok := sheet.EarliestDate(grid)
	assert.False(t, ok)
}

func TestFindAnchor(t *testing.T) {
	grid := [][]sheet.CellValue{
		{sheet.Text("a"), sheet.Text("b")},
		{sheet.Empty(), sheet.Text("  Technical Department  ")},
		{sheet.Text("technical department again"), sheet.Empty()},
	}

	row, col, ok := sheet.FindAnchor(grid, "technical department")
	assert.True(t, ok)
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)

	_, _, ok = sheet.FindAnchor(grid, "no such text")
	assert.False(t, ok)
}

func TestFindAnchorIgnoresNonText(t *testing.T) {
	grid := [][]sheet.CellValue{
		{sheet.Number(2021)},
		{sheet.Text("2021")},
	}
	row, _, ok := sheet.FindAnchor(grid, "2021")
	assert.True(t, ok)
	assert.Equal(t, 1, row)
}

func TestFirstNonEmptyBelow(t *testing.T) {
	grid := [][]sheet.CellValue{
		{sheet.Text("anchor")},
		{sheet.Empty(), sheet.Empty()},
		{sheet.Empty(), sheet.Text("   ")},
		{sheet.Empty(), sheet.Text(" SN-100 ")},
	}

	got, ok := sheet.FirstNonEmptyBelow(grid, 1, 1)
	assert.True(t, ok)
	assert.Equal(t, "SN-100", got)

	_, ok = sheet.FirstNonEmptyBelow(grid, 1, 5)
	assert.False(t, ok)

	_, ok = sheet.FirstNonEmptyBelow(grid, 1, -1)
	assert.False(t, ok)
}

package sheet_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/apx-soporte/warranty-tracker/internal/sheet"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDateTextLayouts(t *testing.T) {
	cases := map[string]time.Time{
		"2019-02-03":       day(2019, time.February, 3),
		"03/02/2019":       day(2019, time.February, 3),
		"03-02-2019":       day(2019, time.February, 3),
		"03.02.2019":       day(2019, time.February, 3),
		"2021-05-01 10:30": day(2021, time.May, 1),
		"2021-05-01T10:30": day(2021, time.May, 1),
	}
	for in, want := range cases {
		got, ok := sheet.ParseDate(sheet.Text(in))
		assert.True(t, ok, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
}

func TestParseDateRejectsNonDates(t *testing.T) {
	for _, in := range []string{"", "   ", "hola", "13/13/2019", "SN-100", "2021"} {
		_, ok := sheet.ParseDate(sheet.Text(in))
		assert.False(t, ok, "input %q", in)
	}
	_, ok := sheet.ParseDate(sheet.Empty())
	assert.False(t, ok)
}

func TestParseDateSerials(t *testing.T) {
	// 44317 days after 1899-12-30 is 2021-05-01.
	got, ok := sheet.ParseDate(sheet.Number(44317))
	assert.True(t, ok)
	assert.Equal(t, day(2021, time.May, 1), got)

	// Outside the plausible window a number stays a number.
	_, ok = sheet.ParseDate(sheet.Number(12))
	assert.False(t, ok)
	_, ok = sheet.ParseDate(sheet.Number(500000))
	assert.False(t, ok)

	// Window edges.
	gotMin, ok := sheet.ParseDate(sheet.Number(61))
	assert.True(t, ok)
	assert.Equal(t, day(1900, time.March, 1), gotMin)
}

func TestParseDateNativeDateTruncates(t *testing.T) {
	in := time.Date(2021, time.May, 1, 15, 4, 5, 0, time.UTC)
	got, ok := sheet.ParseDate(sheet.Date(in))
	assert.True(t, ok)
	assert.Equal(t, day(2021, time.May, 1), got)
}

func TestNormalized(t *testing.T) {
	_, ok := sheet.Empty().Normalized()
	assert.False(t, ok)

	_, ok = sheet.Text("   ").Normalized()
	assert.False(t, ok)

	s, ok := sheet.Text("  RMA-001  ").Normalized()
	assert.True(t, ok)
	assert.Equal(t, "RMA-001", s)

	// Free-form text that merely starts with a date keeps its tail.
	s, ok = sheet.Text("03/02/2021 cliente avisado").Normalized()
	assert.True(t, ok)
	assert.Equal(t, "03/02/2021 cliente avisado", s)

	// Native dates come out as their ISO day.
	s, ok = sheet.Date(time.Date(2021, time.May, 1, 10, 30, 0, 0, time.UTC)).Normalized()
	assert.True(t, ok)
	assert.Equal(t, "2021-05-01", s)

	// Integral numbers drop the float tail.
	s, ok = sheet.Number(12345).Normalized()
	assert.True(t, ok)
	assert.Equal(t, "12345", s)

	s, ok = sheet.Number(1.5).Normalized()
	assert.True(t, ok)
	assert.Equal(t, "1.5", s)
}

package constants

import (
	"path/filepath"
	"strings"
)

// SpreadsheetExtensions holds the workbook extensions the sync and catalog
// code recognizes (lowercased, sans dot).
var SpreadsheetExtensions = map[string]struct{}{
	"xlsx": {},
	"xls":  {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsSpreadsheet reports whether the file name has a recognized workbook extension.
func IsSpreadsheet(name string) bool {
	_, ok := SpreadsheetExtensions[NormalizeExt(filepath.Ext(name))]
	return ok
}

// IsPDF reports whether the file name has a .pdf extension.
func IsPDF(name string) bool {
	return NormalizeExt(filepath.Ext(name)) == "pdf"
}

package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/apx-soporte/warranty-tracker/internal/catalog"
	"github.com/apx-soporte/warranty-tracker/internal/entity"
)

// writeVisualWorkbook lays out the template shape the extractor expects: a
// date near the top, the anchor label, and the serial below and to the left
// of it.
func writeVisualWorkbook(t *testing.T, path, serial, date string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	name := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(name, "A1", "FICHA TECNICA"))
	if date != "" {
		require.NoError(t, f.SetCellValue(name, "B2", date))
	}
	require.NoError(t, f.SetCellValue(name, "H6", "Technical Department"))
	if serial != "" {
		require.NoError(t, f.SetCellValue(name, "F7", serial))
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, f.SaveAs(path))
}

func writePlainWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue(f.GetSheetName(0), "A1", "datos tecnicos"))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, f.SaveAs(path))
}

func touch(t *testing.T, path string, mod time.Time) {
	t.Helper()
	require.NoError(t, os.Chtimes(path, mod, mod))
}

// buildCatalog creates:
//
//	root/BrandA/TypeX/Prod1/{visual_prod1.xlsx, ficha.xlsx, foto.pdf, sub/visual_nested.xlsx}
//	root/BrandB/Prod2/VISUAL-old.xlsx
//	root/Vacia/Deep/
func buildCatalog(t *testing.T) string {
	root := t.TempDir()

	prod1 := filepath.Join(root, "BrandA", "TypeX", "Prod1")
	writeVisualWorkbook(t, filepath.Join(prod1, "visual_prod1.xlsx"), "SN-100", "03/02/2019")
	writePlainWorkbook(t, filepath.Join(prod1, "ficha.xlsx"))
	require.NoError(t, os.WriteFile(filepath.Join(prod1, "foto.pdf"), []byte("%PDF"), 0o644))
	// A product leaf is never descended into, so this nested visual sheet
	// must not become its own entry.
	writeVisualWorkbook(t, filepath.Join(prod1, "sub", "visual_nested.xlsx"), "SN-999", "")

	base := time.Date(2023, time.June, 1, 12, 0, 0, 0, time.UTC)
	touch(t, filepath.Join(prod1, "visual_prod1.xlsx"), base)
	touch(t, filepath.Join(prod1, "ficha.xlsx"), base.Add(time.Hour)) // newest spreadsheet overall

	// Visual workbook without a recognizable serial block.
	writeVisualWorkbook(t, filepath.Join(root, "BrandB", "Prod2", "VISUAL-old.xlsx"), "", "")

	require.NoError(t, os.MkdirAll(filepath.Join(root, "Vacia", "Deep"), 0o755))
	return root
}

func findEntry(t *testing.T, products []entity.CatalogEntry, folderRel string) entity.CatalogEntry {
	t.Helper()
	for _, p := range products {
		if p.FolderRel == folderRel {
			return p
		}
	}
	t.Fatalf("no entry for folder %q in %v", folderRel, products)
	return entity.CatalogEntry{}
}

func TestScan(t *testing.T) {
	root := buildCatalog(t)
	scanner := catalog.NewScanner(nil, catalog.Heuristics{}, nil)

	result, err := scanner.Scan(root, nil)
	require.NoError(t, err)
	require.Equal(t, 2, result.Count)

	prod1 := findEntry(t, result.Products, "BrandA/TypeX/Prod1")
	assert.Equal(t, "SN-100", prod1.BaseSerial)
	assert.Equal(t, "BrandA", prod1.Brand)
	require.NotNil(t, prod1.ProductType)
	assert.Equal(t, "TypeX", *prod1.ProductType)
	require.NotNil(t, prod1.CreationDate)
	assert.Equal(t, "2019-02-03", *prod1.CreationDate)
	// The technical source is the newest spreadsheet in the folder.
	assert.Equal(t, "BrandA/TypeX/Prod1/ficha.xlsx", prod1.SourceRel)
	require.NotNil(t, prod1.VisualXLSRel)
	assert.Equal(t, "BrandA/TypeX/Prod1/visual_prod1.xlsx", *prod1.VisualXLSRel)
	require.NotNil(t, prod1.VisualPDFRel)
	assert.Equal(t, "BrandA/TypeX/Prod1/foto.pdf", *prod1.VisualPDFRel)

	prod2 := findEntry(t, result.Products, "BrandB/Prod2")
	// No extractable serial: the folder name is the fallback identity.
	assert.Equal(t, "Prod2", prod2.BaseSerial)
	assert.Equal(t, "BrandB", prod2.Brand)
	assert.Nil(t, prod2.ProductType) // too shallow for a type segment
	assert.Nil(t, prod2.CreationDate)
	assert.Nil(t, prod2.VisualPDFRel)
}

func TestScanDoesNotDescendBelowLeaf(t *testing.T) {
	root := buildCatalog(t)
	scanner := catalog.NewScanner(nil, catalog.Heuristics{}, nil)

	result, err := scanner.Scan(root, nil)
	require.NoError(t, err)
	for _, p := range result.Products {
		assert.NotContains(t, p.FolderRel, "sub")
	}
}

func TestScanProgress(t *testing.T) {
	root := buildCatalog(t)
	scanner := catalog.NewScanner(nil, catalog.Heuristics{}, nil)

	var percents []int
	var dirs []string
	_, err := scanner.Scan(root, func(p int, dir string) {
		percents = append(percents, p)
		dirs = append(dirs, dir)
	})
	require.NoError(t, err)

	require.NotEmpty(t, percents)
	assert.Contains(t, dirs, ".")
	assert.Equal(t, 100, percents[len(percents)-1])
	for _, p := range percents {
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, 100)
	}
}

func TestScanWithoutPrepassReportsUnknownTotal(t *testing.T) {
	root := buildCatalog(t)
	scanner := catalog.NewScanner(nil, catalog.Heuristics{}, nil)
	scanner.Prepass = false

	var percents []int
	_, err := scanner.Scan(root, func(p int, _ string) {
		percents = append(percents, p)
	})
	require.NoError(t, err)

	require.NotEmpty(t, percents)
	for _, p := range percents {
		assert.Equal(t, -1, p)
	}
}

type fakeLister struct {
	entries map[string][]catalog.DirEntry
	broken  map[string]bool
}

func (l fakeLister) List(path string) ([]catalog.DirEntry, error) {
	if l.broken[path] {
		return nil, errors.New("permission denied")
	}
	return l.entries[path], nil
}

func TestScanProgressWithUnreadableSubdir(t *testing.T) {
	root := t.TempDir()
	lister := fakeLister{
		entries: map[string][]catalog.DirEntry{
			root: {
				{Name: "Cerrada", Dir: true},
				{Name: "BrandC", Dir: true},
			},
			filepath.Join(root, "BrandC"): {
				{Name: "visual_c.xlsx"},
			},
		},
		broken: map[string]bool{filepath.Join(root, "Cerrada"): true},
	}
	scanner := catalog.NewScanner(lister, catalog.Heuristics{}, nil)

	// The pre-pass must count the unreadable directory the same way the
	// walk does, or the walk overshoots the total.
	n, err := scanner.CountDirs(root)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	var percents []int
	result, err := scanner.Scan(root, func(p int, _ string) {
		percents = append(percents, p)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)

	require.NotEmpty(t, percents)
	assert.Equal(t, 100, percents[len(percents)-1])
	for _, p := range percents {
		assert.LessOrEqual(t, p, 100)
	}
}

func TestCountDirs(t *testing.T) {
	root := buildCatalog(t)
	scanner := catalog.NewScanner(nil, catalog.Heuristics{}, nil)

	n, err := scanner.CountDirs(root)
	require.NoError(t, err)
	// root, BrandA, TypeX, Prod1 (leaf, sub not counted), BrandB, Prod2,
	// Vacia, Deep.
	assert.Equal(t, 8, n)
}

func TestValidateRoot(t *testing.T) {
	assert.Error(t, catalog.ValidateRoot(""))
	assert.Error(t, catalog.ValidateRoot("   "))
	assert.Error(t, catalog.ValidateRoot(filepath.Join(t.TempDir(), "nope")))

	file := filepath.Join(t.TempDir(), "plano.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	assert.Error(t, catalog.ValidateRoot(file))

	assert.NoError(t, catalog.ValidateRoot(t.TempDir()))
}

func TestExtractDegradesOnUnreadableWorkbook(t *testing.T) {
	h := catalog.Heuristics{}
	serial, created := h.Extract(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Empty(t, serial)
	assert.Nil(t, created)

	bad := filepath.Join(t.TempDir(), "visual_bad.xlsx")
	require.NoError(t, os.WriteFile(bad, []byte("not a workbook"), 0o644))
	serial, created = h.Extract(bad)
	assert.Empty(t, serial)
	assert.Nil(t, created)
}

func TestExtractCustomAnchor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "visual_alt.xlsx")
	f := excelize.NewFile()
	name := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(name, "D3", "Dept. Tecnico"))
	require.NoError(t, f.SetCellValue(name, "B4", "SN-ALT"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	h := catalog.Heuristics{SerialAnchor: "dept. tecnico"}
	serial, _ := h.Extract(path)
	assert.Equal(t, "SN-ALT", serial)
}

// Package catalog discovers product entries inside the deep, irregular
// directory tree of the department's network share. A directory is a
// product exactly when it directly holds a spreadsheet whose name contains
// "visual"; everything else is a container to keep descending into.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/apx-soporte/warranty-tracker/constants"
	"github.com/apx-soporte/warranty-tracker/internal/entity"
)

// ProgressFunc receives scan progress. Percent is -1 while the total
// directory count is unknown (pre-pass disabled); message is the relative
// path of the directory being visited.
type ProgressFunc func(percent int, message string)

// Scanner walks a catalog root and collects product entries. Results are
// produced fresh on every call; callers own any caching.
type Scanner struct {
	lister Lister
	h      Heuristics
	logger *slog.Logger

	// Prepass enables the cheap counting pass that turns progress into a
	// percentage. On slow shares an operator may prefer to skip it.
	Prepass bool
}

func NewScanner(lister Lister, h Heuristics, logger *slog.Logger) *Scanner {
	if lister == nil {
		lister = osLister{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		lister:  lister,
		h:       h.withDefaults(),
		logger:  logger,
		Prepass: true,
	}
}

// ValidateRoot checks the scan root before any job is created.
func ValidateRoot(root string) error {
	root = strings.TrimSpace(root)
	if root == "" {
		return fmt.Errorf("catalog root is not configured")
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("catalog root not reachable: %s", root)
	}
	if !info.IsDir() {
		return fmt.Errorf("catalog root is not a directory: %s", root)
	}
	return nil
}

// ScanResult is the payload a finished scan job exposes.
type ScanResult struct {
	Products []entity.CatalogEntry `json:"products"`
	Count    int                   `json:"count"`
}

// Scan walks root depth-first and returns every discovered product.
// Listing errors anywhere below the root silently prune that subtree.
func (s *Scanner) Scan(root string, progress ProgressFunc) (*ScanResult, error) {
	if err := ValidateRoot(root); err != nil {
		return nil, err
	}
	root = filepath.Clean(strings.TrimSpace(root))

	total := -1
	if s.Prepass {
		total = s.countDirs(root)
	}

	w := &walker{scanner: s, root: root, total: total, progress: progress}
	w.walk(root, nil)

	s.logger.Info("catalog scan finished", "root", root, "products", len(w.out), "dirs", w.visited)
	return &ScanResult{Products: w.out, Count: len(w.out)}, nil
}

// CountDirs replicates the traversal without opening any workbook, so a
// subsequent Scan can report current/total as a percentage.
func (s *Scanner) CountDirs(root string) (int, error) {
	if err := ValidateRoot(root); err != nil {
		return 0, err
	}
	return s.countDirs(filepath.Clean(strings.TrimSpace(root))), nil
}

// countDirs mirrors walk exactly: a directory counts as visited even when
// its listing fails, so visited never exceeds the pre-pass total.
func (s *Scanner) countDirs(dir string) int {
	count := 1
	entries, err := s.lister.List(dir)
	if err != nil {
		return count
	}
	if hasVisualSpreadsheet(entries) {
		return count
	}
	for _, e := range entries {
		if e.Dir {
			count += s.countDirs(filepath.Join(dir, e.Name))
		}
	}
	return count
}

type walker struct {
	scanner  *Scanner
	root     string
	total    int
	visited  int
	progress ProgressFunc
	out      []entity.CatalogEntry
}

func (w *walker) walk(dir string, parts []string) {
	w.visited++
	w.report(dir)

	entries, err := w.scanner.lister.List(dir)
	if err != nil {
		w.scanner.logger.Warn("skipping unreadable directory", "path", dir, "error", err)
		return
	}

	if hasVisualSpreadsheet(entries) {
		if entry, ok := w.scanner.processLeaf(dir, w.root, parts, entries); ok {
			w.out = append(w.out, entry)
		}
		// Never descend below a product leaf.
		return
	}

	for _, e := range entries {
		if !e.Dir {
			continue
		}
		w.walk(filepath.Join(dir, e.Name), append(parts, e.Name))
	}
}

func (w *walker) report(dir string) {
	if w.progress == nil {
		return
	}
	rel := relSlash(w.root, dir)
	if rel == "" {
		rel = "."
	}
	percent := -1
	if w.total > 0 {
		percent = w.visited * 100 / w.total
		// The tree can grow between the pre-pass and the walk.
		if percent > 100 {
			percent = 100
		}
	}
	w.progress(percent, rel)
}

// hasVisualSpreadsheet is the leaf test: at least one directly-contained
// spreadsheet whose name includes "visual" (case-insensitive). Earlier
// revisions keyed on any spreadsheet or a fixed brand/type depth; real
// layouts vary too much in depth for either.
func hasVisualSpreadsheet(entries []DirEntry) bool {
	for _, e := range entries {
		if e.Dir || !constants.IsSpreadsheet(e.Name) {
			continue
		}
		if strings.Contains(strings.ToLower(e.Name), "visual") {
			return true
		}
	}
	return false
}

func (s *Scanner) processLeaf(dir, root string, parts []string, entries []DirEntry) (entity.CatalogEntry, bool) {
	technical := newestMatch(entries, func(name string) bool {
		return constants.IsSpreadsheet(name)
	})
	if technical == "" {
		return entity.CatalogEntry{}, false
	}
	visualXLS := newestMatch(entries, func(name string) bool {
		if !constants.IsSpreadsheet(name) {
			return false
		}
		n := strings.ToLower(name)
		return strings.Contains(n, "visual") || strings.Contains(n, "datasheet")
	})
	visualPDF := newestMatch(entries, constants.IsPDF)

	entry := entity.CatalogEntry{
		FolderRel: relSlash(root, dir),
		SourceRel: relSlash(root, filepath.Join(dir, technical)),
	}

	// Metadata comes from the visual/datasheet workbook; the leaf test
	// guarantees one exists.
	if visualXLS != "" {
		rel := relSlash(root, filepath.Join(dir, visualXLS))
		entry.VisualXLSRel = &rel

		serial, created := s.h.Extract(filepath.Join(dir, visualXLS))
		entry.BaseSerial = serial
		if created != nil {
			iso := created.Format("2006-01-02")
			entry.CreationDate = &iso
		}
	}
	if entry.BaseSerial == "" {
		entry.BaseSerial = filepath.Base(dir)
	}

	if visualPDF != "" {
		rel := relSlash(root, filepath.Join(dir, visualPDF))
		entry.VisualPDFRel = &rel
	}

	entry.Brand = filepath.Base(dir)
	if len(parts) > 0 {
		entry.Brand = parts[0]
	}
	if len(parts) >= 3 {
		pt := parts[1]
		entry.ProductType = &pt
	}
	return entry, true
}

// newestMatch returns the name of the most-recently-modified file entry
// accepted by match, or "" when none matches.
func newestMatch(entries []DirEntry, match func(name string) bool) string {
	best := ""
	var bestMod int64 = -1
	for _, e := range entries {
		if e.Dir || !match(e.Name) {
			continue
		}
		if m := e.ModTime.UnixNano(); m > bestMod {
			best = e.Name
			bestMod = m
		}
	}
	return best
}

func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	if rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}

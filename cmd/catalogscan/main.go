// Command catalogscan walks a product catalog tree and prints the collected
// entries as JSON, one run, no daemon and no database.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"log/slog"

	"github.com/apx-soporte/warranty-tracker/internal/catalog"
	"github.com/apx-soporte/warranty-tracker/internal/common"
)

func main() {
	var (
		root      = flag.String("root", "", "catalog root (default: PRODUCTOS_CATALOG_PATH)")
		noPrepass = flag.Bool("no-prepass", false, "skip the directory counting pass (progress has no percentage)")
		anchor    = flag.String("anchor", "", "override the serial anchor text in visual sheets")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	scanRoot := *root
	if scanRoot == "" {
		scanRoot = common.LoadConfig().Catalog.DefaultRoot
	}
	if err := catalog.ValidateRoot(scanRoot); err != nil {
		logger.Error("invalid scan root", "root", scanRoot, "error", err)
		os.Exit(2)
	}

	scanner := catalog.NewScanner(nil, catalog.Heuristics{SerialAnchor: *anchor}, logger)
	scanner.Prepass = !*noPrepass

	result, err := scanner.Scan(scanRoot, func(percent int, message string) {
		logger.Info("scanning", "percent", percent, "dir", message)
	})
	if err != nil {
		logger.Error("scan failed", "root", scanRoot, "error", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result.Products); err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}
	logger.Info("scan complete", "products", result.Count)
}

// Command rmasync runs a one-shot warranty-sheet reconciliation against the
// configured database, without going through the daemon.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"log/slog"

	"github.com/apx-soporte/warranty-tracker/internal/common"
	"github.com/apx-soporte/warranty-tracker/internal/jobs"
	"github.com/apx-soporte/warranty-tracker/internal/reconcile"
	repo "github.com/apx-soporte/warranty-tracker/internal/repository"
)

func main() {
	var (
		file    = flag.String("file", "", "workbook path (default: configured sync path)")
		reset   = flag.Bool("reset", false, "wipe warranty rows and reload from scratch")
		special = flag.Bool("special", false, "run the special-RMA import instead of the warranty sync")
		mapping = flag.String("map", "", "manual field=header pairs for -special, comma separated")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, db, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, db, logger)

	if err := repo.Migrate(ctx, entc, logger); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	settingsRepo := repo.NewSettingsRepository(entc, logger)

	src := reconcile.Source{Path: strings.TrimSpace(*file)}
	if !src.Valid() {
		src.Path = cfg.Sync.DefaultSheetPath
		if v, err := settingsRepo.Get(ctx, jobs.SettingSheetPath); err == nil && strings.TrimSpace(v) != "" {
			src.Path = strings.TrimSpace(v)
		}
	}

	progress := lastPercentLogger(logger)

	var result any
	start := time.Now()
	if *special {
		importer := reconcile.NewSpecialImporter(repo.NewSpecialRMARepository(entc, logger), settingsRepo, logger)
		result, err = importer.Import(ctx, src, parseManualMap(*mapping), progress)
	} else {
		mode := reconcile.ModeIncremental
		if *reset {
			mode = reconcile.ModeReset
		}
		syncer := reconcile.NewSyncer(repo.NewRMAItemRepository(entc, logger), settingsRepo, logger)
		result, err = syncer.Sync(ctx, src, mode, progress)
	}
	if err != nil {
		logger.Error("reconciliation failed", "path", src.Path, "error", err)
		os.Exit(1)
	}

	out, _ := json.Marshal(result)
	fmt.Println(string(out))
	logger.Info("done", "path", src.Path, "elapsed", time.Since(start).Round(time.Millisecond))
}

// lastPercentLogger logs progress only when the percentage moves, so a large
// sheet does not flood stderr with one line per row.
func lastPercentLogger(logger *slog.Logger) reconcile.ProgressFunc {
	last := -1
	return func(percent int, message string) {
		if percent == last {
			return
		}
		last = percent
		logger.Info("progress", "percent", percent, "detail", message)
	}
}

func parseManualMap(s string) reconcile.ManualMap {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	m := make(reconcile.ManualMap)
	for _, pair := range strings.Split(s, ",") {
		field, header, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		m[strings.TrimSpace(field)] = strings.TrimSpace(header)
	}
	return m
}

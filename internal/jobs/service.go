// Package jobs is the engine façade the transport layer talks to: submit a
// reconciliation or a catalog scan, get a job id back, poll it. Input-shape
// problems (bad source, missing required column) fail synchronously here,
// before any job exists; everything later is reported through the job
// record.
package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/apx-soporte/warranty-tracker/internal/catalog"
	"github.com/apx-soporte/warranty-tracker/internal/columns"
	"github.com/apx-soporte/warranty-tracker/internal/reconcile"
	"github.com/apx-soporte/warranty-tracker/internal/tasks"
)

// Settings keys for the runtime-editable paths and the durable scan trail.
const (
	SettingSheetPath      = "EXCEL_SYNC_PATH"
	SettingCatalogRoot    = "PRODUCTOS_CATALOG_PATH"
	SettingLastScanStatus = "LAST_SCAN_STATUS"
)

// Defaults are the fallbacks used when a path setting is unset.
type Defaults struct {
	SheetPath   string
	CatalogRoot string
}

// Service wires the task runner to the reconcilers and the scanner.
type Service struct {
	runner   *tasks.Runner
	syncer   *reconcile.Syncer
	special  *reconcile.SpecialImporter
	scanner  *catalog.Scanner
	settings reconcile.SettingsStore
	defaults Defaults
	logger   *slog.Logger
}

func NewService(
	runner *tasks.Runner,
	syncer *reconcile.Syncer,
	special *reconcile.SpecialImporter,
	scanner *catalog.Scanner,
	settings reconcile.SettingsStore,
	defaults Defaults,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		runner:   runner,
		syncer:   syncer,
		special:  special,
		scanner:  scanner,
		settings: settings,
		defaults: defaults,
		logger:   logger,
	}
}

// SubmitSync starts a warranty-sheet reconciliation and returns the job id.
// When the source is empty the configured sheet path is used. The source is
// opened and its columns resolved before the job is created, so a bad path
// or a sheet without an RMA-number column never produces a job.
func (s *Service) SubmitSync(ctx context.Context, src reconcile.Source, mode reconcile.Mode) (string, error) {
	if mode != reconcile.ModeIncremental && mode != reconcile.ModeReset {
		return "", fmt.Errorf("unknown sync mode %q", mode)
	}
	if !src.Valid() {
		src.Path = s.sheetPath(ctx)
	}
	if err := s.syncer.Preflight(src); err != nil {
		// The rejection never reaches the reconciler, so mirror it into the
		// durable status trail here.
		s.setSyncStatus(ctx, fmt.Sprintf("error: %v", err))
		return "", err
	}

	id := s.runner.Submit(func(_ string, report tasks.ReportFunc) (any, error) {
		return s.syncer.Sync(context.Background(), src, mode, reconcile.ProgressFunc(report))
	})
	s.logger.Info("sync job submitted", "job_id", id, "mode", mode)
	return id, nil
}

// SubmitSpecialImport starts a special-RMA import. The manual mapping, when
// present, extends the persisted alias set before resolution.
func (s *Service) SubmitSpecialImport(ctx context.Context, src reconcile.Source, manual reconcile.ManualMap) (string, error) {
	if !src.Valid() {
		return "", fmt.Errorf("no workbook source given")
	}
	if _, err := src.Open(); err != nil {
		return "", err
	}

	id := s.runner.Submit(func(_ string, report tasks.ReportFunc) (any, error) {
		return s.special.Import(context.Background(), src, manual, reconcile.ProgressFunc(report))
	})
	s.logger.Info("special import job submitted", "job_id", id)
	return id, nil
}

// SubmitCatalogScan starts a catalog scan. When root is empty the
// configured catalog root is used; an unreachable root fails here.
func (s *Service) SubmitCatalogScan(ctx context.Context, root string) (string, error) {
	if strings.TrimSpace(root) == "" {
		root = s.catalogRoot(ctx)
	}
	if err := catalog.ValidateRoot(root); err != nil {
		return "", err
	}

	id := s.runner.Submit(func(_ string, report tasks.ReportFunc) (any, error) {
		progress := func(percent int, message string) {
			if percent < 0 {
				percent = 0
			}
			report(percent, message)
		}
		result, err := s.scanner.Scan(root, progress)
		if err != nil {
			s.setScanStatus(fmt.Sprintf("error: %v", err))
			return nil, err
		}
		s.setScanStatus(fmt.Sprintf("ok: %d products at %s", result.Count, time.Now().UTC().Format(time.RFC3339)))
		return result, nil
	})
	s.logger.Info("catalog scan job submitted", "job_id", id, "root", root)
	return id, nil
}

// Poll returns the current snapshot for a job id; unknown ids come back as
// not_found, never as an error.
func (s *Service) Poll(id string) tasks.Snapshot {
	return s.runner.Poll(id)
}

// ResolveColumns runs a resolution pass for pre-flight validation and
// manual-mapping UIs.
func (s *Service) ResolveColumns(ctx context.Context, headers []string, setName string) (map[string]int, error) {
	switch setName {
	case columns.WarrantySetName:
		return columns.Resolve(headers, columns.WarrantySet()), nil
	case columns.SpecialRMASetName:
		return columns.Resolve(headers, s.special.AliasSet(ctx)), nil
	default:
		return nil, fmt.Errorf("unknown alias set %q", setName)
	}
}

func (s *Service) sheetPath(ctx context.Context) string {
	if v, err := s.settings.Get(ctx, SettingSheetPath); err == nil && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return s.defaults.SheetPath
}

func (s *Service) catalogRoot(ctx context.Context) string {
	if v, err := s.settings.Get(ctx, SettingCatalogRoot); err == nil && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return s.defaults.CatalogRoot
}

func (s *Service) setSyncStatus(ctx context.Context, status string) {
	if err := s.settings.Set(ctx, reconcile.SettingLastSyncStatus, status); err != nil {
		s.logger.Error("persisting last-sync status", "error", err)
	}
}

func (s *Service) setScanStatus(status string) {
	if err := s.settings.Set(context.Background(), SettingLastScanStatus, status); err != nil {
		s.logger.Error("persisting last-scan status", "error", err)
	}
}

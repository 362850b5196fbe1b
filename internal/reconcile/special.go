package reconcile

import (
	"context"
	"fmt"
	"strings"

	"log/slog"

	"github.com/apx-soporte/warranty-tracker/internal/columns"
	"github.com/apx-soporte/warranty-tracker/internal/entity"
)

// SpecialStore is the slice of the store the special-RMA importer needs.
type SpecialStore interface {
	ExistsSpecial(ctx context.Context, serial string) (bool, error)
	InsertSpecial(ctx context.Context, item *entity.SpecialRMAItem) error
}

// ManualMap is an operator-supplied field→header mapping used when a sheet's
// headers defeat the persisted alias set. Confirmed mappings are folded into
// the set so the same sheet resolves automatically next time.
type ManualMap map[string]string

// SpecialResult is the payload of a finished special-RMA import. When the
// required columns could not be resolved it carries the raw headers back so
// the caller can offer a manual mapping; that outcome is a degraded result,
// not a job failure.
type SpecialResult struct {
	Added          int      `json:"added"`
	MissingColumns []string `json:"missing_columns,omitempty"`
	Headers        []string `json:"headers,omitempty"`
}

// SpecialImporter ingests the special-RMA sheet keyed by serial number.
type SpecialImporter struct {
	store    SpecialStore
	settings SettingsStore
	logger   *slog.Logger
}

func NewSpecialImporter(store SpecialStore, settings SettingsStore, logger *slog.Logger) *SpecialImporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpecialImporter{store: store, settings: settings, logger: logger}
}

// AliasSet returns the persisted alias set, seeding the default on first use
// or when the stored payload is unreadable.
func (imp *SpecialImporter) AliasSet(ctx context.Context) columns.AliasSet {
	payload, err := imp.settings.Get(ctx, SettingSpecialAliases)
	if err != nil || strings.TrimSpace(payload) == "" {
		return columns.DefaultSpecialSet()
	}
	set, err := columns.UnmarshalAliases(columns.SpecialRMASetName, payload)
	if err != nil {
		imp.logger.Warn("stored alias set unreadable, falling back to default", "error", err)
		return columns.DefaultSpecialSet()
	}
	return set
}

func (imp *SpecialImporter) saveAliasSet(ctx context.Context, set columns.AliasSet) error {
	payload, err := columns.MarshalAliases(set)
	if err != nil {
		return err
	}
	return imp.settings.Set(ctx, SettingSpecialAliases, payload)
}

// Import runs one special-RMA ingestion. A manual mapping, when given, is
// merged into the alias set and persisted before resolution.
func (imp *SpecialImporter) Import(ctx context.Context, src Source, manual ManualMap, report ProgressFunc) (*SpecialResult, error) {
	table, err := src.Open()
	if err != nil {
		return nil, err
	}

	set := imp.AliasSet(ctx)
	if len(manual) > 0 {
		for field, header := range manual {
			set.AddAlias(field, strings.TrimSpace(header))
		}
		if err := imp.saveAliasSet(ctx, set); err != nil {
			return nil, fmt.Errorf("persisting alias set: %w", err)
		}
		imp.logger.Info("alias set extended", "mappings", len(manual))
	}

	resolved := columns.Resolve(table.Headers, set)
	if missing := columns.Missing(resolved, columns.SpecialRMARequired); len(missing) > 0 {
		return &SpecialResult{MissingColumns: missing, Headers: table.Headers}, nil
	}

	total := len(table.Rows)
	seen := make(map[string]struct{}, total)
	added := 0

	for i := range table.Rows {
		if report != nil {
			report((i+1)*100/max(total, 1), fmt.Sprintf("row %d of %d", i+1, total))
		}

		serial, ok := normalizedField(table, resolved, i, columns.FieldSerial)
		if !ok {
			continue
		}
		if _, dup := seen[serial]; dup {
			continue
		}
		seen[serial] = struct{}{}

		exists, err := imp.store.ExistsSpecial(ctx, serial)
		if err != nil {
			return nil, fmt.Errorf("store lookup: %w", err)
		}
		if exists {
			continue
		}

		fallo, _ := normalizedField(table, resolved, i, columns.FieldFallo)
		resolucion, _ := normalizedField(table, resolved, i, columns.FieldResolucion)
		item := &entity.SpecialRMAItem{
			Serial:     serial,
			Fallo:      fallo,
			Resolucion: resolucion,
			SheetRow:   i + 2,
		}
		if err := imp.store.InsertSpecial(ctx, item); err != nil {
			return nil, fmt.Errorf("inserting row %d: %w", item.SheetRow, err)
		}
		added++
	}

	imp.logger.Info("special import finished", "added", added)
	return &SpecialResult{Added: added}, nil
}

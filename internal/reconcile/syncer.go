// Package reconcile merges warranty spreadsheets into the record store
// without creating duplicates. It owns the natural-key logic, the value
// normalization rules and the durable last-sync status trail.
package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"log/slog"

	"github.com/apx-soporte/warranty-tracker/internal/columns"
	"github.com/apx-soporte/warranty-tracker/internal/entity"
	"github.com/apx-soporte/warranty-tracker/internal/sheet"
)

// Mode selects between the two sync behaviors.
type Mode string

const (
	// ModeIncremental inserts only rows whose key is new to the store.
	ModeIncremental Mode = "incremental"
	// ModeReset deletes everything first, then loads the whole sheet. The
	// only way to retrofit true sheet row numbers onto old records.
	ModeReset Mode = "reset"
)

// ProgressFunc receives row-fraction progress while a sync runs.
type ProgressFunc func(percent int, message string)

// ItemStore is the slice of the record store the syncer needs.
type ItemStore interface {
	Exists(ctx context.Context, rmaNumber, serial string) (bool, error)
	Insert(ctx context.Context, item *entity.RMAItem) error
	DeleteAll(ctx context.Context) error
}

// SettingsStore persists the durable key-value settings. The job record
// dies with the process; the last-sync status written here survives it and
// is the only durable failure trace.
type SettingsStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Settings keys owned by this package.
const (
	SettingLastSyncStatus = "LAST_SYNC_STATUS"
	SettingSpecialAliases = "SPECIAL_RMA_ALIASES"
)

// Result is the payload a finished sync job exposes: {"added": n} for
// incremental runs, {"loaded": n} for resets.
type Result struct {
	Mode  Mode
	Count int
}

func (r Result) MarshalJSON() ([]byte, error) {
	key := "added"
	if r.Mode == ModeReset {
		key = "loaded"
	}
	return json.Marshal(map[string]int{key: r.Count})
}

// Syncer reconciles warranty sheets against the record store.
type Syncer struct {
	items    ItemStore
	settings SettingsStore
	set      columns.AliasSet
	logger   *slog.Logger
}

func NewSyncer(items ItemStore, settings SettingsStore, logger *slog.Logger) *Syncer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Syncer{
		items:    items,
		settings: settings,
		set:      columns.WarrantySet(),
		logger:   logger,
	}
}

// Preflight opens the source and checks the hard precondition: without an
// RMA-number column no row has an identity and no job should be created.
func (s *Syncer) Preflight(src Source) error {
	table, err := src.Open()
	if err != nil {
		return err
	}
	resolved := columns.Resolve(table.Headers, s.set)
	if missing := columns.Missing(resolved, columns.WarrantyRequired); len(missing) > 0 {
		return &columns.ErrMissingColumns{
			SetName: s.set.Name,
			Missing: missing,
			Headers: table.Headers,
		}
	}
	return nil
}

// Sync runs one reconciliation. Failures are mirrored into the last-sync
// setting before being returned, so they outlive the job record.
func (s *Syncer) Sync(ctx context.Context, src Source, mode Mode, report ProgressFunc) (*Result, error) {
	result, err := s.sync(ctx, src, mode, report)
	if err != nil {
		s.logger.Error("sync failed", "mode", mode, "error", err)
		s.setLastSync(ctx, fmt.Sprintf("error: %v", err))
		return nil, err
	}
	s.logger.Info("sync finished", "mode", mode, "count", result.Count)
	verb := "added"
	if mode == ModeReset {
		verb = "loaded"
	}
	s.setLastSync(ctx, fmt.Sprintf("ok: %s %d rows at %s", verb, result.Count, time.Now().UTC().Format(time.RFC3339)))
	return result, nil
}

func (s *Syncer) sync(ctx context.Context, src Source, mode Mode, report ProgressFunc) (*Result, error) {
	table, err := src.Open()
	if err != nil {
		return nil, err
	}

	resolved := columns.Resolve(table.Headers, s.set)
	if missing := columns.Missing(resolved, columns.WarrantyRequired); len(missing) > 0 {
		return nil, &columns.ErrMissingColumns{
			SetName: s.set.Name,
			Missing: missing,
			Headers: table.Headers,
		}
	}

	if mode == ModeReset {
		if err := s.items.DeleteAll(ctx); err != nil {
			return nil, fmt.Errorf("clearing store: %w", err)
		}
	}

	total := len(table.Rows)
	seen := make(map[entity.ItemKey]struct{}, total)
	added := 0

	for i := range table.Rows {
		if report != nil {
			report((i+1)*100/max(total, 1), fmt.Sprintf("row %d of %d", i+1, total))
		}

		rma, ok := normalizedField(table, resolved, i, columns.FieldRMANumber)
		if !ok {
			continue
		}
		serial, _ := normalizedField(table, resolved, i, columns.FieldSerial)

		key := entity.ItemKey{RMANumber: rma, Serial: serial}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		exists, err := s.items.Exists(ctx, key.RMANumber, key.Serial)
		if err != nil {
			return nil, fmt.Errorf("store lookup: %w", err)
		}
		if exists {
			continue
		}

		item := &entity.RMAItem{
			RMANumber:    rma,
			Product:      optField(table, resolved, i, columns.FieldProduct),
			Serial:       optField(table, resolved, i, columns.FieldSerial),
			ClientName:   optField(table, resolved, i, columns.FieldClientName),
			ClientEmail:  optField(table, resolved, i, columns.FieldClientEmail),
			ClientPhone:  optField(table, resolved, i, columns.FieldClientPhone),
			DateReceived: optField(table, resolved, i, columns.FieldDateReceived),
			DatePickup:   optField(table, resolved, i, columns.FieldDatePickup),
			DateSent:     optField(table, resolved, i, columns.FieldDateSent),
			Averia:       optField(table, resolved, i, columns.FieldAveria),
			Observations: optField(table, resolved, i, columns.FieldObservations),
			// Sheet row 1 is the header, so data row i sits at i+2.
			SheetRow: i + 2,
		}
		if err := s.items.Insert(ctx, item); err != nil {
			return nil, fmt.Errorf("inserting row %d: %w", item.SheetRow, err)
		}
		added++
	}

	return &Result{Mode: mode, Count: added}, nil
}

func (s *Syncer) setLastSync(ctx context.Context, status string) {
	if err := s.settings.Set(ctx, SettingLastSyncStatus, status); err != nil {
		s.logger.Error("persisting last-sync status", "error", err)
	}
}

func normalizedField(t *sheet.Table, resolved map[string]int, row int, field string) (string, bool) {
	col, ok := resolved[field]
	if !ok {
		return "", false
	}
	return t.Cell(row, col).Normalized()
}

func optField(t *sheet.Table, resolved map[string]int, row int, field string) *string {
	v, ok := normalizedField(t, resolved, row, field)
	if !ok {
		return nil
	}
	return &v
}

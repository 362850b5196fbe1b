package jobs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/apx-soporte/warranty-tracker/constants"
	"github.com/apx-soporte/warranty-tracker/internal/catalog"
	"github.com/apx-soporte/warranty-tracker/internal/columns"
	"github.com/apx-soporte/warranty-tracker/internal/entity"
	"github.com/apx-soporte/warranty-tracker/internal/jobs"
	"github.com/apx-soporte/warranty-tracker/internal/reconcile"
	"github.com/apx-soporte/warranty-tracker/internal/tasks"
)

type memStore struct {
	keys     map[entity.ItemKey]struct{}
	serials  map[string]struct{}
	settings map[string]string
}

func newMemStore() *memStore {
	return &memStore{
		keys:     map[entity.ItemKey]struct{}{},
		serials:  map[string]struct{}{},
		settings: map[string]string{},
	}
}

func (m *memStore) Exists(_ context.Context, rmaNumber, serial string) (bool, error) {
	_, ok := m.keys[entity.ItemKey{RMANumber: rmaNumber, Serial: serial}]
	return ok, nil
}

func (m *memStore) Insert(_ context.Context, item *entity.RMAItem) error {
	m.keys[item.Key()] = struct{}{}
	return nil
}

func (m *memStore) DeleteAll(_ context.Context) error {
	m.keys = map[entity.ItemKey]struct{}{}
	return nil
}

func (m *memStore) ExistsSpecial(_ context.Context, serial string) (bool, error) {
	_, ok := m.serials[serial]
	return ok, nil
}

func (m *memStore) InsertSpecial(_ context.Context, item *entity.SpecialRMAItem) error {
	m.serials[item.Serial] = struct{}{}
	return nil
}

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	return m.settings[key], nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	m.settings[key] = value
	return nil
}

func newService(store *memStore, defaults jobs.Defaults) *jobs.Service {
	runner := tasks.NewRunner(nil)
	syncer := reconcile.NewSyncer(store, store, nil)
	special := reconcile.NewSpecialImporter(store, store, nil)
	scanner := catalog.NewScanner(nil, catalog.Heuristics{}, nil)
	return jobs.NewService(runner, syncer, special, scanner, store, defaults, nil)
}

func writeWarrantySheet(t *testing.T, dir string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	name := f.GetSheetName(0)
	for ri, row := range [][]string{
		{"Nº DE RMA", "Nº DE SERIE"},
		{"RMA1", "SN1"},
		{"RMA2", ""},
	} {
		for ci, v := range row {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(name, cell, v))
		}
	}
	path := filepath.Join(dir, "garantias.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func pollUntilDone(t *testing.T, svc *jobs.Service, id string) tasks.Snapshot {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		snap := svc.Poll(id)
		if snap.Status.Terminal() {
			return snap
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job %s never finished", id)
	return tasks.Snapshot{}
}

func TestSubmitSyncToCompletion(t *testing.T) {
	store := newMemStore()
	svc := newService(store, jobs.Defaults{})
	path := writeWarrantySheet(t, t.TempDir())

	id, err := svc.SubmitSync(context.Background(), reconcile.Source{Path: path}, reconcile.ModeIncremental)
	require.NoError(t, err)

	snap := pollUntilDone(t, svc, id)
	assert.Equal(t, constants.JobStatusDone, snap.Status)
	result, ok := snap.Result.(*reconcile.Result)
	require.True(t, ok)
	assert.Equal(t, 2, result.Count)
	assert.True(t, strings.HasPrefix(store.settings[reconcile.SettingLastSyncStatus], "ok: added 2 rows"))
}

func TestSubmitSyncUsesConfiguredPath(t *testing.T) {
	store := newMemStore()
	path := writeWarrantySheet(t, t.TempDir())
	store.settings[jobs.SettingSheetPath] = path
	svc := newService(store, jobs.Defaults{SheetPath: "unused-default.xlsx"})

	id, err := svc.SubmitSync(context.Background(), reconcile.Source{}, reconcile.ModeIncremental)
	require.NoError(t, err)

	snap := pollUntilDone(t, svc, id)
	assert.Equal(t, constants.JobStatusDone, snap.Status)
}

func TestSubmitSyncRejectsBadInputSynchronously(t *testing.T) {
	store := newMemStore()
	svc := newService(store, jobs.Defaults{})

	_, err := svc.SubmitSync(context.Background(), reconcile.Source{Path: "x.xlsx"}, reconcile.Mode("bogus"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sync mode")

	missing := filepath.Join(t.TempDir(), "missing.xlsx")
	_, err = svc.SubmitSync(context.Background(), reconcile.Source{Path: missing}, reconcile.ModeIncremental)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workbook not found")
	// Even a pre-job rejection leaves a durable trace.
	assert.Equal(t, "error: workbook not found at "+missing, store.settings[reconcile.SettingLastSyncStatus])
}

func TestSubmitSyncRejectsSheetWithoutRMAColumn(t *testing.T) {
	dir := t.TempDir()
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue(f.GetSheetName(0), "A1", "PRODUCTO"))
	path := filepath.Join(dir, "sin_rma.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	svc := newService(newMemStore(), jobs.Defaults{})
	_, err := svc.SubmitSync(context.Background(), reconcile.Source{Path: path}, reconcile.ModeIncremental)

	var missing *columns.ErrMissingColumns
	require.ErrorAs(t, err, &missing)
}

func TestSubmitSpecialImportRequiresSource(t *testing.T) {
	svc := newService(newMemStore(), jobs.Defaults{})
	_, err := svc.SubmitSpecialImport(context.Background(), reconcile.Source{}, nil)
	require.Error(t, err)
}

func TestSubmitCatalogScanToCompletion(t *testing.T) {
	store := newMemStore()
	svc := newService(store, jobs.Defaults{})
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "BrandA", "Prod"), 0o755))

	id, err := svc.SubmitCatalogScan(context.Background(), root)
	require.NoError(t, err)

	snap := pollUntilDone(t, svc, id)
	assert.Equal(t, constants.JobStatusDone, snap.Status)
	result, ok := snap.Result.(*catalog.ScanResult)
	require.True(t, ok)
	assert.Equal(t, 0, result.Count)
	assert.True(t, strings.HasPrefix(store.settings[jobs.SettingLastScanStatus], "ok: 0 products"))
}

func TestSubmitCatalogScanValidatesRoot(t *testing.T) {
	svc := newService(newMemStore(), jobs.Defaults{})

	_, err := svc.SubmitCatalogScan(context.Background(), "")
	require.Error(t, err)

	_, err = svc.SubmitCatalogScan(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestPollUnknownJob(t *testing.T) {
	svc := newService(newMemStore(), jobs.Defaults{})
	snap := svc.Poll("missing")
	assert.Equal(t, constants.JobStatusNotFound, snap.Status)
}

func TestResolveColumns(t *testing.T) {
	svc := newService(newMemStore(), jobs.Defaults{})
	ctx := context.Background()

	resolved, err := svc.ResolveColumns(ctx, []string{"PRODUCTO", "Nº DE RMA"}, columns.WarrantySetName)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{columns.FieldProduct: 0, columns.FieldRMANumber: 1}, resolved)

	resolved, err = svc.ResolveColumns(ctx, []string{"SN", "FALLO", "RESOLUCION"}, columns.SpecialRMASetName)
	require.NoError(t, err)
	assert.Len(t, resolved, 3)

	_, err = svc.ResolveColumns(ctx, []string{"X"}, "bogus")
	require.Error(t, err)
}

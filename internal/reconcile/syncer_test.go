package reconcile_test

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/apx-soporte/warranty-tracker/internal/columns"
	"github.com/apx-soporte/warranty-tracker/internal/entity"
	"github.com/apx-soporte/warranty-tracker/internal/reconcile"
)

// ---- mock stores ----

type mockItemStore struct {
	keys        map[entity.ItemKey]struct{}
	inserted    []*entity.RMAItem
	deleteCalls int
	existsErr   error
	insertErr   error
}

func newMockItemStore() *mockItemStore {
	return &mockItemStore{keys: map[entity.ItemKey]struct{}{}}
}

func (m *mockItemStore) Exists(_ context.Context, rmaNumber, serial string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.keys[entity.ItemKey{RMANumber: rmaNumber, Serial: serial}]
	return ok, nil
}

func (m *mockItemStore) Insert(_ context.Context, item *entity.RMAItem) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.keys[item.Key()] = struct{}{}
	m.inserted = append(m.inserted, item)
	return nil
}

func (m *mockItemStore) DeleteAll(_ context.Context) error {
	m.deleteCalls++
	m.keys = map[entity.ItemKey]struct{}{}
	return nil
}

type mockSettings struct {
	values map[string]string
	setErr error
}

func newMockSettings() *mockSettings {
	return &mockSettings{values: map[string]string{}}
}

func (m *mockSettings) Get(_ context.Context, key string) (string, error) {
	return m.values[key], nil
}

func (m *mockSettings) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

// ---- fixtures ----

func writeSheet(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	name := f.GetSheetName(0)
	for ri, row := range rows {
		for ci, v := range row {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(name, cell, v))
		}
	}
	path := filepath.Join(t.TempDir(), "sheet.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func warrantySheet(t *testing.T) string {
	return writeSheet(t, [][]any{
		{"Nº DE RMA", "PRODUCTO", "Nº DE SERIE", "OBSERVACIONES"},
		{"RMA1", "Router", "SN1", "primera"},
		{"RMA1", "Router", "SN1", "duplicada en hoja"},
		{"RMA2", "Switch", "", "sin serie"},
		{"", "Huerfana", "SNX", "sin rma, se ignora"},
	})
}

// ---- tests ----

func TestSyncIncremental(t *testing.T) {
	store := newMockItemStore()
	settings := newMockSettings()
	syncer := reconcile.NewSyncer(store, settings, nil)
	src := reconcile.Source{Path: warrantySheet(t)}

	result, err := syncer.Sync(context.Background(), src, reconcile.ModeIncremental, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	require.Len(t, store.inserted, 2)

	// Sheet rows count from 1 with the header at row 1.
	assert.Equal(t, "RMA1", store.inserted[0].RMANumber)
	assert.Equal(t, 2, store.inserted[0].SheetRow)
	assert.Equal(t, "RMA2", store.inserted[1].RMANumber)
	assert.Equal(t, 4, store.inserted[1].SheetRow)
	assert.Nil(t, store.inserted[1].Serial)

	require.NotNil(t, store.inserted[0].Product)
	assert.Equal(t, "Router", *store.inserted[0].Product)

	status := settings.values[reconcile.SettingLastSyncStatus]
	assert.True(t, strings.HasPrefix(status, "ok: added 2 rows at "), status)
}

func TestSyncIncrementalIsIdempotent(t *testing.T) {
	store := newMockItemStore()
	syncer := reconcile.NewSyncer(store, newMockSettings(), nil)
	src := reconcile.Source{Path: warrantySheet(t)}

	first, err := syncer.Sync(context.Background(), src, reconcile.ModeIncremental, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Count)

	second, err := syncer.Sync(context.Background(), src, reconcile.ModeIncremental, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Count)
	assert.Len(t, store.inserted, 2)
}

func TestSyncReset(t *testing.T) {
	store := newMockItemStore()
	store.keys[entity.ItemKey{RMANumber: "OLD", Serial: ""}] = struct{}{}
	settings := newMockSettings()
	syncer := reconcile.NewSyncer(store, settings, nil)

	result, err := syncer.Sync(context.Background(), reconcile.Source{Path: warrantySheet(t)}, reconcile.ModeReset, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, store.deleteCalls)
	assert.Equal(t, 2, result.Count)
	assert.True(t, strings.HasPrefix(settings.values[reconcile.SettingLastSyncStatus], "ok: loaded 2 rows at "))
}

func TestSyncMissingRMAColumn(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"PRODUCTO", "OBSERVACIONES"},
		{"Router", "sin identidad"},
	})
	settings := newMockSettings()
	syncer := reconcile.NewSyncer(newMockItemStore(), settings, nil)

	_, err := syncer.Sync(context.Background(), reconcile.Source{Path: path}, reconcile.ModeIncremental, nil)
	require.Error(t, err)

	var missing *columns.ErrMissingColumns
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{columns.FieldRMANumber}, missing.Missing)
	assert.Equal(t, []string{"PRODUCTO", "OBSERVACIONES"}, missing.Headers)

	assert.True(t, strings.HasPrefix(settings.values[reconcile.SettingLastSyncStatus], "error: "))
}

func TestSyncMissingWorkbook(t *testing.T) {
	settings := newMockSettings()
	syncer := reconcile.NewSyncer(newMockItemStore(), settings, nil)
	path := filepath.Join(t.TempDir(), "missing.xlsx")

	_, err := syncer.Sync(context.Background(), reconcile.Source{Path: path}, reconcile.ModeIncremental, nil)
	require.Error(t, err)
	assert.Equal(t, "workbook not found at "+path, err.Error())
	assert.Equal(t, "error: workbook not found at "+path, settings.values[reconcile.SettingLastSyncStatus])
}

func TestSyncReportsProgress(t *testing.T) {
	syncer := reconcile.NewSyncer(newMockItemStore(), newMockSettings(), nil)

	var percents []int
	_, err := syncer.Sync(context.Background(), reconcile.Source{Path: warrantySheet(t)}, reconcile.ModeIncremental, func(p int, _ string) {
		percents = append(percents, p)
	})
	require.NoError(t, err)

	require.NotEmpty(t, percents)
	assert.Equal(t, 100, percents[len(percents)-1])
	for i := 1; i < len(percents); i++ {
		assert.GreaterOrEqual(t, percents[i], percents[i-1])
	}
}

func TestSyncStoreErrorAborts(t *testing.T) {
	store := newMockItemStore()
	store.existsErr = errors.New("db down")
	syncer := reconcile.NewSyncer(store, newMockSettings(), nil)

	_, err := syncer.Sync(context.Background(), reconcile.Source{Path: warrantySheet(t)}, reconcile.ModeIncremental, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store lookup")
}

func TestPreflight(t *testing.T) {
	syncer := reconcile.NewSyncer(newMockItemStore(), newMockSettings(), nil)

	assert.NoError(t, syncer.Preflight(reconcile.Source{Path: warrantySheet(t)}))

	bad := writeSheet(t, [][]any{{"PRODUCTO"}})
	err := syncer.Preflight(reconcile.Source{Path: bad})
	var missing *columns.ErrMissingColumns
	require.ErrorAs(t, err, &missing)
}

func TestSyncFromUploadedBytes(t *testing.T) {
	f, err := excelize.OpenFile(warrantySheet(t))
	require.NoError(t, err)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	store := newMockItemStore()
	syncer := reconcile.NewSyncer(store, newMockSettings(), nil)

	result, err := syncer.Sync(context.Background(), reconcile.Source{Data: buf.Bytes()}, reconcile.ModeIncremental, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
}

func TestSourceValidAndOpen(t *testing.T) {
	assert.False(t, reconcile.Source{}.Valid())
	assert.False(t, reconcile.Source{Path: "   "}.Valid())
	assert.True(t, reconcile.Source{Path: "x.xlsx"}.Valid())
	assert.True(t, reconcile.Source{Data: []byte{1}}.Valid())

	_, err := reconcile.Source{}.Open()
	require.Error(t, err)
	assert.Equal(t, "no workbook source configured", err.Error())

	_, err = reconcile.Source{Data: []byte("not a zip")}.Open()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read uploaded workbook")
}

func TestResultJSON(t *testing.T) {
	b, err := json.Marshal(reconcile.Result{Mode: reconcile.ModeIncremental, Count: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"added":3}`, string(b))

	b, err = json.Marshal(reconcile.Result{Mode: reconcile.ModeReset, Count: 7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"loaded":7}`, string(b))
}

package reconcile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apx-soporte/warranty-tracker/internal/columns"
	"github.com/apx-soporte/warranty-tracker/internal/entity"
	"github.com/apx-soporte/warranty-tracker/internal/reconcile"
)

type mockSpecialStore struct {
	serials  map[string]struct{}
	inserted []*entity.SpecialRMAItem
}

func newMockSpecialStore() *mockSpecialStore {
	return &mockSpecialStore{serials: map[string]struct{}{}}
}

func (m *mockSpecialStore) ExistsSpecial(_ context.Context, serial string) (bool, error) {
	_, ok := m.serials[serial]
	return ok, nil
}

func (m *mockSpecialStore) InsertSpecial(_ context.Context, item *entity.SpecialRMAItem) error {
	m.serials[item.Serial] = struct{}{}
	m.inserted = append(m.inserted, item)
	return nil
}

func specialSheet(t *testing.T) string {
	return writeSheet(t, [][]any{
		{"Nº DE SERIE", "FALLO", "RESOLUCION"},
		{"SN1", "no enciende", "abonado"},
		{"SN1", "repetida", "se ignora"},
		{"SN2", "pantalla rota", "reparado"},
		{"", "sin serie", "se ignora"},
	})
}

func TestSpecialImport(t *testing.T) {
	store := newMockSpecialStore()
	imp := reconcile.NewSpecialImporter(store, newMockSettings(), nil)

	result, err := imp.Import(context.Background(), reconcile.Source{Path: specialSheet(t)}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Added)
	assert.Empty(t, result.MissingColumns)
	require.Len(t, store.inserted, 2)
	assert.Equal(t, "SN1", store.inserted[0].Serial)
	assert.Equal(t, "no enciende", store.inserted[0].Fallo)
	assert.Equal(t, "abonado", store.inserted[0].Resolucion)
	assert.Equal(t, 2, store.inserted[0].SheetRow)
	assert.Equal(t, 4, store.inserted[1].SheetRow)
}

func TestSpecialImportIsIdempotent(t *testing.T) {
	store := newMockSpecialStore()
	imp := reconcile.NewSpecialImporter(store, newMockSettings(), nil)
	src := reconcile.Source{Path: specialSheet(t)}

	_, err := imp.Import(context.Background(), src, nil, nil)
	require.NoError(t, err)

	again, err := imp.Import(context.Background(), src, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Added)
	assert.Len(t, store.inserted, 2)
}

func TestSpecialImportMissingColumnsIsDegradedResult(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"UNIDAD", "PROBLEMA", "QUE SE HIZO"},
		{"SN9", "no arranca", "abonado"},
	})
	imp := reconcile.NewSpecialImporter(newMockSpecialStore(), newMockSettings(), nil)

	result, err := imp.Import(context.Background(), reconcile.Source{Path: path}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Added)
	assert.ElementsMatch(t, []string{columns.FieldSerial, columns.FieldFallo, columns.FieldResolucion}, result.MissingColumns)
	assert.Equal(t, []string{"UNIDAD", "PROBLEMA", "QUE SE HIZO"}, result.Headers)
}

func TestSpecialImportManualMapPersists(t *testing.T) {
	path := writeSheet(t, [][]any{
		{"UNIDAD", "PROBLEMA", "QUE SE HIZO"},
		{"SN9", "no arranca", "abonado"},
	})
	store := newMockSpecialStore()
	settings := newMockSettings()
	imp := reconcile.NewSpecialImporter(store, settings, nil)
	manual := reconcile.ManualMap{
		columns.FieldSerial:     "UNIDAD",
		columns.FieldFallo:      "PROBLEMA",
		columns.FieldResolucion: "QUE SE HIZO",
	}

	result, err := imp.Import(context.Background(), reconcile.Source{Path: path}, manual, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Added)
	assert.Empty(t, result.MissingColumns)

	// The confirmed mapping is folded into the persisted set, so the same
	// sheet resolves without manual help next time.
	assert.NotEmpty(t, settings.values[reconcile.SettingSpecialAliases])

	result, err = imp.Import(context.Background(), reconcile.Source{Path: path}, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result.MissingColumns)
	assert.Equal(t, 0, result.Added) // SN9 already present
}

func TestSpecialAliasSetFallsBackToDefault(t *testing.T) {
	settings := newMockSettings()
	settings.values[reconcile.SettingSpecialAliases] = "{corrupted"
	imp := reconcile.NewSpecialImporter(newMockSpecialStore(), settings, nil)

	set := imp.AliasSet(context.Background())
	assert.Equal(t, columns.DefaultSpecialSet(), set)
}

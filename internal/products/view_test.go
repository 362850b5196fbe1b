package products_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apx-soporte/warranty-tracker/internal/entity"
	"github.com/apx-soporte/warranty-tracker/internal/products"
)

type memItems struct {
	items []*entity.RMAItem
}

func (m *memItems) List(_ context.Context, includeHidden bool) ([]*entity.RMAItem, error) {
	if includeHidden {
		return m.items, nil
	}
	out := make([]*entity.RMAItem, 0, len(m.items))
	for _, it := range m.items {
		if !it.Hidden {
			out = append(out, it)
		}
	}
	return out, nil
}

type memWarranty struct {
	flags map[string]bool
	sets  map[string]bool
}

func newMemWarranty() *memWarranty {
	return &memWarranty{flags: map[string]bool{}, sets: map[string]bool{}}
}

func (m *memWarranty) All(_ context.Context) (map[string]bool, error) {
	out := make(map[string]bool, len(m.flags))
	for k, v := range m.flags {
		out[k] = v
	}
	return out, nil
}

func (m *memWarranty) Set(_ context.Context, serial string, valid bool) error {
	m.flags[serial] = valid
	m.sets[serial] = valid
	return nil
}

func line(rma, serial, product, client, received string, row int, hidden bool) *entity.RMAItem {
	it := &entity.RMAItem{RMANumber: rma, SheetRow: row, Hidden: hidden}
	if serial != "" {
		it.Serial = &serial
	}
	if product != "" {
		it.Product = &product
	}
	if client != "" {
		it.ClientName = &client
	}
	if received != "" {
		it.DateReceived = &received
	}
	return it
}

func TestListGroupsLinesBySerial(t *testing.T) {
	recent := time.Now().AddDate(0, -6, 0).Format("2006-01-02")
	later := time.Now().AddDate(0, -1, 0).Format("2006-01-02")
	items := &memItems{items: []*entity.RMAItem{
		line("R2", "SN1", "Router X1", "Ana", later, 3, false),
		line("R1", "SN1", "Router X2", "Luis", recent, 2, false),
		line("R3", "SN2", "Switch", "Ana", recent, 4, false),
		// Serial-less and hidden lines stay out of the view.
		line("R4", "", "Sin serie", "Eva", recent, 5, false),
		line("R5", "SN1", "Router X1", "Mar", recent, 6, true),
	}}
	view := products.NewView(items, newMemWarranty(), nil)

	summaries, err := view.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	sn1 := summaries[0]
	assert.Equal(t, "SN1", sn1.Serial)
	assert.Equal(t, 2, sn1.Count)
	require.NotNil(t, sn1.ProductName)
	assert.Equal(t, "Router X2", *sn1.ProductName)
	require.NotNil(t, sn1.FirstDate)
	assert.Equal(t, recent, *sn1.FirstDate)
	require.NotNil(t, sn1.LastDate)
	assert.Equal(t, later, *sn1.LastDate)
	assert.True(t, sn1.WarrantyValid)
	// Lines come back oldest reception first.
	require.Len(t, sn1.Items, 2)
	assert.Equal(t, "R1", sn1.Items[0].RMANumber)
	assert.Equal(t, "R2", sn1.Items[1].RMANumber)
	assert.Equal(t, []string{"Luis", "Ana"}, sn1.ClientsSample)

	assert.Equal(t, "SN2", summaries[1].Serial)
	assert.Equal(t, 1, summaries[1].Count)
}

func TestListCapsClientsSample(t *testing.T) {
	recent := time.Now().AddDate(0, -1, 0).Format("2006-01-02")
	var lines []*entity.RMAItem
	for i, name := range []string{"A", "B", "C", "D", "E", "F", "A"} {
		lines = append(lines, line("R", "SN1", "", name, recent, i+2, false))
	}
	view := products.NewView(&memItems{items: lines}, newMemWarranty(), nil)

	summaries, err := view.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	// Five distinct names at most; the repeated "A" is not listed twice.
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, summaries[0].ClientsSample)
}

func TestListHonorsStoredWarrantyFlag(t *testing.T) {
	recent := time.Now().AddDate(0, -1, 0).Format("2006-01-02")
	items := &memItems{items: []*entity.RMAItem{
		line("R1", "SN1", "Router", "Ana", recent, 2, false),
	}}
	warranty := newMemWarranty()
	warranty.flags["SN1"] = false
	view := products.NewView(items, warranty, nil)

	summaries, err := view.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.False(t, summaries[0].WarrantyValid)
}

func TestListExpiresWarrantyPastTerm(t *testing.T) {
	old := time.Now().AddDate(-4, 0, 0).Format("2006-01-02")
	recent := time.Now().AddDate(0, -1, 0).Format("2006-01-02")
	items := &memItems{items: []*entity.RMAItem{
		line("R1", "SN-OLD", "Router", "Ana", old, 2, false),
		line("R2", "SN-OLD", "Router", "Ana", recent, 3, false),
		line("R3", "SN-NEW", "Switch", "Luis", recent, 4, false),
	}}
	warranty := newMemWarranty()
	view := products.NewView(items, warranty, nil)

	summaries, err := view.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// First reception past the three-year term: expired and persisted.
	assert.False(t, summaries[0].WarrantyValid)
	valid, set := warranty.sets["SN-OLD"]
	assert.True(t, set)
	assert.False(t, valid)

	assert.True(t, summaries[1].WarrantyValid)
	_, set = warranty.sets["SN-NEW"]
	assert.False(t, set)
}

func TestSetWarranty(t *testing.T) {
	warranty := newMemWarranty()
	view := products.NewView(&memItems{}, warranty, nil)
	ctx := context.Background()

	require.Error(t, view.SetWarranty(ctx, "   ", true))

	require.NoError(t, view.SetWarranty(ctx, " SN1 ", false))
	valid, ok := warranty.flags["SN1"]
	require.True(t, ok)
	assert.False(t, valid)

	// Manual override turns an expired warranty back on.
	require.NoError(t, view.SetWarranty(ctx, "SN1", true))
	assert.True(t, warranty.flags["SN1"])
}

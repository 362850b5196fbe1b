package columns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apx-soporte/warranty-tracker/internal/columns"
)

func TestResolveWarrantyHeaders(t *testing.T) {
	headers := []string{"Nº DE RMA", "PRODUCTO", "Nº DE SERIE", "CLIENTE", "FECHA RECIBIDO", "OBSERVACIONES"}

	resolved := columns.Resolve(headers, columns.WarrantySet())

	assert.Equal(t, 0, resolved[columns.FieldRMANumber])
	assert.Equal(t, 1, resolved[columns.FieldProduct])
	assert.Equal(t, 2, resolved[columns.FieldSerial])
	assert.Equal(t, 3, resolved[columns.FieldClientName])
	assert.Equal(t, 4, resolved[columns.FieldDateReceived])
	assert.Equal(t, 5, resolved[columns.FieldObservations])
	assert.NotContains(t, resolved, columns.FieldDatePickup)
}

func TestResolveTrimsAndMatchesExactly(t *testing.T) {
	headers := []string{"  PRODUCTO  ", "PRODUCTO EXTRA"}

	resolved := columns.Resolve(headers, columns.WarrantySet())

	// Padded header matches after trimming; "PRODUCTO EXTRA" is not a
	// substring match.
	assert.Equal(t, map[string]int{columns.FieldProduct: 0}, resolved)
}

func TestResolveMojibakeHeader(t *testing.T) {
	resolved := columns.Resolve([]string{"NÂº DE RMA"}, columns.WarrantySet())
	assert.Equal(t, 0, resolved[columns.FieldRMANumber])
}

func TestResolveLeftmostColumnWins(t *testing.T) {
	set := columns.AliasSet{
		Name: "test",
		Fields: []columns.Field{
			{Name: "a", Aliases: []string{"X"}},
			{Name: "b", Aliases: []string{"X"}},
		},
	}

	resolved := columns.Resolve([]string{"X", "X"}, set)

	// First column binds the first unresolved field, second column the next.
	assert.Equal(t, map[string]int{"a": 0, "b": 1}, resolved)
}

func TestResolveColumnBindsAtMostOneField(t *testing.T) {
	set := columns.AliasSet{
		Name: "test",
		Fields: []columns.Field{
			{Name: "a", Aliases: []string{"X"}},
			{Name: "b", Aliases: []string{"X"}},
		},
	}

	resolved := columns.Resolve([]string{"X"}, set)

	assert.Equal(t, map[string]int{"a": 0}, resolved)
}

func TestResolveSkipsBlankHeaders(t *testing.T) {
	resolved := columns.Resolve([]string{"", "   ", "PRODUCTO"}, columns.WarrantySet())
	assert.Equal(t, map[string]int{columns.FieldProduct: 2}, resolved)
}

func TestMissing(t *testing.T) {
	resolved := columns.Resolve([]string{"PRODUCTO"}, columns.WarrantySet())

	missing := columns.Missing(resolved, columns.WarrantyRequired)
	assert.Equal(t, []string{columns.FieldRMANumber}, missing)

	resolved = columns.Resolve([]string{"Nº DE RMA"}, columns.WarrantySet())
	assert.Empty(t, columns.Missing(resolved, columns.WarrantyRequired))
}

func TestAddAlias(t *testing.T) {
	set := columns.DefaultSpecialSet()
	before := len(set.Fields)

	set.AddAlias(columns.FieldSerial, "SERIAL NUMBER")
	resolved := columns.Resolve([]string{"SERIAL NUMBER"}, set)
	assert.Equal(t, 0, resolved[columns.FieldSerial])

	// Duplicates are ignored.
	set.AddAlias(columns.FieldSerial, "SERIAL NUMBER")
	count := 0
	for _, f := range set.Fields {
		if f.Name == columns.FieldSerial {
			for _, a := range f.Aliases {
				if a == "SERIAL NUMBER" {
					count++
				}
			}
		}
	}
	assert.Equal(t, 1, count)

	// A new field lands at the end of the priority order.
	set.AddAlias("brand_new", "HEADER")
	assert.Equal(t, before+1, len(set.Fields))
	assert.Equal(t, "brand_new", set.Fields[len(set.Fields)-1].Name)
}

func TestAliasRoundTrip(t *testing.T) {
	set := columns.DefaultSpecialSet()
	set.AddAlias(columns.FieldSerial, "SERIAL NUMBER")

	payload, err := columns.MarshalAliases(set)
	assert.NoError(t, err)

	got, err := columns.UnmarshalAliases(columns.SpecialRMASetName, payload)
	assert.NoError(t, err)
	assert.Equal(t, set.Fields, got.Fields)
}

func TestUnmarshalAliasesRejectsBadPayloads(t *testing.T) {
	for name, payload := range map[string]string{
		"empty":         "",
		"not json":      "{",
		"wrong shape":   `{"field":"serial"}`,
		"empty aliases": `[{"field":"serial","aliases":[]}]`,
		"unknown keys":  `[{"field":"serial","aliases":["SN"],"extra":1}]`,
		"blank field":   `[{"field":"","aliases":["SN"]}]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := columns.UnmarshalAliases(columns.SpecialRMASetName, payload)
			assert.Error(t, err)
		})
	}
}

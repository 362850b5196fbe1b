package clients_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apx-soporte/warranty-tracker/internal/clients"
	"github.com/apx-soporte/warranty-tracker/internal/entity"
)

type memGroups struct {
	nextID int
	groups []*entity.ClientGroup
}

func (m *memGroups) ListGroups(_ context.Context) ([]*entity.ClientGroup, error) {
	return m.groups, nil
}

func (m *memGroups) RemoveIdentity(_ context.Context, name, email string) error {
	for _, g := range m.groups {
		kept := g.Members[:0]
		for _, mem := range g.Members {
			if mem.Name != name || mem.Email != email {
				kept = append(kept, mem)
			}
		}
		g.Members = kept
	}
	return nil
}

func (m *memGroups) DeleteGroupByCanonical(_ context.Context, name, email string) error {
	kept := m.groups[:0]
	for _, g := range m.groups {
		if g.CanonicalName != name || g.CanonicalEmail != email {
			kept = append(kept, g)
		}
	}
	m.groups = kept
	return nil
}

func (m *memGroups) CreateGroup(_ context.Context, canonical entity.ClientIdentity, phone string, members []entity.ClientIdentity) (int, error) {
	m.nextID++
	m.groups = append(m.groups, &entity.ClientGroup{
		ID:             m.nextID,
		CanonicalName:  canonical.Name,
		CanonicalEmail: canonical.Email,
		CanonicalPhone: phone,
		Members:        members,
	})
	return m.nextID, nil
}

func (m *memGroups) RemoveMember(_ context.Context, groupID int, name, email string) (bool, error) {
	for _, g := range m.groups {
		if g.ID != groupID {
			continue
		}
		for i, mem := range g.Members {
			if mem.Name == name && mem.Email == email {
				g.Members = append(g.Members[:i], g.Members[i+1:]...)
				return true, nil
			}
		}
	}
	return false, nil
}

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

func line(rma, name, email, phone string, hidden bool) *entity.RMAItem {
	it := &entity.RMAItem{RMANumber: rma, Hidden: hidden}
	if name != "" {
		it.ClientName = &name
	}
	if email != "" {
		it.ClientEmail = &email
	}
	if phone != "" {
		it.ClientPhone = &phone
	}
	return it
}

func TestUnifyPicksCanonicalByVisibleCount(t *testing.T) {
	groups := &memGroups{}
	items := &memItems{items: []*entity.RMAItem{
		line("R1", "Ana", "ana@x.es", "600111222", false),
		line("R2", "Ana", "ana@x.es", "", false),
		line("R3", "Ana", "ana@x.es", "", false),
		line("R4", "Ana García", "ag@x.es", "699000111", false),
	}}
	u := clients.NewUnifier(groups, items, nil)

	gid, err := u.Unify(context.Background(), []string{"Ana", "Ana García"})
	require.NoError(t, err)
	assert.Equal(t, 1, gid)

	require.Len(t, groups.groups, 1)
	g := groups.groups[0]
	assert.Equal(t, "Ana", g.CanonicalName)
	assert.Equal(t, "ana@x.es", g.CanonicalEmail)
	assert.Equal(t, "600111222", g.CanonicalPhone)
	require.Len(t, g.Members, 1)
	assert.Equal(t, entity.ClientIdentity{Name: "Ana García", Email: "ag@x.es"}, g.Members[0])
}

func TestUnifyResolvesEveryEmailVariantOfAName(t *testing.T) {
	groups := &memGroups{}
	items := &memItems{items: []*entity.RMAItem{
		line("R1", "Luis", "luis@a.es", "", false),
		line("R2", "Luis", "luis@b.es", "", false),
		line("R3", "Pedro", "pedro@x.es", "", false),
		line("R4", "Pedro", "pedro@x.es", "", false),
	}}
	u := clients.NewUnifier(groups, items, nil)

	_, err := u.Unify(context.Background(), []string{"  Luis ", "Pedro"})
	require.NoError(t, err)

	require.Len(t, groups.groups, 1)
	g := groups.groups[0]
	// Pedro has the most visible lines; both Luis identities join as members.
	assert.Equal(t, "Pedro", g.CanonicalName)
	assert.Equal(t, []entity.ClientIdentity{
		{Name: "Luis", Email: "luis@a.es"},
		{Name: "Luis", Email: "luis@b.es"},
	}, g.Members)
}

func TestUnifyRejectsTooFewIdentities(t *testing.T) {
	groups := &memGroups{}
	items := &memItems{items: []*entity.RMAItem{
		line("R1", "Ana", "ana@x.es", "", false),
	}}
	u := clients.NewUnifier(groups, items, nil)
	ctx := context.Background()

	_, err := u.Unify(ctx, []string{"Ana"})
	assert.ErrorIs(t, err, clients.ErrTooFewIdentities)

	_, err = u.Unify(ctx, []string{"  ", ""})
	assert.ErrorIs(t, err, clients.ErrTooFewIdentities)

	// Two names that collapse to a single identity still reject.
	_, err = u.Unify(ctx, []string{"Ana", "Desconocido"})
	assert.ErrorIs(t, err, clients.ErrTooFewIdentities)
	assert.Empty(t, groups.groups)
}

func TestUnifyAbsorbsExistingGroup(t *testing.T) {
	groups := &memGroups{}
	items := &memItems{items: []*entity.RMAItem{
		line("R1", "Ana", "ana@x.es", "", false),
		line("R2", "Ana", "ana@x.es", "", false),
		line("R3", "Ana García", "ag@x.es", "", false),
		line("R4", "Carlos", "c@x.es", "", false),
	}}
	u := clients.NewUnifier(groups, items, nil)
	ctx := context.Background()

	_, err := u.Unify(ctx, []string{"Ana", "Ana García"})
	require.NoError(t, err)

	// Unifying the canonical again pulls the whole old group into the new
	// one and replaces it.
	_, err = u.Unify(ctx, []string{"Ana", "Carlos"})
	require.NoError(t, err)

	require.Len(t, groups.groups, 1)
	g := groups.groups[0]
	assert.Equal(t, "Ana", g.CanonicalName)
	require.Len(t, g.Members, 2)
	names := []string{g.Members[0].Name, g.Members[1].Name}
	assert.Contains(t, names, "Ana García")
	assert.Contains(t, names, "Carlos")
}

func TestUnifyHiddenLinesResolveButDoNotCount(t *testing.T) {
	groups := &memGroups{}
	items := &memItems{items: []*entity.RMAItem{
		// Bea only exists on hidden lines: she can still join a group but
		// never wins the canonical pick.
		line("R1", "Bea", "bea@x.es", "", true),
		line("R2", "Bea", "bea@x.es", "", true),
		line("R3", "Ana", "ana@x.es", "", false),
	}}
	u := clients.NewUnifier(groups, items, nil)

	_, err := u.Unify(context.Background(), []string{"Bea", "Ana"})
	require.NoError(t, err)

	require.Len(t, groups.groups, 1)
	assert.Equal(t, "Ana", groups.groups[0].CanonicalName)
	require.Len(t, groups.groups[0].Members, 1)
	assert.Equal(t, "Bea", groups.groups[0].Members[0].Name)
}

func TestRemoveMember(t *testing.T) {
	groups := &memGroups{}
	items := &memItems{items: []*entity.RMAItem{
		line("R1", "Ana", "ana@x.es", "", false),
		line("R2", "Ana", "ana@x.es", "", false),
		line("R3", "Ana García", "ag@x.es", "", false),
	}}
	u := clients.NewUnifier(groups, items, nil)
	ctx := context.Background()

	gid, err := u.Unify(ctx, []string{"Ana", "Ana García"})
	require.NoError(t, err)

	_, err = u.RemoveMember(ctx, gid, "   ", "")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "required"))

	removed, err := u.RemoveMember(ctx, gid, "Ana García", "ag@x.es")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, groups.groups[0].Members)

	removed, err = u.RemoveMember(ctx, gid, "Ana García", "ag@x.es")
	require.NoError(t, err)
	assert.False(t, removed)
}

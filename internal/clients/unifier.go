// Package clients implements client unification: several spreadsheet
// identities shown under one canonical client. Groups live in their own
// tables and never rewrite warranty lines, so ungrouping is always safe.
package clients

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"log/slog"

	"github.com/apx-soporte/warranty-tracker/internal/entity"
)

// ErrTooFewIdentities rejects a unification that would not actually merge
// anything: fewer than two distinct (name, email) identities resolved.
var ErrTooFewIdentities = errors.New("need at least two distinct client identities")

// GroupStore is the slice of the record store the unifier needs.
type GroupStore interface {
	ListGroups(ctx context.Context) ([]*entity.ClientGroup, error)
	// RemoveIdentity drops the identity's membership rows across all groups.
	RemoveIdentity(ctx context.Context, name, email string) error
	// DeleteGroupByCanonical drops a whole group by its canonical identity.
	DeleteGroupByCanonical(ctx context.Context, name, email string) error
	CreateGroup(ctx context.Context, canonical entity.ClientIdentity, phone string, members []entity.ClientIdentity) (int, error)
	RemoveMember(ctx context.Context, groupID int, name, email string) (bool, error)
}

// ItemLister is the read side of the warranty store the unifier resolves
// names and RMA counts against.
type ItemLister interface {
	List(ctx context.Context, includeHidden bool) ([]*entity.RMAItem, error)
}

// Unifier groups client identities and picks the canonical one.
type Unifier struct {
	groups GroupStore
	items  ItemLister
	logger *slog.Logger
}

func NewUnifier(groups GroupStore, items ItemLister, logger *slog.Logger) *Unifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Unifier{groups: groups, items: items, logger: logger}
}

// Groups returns every unification group with its members.
func (u *Unifier) Groups(ctx context.Context) ([]*entity.ClientGroup, error) {
	return u.groups.ListGroups(ctx)
}

// Unify merges the clients selected by name into one group and returns the
// group id. Each name resolves either to an existing group (canonical plus
// members, which re-unifies the whole group) or to every distinct identity
// on warranty lines carrying that name. The canonical identity is the one
// with the most visible RMA lines; its phone is carried onto the group.
func (u *Unifier) Unify(ctx context.Context, names []string) (int, error) {
	trimmed := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			trimmed = append(trimmed, n)
		}
	}
	if len(trimmed) < 2 {
		return 0, ErrTooFewIdentities
	}

	groups, err := u.groups.ListGroups(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing groups: %w", err)
	}
	// Hidden lines still resolve identities; they just don't count toward
	// the canonical pick below.
	items, err := u.items.List(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("listing items: %w", err)
	}

	identities := map[entity.ClientIdentity]struct{}{}
	for _, name := range trimmed {
		if g := groupByCanonicalName(groups, name); g != nil {
			identities[identity(g.CanonicalName, g.CanonicalEmail)] = struct{}{}
			for _, m := range g.Members {
				identities[identity(m.Name, m.Email)] = struct{}{}
			}
			continue
		}
		for _, it := range items {
			if id, ok := itemIdentity(it); ok && id.Name == name {
				identities[id] = struct{}{}
			}
		}
	}
	if len(identities) < 2 {
		return 0, ErrTooFewIdentities
	}

	counts := map[entity.ClientIdentity]int{}
	phones := map[entity.ClientIdentity]string{}
	for _, it := range items {
		id, ok := itemIdentity(it)
		if !ok {
			continue
		}
		if !it.Hidden {
			counts[id]++
		}
		if _, seen := phones[id]; !seen && it.ClientPhone != nil {
			if p := strings.TrimSpace(*it.ClientPhone); p != "" {
				phones[id] = p
			}
		}
	}
	canonical := pickCanonical(identities, counts)

	// The merged identities leave whatever groups they were in; groups they
	// anchored as canonical dissolve into the new one.
	for id := range identities {
		if err := u.groups.RemoveIdentity(ctx, id.Name, id.Email); err != nil {
			return 0, fmt.Errorf("removing identity from old groups: %w", err)
		}
	}
	for id := range identities {
		if err := u.groups.DeleteGroupByCanonical(ctx, id.Name, id.Email); err != nil {
			return 0, fmt.Errorf("deleting superseded group: %w", err)
		}
	}

	members := make([]entity.ClientIdentity, 0, len(identities)-1)
	for id := range identities {
		if id != canonical {
			members = append(members, id)
		}
	}
	sort.Slice(members, func(i, j int) bool {
		if members[i].Name != members[j].Name {
			return members[i].Name < members[j].Name
		}
		return members[i].Email < members[j].Email
	})

	gid, err := u.groups.CreateGroup(ctx, canonical, phones[canonical], members)
	if err != nil {
		return 0, fmt.Errorf("creating group: %w", err)
	}
	u.logger.Info("clients unified", "group_id", gid, "canonical", canonical.Name, "members", len(members))
	return gid, nil
}

// RemoveMember takes one identity out of a group; it shows up as a separate
// client again. Reports whether anything was removed.
func (u *Unifier) RemoveMember(ctx context.Context, groupID int, name, email string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, fmt.Errorf("client name is required")
	}
	return u.groups.RemoveMember(ctx, groupID, name, strings.TrimSpace(email))
}

// groupByCanonicalName finds the group anchored by the given canonical
// name, or nil when no group matches.
func groupByCanonicalName(groups []*entity.ClientGroup, name string) *entity.ClientGroup {
	for _, g := range groups {
		if g.CanonicalName == name {
			return g
		}
	}
	return nil
}

func identity(name, email string) entity.ClientIdentity {
	return entity.ClientIdentity{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)}
}

func itemIdentity(it *entity.RMAItem) (entity.ClientIdentity, bool) {
	name := ""
	if it.ClientName != nil {
		name = strings.TrimSpace(*it.ClientName)
	}
	if name == "" {
		return entity.ClientIdentity{}, false
	}
	email := ""
	if it.ClientEmail != nil {
		email = strings.TrimSpace(*it.ClientEmail)
	}
	return entity.ClientIdentity{Name: name, Email: email}, true
}

// pickCanonical chooses the identity with the most visible RMA lines, with
// (name, email) order breaking ties so repeated runs agree.
func pickCanonical(identities map[entity.ClientIdentity]struct{}, counts map[entity.ClientIdentity]int) entity.ClientIdentity {
	sorted := make([]entity.ClientIdentity, 0, len(identities))
	for id := range identities {
		sorted = append(sorted, id)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].Email < sorted[j].Email
	})

	best := sorted[0]
	for _, id := range sorted[1:] {
		if counts[id] > counts[best] {
			best = id
		}
	}
	return best
}

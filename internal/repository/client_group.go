package repository

import (
	"context"
	"strings"

	"log/slog"

	"github.com/apx-soporte/warranty-tracker/gen/ent"
	"github.com/apx-soporte/warranty-tracker/gen/ent/clientgroup"
	"github.com/apx-soporte/warranty-tracker/gen/ent/clientgroupmember"
	"github.com/apx-soporte/warranty-tracker/internal/common"
	"github.com/apx-soporte/warranty-tracker/internal/entity"
)

// ClientGroupRepository is the record store for client unification groups.
// Identities are stored trimmed, so lookups use plain equality.
type ClientGroupRepository interface {
	ListGroups(ctx context.Context) ([]*entity.ClientGroup, error)
	RemoveIdentity(ctx context.Context, name, email string) error
	DeleteGroupByCanonical(ctx context.Context, name, email string) error
	CreateGroup(ctx context.Context, canonical entity.ClientIdentity, phone string, members []entity.ClientIdentity) (int, error)
	RemoveMember(ctx context.Context, groupID int, name, email string) (bool, error)
}

type clientGroupRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewClientGroupRepository(client *ent.Client, logger *slog.Logger) ClientGroupRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &clientGroupRepo{client: client, logger: logger}
}

func (r *clientGroupRepo) ListGroups(ctx context.Context) ([]*entity.ClientGroup, error) {
	groups, err := r.client.ClientGroup.Query().
		Order(clientgroup.ByID()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list client groups", "error", err)
		return nil, common.WrapError(err, "list client groups")
	}
	members, err := r.client.ClientGroupMember.Query().All(ctx)
	if err != nil {
		r.logger.Error("failed to list group members", "error", err)
		return nil, common.WrapError(err, "list group members")
	}

	byGroup := map[int][]entity.ClientIdentity{}
	for _, m := range members {
		byGroup[m.GroupID] = append(byGroup[m.GroupID], entity.ClientIdentity{
			Name:  m.ClientName,
			Email: m.ClientEmail,
		})
	}

	out := make([]*entity.ClientGroup, len(groups))
	for i, g := range groups {
		out[i] = &entity.ClientGroup{
			ID:             g.ID,
			CanonicalName:  g.CanonicalName,
			CanonicalEmail: g.CanonicalEmail,
			CanonicalPhone: g.CanonicalPhone,
			Members:        byGroup[g.ID],
		}
	}
	return out, nil
}

func (r *clientGroupRepo) RemoveIdentity(ctx context.Context, name, email string) error {
	_, err := r.client.ClientGroupMember.Delete().
		Where(
			clientgroupmember.ClientName(strings.TrimSpace(name)),
			clientgroupmember.ClientEmail(strings.TrimSpace(email)),
		).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to remove identity from groups", "name", name, "error", err)
		return common.WrapError(err, "remove identity")
	}
	return nil
}

func (r *clientGroupRepo) DeleteGroupByCanonical(ctx context.Context, name, email string) error {
	ids, err := r.client.ClientGroup.Query().
		Where(
			clientgroup.CanonicalName(strings.TrimSpace(name)),
			clientgroup.CanonicalEmail(strings.TrimSpace(email)),
		).
		IDs(ctx)
	if err != nil {
		r.logger.Error("failed to look up group by canonical", "name", name, "error", err)
		return common.WrapError(err, "look up group")
	}
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.client.ClientGroupMember.Delete().
		Where(clientgroupmember.GroupIDIn(ids...)).
		Exec(ctx); err != nil {
		r.logger.Error("failed to delete group members", "error", err)
		return common.WrapError(err, "delete group members")
	}
	if _, err := r.client.ClientGroup.Delete().
		Where(clientgroup.IDIn(ids...)).
		Exec(ctx); err != nil {
		r.logger.Error("failed to delete group", "error", err)
		return common.WrapError(err, "delete group")
	}
	return nil
}

func (r *clientGroupRepo) CreateGroup(ctx context.Context, canonical entity.ClientIdentity, phone string, members []entity.ClientIdentity) (int, error) {
	g, err := r.client.ClientGroup.Create().
		SetCanonicalName(canonical.Name).
		SetCanonicalEmail(canonical.Email).
		SetCanonicalPhone(strings.TrimSpace(phone)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create client group", "canonical", canonical.Name, "error", err)
		return 0, common.WrapError(err, "create client group")
	}
	for _, m := range members {
		if _, err := r.client.ClientGroupMember.Create().
			SetGroupID(g.ID).
			SetClientName(m.Name).
			SetClientEmail(m.Email).
			Save(ctx); err != nil {
			r.logger.Error("failed to add group member", "group_id", g.ID, "name", m.Name, "error", err)
			return 0, common.WrapError(err, "add group member")
		}
	}
	r.logger.Info("client group created", "group_id", g.ID, "canonical", canonical.Name, "members", len(members))
	return g.ID, nil
}

func (r *clientGroupRepo) RemoveMember(ctx context.Context, groupID int, name, email string) (bool, error) {
	n, err := r.client.ClientGroupMember.Delete().
		Where(
			clientgroupmember.GroupID(groupID),
			clientgroupmember.ClientName(strings.TrimSpace(name)),
			clientgroupmember.ClientEmail(strings.TrimSpace(email)),
		).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to remove group member", "group_id", groupID, "name", name, "error", err)
		return false, common.WrapError(err, "remove group member")
	}
	return n > 0, nil
}

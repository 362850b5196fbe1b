package server

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	warrantypb "github.com/apx-soporte/warranty-tracker/gen/proto/warranty/v1"
	"github.com/apx-soporte/warranty-tracker/internal/clients"
	"github.com/apx-soporte/warranty-tracker/internal/entity"
)

func (s *WarrantyService) ListClientGroups(ctx context.Context, _ *warrantypb.ListClientGroupsRequest) (*warrantypb.ListClientGroupsResponse, error) {
	groups, err := s.unifier.Groups(ctx)
	if err != nil {
		s.logger.Error("failed to list client groups", "error", err)
		return nil, status.Errorf(codes.Internal, "list client groups: %v", err)
	}

	out := make([]*warrantypb.ClientGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, toPBGroup(g))
	}
	return &warrantypb.ListClientGroupsResponse{Groups: out}, nil
}

func (s *WarrantyService) UnifyClients(ctx context.Context, req *warrantypb.UnifyClientsRequest) (*warrantypb.UnifyClientsResponse, error) {
	names := make([]string, 0, len(req.GetNames()))
	for _, n := range req.GetNames() {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) < 2 {
		return nil, status.Error(codes.InvalidArgument, "select at least two clients")
	}

	gid, err := s.unifier.Unify(ctx, names)
	if errors.Is(err, clients.ErrTooFewIdentities) {
		return nil, status.Errorf(codes.InvalidArgument, "unify clients: %v", err)
	}
	if err != nil {
		s.logger.Error("failed to unify clients", "names", names, "error", err)
		return nil, status.Errorf(codes.Internal, "unify clients: %v", err)
	}
	return &warrantypb.UnifyClientsResponse{GroupId: int32(gid)}, nil
}

func (s *WarrantyService) RemoveGroupMember(ctx context.Context, req *warrantypb.RemoveGroupMemberRequest) (*warrantypb.RemoveGroupMemberResponse, error) {
	if req.GetGroupId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "group_id is required")
	}
	name := strings.TrimSpace(req.GetClientName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "client_name is required")
	}

	removed, err := s.unifier.RemoveMember(ctx, int(req.GetGroupId()), name, strings.TrimSpace(req.GetClientEmail()))
	if err != nil {
		s.logger.Error("failed to remove group member", "group_id", req.GetGroupId(), "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "remove group member: %v", err)
	}
	if !removed {
		return nil, status.Error(codes.NotFound, "member not found in group")
	}
	s.logger.Info("group member removed", "group_id", req.GetGroupId(), "name", name)
	return &warrantypb.RemoveGroupMemberResponse{Removed: true}, nil
}

func toPBGroup(g *entity.ClientGroup) *warrantypb.ClientGroup {
	members := make([]*warrantypb.ClientIdentity, 0, len(g.Members))
	for _, m := range g.Members {
		members = append(members, &warrantypb.ClientIdentity{
			ClientName:  m.Name,
			ClientEmail: m.Email,
		})
	}
	return &warrantypb.ClientGroup{
		Id:             int32(g.ID),
		CanonicalName:  g.CanonicalName,
		CanonicalEmail: g.CanonicalEmail,
		CanonicalPhone: g.CanonicalPhone,
		Members:        members,
	}
}

package server

import (
	"context"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/apx-soporte/warranty-tracker/constants"
	warrantypb "github.com/apx-soporte/warranty-tracker/gen/proto/warranty/v1"
	"github.com/apx-soporte/warranty-tracker/internal/entity"
)

func (s *WarrantyService) ListWarranties(ctx context.Context, req *warrantypb.ListWarrantiesRequest) (*warrantypb.ListWarrantiesResponse, error) {
	items, err := s.itemRepo.List(ctx, req.GetIncludeHidden())
	if err != nil {
		s.logger.Error("failed to list warranties", "error", err)
		return nil, status.Errorf(codes.Internal, "list warranties: %v", err)
	}

	out := make([]*warrantypb.RmaItem, 0, len(items))
	for _, it := range items {
		out = append(out, toPBItem(it))
	}
	return &warrantypb.ListWarrantiesResponse{Items: out}, nil
}

func (s *WarrantyService) UpdateEstado(ctx context.Context, req *warrantypb.UpdateEstadoRequest) (*warrantypb.UpdateCountResponse, error) {
	numbers := make([]string, 0, len(req.GetRmaNumbers()))
	for _, n := range req.GetRmaNumbers() {
		if n = strings.TrimSpace(n); n != "" {
			numbers = append(numbers, n)
		}
	}
	if len(numbers) == 0 {
		return nil, status.Error(codes.InvalidArgument, "rma_numbers are required")
	}
	state, ok := constants.ParseWorkflowState(req.GetEstado())
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown estado %q", req.GetEstado())
	}

	updated, err := s.itemRepo.UpdateEstado(ctx, numbers, state)
	if err != nil {
		s.logger.Error("failed to update estado", "rma_numbers", numbers, "error", err)
		return nil, status.Errorf(codes.Internal, "update estado: %v", err)
	}
	s.logger.Info("estado updated", "estado", state, "updated", updated)
	return &warrantypb.UpdateCountResponse{Updated: int32(updated)}, nil
}

func (s *WarrantyService) UpdatePickupDate(ctx context.Context, req *warrantypb.UpdatePickupDateRequest) (*warrantypb.UpdateCountResponse, error) {
	rmaNumber := strings.TrimSpace(req.GetRmaNumber())
	if rmaNumber == "" {
		return nil, status.Error(codes.InvalidArgument, "rma_number is required")
	}
	date := strings.TrimSpace(req.GetDate())
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "date invalid (YYYY-MM-DD): %v", err)
		}
	}

	updated, err := s.itemRepo.UpdatePickupDate(ctx, rmaNumber, date)
	if err != nil {
		s.logger.Error("failed to update pickup date", "rma_number", rmaNumber, "error", err)
		return nil, status.Errorf(codes.Internal, "update pickup date: %v", err)
	}
	return &warrantypb.UpdateCountResponse{Updated: int32(updated)}, nil
}

func (s *WarrantyService) SetHidden(ctx context.Context, req *warrantypb.SetHiddenRequest) (*warrantypb.UpdateCountResponse, error) {
	rmaNumber := strings.TrimSpace(req.GetRmaNumber())
	if rmaNumber == "" {
		return nil, status.Error(codes.InvalidArgument, "rma_number is required")
	}

	updated, err := s.itemRepo.SetHidden(ctx, rmaNumber, req.GetHidden(), strings.TrimSpace(req.GetHiddenBy()))
	if err != nil {
		s.logger.Error("failed to set hidden flag", "rma_number", rmaNumber, "hidden", req.GetHidden(), "error", err)
		return nil, status.Errorf(codes.Internal, "set hidden: %v", err)
	}
	s.logger.Info("hidden flag updated", "rma_number", rmaNumber, "hidden", req.GetHidden(), "updated", updated)
	return &warrantypb.UpdateCountResponse{Updated: int32(updated)}, nil
}

func toPBItem(it *entity.RMAItem) *warrantypb.RmaItem {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return &warrantypb.RmaItem{
		Id:            it.ID.String(),
		RmaNumber:     it.RMANumber,
		Product:       deref(it.Product),
		Serial:        deref(it.Serial),
		ClientName:    deref(it.ClientName),
		ClientEmail:   deref(it.ClientEmail),
		ClientPhone:   deref(it.ClientPhone),
		DateReceived:  deref(it.DateReceived),
		DatePickup:    deref(it.DatePickup),
		DateSent:      deref(it.DateSent),
		Averia:        deref(it.Averia),
		Observaciones: deref(it.Observations),
		Estado:        string(it.State),
		Hidden:        it.Hidden,
		HiddenBy:      deref(it.HiddenBy),
		ExcelRow:      int32(it.SheetRow),
		CreatedAt:     it.CreatedAt.UTC().Format(time.RFC3339),
	}
}

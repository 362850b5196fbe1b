package server

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	warrantypb "github.com/apx-soporte/warranty-tracker/gen/proto/warranty/v1"
	"github.com/apx-soporte/warranty-tracker/internal/products"
)

func (s *WarrantyService) ListSerialSummaries(ctx context.Context, _ *warrantypb.ListSerialSummariesRequest) (*warrantypb.ListSerialSummariesResponse, error) {
	summaries, err := s.view.List(ctx)
	if err != nil {
		s.logger.Error("failed to build serial summaries", "error", err)
		return nil, status.Errorf(codes.Internal, "serial summaries: %v", err)
	}

	out := make([]*warrantypb.SerialSummary, 0, len(summaries))
	for i := range summaries {
		out = append(out, toPBSummary(&summaries[i]))
	}
	return &warrantypb.ListSerialSummariesResponse{Summaries: out}, nil
}

func (s *WarrantyService) SetSerialWarranty(ctx context.Context, req *warrantypb.SetSerialWarrantyRequest) (*warrantypb.SetSerialWarrantyResponse, error) {
	serial := strings.TrimSpace(req.GetSerial())
	if serial == "" {
		return nil, status.Error(codes.InvalidArgument, "serial is required")
	}

	if err := s.view.SetWarranty(ctx, serial, req.GetValid()); err != nil {
		s.logger.Error("failed to set warranty flag", "serial", serial, "error", err)
		return nil, status.Errorf(codes.Internal, "set warranty: %v", err)
	}
	return &warrantypb.SetSerialWarrantyResponse{}, nil
}

func toPBSummary(sum *products.Summary) *warrantypb.SerialSummary {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	items := make([]*warrantypb.RmaItem, 0, len(sum.Items))
	for _, it := range sum.Items {
		items = append(items, toPBItem(it))
	}
	return &warrantypb.SerialSummary{
		Serial:        sum.Serial,
		ProductName:   deref(sum.ProductName),
		Count:         int32(sum.Count),
		FirstDate:     deref(sum.FirstDate),
		LastDate:      deref(sum.LastDate),
		ClientsSample: sum.ClientsSample,
		WarrantyValid: sum.WarrantyValid,
		Items:         items,
	}
}

package server

import (
	"context"
	"encoding/json"
	"strings"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	warrantypb "github.com/apx-soporte/warranty-tracker/gen/proto/warranty/v1"
	"github.com/apx-soporte/warranty-tracker/internal/clients"
	"github.com/apx-soporte/warranty-tracker/internal/jobs"
	"github.com/apx-soporte/warranty-tracker/internal/products"
	"github.com/apx-soporte/warranty-tracker/internal/reconcile"
	"github.com/apx-soporte/warranty-tracker/internal/repository"
)

type WarrantyService struct {
	warrantypb.UnimplementedWarrantyServiceServer
	jobs     *jobs.Service
	itemRepo repository.RMAItemRepository
	settings repository.SettingsRepository
	unifier  *clients.Unifier
	view     *products.View
	logger   *slog.Logger
}

func NewWarrantyService(
	js *jobs.Service,
	itemRepo repository.RMAItemRepository,
	settings repository.SettingsRepository,
	unifier *clients.Unifier,
	view *products.View,
	logger *slog.Logger,
) *WarrantyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &WarrantyService{
		jobs:     js,
		itemRepo: itemRepo,
		settings: settings,
		unifier:  unifier,
		view:     view,
		logger:   logger,
	}
}

// SyncWarranties implements warrantypb.WarrantyServiceServer
func (s *WarrantyService) SyncWarranties(ctx context.Context, req *warrantypb.SyncWarrantiesRequest) (*warrantypb.SubmitJobResponse, error) {
	src := reconcile.Source{
		Path: strings.TrimSpace(req.GetSourcePath()),
		Data: req.GetUpload(),
	}
	mode := reconcile.ModeIncremental
	if req.GetFullReset() {
		mode = reconcile.ModeReset
	}

	s.logger.Info("starting warranty sync", "path", src.Path, "upload_bytes", len(src.Data), "mode", mode)
	id, err := s.jobs.SubmitSync(ctx, src, mode)
	if err != nil {
		s.logger.Error("sync submission rejected", "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "sync: %v", err)
	}
	return &warrantypb.SubmitJobResponse{JobId: id}, nil
}

func (s *WarrantyService) ImportSpecialRmas(ctx context.Context, req *warrantypb.ImportSpecialRmasRequest) (*warrantypb.SubmitJobResponse, error) {
	src := reconcile.Source{
		Path: strings.TrimSpace(req.GetSourcePath()),
		Data: req.GetUpload(),
	}
	var manual reconcile.ManualMap
	if m := req.GetManualMap(); len(m) > 0 {
		manual = make(reconcile.ManualMap, len(m))
		for field, header := range m {
			manual[field] = header
		}
	}

	s.logger.Info("starting special-rma import", "path", src.Path, "upload_bytes", len(src.Data), "manual_fields", len(manual))
	id, err := s.jobs.SubmitSpecialImport(ctx, src, manual)
	if err != nil {
		s.logger.Error("special import submission rejected", "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "special import: %v", err)
	}
	return &warrantypb.SubmitJobResponse{JobId: id}, nil
}

func (s *WarrantyService) ScanCatalog(ctx context.Context, req *warrantypb.ScanCatalogRequest) (*warrantypb.SubmitJobResponse, error) {
	root := strings.TrimSpace(req.GetRootPath())

	s.logger.Info("starting catalog scan", "root", root)
	id, err := s.jobs.SubmitCatalogScan(ctx, root)
	if err != nil {
		s.logger.Error("catalog scan submission rejected", "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "catalog scan: %v", err)
	}
	return &warrantypb.SubmitJobResponse{JobId: id}, nil
}

func (s *WarrantyService) PollJob(_ context.Context, req *warrantypb.PollJobRequest) (*warrantypb.PollJobResponse, error) {
	id := strings.TrimSpace(req.GetJobId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "job_id is required")
	}

	snap := s.jobs.Poll(id)
	resp := &warrantypb.PollJobResponse{
		Status:  string(snap.Status),
		Percent: int32(snap.Percent),
		Message: snap.Message,
	}
	if snap.Result != nil {
		b, err := json.Marshal(snap.Result)
		if err != nil {
			s.logger.Error("encoding job result", "job_id", id, "error", err)
			return nil, status.Errorf(codes.Internal, "encode result: %v", err)
		}
		resp.ResultJson = string(b)
	}
	return resp, nil
}

func (s *WarrantyService) ResolveColumns(ctx context.Context, req *warrantypb.ResolveColumnsRequest) (*warrantypb.ResolveColumnsResponse, error) {
	if len(req.GetHeaders()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "headers are required")
	}

	resolved, err := s.jobs.ResolveColumns(ctx, req.GetHeaders(), req.GetAliasSet())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "resolve columns: %v", err)
	}

	out := make(map[string]int32, len(resolved))
	for field, col := range resolved {
		out[field] = int32(col)
	}
	return &warrantypb.ResolveColumnsResponse{Fields: out}, nil
}

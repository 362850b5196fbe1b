package server

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	warrantypb "github.com/apx-soporte/warranty-tracker/gen/proto/warranty/v1"
	"github.com/apx-soporte/warranty-tracker/internal/jobs"
	"github.com/apx-soporte/warranty-tracker/internal/reconcile"
)

func (s *WarrantyService) GetSettings(ctx context.Context, _ *warrantypb.GetSettingsRequest) (*warrantypb.SettingsResponse, error) {
	return s.settingsResponse(ctx)
}

func (s *WarrantyService) UpdateSettings(ctx context.Context, req *warrantypb.UpdateSettingsRequest) (*warrantypb.SettingsResponse, error) {
	syncPath := strings.TrimSpace(req.GetExcelSyncPath())
	catalogRoot := strings.TrimSpace(req.GetProductosCatalogPath())
	if syncPath == "" && catalogRoot == "" {
		return nil, status.Error(codes.InvalidArgument, "nothing to update")
	}

	if syncPath != "" {
		if err := s.settings.Set(ctx, jobs.SettingSheetPath, syncPath); err != nil {
			s.logger.Error("failed to update sync path", "error", err)
			return nil, status.Errorf(codes.Internal, "update settings: %v", err)
		}
	}
	if catalogRoot != "" {
		if err := s.settings.Set(ctx, jobs.SettingCatalogRoot, catalogRoot); err != nil {
			s.logger.Error("failed to update catalog root", "error", err)
			return nil, status.Errorf(codes.Internal, "update settings: %v", err)
		}
	}
	s.logger.Info("settings updated", "excel_sync_path", syncPath, "productos_catalog_path", catalogRoot)
	return s.settingsResponse(ctx)
}

func (s *WarrantyService) settingsResponse(ctx context.Context) (*warrantypb.SettingsResponse, error) {
	get := func(key string) (string, error) {
		v, err := s.settings.Get(ctx, key)
		if err != nil {
			s.logger.Error("failed to read setting", "key", key, "error", err)
			return "", status.Errorf(codes.Internal, "read settings: %v", err)
		}
		return v, nil
	}

	resp := &warrantypb.SettingsResponse{}
	var err error
	if resp.ExcelSyncPath, err = get(jobs.SettingSheetPath); err != nil {
		return nil, err
	}
	if resp.ProductosCatalogPath, err = get(jobs.SettingCatalogRoot); err != nil {
		return nil, err
	}
	if resp.LastSyncStatus, err = get(reconcile.SettingLastSyncStatus); err != nil {
		return nil, err
	}
	if resp.LastScanStatus, err = get(jobs.SettingLastScanStatus); err != nil {
		return nil, err
	}
	return resp, nil
}

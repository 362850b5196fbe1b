package repository

import (
	"context"
	"strings"

	"log/slog"

	"github.com/apx-soporte/warranty-tracker/gen/ent"
	"github.com/apx-soporte/warranty-tracker/gen/ent/serialwarranty"
	"github.com/apx-soporte/warranty-tracker/internal/common"
)

// SerialWarrantyRepository persists the per-serial warranty flag.
type SerialWarrantyRepository interface {
	All(ctx context.Context) (map[string]bool, error)
	Set(ctx context.Context, serial string, valid bool) error
}

type serialWarrantyRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSerialWarrantyRepository(client *ent.Client, logger *slog.Logger) SerialWarrantyRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &serialWarrantyRepo{client: client, logger: logger}
}

func (r *serialWarrantyRepo) All(ctx context.Context) (map[string]bool, error) {
	rows, err := r.client.SerialWarranty.Query().All(ctx)
	if err != nil {
		r.logger.Error("failed to list warranty flags", "error", err)
		return nil, common.WrapError(err, "list warranty flags")
	}
	out := make(map[string]bool, len(rows))
	for _, row := range rows {
		out[row.Serial] = row.WarrantyValid
	}
	return out, nil
}

func (r *serialWarrantyRepo) Set(ctx context.Context, serial string, valid bool) error {
	serial = strings.TrimSpace(serial)
	row, err := r.client.SerialWarranty.Query().
		Where(serialwarranty.Serial(serial)).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.SerialWarranty.Create().SetSerial(serial).SetWarrantyValid(valid).Save(ctx)
	case err == nil:
		_, err = r.client.SerialWarranty.UpdateOne(row).SetWarrantyValid(valid).Save(ctx)
	}
	if err != nil {
		r.logger.Error("failed to set warranty flag", "serial", serial, "error", err)
		return common.WrapError(err, "set warranty flag")
	}
	return nil
}

package repository

import (
	"context"
	"strings"

	"log/slog"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/apx-soporte/warranty-tracker/gen/ent"
	"github.com/apx-soporte/warranty-tracker/gen/ent/specialrmaitem"
	"github.com/apx-soporte/warranty-tracker/internal/common"
	"github.com/apx-soporte/warranty-tracker/internal/entity"
)

// SpecialRMARepository is the record store for the serial-keyed special
// RMA lines.
type SpecialRMARepository interface {
	ExistsSpecial(ctx context.Context, serial string) (bool, error)
	InsertSpecial(ctx context.Context, item *entity.SpecialRMAItem) error
	ListSpecial(ctx context.Context) ([]*entity.SpecialRMAItem, error)
}

type specialRMARepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSpecialRMARepository(client *ent.Client, logger *slog.Logger) SpecialRMARepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &specialRMARepo{client: client, logger: logger}
}

func (r *specialRMARepo) ExistsSpecial(ctx context.Context, serial string) (bool, error) {
	return r.client.SpecialRMAItem.Query().
		Where(specialrmaitem.Serial(strings.TrimSpace(serial))).
		Exist(ctx)
}

func (r *specialRMARepo) InsertSpecial(ctx context.Context, item *entity.SpecialRMAItem) error {
	_, err := r.client.SpecialRMAItem.Create().
		SetSerial(strings.TrimSpace(item.Serial)).
		SetFallo(item.Fallo).
		SetResolucion(item.Resolucion).
		SetExcelRow(item.SheetRow).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert special rma", "serial", item.Serial, "error", err)
		return common.WrapError(err, "insert special rma")
	}
	return nil
}

func (r *specialRMARepo) ListSpecial(ctx context.Context) ([]*entity.SpecialRMAItem, error) {
	rows, err := r.client.SpecialRMAItem.Query().
		Order(specialrmaitem.ByExcelRow(entsql.OrderDesc())).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list special rmas", "error", err)
		return nil, common.WrapError(err, "list special rmas")
	}
	out := make([]*entity.SpecialRMAItem, len(rows))
	for i, row := range rows {
		out[i] = &entity.SpecialRMAItem{
			ID:         row.ID,
			Serial:     row.Serial,
			Fallo:      row.Fallo,
			Resolucion: row.Resolucion,
			SheetRow:   row.ExcelRow,
			CreatedAt:  row.CreatedAt,
		}
	}
	return out, nil
}

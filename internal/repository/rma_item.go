package repository

import (
	"context"
	"strings"
	"time"

	"log/slog"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/apx-soporte/warranty-tracker/constants"
	"github.com/apx-soporte/warranty-tracker/gen/ent"
	"github.com/apx-soporte/warranty-tracker/gen/ent/rmaitem"
	"github.com/apx-soporte/warranty-tracker/internal/common"
	"github.com/apx-soporte/warranty-tracker/internal/entity"
)

// RMAItemRepository is the record store for warranty lines. The Exists /
// Insert / DeleteAll slice is what the reconciler consumes; the update
// operations back the operator-facing endpoints.
type RMAItemRepository interface {
	Exists(ctx context.Context, rmaNumber, serial string) (bool, error)
	Insert(ctx context.Context, item *entity.RMAItem) error
	DeleteAll(ctx context.Context) error
	List(ctx context.Context, includeHidden bool) ([]*entity.RMAItem, error)
	UpdateEstado(ctx context.Context, rmaNumbers []string, estado constants.WorkflowState) (int, error)
	UpdatePickupDate(ctx context.Context, rmaNumber, date string) (int, error)
	SetHidden(ctx context.Context, rmaNumber string, hidden bool, hiddenBy string) (int, error)
}

type rmaItemRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRMAItemRepository(client *ent.Client, logger *slog.Logger) RMAItemRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &rmaItemRepo{client: client, logger: logger}
}

func (r *rmaItemRepo) Exists(ctx context.Context, rmaNumber, serial string) (bool, error) {
	return r.client.RMAItem.Query().
		Where(
			rmaitem.RmaNumber(strings.TrimSpace(rmaNumber)),
			rmaitem.Serial(strings.TrimSpace(serial)),
		).
		Exist(ctx)
}

func (r *rmaItemRepo) Insert(ctx context.Context, item *entity.RMAItem) error {
	serial := ""
	if item.Serial != nil {
		serial = strings.TrimSpace(*item.Serial)
	}
	_, err := r.client.RMAItem.Create().
		SetRmaNumber(strings.TrimSpace(item.RMANumber)).
		SetSerial(serial).
		SetNillableProduct(item.Product).
		SetNillableClientName(item.ClientName).
		SetNillableClientEmail(item.ClientEmail).
		SetNillableClientPhone(item.ClientPhone).
		SetNillableDateReceived(item.DateReceived).
		SetNillableDatePickup(item.DatePickup).
		SetNillableDateSent(item.DateSent).
		SetNillableAveria(item.Averia).
		SetNillableObservaciones(item.Observations).
		SetExcelRow(item.SheetRow).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert rma item", "rma_number", item.RMANumber, "error", err)
		return common.WrapError(err, "insert rma item")
	}
	return nil
}

func (r *rmaItemRepo) DeleteAll(ctx context.Context) error {
	n, err := r.client.RMAItem.Delete().Exec(ctx)
	if err != nil {
		r.logger.Error("failed to clear rma items", "error", err)
		return common.WrapError(err, "clear rma items")
	}
	r.logger.Info("cleared rma items", "deleted", n)
	return nil
}

func (r *rmaItemRepo) List(ctx context.Context, includeHidden bool) ([]*entity.RMAItem, error) {
	q := r.client.RMAItem.Query()
	if !includeHidden {
		q = q.Where(rmaitem.Hidden(false))
	}
	// Highest sheet row first: the sheet only ever grows downward, so this
	// is newest-first.
	rows, err := q.Order(rmaitem.ByExcelRow(entsql.OrderDesc())).All(ctx)
	if err != nil {
		r.logger.Error("failed to list rma items", "error", err)
		return nil, common.WrapError(err, "list rma items")
	}
	out := make([]*entity.RMAItem, len(rows))
	for i, row := range rows {
		out[i] = toRMAItem(row)
	}
	return out, nil
}

func (r *rmaItemRepo) UpdateEstado(ctx context.Context, rmaNumbers []string, estado constants.WorkflowState) (int, error) {
	trimmed := make([]string, 0, len(rmaNumbers))
	for _, n := range rmaNumbers {
		if n = strings.TrimSpace(n); n != "" {
			trimmed = append(trimmed, n)
		}
	}
	if len(trimmed) == 0 {
		return 0, nil
	}
	n, err := r.client.RMAItem.Update().
		Where(rmaitem.RmaNumberIn(trimmed...)).
		SetEstado(string(estado)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to update estado", "rma_numbers", trimmed, "error", err)
		return 0, common.WrapError(err, "update estado")
	}
	return n, nil
}

func (r *rmaItemRepo) UpdatePickupDate(ctx context.Context, rmaNumber, date string) (int, error) {
	upd := r.client.RMAItem.Update().
		Where(rmaitem.RmaNumber(strings.TrimSpace(rmaNumber)))
	if strings.TrimSpace(date) == "" {
		upd = upd.ClearDatePickup()
	} else {
		upd = upd.SetDatePickup(strings.TrimSpace(date))
	}
	n, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update pickup date", "rma_number", rmaNumber, "error", err)
		return 0, common.WrapError(err, "update pickup date")
	}
	return n, nil
}

func (r *rmaItemRepo) SetHidden(ctx context.Context, rmaNumber string, hidden bool, hiddenBy string) (int, error) {
	upd := r.client.RMAItem.Update().
		Where(rmaitem.RmaNumber(strings.TrimSpace(rmaNumber))).
		SetHidden(hidden)
	if hidden {
		upd = upd.SetHiddenBy(hiddenBy).SetHiddenAt(time.Now())
	} else {
		upd = upd.ClearHiddenBy().ClearHiddenAt()
	}
	n, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to set hidden", "rma_number", rmaNumber, "hidden", hidden, "error", err)
		return 0, common.WrapError(err, "set hidden")
	}
	return n, nil
}

func toRMAItem(row *ent.RMAItem) *entity.RMAItem {
	item := &entity.RMAItem{
		ID:           row.ID,
		RMANumber:    row.RmaNumber,
		Product:      row.Product,
		ClientName:   row.ClientName,
		ClientEmail:  row.ClientEmail,
		ClientPhone:  row.ClientPhone,
		DateReceived: row.DateReceived,
		DatePickup:   row.DatePickup,
		DateSent:     row.DateSent,
		Averia:       row.Averia,
		Observations: row.Observaciones,
		State:        constants.WorkflowState(row.Estado),
		Hidden:       row.Hidden,
		HiddenBy:     row.HiddenBy,
		HiddenAt:     row.HiddenAt,
		SheetRow:     row.ExcelRow,
		CreatedAt:    row.CreatedAt,
	}
	if row.Serial != "" {
		s := row.Serial
		item.Serial = &s
	}
	return item
}

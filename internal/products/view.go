// Package products aggregates warranty lines per serial number and tracks
// whether the warranty for that serial is still in force. The view is
// computed fresh from the visible lines on every call; only the warranty
// flag itself is durable.
package products

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"log/slog"

	"github.com/apx-soporte/warranty-tracker/internal/entity"
)

// warrantyTermDays is how long after the first reception a warranty stays
// in force before the view expires it on its own.
const warrantyTermDays = 3 * 365

const sampleClients = 5

// WarrantyStore persists the per-serial warranty flag. Serials absent from
// the store are in force.
type WarrantyStore interface {
	All(ctx context.Context) (map[string]bool, error)
	Set(ctx context.Context, serial string, valid bool) error
}

// ItemLister is the read side of the warranty-line store.
type ItemLister interface {
	List(ctx context.Context, includeHidden bool) ([]*entity.RMAItem, error)
}

// Summary is one serial's aggregate: how many times it came back, when,
// for whom, and whether its warranty still stands.
type Summary struct {
	Serial        string            `json:"serial"`
	ProductName   *string           `json:"product_name,omitempty"`
	Count         int               `json:"count"`
	FirstDate     *string           `json:"first_date,omitempty"`
	LastDate      *string           `json:"last_date,omitempty"`
	ClientsSample []string          `json:"clients_sample"`
	WarrantyValid bool              `json:"garantia_vigente"`
	Items         []*entity.RMAItem `json:"items"`
}

// View builds per-serial summaries.
type View struct {
	items    ItemLister
	warranty WarrantyStore
	logger   *slog.Logger
}

func NewView(items ItemLister, warranty WarrantyStore, logger *slog.Logger) *View {
	if logger == nil {
		logger = slog.Default()
	}
	return &View{items: items, warranty: warranty, logger: logger}
}

// List returns one summary per serial over the visible warranty lines,
// ordered by serial. A warranty whose first reception is older than the
// term is expired in place: the flag flips to false and is persisted so it
// stays off even if the lines later disappear.
func (v *View) List(ctx context.Context) ([]Summary, error) {
	items, err := v.items.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	warrantyMap, err := v.warranty.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading warranty flags: %w", err)
	}

	bySerial := map[string][]*entity.RMAItem{}
	for _, it := range items {
		serial := ""
		if it.Serial != nil {
			serial = strings.TrimSpace(*it.Serial)
		}
		if serial == "" {
			continue
		}
		bySerial[serial] = append(bySerial[serial], it)
	}

	out := make([]Summary, 0, len(bySerial))
	for serial, group := range bySerial {
		sort.SliceStable(group, func(i, j int) bool {
			di, dj := derefDate(group[i].DateReceived), derefDate(group[j].DateReceived)
			if di != dj {
				return di < dj
			}
			return group[i].SheetRow < group[j].SheetRow
		})

		s := Summary{
			Serial:        serial,
			Count:         len(group),
			ClientsSample: []string{},
			WarrantyValid: true,
			Items:         group,
		}
		seen := map[string]struct{}{}
		for _, it := range group {
			if it.Product != nil {
				if s.ProductName == nil || *it.Product > *s.ProductName {
					s.ProductName = it.Product
				}
			}
			if it.DateReceived != nil {
				if s.FirstDate == nil || *it.DateReceived < *s.FirstDate {
					s.FirstDate = it.DateReceived
				}
				if s.LastDate == nil || *it.DateReceived > *s.LastDate {
					s.LastDate = it.DateReceived
				}
			}
			if it.ClientName != nil {
				name := strings.TrimSpace(*it.ClientName)
				if _, dup := seen[name]; name != "" && !dup && len(s.ClientsSample) < sampleClients {
					seen[name] = struct{}{}
					s.ClientsSample = append(s.ClientsSample, name)
				}
			}
		}

		if valid, ok := warrantyMap[serial]; ok {
			s.WarrantyValid = valid
		}
		if s.WarrantyValid && v.expired(s.FirstDate) {
			s.WarrantyValid = false
			if err := v.warranty.Set(ctx, serial, false); err != nil {
				v.logger.Error("persisting expired warranty", "serial", serial, "error", err)
			}
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Serial < out[j].Serial })
	return out, nil
}

// SetWarranty sets the per-serial flag by hand, overriding the automatic
// expiry either way.
func (v *View) SetWarranty(ctx context.Context, serial string, valid bool) error {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return fmt.Errorf("serial is required")
	}
	if err := v.warranty.Set(ctx, serial, valid); err != nil {
		return err
	}
	v.logger.Info("warranty flag updated", "serial", serial, "valid", valid)
	return nil
}

func (v *View) expired(firstDate *string) bool {
	if firstDate == nil {
		return false
	}
	s := strings.TrimSpace(*firstDate)
	if len(s) > 10 {
		s = s[:10]
	}
	first, err := time.Parse("2006-01-02", s)
	if err != nil {
		return false
	}
	return int(time.Since(first).Hours()/24) > warrantyTermDays
}

func derefDate(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

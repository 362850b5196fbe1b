package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/apx-soporte/warranty-tracker/constants"
)

// RMAItem represents one warranty line for data transfer between layers.
// Date fields are YYYY-MM-DD strings; the source sheet is the authority on
// their exact shape and the reconciler only ever truncates, never reformats.
type RMAItem struct {
	ID           uuid.UUID               `json:"id"`
	RMANumber    string                  `json:"rma_number"`
	Product      *string                 `json:"product,omitempty"`
	Serial       *string                 `json:"serial,omitempty"`
	ClientName   *string                 `json:"client_name,omitempty"`
	ClientEmail  *string                 `json:"client_email,omitempty"`
	ClientPhone  *string                 `json:"client_phone,omitempty"`
	DateReceived *string                 `json:"date_received,omitempty"`
	DatePickup   *string                 `json:"date_pickup,omitempty"`
	DateSent     *string                 `json:"date_sent,omitempty"`
	Averia       *string                 `json:"averia,omitempty"`
	Observations *string                 `json:"observaciones,omitempty"`
	State        constants.WorkflowState `json:"estado"`
	Hidden       bool                    `json:"hidden"`
	HiddenBy     *string                 `json:"hidden_by,omitempty"`
	HiddenAt     *time.Time              `json:"hidden_at,omitempty"`
	SheetRow     int                     `json:"excel_row"`
	CreatedAt    time.Time               `json:"created_at"`
}

// Key returns the natural de-duplication key: trimmed RMA number plus
// trimmed serial (empty string when absent).
func (r *RMAItem) Key() ItemKey {
	serial := ""
	if r.Serial != nil {
		serial = strings.TrimSpace(*r.Serial)
	}
	return ItemKey{RMANumber: strings.TrimSpace(r.RMANumber), Serial: serial}
}

// ItemKey identifies one warranty line across syncs.
type ItemKey struct {
	RMANumber string
	Serial    string
}

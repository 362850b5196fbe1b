package entity

import (
	"time"

	"github.com/google/uuid"
)

// SpecialRMAItem represents one line of the special-RMA sheet (serial,
// reported failure, resolution). De-duplicated by trimmed serial.
type SpecialRMAItem struct {
	ID         uuid.UUID `json:"id"`
	Serial     string    `json:"serial"`
	Fallo      string    `json:"fallo"`
	Resolucion string    `json:"resolucion"`
	SheetRow   int       `json:"excel_row"`
	CreatedAt  time.Time `json:"created_at"`
}

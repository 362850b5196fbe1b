package columns

// Canonical field names shared by the importers and the store.
const (
	FieldRMANumber    = "rma_number"
	FieldProduct      = "product"
	FieldSerial       = "serial"
	FieldClientName   = "client_name"
	FieldClientEmail  = "client_email"
	FieldClientPhone  = "client_phone"
	FieldDateReceived = "date_received"
	FieldDatePickup   = "date_pickup"
	FieldDateSent     = "date_sent"
	FieldAveria       = "averia"
	FieldResolucion   = "resolucion"
	FieldFallo        = "fallo"
	FieldObservations = "observaciones"
)

// Registered alias-set names.
const (
	WarrantySetName   = "warranty"
	SpecialRMASetName = "special_rma"
)

// WarrantySet returns the fixed alias set for the warranty sheet importer.
// The spellings cover the header variants seen in the department's sheets,
// including the mojibake "NÂº" produced by a latin-1 round trip.
func WarrantySet() AliasSet {
	return AliasSet{
		Name: WarrantySetName,
		Fields: []Field{
			{Name: FieldRMANumber, Aliases: []string{"Nº DE RMA", "NÂº DE RMA", "N° DE RMA"}},
			{Name: FieldProduct, Aliases: []string{"PRODUCTO"}},
			{Name: FieldSerial, Aliases: []string{"Nº DE SERIE", "NÂº DE SERIE", "NUMERO DE SERIE", "Serie", "Nº SERIE"}},
			{Name: FieldClientName, Aliases: []string{"RAZON SOCIAL O NOMBRE", "RAZÓN SOCIAL O NOMBRE", "CLIENTE", "NOMBRE"}},
			{Name: FieldClientEmail, Aliases: []string{"EMAIL", "CORREO", "E-MAIL"}},
			{Name: FieldClientPhone, Aliases: []string{"TELEFONO", "TELÉFONO", "TELF"}},
			{Name: FieldDateReceived, Aliases: []string{"FECHA RECIBIDO", "FECHA"}},
			{Name: FieldDatePickup, Aliases: []string{"FECHA RECOGIDA"}},
			{Name: FieldDateSent, Aliases: []string{"FECHA ENVIADO"}},
			{Name: FieldAveria, Aliases: []string{"AVERIA", "AVERÍA"}},
			{Name: FieldObservations, Aliases: []string{"OBSERVACIONES"}},
		},
	}
}

// WarrantyRequired lists the field without which warranty reconciliation
// cannot proceed (rows have no identity).
var WarrantyRequired = []string{FieldRMANumber}

// SpecialRMARequired lists the fields the special-RMA importer needs. A
// miss is not fatal: it is reported back with the raw headers so the
// operator can map columns by hand.
var SpecialRMARequired = []string{FieldSerial, FieldFallo, FieldResolucion}

// DefaultSpecialSet returns the seed alias set for the special-RMA
// importer. Unlike the warranty set it is persisted and grows as operators
// confirm manual mappings.
func DefaultSpecialSet() AliasSet {
	return AliasSet{
		Name: SpecialRMASetName,
		Fields: []Field{
			{Name: FieldSerial, Aliases: []string{"Nº DE SERIE", "NUMERO DE SERIE", "Serie", "Nº SERIE", "SN"}},
			{Name: FieldFallo, Aliases: []string{"FALLO", "AVERIA", "AVERÍA", "FALLO REPORTADO"}},
			{Name: FieldResolucion, Aliases: []string{"RESOLUCION", "RESOLUCIÓN", "SOLUCION", "SOLUCIÓN"}},
		},
	}
}

// AddAlias appends a header spelling to a field's alias list, creating the
// field at the end of the priority order when it is new. Duplicate aliases
// are ignored.
func (s *AliasSet) AddAlias(field, header string) {
	for i := range s.Fields {
		if s.Fields[i].Name != field {
			continue
		}
		for _, a := range s.Fields[i].Aliases {
			if a == header {
				return
			}
		}
		s.Fields[i].Aliases = append(s.Fields[i].Aliases, header)
		return
	}
	s.Fields = append(s.Fields, Field{Name: field, Aliases: []string{header}})
}

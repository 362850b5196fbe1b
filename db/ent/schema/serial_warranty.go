package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// SerialWarranty is the per-serial warranty flag. Serials without a row
// count as in force; rows only exist once someone (or the automatic term
// expiry) has flipped the flag.
type SerialWarranty struct{ ent.Schema }

func (SerialWarranty) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "serial_warranty"},
	}
}

func (SerialWarranty) Fields() []ent.Field {
	return []ent.Field{
		field.String("serial").NotEmpty().Unique(),
		field.Bool("warranty_valid").Default(true),
	}
}

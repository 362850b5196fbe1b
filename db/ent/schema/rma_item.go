package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/apx-soporte/warranty-tracker/db/ent/schema/utils"
)

type RMAItem struct{ ent.Schema }

func (RMAItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "rma_items"},
	}
}

func (RMAItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("rma_number").NotEmpty(),
		field.String("product").Optional().Nillable(),
		// Stored as "" rather than NULL so the (rma_number, serial) unique
		// index treats serial-less lines as one key.
		field.String("serial").Default(""),
		field.String("client_name").Optional().Nillable(),
		field.String("client_email").Optional().Nillable(),
		field.String("client_phone").Optional().Nillable(),
		// Dates travel as YYYY-MM-DD strings; the sheet is their authority.
		field.String("date_received").Optional().Nillable(),
		field.String("date_pickup").Optional().Nillable(),
		field.String("date_sent").Optional().Nillable(),
		field.String("averia").Optional().Nillable(),
		field.String("observaciones").Optional().Nillable(),
		field.String("estado").Default("").
			Validate(utils.EnumValidator("", "abonado", "reparado", "no_anomalias")),
		field.Bool("hidden").Default(false),
		field.String("hidden_by").Optional().Nillable(),
		field.Time("hidden_at").Optional().Nillable(),
		field.Int("excel_row").Default(0),
		field.Time("created_at").Default(time.Now),
	}
}

func (RMAItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rma_number"),
		index.Fields("rma_number", "serial").Unique(),
	}
}

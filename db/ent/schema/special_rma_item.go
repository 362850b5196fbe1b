package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type SpecialRMAItem struct{ ent.Schema }

func (SpecialRMAItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "special_rma_items"},
	}
}

func (SpecialRMAItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("serial").NotEmpty().Unique(),
		field.String("fallo").Default(""),
		field.String("resolucion").Default(""),
		field.Int("excel_row").Default(0),
		field.Time("created_at").Default(time.Now),
	}
}

func (SpecialRMAItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("serial"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClientGroup unifies several client identities under one canonical client.
// Grouping never touches rma_items; dissolving a group restores the
// original clients untouched.
type ClientGroup struct{ ent.Schema }

func (ClientGroup) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "client_groups"},
	}
}

func (ClientGroup) Fields() []ent.Field {
	return []ent.Field{
		field.String("canonical_name").NotEmpty(),
		field.String("canonical_email").Default(""),
		field.String("canonical_phone").Default(""),
	}
}

// ClientGroupMember is one non-canonical identity shown under a group's
// canonical client.
type ClientGroupMember struct{ ent.Schema }

func (ClientGroupMember) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "client_group_members"},
	}
}

func (ClientGroupMember) Fields() []ent.Field {
	return []ent.Field{
		field.Int("group_id"),
		field.String("client_name").NotEmpty(),
		field.String("client_email").Default(""),
	}
}

func (ClientGroupMember) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("group_id"),
		index.Fields("group_id", "client_name", "client_email").Unique(),
	}
}

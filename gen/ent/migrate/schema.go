// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ClientGroupsColumns holds the columns for the "client_groups" table.
	ClientGroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "canonical_name", Type: field.TypeString},
		{Name: "canonical_email", Type: field.TypeString, Default: ""},
		{Name: "canonical_phone", Type: field.TypeString, Default: ""},
	}
	// ClientGroupsTable holds the schema information for the "client_groups" table.
	ClientGroupsTable = &schema.Table{
		Name:       "client_groups",
		Columns:    ClientGroupsColumns,
		PrimaryKey: []*schema.Column{ClientGroupsColumns[0]},
	}
	// ClientGroupMembersColumns holds the columns for the "client_group_members" table.
	ClientGroupMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "group_id", Type: field.TypeInt},
		{Name: "client_name", Type: field.TypeString},
		{Name: "client_email", Type: field.TypeString, Default: ""},
	}
	// ClientGroupMembersTable holds the schema information for the "client_group_members" table.
	ClientGroupMembersTable = &schema.Table{
		Name:       "client_group_members",
		Columns:    ClientGroupMembersColumns,
		PrimaryKey: []*schema.Column{ClientGroupMembersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clientgroupmember_group_id",
				Unique:  false,
				Columns: []*schema.Column{ClientGroupMembersColumns[1]},
			},
			{
				Name:    "clientgroupmember_group_id_client_name_client_email",
				Unique:  true,
				Columns: []*schema.Column{ClientGroupMembersColumns[1], ClientGroupMembersColumns[2], ClientGroupMembersColumns[3]},
			},
		},
	}
	// RmaItemsColumns holds the columns for the "rma_items" table.
	RmaItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "rma_number", Type: field.TypeString},
		{Name: "product", Type: field.TypeString, Nullable: true},
		{Name: "serial", Type: field.TypeString, Default: ""},
		{Name: "client_name", Type: field.TypeString, Nullable: true},
		{Name: "client_email", Type: field.TypeString, Nullable: true},
		{Name: "client_phone", Type: field.TypeString, Nullable: true},
		{Name: "date_received", Type: field.TypeString, Nullable: true},
		{Name: "date_pickup", Type: field.TypeString, Nullable: true},
		{Name: "date_sent", Type: field.TypeString, Nullable: true},
		{Name: "averia", Type: field.TypeString, Nullable: true},
		{Name: "observaciones", Type: field.TypeString, Nullable: true},
		{Name: "estado", Type: field.TypeString, Default: ""},
		{Name: "hidden", Type: field.TypeBool, Default: false},
		{Name: "hidden_by", Type: field.TypeString, Nullable: true},
		{Name: "hidden_at", Type: field.TypeTime, Nullable: true},
		{Name: "excel_row", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RmaItemsTable holds the schema information for the "rma_items" table.
	RmaItemsTable = &schema.Table{
		Name:       "rma_items",
		Columns:    RmaItemsColumns,
		PrimaryKey: []*schema.Column{RmaItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rmaitem_rma_number",
				Unique:  false,
				Columns: []*schema.Column{RmaItemsColumns[1]},
			},
			{
				Name:    "rmaitem_rma_number_serial",
				Unique:  true,
				Columns: []*schema.Column{RmaItemsColumns[1], RmaItemsColumns[3]},
			},
		},
	}
	// SerialWarrantyColumns holds the columns for the "serial_warranty" table.
	SerialWarrantyColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "serial", Type: field.TypeString, Unique: true},
		{Name: "warranty_valid", Type: field.TypeBool, Default: true},
	}
	// SerialWarrantyTable holds the schema information for the "serial_warranty" table.
	SerialWarrantyTable = &schema.Table{
		Name:       "serial_warranty",
		Columns:    SerialWarrantyColumns,
		PrimaryKey: []*schema.Column{SerialWarrantyColumns[0]},
	}
	// SettingsColumns holds the columns for the "settings" table.
	SettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Default: ""},
	}
	// SettingsTable holds the schema information for the "settings" table.
	SettingsTable = &schema.Table{
		Name:       "settings",
		Columns:    SettingsColumns,
		PrimaryKey: []*schema.Column{SettingsColumns[0]},
	}
	// SpecialRmaItemsColumns holds the columns for the "special_rma_items" table.
	SpecialRmaItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "serial", Type: field.TypeString, Unique: true},
		{Name: "fallo", Type: field.TypeString, Default: ""},
		{Name: "resolucion", Type: field.TypeString, Default: ""},
		{Name: "excel_row", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SpecialRmaItemsTable holds the schema information for the "special_rma_items" table.
	SpecialRmaItemsTable = &schema.Table{
		Name:       "special_rma_items",
		Columns:    SpecialRmaItemsColumns,
		PrimaryKey: []*schema.Column{SpecialRmaItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "specialrmaitem_serial",
				Unique:  false,
				Columns: []*schema.Column{SpecialRmaItemsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ClientGroupsTable,
		ClientGroupMembersTable,
		RmaItemsTable,
		SerialWarrantyTable,
		SettingsTable,
		SpecialRmaItemsTable,
	}
)

func init() {
	ClientGroupsTable.Annotation = &entsql.Annotation{
		Table: "client_groups",
	}
	ClientGroupMembersTable.Annotation = &entsql.Annotation{
		Table: "client_group_members",
	}
	RmaItemsTable.Annotation = &entsql.Annotation{
		Table: "rma_items",
	}
	SerialWarrantyTable.Annotation = &entsql.Annotation{
		Table: "serial_warranty",
	}
	SettingsTable.Annotation = &entsql.Annotation{
		Table: "settings",
	}
	SpecialRmaItemsTable.Annotation = &entsql.Annotation{
		Table: "special_rma_items",
	}
}

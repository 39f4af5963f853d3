// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CardsColumns holds the columns for the "cards" table.
	CardsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "display_name", Type: field.TypeString, Default: ""},
		{Name: "image", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "image_ext", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CardsTable holds the schema information for the "cards" table.
	CardsTable = &schema.Table{
		Name:       "cards",
		Columns:    CardsColumns,
		PrimaryKey: []*schema.Column{CardsColumns[0]},
	}
	// CardFieldsColumns holds the columns for the "card_fields" table.
	CardFieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "category", Type: field.TypeString},
		{Name: "raw_text", Type: field.TypeString, Default: ""},
		{Name: "value", Type: field.TypeString, Default: ""},
		{Name: "span_start", Type: field.TypeInt, Default: 0},
		{Name: "span_end", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "card_id", Type: field.TypeUUID},
	}
	// CardFieldsTable holds the schema information for the "card_fields" table.
	CardFieldsTable = &schema.Table{
		Name:       "card_fields",
		Columns:    CardFieldsColumns,
		PrimaryKey: []*schema.Column{CardFieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "card_fields_cards_fields",
				Columns:    []*schema.Column{CardFieldsColumns[7]},
				RefColumns: []*schema.Column{CardsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "cardfield_card_id_category",
				Unique:  false,
				Columns: []*schema.Column{CardFieldsColumns[7], CardFieldsColumns[1]},
			},
		},
	}
	// ScanJobsColumns holds the columns for the "scan_jobs" table.
	ScanJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "field_count", Type: field.TypeInt, Default: 0},
		{Name: "card_id", Type: field.TypeUUID},
	}
	// ScanJobsTable holds the schema information for the "scan_jobs" table.
	ScanJobsTable = &schema.Table{
		Name:       "scan_jobs",
		Columns:    ScanJobsColumns,
		PrimaryKey: []*schema.Column{ScanJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scan_jobs_cards_jobs",
				Columns:    []*schema.Column{ScanJobsColumns[8]},
				RefColumns: []*schema.Column{CardsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scanjob_card_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ScanJobsColumns[8], ScanJobsColumns[1], ScanJobsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CardsTable,
		CardFieldsTable,
		ScanJobsTable,
	}
)

func init() {
	CardsTable.Annotation = &entsql.Annotation{
		Table: "cards",
	}
	CardFieldsTable.ForeignKeys[0].RefTable = CardsTable
	CardFieldsTable.Annotation = &entsql.Annotation{
		Table: "card_fields",
	}
	ScanJobsTable.ForeignKeys[0].RefTable = CardsTable
	ScanJobsTable.Annotation = &entsql.Annotation{
		Table: "scan_jobs",
	}
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ScansColumns holds the columns for the "scans" table.
	ScansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "storage_path", Type: field.TypeString, Unique: true},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "extracted_name", Type: field.TypeString, Nullable: true},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "search_query", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "summary", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ScansTable holds the schema information for the "scans" table.
	ScansTable = &schema.Table{
		Name:       "scans",
		Columns:    ScansColumns,
		PrimaryKey: []*schema.Column{ScansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "scan_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ScansColumns[8], ScansColumns[10]},
			},
		},
	}
	// ScanResultsColumns holds the columns for the "scan_results" table.
	ScanResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "url", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "score", Type: field.TypeFloat32, Nullable: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "scan_id", Type: field.TypeUUID},
	}
	// ScanResultsTable holds the schema information for the "scan_results" table.
	ScanResultsTable = &schema.Table{
		Name:       "scan_results",
		Columns:    ScanResultsColumns,
		PrimaryKey: []*schema.Column{ScanResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scan_results_scans_results",
				Columns:    []*schema.Column{ScanResultsColumns[7]},
				RefColumns: []*schema.Column{ScansColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scanresult_scan_id_position",
				Unique:  false,
				Columns: []*schema.Column{ScanResultsColumns[7], ScanResultsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ScansTable,
		ScanResultsTable,
	}
)

func init() {
	ScansTable.Annotation = &entsql.Annotation{
		Table: "scans",
	}
	ScanResultsTable.ForeignKeys[0].RefTable = ScansTable
	ScanResultsTable.Annotation = &entsql.Annotation{
		Table: "scan_results",
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/tobi-salau/resumescan/constants"
	"github.com/tobi-salau/resumescan/db/ent/schema/utils"
)

type Scan struct {
	ent.Schema
}

func (Scan) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "scans"},
	}
}

func (Scan) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("filename").NotEmpty(),
		field.String("storage_path").NotEmpty().Unique(),
		field.Int("file_size").NonNegative(),
		field.String("extracted_name").Optional().Nillable(),
		field.String("extracted_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("search_query").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("summary").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").
			Default(string(constants.ScanStatusPending)).
			Validate(utils.EnumValidator(constants.ScanStatuses...)),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Scan) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE scan -> MANY results; results go away with their scan.
		edge.To("results", ScanResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Scan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
	}
}

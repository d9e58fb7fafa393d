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
)

type ScanResult struct{ ent.Schema }

func (ScanResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "scan_results"},
	}
}

func (ScanResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so queries can filter without loading the edge
		field.UUID("scan_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.String("url").NotEmpty(),
		field.String("content").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float32("score").Optional().Nillable(),
		// provider rank order, 0-based; rows are never re-ranked
		field.Int("position").NonNegative(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ScanResult) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY results -> ONE scan
		edge.From("scan", Scan.Type).
			Ref("results").
			Field("scan_id").
			Required().
			Unique(),
	}
}

func (ScanResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scan_id", "position"),
	}
}

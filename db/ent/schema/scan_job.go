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

	"cardvault/constants"
	"cardvault/db/ent/schema/utils"

	"github.com/google/uuid"
)

type ScanJob struct{ ent.Schema }

func (ScanJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "scan_jobs"},
	}
}

func (ScanJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("card_id", uuid.UUID{}),
		field.String("status").
			Default(string(constants.ScanStatusPending)).
			Validate(utils.EnumValidator(constants.ScanStatuses...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Int("field_count").Default(0),
	}
}

func (ScanJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("card", Card.Type).
			Ref("jobs").
			Field("card_id").
			Unique().
			Required(),
	}
}

func (ScanJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("card_id", "status", "started_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"cardvault/constants"
	"cardvault/db/ent/schema/utils"

	"github.com/google/uuid"
)

type CardField struct{ ent.Schema }

func (CardField) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "card_fields"},
	}
}

func (CardField) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("card_id", uuid.UUID{}),
		field.String("category").NotEmpty().
			Validate(utils.EnumValidator(constants.AsStringSlice()...)),
		field.String("raw_text").Default(""),
		field.String("value").Default(""),
		field.Int("span_start").Default(0),
		field.Int("span_end").Default(0),
		field.Time("created_at").Default(time.Now),
	}
}

func (CardField) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("card", Card.Type).
			Ref("fields").
			Field("card_id").
			Unique().
			Required(),
	}
}

func (CardField) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("card_id", "category"),
	}
}

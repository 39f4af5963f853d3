package schema

import (
	"errors"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"cardvault/constants"

	"github.com/google/uuid"
)

var errUnsupportedExt = errors.New("unsupported image extension")

type Card struct{ ent.Schema }

func (Card) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "cards"},
	}
}

func (Card) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("display_name").Default(""),
		field.Bytes("image").
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("image_ext").
			Validate(func(s string) error {
				if _, ok := constants.AllowedExtensions[constants.NormalizeExt(s)]; ok {
					return nil
				}
				return errUnsupportedExt
			}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Card) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE card -> MANY fields
		edge.To("fields", CardField.Type),
		// ONE card -> MANY scan jobs
		edge.To("jobs", ScanJob.Type),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// PassageRecord stores a generated reading passage with its validation
// outcome.
type PassageRecord struct {
	ent.Schema
}

func (PassageRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("passage_id", uuid.UUID{}).
			Default(uuid.New).
			Unique().
			Immutable().
			Comment("Stable identifier independent of the row ID"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("topic"),
		field.String("domain").
			Default(""),
		field.String("title").
			Default(""),
		field.Text("raw").
			Comment("Full generated text"),
		field.String("level").
			Default("C1"),
		field.String("length").
			Default("long"),
		field.Int("score").
			Default(0).
			Comment("Structural validation score, 0-100"),
		field.Bool("valid").
			Default(false),
		field.Int("retries").
			Default(0).
			Comment("Extra generation attempts spent on this passage"),
		field.Bool("needs_regeneration").
			Default(false).
			Comment("Delivered without ever passing validation"),
	}
}

func (PassageRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("valid"),
		index.Fields("created_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attempt is one answer submission. Append-only: rows are never updated,
// they exist for stats and audit, not for scheduling decisions.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("mistake_id").
			NotEmpty().
			Immutable(),
		field.Int("drill_id").
			Optional().
			Immutable().
			Comment("Set when the question came from a pre-generated drill"),
		field.String("student_answer").
			NotEmpty().
			Immutable(),
		field.String("correct_answer").
			NotEmpty().
			Immutable(),
		field.Bool("is_correct").
			Immutable(),
		field.Int("hints_used").
			Default(0).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("mistake_id"),
	}
}

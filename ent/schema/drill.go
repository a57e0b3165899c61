package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Drill is one pre-generated multiple-choice question bound to a mistake.
// Generated ahead of time by the background sweep, consumed once.
type Drill struct {
	ent.Schema
}

func (Drill) Fields() []ent.Field {
	return []ent.Field{
		field.String("mistake_id").
			NotEmpty().
			Immutable(),
		field.Text("question_text").
			NotEmpty(),
		field.String("option_a").
			NotEmpty(),
		field.String("option_b").
			NotEmpty(),
		field.String("option_c").
			NotEmpty(),
		field.String("option_d").
			NotEmpty(),
		field.String("correct_option").
			NotEmpty().
			Comment("A, B, C or D"),
		field.Text("solution").
			NotEmpty(),
		field.String("hint_1").
			Optional(),
		field.String("hint_2").
			Optional(),
		field.String("hint_3").
			Optional(),
		field.Int("difficulty").
			Default(2),
		field.Int("order_index").
			Default(0),
		field.Bool("is_used").
			Default(false),
		field.Time("used_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Drill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mistake_id", "is_used", "order_index"),
	}
}

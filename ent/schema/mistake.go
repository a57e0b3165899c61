package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Mistake is one persistent misconception a learner must eliminate.
// Scheduling fields are written only through MistakeRepo.ApplyReview,
// which takes the whole scheduler output in a single update.
type Mistake struct {
	ent.Schema
}

func (Mistake) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(func() string { return uuid.NewString() }).
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("subject").
			Default("physics"),
		field.String("chapter").
			Optional(),
		field.String("topic").
			Optional(),
		field.String("mistake_type").
			Optional().
			Comment("conceptual, calculation, careless, formula (classifier output)"),
		field.String("misconception").
			Optional().
			Comment("One-line statement of what the learner gets wrong"),
		field.Text("reported_text").
			Optional().
			Comment("Raw text the learner sent when reporting"),
		field.Int("times_drilled").
			Default(0),
		field.Int("times_correct").
			Default(0),
		field.Float("mastery_score").
			Default(0),
		field.Bool("is_mastered").
			Default(false),
		field.Float("easiness_factor").
			Default(2.5),
		field.Int("interval_days").
			Default(1),
		field.Int("repetition_count").
			Default(0),
		field.Time("next_review_at").
			Default(time.Now),
		field.Time("mastered_at").
			Optional().
			Nillable(),
		field.Time("last_drilled_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Mistake) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "is_mastered", "next_review_at"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// User is one learner, keyed by WhatsApp phone number.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			DefaultFunc(func() string { return uuid.NewString() }).
			Immutable(),
		field.String("phone_number").
			NotEmpty().
			Unique().
			Comment("E.164 digits, no plus sign (Gupshup convention)"),
		field.String("name").
			Optional().
			Comment("Collected during onboarding"),
		field.Bool("is_active").
			Default(true).
			Comment("False after STOP; only START flips it back"),
		field.Int("current_streak").
			Default(0),
		field.Int("longest_streak").
			Default(0),
		field.Time("last_message_at").
			Optional().
			Nillable().
			Comment("Last inbound message, for the 24-hour send window"),
		field.Time("last_active_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("phone_number"),
		index.Fields("is_active"),
	}
}

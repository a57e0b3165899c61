package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message is one inbound or outbound message. The unique provider_msg_id
// index is the system's dedup guard: recording an inbound message is an
// atomic insert-if-absent, and a constraint violation means "already seen".
type Message struct {
	ent.Schema
}

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("direction").
			NotEmpty().
			Immutable().
			Comment("inbound or outbound"),
		field.Text("body").
			Optional().
			Immutable(),
		field.String("msg_type").
			Default("text").
			Immutable().
			Comment("text, image, button"),
		field.String("provider_msg_id").
			Optional().
			Unique().
			Immutable().
			Comment("WhatsApp message id; empty for outbound"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}

package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ConversationState holds a user's conversation state between messages.
// The state itself is an opaque JSON blob owned by the conversation
// package; the store upserts it wholesale, one row per user, one write
// per handled message.
type ConversationState struct {
	ent.Schema
}

func (ConversationState) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.JSON("data", json.RawMessage{}),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// ConversationState is the predicate function for conversationstate builders.
type ConversationState func(*sql.Selector)

// Drill is the predicate function for drill builders.
type Drill func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Mistake is the predicate function for mistake builders.
type Mistake func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

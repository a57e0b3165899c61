// Package llm abstracts the language model behind a single Provider
// interface. The conversation handlers use it for intent classification,
// mistake analysis, drill generation, and chitchat redirects; everything
// else in the system is deterministic and must keep working when the
// provider fails.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single entry point for model calls.
type Provider interface {
	// Generate sends one prompt and returns the model's output. When the
	// request carries a Schema the content is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is one prompt.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Handlers here are single-turn, so this
	// is almost always one user message.
	Messages []Message

	// Schema, when set, asks the provider for structured output and the
	// response content is validated against it. When nil the content is
	// the raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero value means deterministic.
	Temperature float64
}

// Message is one turn in the prompt.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON shape the model must produce.
type Schema struct {
	// Name identifies the schema. Used as the structured-output name for
	// providers that want one, and as the validation cache key.
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
	Content json.RawMessage

	// Usage is the token count for this call.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

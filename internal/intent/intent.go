// Package intent classifies inbound messages. A keyword table catches the
// common commands without a model call; everything else goes to the LLM,
// degrading to CHITCHAT when the model is unavailable.
package intent

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/abhisek/guruji/internal/llm"
)

// Intent is the routed meaning of one inbound message.
type Intent string

const (
	Greeting      Intent = "GREETING"
	ReportMistake Intent = "REPORT_MISTAKE"
	StartDrill    Intent = "START_DRILL"
	AnswerDrill   Intent = "ANSWER_DRILL"
	CheckStats    Intent = "CHECK_STATS"
	Help          Intent = "HELP"
	Stop          Intent = "STOP"
	Chitchat      Intent = "CHITCHAT"
)

// keywordIntents maps exact normalized messages to intents. Checked before
// the model so the high-frequency commands cost nothing.
var keywordIntents = map[string]Intent{
	"HI":          Greeting,
	"HELLO":       Greeting,
	"HEY":         Greeting,
	"NAMASTE":     Greeting,
	"GO":          StartDrill,
	"LET'S GO":    StartDrill,
	"LETS GO":     StartDrill,
	"START":       StartDrill,
	"BEGIN":       StartDrill,
	"PRACTICE":    StartDrill,
	"DRILL":       StartDrill,
	"STATS":       CheckStats,
	"MY STATS":    CheckStats,
	"PROGRESS":    CheckStats,
	"HELP":        Help,
	"STOP":        Stop,
	"UNSUBSCRIBE": Stop,
}

// FromKeyword matches the message against the keyword table.
func FromKeyword(text string) (Intent, bool) {
	norm := strings.ToUpper(strings.TrimSpace(text))
	norm = strings.TrimRight(norm, ".!?")
	norm = strings.TrimSpace(norm)
	it, ok := keywordIntents[norm]
	return it, ok
}

// Classifier resolves intents, by keyword first and model second.
type Classifier struct {
	provider llm.Provider
}

// NewClassifier creates a Classifier. A nil provider is allowed; the
// classifier then answers from keywords alone and falls back to CHITCHAT.
func NewClassifier(provider llm.Provider) *Classifier {
	return &Classifier{provider: provider}
}

var classifySchema = &llm.Schema{
	Name:        "message-intent",
	Description: "Classification of a student's WhatsApp message",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"intent": map[string]any{
				"type": "string",
				"enum": []any{
					string(Greeting), string(ReportMistake), string(StartDrill),
					string(AnswerDrill), string(CheckStats), string(Help),
					string(Stop), string(Chitchat),
				},
			},
			"confidence": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
			},
		},
		"required":             []any{"intent", "confidence"},
		"additionalProperties": false,
	},
}

const classifySystem = `You classify WhatsApp messages from physics students using a mistake-drilling tutor bot.

Intents:
- GREETING: hello, salutations, checking in
- REPORT_MISTAKE: describing a physics problem they got wrong or a concept they struggle with
- START_DRILL: asking to practice or be quizzed
- ANSWER_DRILL: a bare answer to a multiple choice question (a single letter or option)
- CHECK_STATS: asking about their progress, streak, or score
- HELP: asking what the bot can do or how to use it
- STOP: asking to stop receiving messages
- CHITCHAT: anything else, including off-topic conversation

Respond with the intent and your confidence.`

// minConfidence below which the model's answer is discarded.
const minConfidence = 0.5

// Classify resolves the message's intent. Model failures and low
// confidence both resolve to CHITCHAT, never to an error the router
// would have to surface.
func (c *Classifier) Classify(ctx context.Context, text string) Intent {
	if it, ok := FromKeyword(text); ok {
		return it
	}
	if c.provider == nil {
		return Chitchat
	}

	resp, err := c.provider.Generate(llm.WithPurpose(ctx, "intent"), llm.Request{
		System: classifySystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: text},
		},
		Schema:    classifySchema,
		MaxTokens: 128,
	})
	if err != nil {
		return Chitchat
	}

	var out struct {
		Intent     string  `json:"intent"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return Chitchat
	}
	if out.Confidence < minConfidence {
		return Chitchat
	}
	return Intent(out.Intent)
}

func (i Intent) String() string { return string(i) }

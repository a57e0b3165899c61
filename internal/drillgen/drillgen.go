// Package drillgen produces multiple-choice drill questions targeting a
// specific misconception. Used live when a drill starts with no stored
// question, and by the background sweep that pre-generates a backlog.
package drillgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/guruji/internal/drill"
	"github.com/abhisek/guruji/internal/llm"
)

// Config tunes the model call.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Generator produces drill questions from a misconception.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Generator.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Input describes the mistake a question should target.
type Input struct {
	Subject       string
	Chapter       string
	Topic         string
	MistakeType   string
	Misconception string
	// Difficulty 1-3. Later drills for the same mistake get harder.
	Difficulty int
	// PriorQuestions already generated for this mistake, to avoid repeats.
	PriorQuestions []string
}

// questionOutput is the raw model response before validation.
type questionOutput struct {
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correct_option"`
	Solution      string   `json:"solution"`
	Hints         []string `json:"hints"`
}

var questionSchema = &llm.Schema{
	Name:        "drill-question",
	Description: "A multiple-choice physics question targeting a specific misconception",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question, self-contained, plain ASCII",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly four answer options in A,B,C,D order, without letter prefixes",
			},
			"correct_option": map[string]any{
				"type": "string",
				"enum": []any{"A", "B", "C", "D"},
			},
			"solution": map[string]any{
				"type":        "string",
				"description": "Step-by-step solution shown after the drill ends",
			},
			"hints": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    3,
				"description": "Progressive hints, each more revealing than the last",
			},
		},
		"required":             []any{"question_text", "options", "correct_option", "solution", "hints"},
		"additionalProperties": false,
	},
}

const systemPrompt = `You are a physics tutor writing one multiple-choice practice question for a student preparing for competitive exams.

Rules:
- The question must directly test the stated misconception: a student who still holds it should be drawn to a specific wrong option.
- Use plain ASCII. No LaTeX, no Unicode math symbols. Write units explicitly.
- Provide exactly 4 options. Distractors must come from plausible errors, not random values.
- Do not prefix options with letters; they are labeled A-D automatically.
- Provide 1-3 progressive hints. The first hint nudges, the last almost gives it away. No hint may state the answer letter.
- The solution explains the correct reasoning and why the misconception fails.
- Difficulty 1 is a direct check, 2 adds a step, 3 requires combining concepts.
- Do not repeat any question from the "already asked" list.`

// Generate produces one validated question. A generation or validation
// failure is an error; callers fall back to a stored drill or a retry.
func (g *Generator) Generate(ctx context.Context, input Input) (drill.Question, error) {
	if g.provider == nil {
		return drill.Question{}, fmt.Errorf("no model provider configured")
	}

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, "drillgen"), llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      questionSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return drill.Question{}, fmt.Errorf("generate drill question: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return drill.Question{}, fmt.Errorf("parse drill question: %w", err)
	}

	q := drill.Question{
		Text:     strings.TrimSpace(raw.QuestionText),
		Options:  trimAll(raw.Options),
		Correct:  strings.ToUpper(strings.TrimSpace(raw.CorrectOption)),
		Solution: strings.TrimSpace(raw.Solution),
		Hints:    trimAll(raw.Hints),
	}

	// NewSession runs the structural checks; borrow them here so bad
	// questions are rejected at generation time, not at drill time.
	if _, err := drill.NewSession("validate", 0, q); err != nil {
		return drill.Question{}, fmt.Errorf("generated question rejected: %w", err)
	}

	return q, nil
}

func buildUserMessage(input Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", input.Subject)
	fmt.Fprintf(&b, "Chapter: %s\n", input.Chapter)
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Mistake type: %s\n", input.MistakeType)
	fmt.Fprintf(&b, "Misconception: %s\n", input.Misconception)

	difficulty := input.Difficulty
	if difficulty < 1 || difficulty > 3 {
		difficulty = 2
	}
	fmt.Fprintf(&b, "Difficulty: %d\n", difficulty)

	b.WriteString("\nAlready asked for this mistake:\n")
	if len(input.PriorQuestions) == 0 {
		b.WriteString("None\n")
	} else {
		for _, p := range input.PriorQuestions {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}

	return b.String()
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

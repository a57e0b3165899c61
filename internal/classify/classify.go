// Package classify turns a student's free-text mistake report into a
// structured record: chapter, topic, mistake type, and the underlying
// misconception. Classification failures never block intake; the record
// falls back to a generic bucket and gets saved anyway.
package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/abhisek/guruji/internal/llm"
)

// Classification is the structured analysis of one reported mistake.
type Classification struct {
	Subject       string `json:"subject"`
	Chapter       string `json:"chapter"`
	Topic         string `json:"topic"`
	MistakeType   string `json:"mistake_type"`
	Misconception string `json:"misconception"`
}

// ClassifierConfig tunes the model call.
type ClassifierConfig struct {
	Subject     string
	MaxTokens   int
	Temperature float64
}

// DefaultClassifierConfig returns the defaults.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Subject:     "physics",
		MaxTokens:   256,
		Temperature: 0.3,
	}
}

// Classifier analyzes mistake reports with the model, degrading to a
// generic classification when the model is nil or failing.
type Classifier struct {
	provider llm.Provider
	cfg      ClassifierConfig
}

// NewClassifier creates a Classifier. A nil provider is allowed.
func NewClassifier(provider llm.Provider, cfg ClassifierConfig) *Classifier {
	if cfg.Subject == "" {
		cfg.Subject = "physics"
	}
	return &Classifier{provider: provider, cfg: cfg}
}

// mistakeSchema is the JSON schema for classification responses.
var mistakeSchema = &llm.Schema{
	Name:        "mistake-classification",
	Description: "Structured analysis of a student's reported mistake",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"chapter": map[string]any{
				"type":        "string",
				"description": "The syllabus chapter this mistake belongs to, e.g. 'Laws of Motion'",
			},
			"topic": map[string]any{
				"type":        "string",
				"description": "The specific topic within the chapter, e.g. 'Friction on inclined planes'",
			},
			"mistake_type": map[string]any{
				"type":        "string",
				"enum":        []any{"conceptual", "calculation", "formula", "careless", "interpretation"},
				"description": "The kind of error the student made",
			},
			"misconception": map[string]any{
				"type":        "string",
				"description": "One sentence stating the wrong belief or habit behind the mistake",
			},
		},
		"required":             []any{"chapter", "topic", "mistake_type", "misconception"},
		"additionalProperties": false,
	},
}

const classifySystem = `You analyze mistakes reported by students preparing for competitive physics exams.

Given the student's description of what they got wrong, identify the chapter, the specific topic, the kind of error, and the underlying misconception in one sentence. Use standard syllabus chapter names. Be concrete: "thinks friction always opposes motion" is useful, "confused about friction" is not.`

var classifyUserTmpl = template.Must(template.New("classify").Parse(
	`Subject: {{.Subject}}

The student reported this mistake:

{{.Report}}

Classify it.`))

// Classify analyzes a mistake report. It never returns a model error;
// failures produce the generic fallback classification.
func (c *Classifier) Classify(ctx context.Context, report string) Classification {
	if c.provider == nil {
		return c.fallback(report)
	}

	var buf bytes.Buffer
	err := classifyUserTmpl.Execute(&buf, map[string]string{
		"Subject": c.cfg.Subject,
		"Report":  report,
	})
	if err != nil {
		return c.fallback(report)
	}

	resp, err := c.provider.Generate(llm.WithPurpose(ctx, "classify"), llm.Request{
		System: classifySystem,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buf.String()},
		},
		Schema:      mistakeSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return c.fallback(report)
	}

	var out Classification
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return c.fallback(report)
	}
	out.Subject = c.cfg.Subject
	return out
}

// fallback buckets the report generically so intake still succeeds.
func (c *Classifier) fallback(report string) Classification {
	return Classification{
		Subject:       c.cfg.Subject,
		Chapter:       "General",
		Topic:         "General",
		MistakeType:   "conceptual",
		Misconception: summarize(report),
	}
}

// summarize truncates the report to one misconception-sized line.
func summarize(report string) string {
	s := strings.Join(strings.Fields(report), " ")
	const maxLen = 140
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	if s == "" {
		s = "unspecified mistake"
	}
	return fmt.Sprintf("Reported: %s", s)
}

package drillgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/guruji/internal/llm"
)

var validOutput = `{
	"question_text": "A block slides down a rough incline at constant velocity. What is the net force on it?",
	"options": ["Zero", "mg sin(theta) down the incline", "Friction force up the incline", "mg downward"],
	"correct_option": "A",
	"solution": "Constant velocity means zero acceleration, so by Newton's second law the net force is zero.",
	"hints": ["What does constant velocity tell you about acceleration?", "Apply F = ma with a = 0."]
}`

func testInput() Input {
	return Input{
		Subject:       "physics",
		Chapter:       "Laws of Motion",
		Topic:         "Friction on inclined planes",
		MistakeType:   "conceptual",
		Misconception: "Thinks moving objects always have a net force in the direction of motion",
		Difficulty:    2,
	}
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validOutput)})
	g := New(mock, DefaultConfig())

	q, err := g.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(q.Options) != 4 {
		t.Errorf("Options = %d, want 4", len(q.Options))
	}
	if q.Correct != "A" {
		t.Errorf("Correct = %q, want A", q.Correct)
	}
	if len(q.Hints) != 2 {
		t.Errorf("Hints = %d, want 2", len(q.Hints))
	}
}

func TestGeneratePromptCarriesMisconception(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validOutput)})
	g := New(mock, DefaultConfig())

	in := testInput()
	in.PriorQuestions = []string{"An earlier question about friction"}
	if _, err := g.Generate(context.Background(), in); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := mock.Calls[0]
	user := req.Messages[0].Content
	if !strings.Contains(user, in.Misconception) {
		t.Error("prompt missing the misconception")
	}
	if !strings.Contains(user, "An earlier question about friction") {
		t.Error("prompt missing the prior-question dedup list")
	}
	if req.Schema == nil || req.Schema.Name != "drill-question" {
		t.Error("request missing the drill-question schema")
	}
}

func TestGenerateRejectsMalformedQuestion(t *testing.T) {
	bad := `{
		"question_text": "Broken",
		"options": ["only", "three", "options"],
		"correct_option": "A",
		"solution": "n/a",
		"hints": ["h"]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected structural rejection for 3 options")
	}
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected error when the provider is down")
	}
}

func TestGenerateNilProvider(t *testing.T) {
	g := New(nil, DefaultConfig())
	if _, err := g.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected error for nil provider")
	}
}

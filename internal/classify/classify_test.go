package classify

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/guruji/internal/llm"
)

func TestClassifyFromModel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"chapter": "Laws of Motion",
			"topic": "Friction on inclined planes",
			"mistake_type": "conceptual",
			"misconception": "Assumes friction always acts down the incline"
		}`),
	})
	c := NewClassifier(mock, DefaultClassifierConfig())

	got := c.Classify(context.Background(), "I put friction down the slope even when the block slides down")

	if got.Subject != "physics" {
		t.Errorf("Subject = %q, want physics", got.Subject)
	}
	if got.Chapter != "Laws of Motion" {
		t.Errorf("Chapter = %q", got.Chapter)
	}
	if got.MistakeType != "conceptual" {
		t.Errorf("MistakeType = %q", got.MistakeType)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestClassifyNilProviderFallsBack(t *testing.T) {
	c := NewClassifier(nil, DefaultClassifierConfig())

	got := c.Classify(context.Background(), "mixed up sin and cos in projectile range")

	if got.Chapter != "General" || got.Topic != "General" {
		t.Errorf("fallback buckets = %q/%q, want General/General", got.Chapter, got.Topic)
	}
	if !strings.Contains(got.Misconception, "sin and cos") {
		t.Errorf("Misconception = %q, want the report echoed", got.Misconception)
	}
}

func TestClassifyModelErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	c := NewClassifier(mock, DefaultClassifierConfig())

	got := c.Classify(context.Background(), "forgot to convert grams to kilograms")
	if got.Chapter != "General" {
		t.Errorf("Chapter = %q, want General fallback", got.Chapter)
	}
}

func TestSummarizeTruncates(t *testing.T) {
	long := strings.Repeat("very long report ", 30)
	s := summarize(long)
	if len(s) > 160 {
		t.Errorf("summarize left %d chars", len(s))
	}
	if summarize("") != "Reported: unspecified mistake" {
		t.Errorf("empty report = %q", summarize(""))
	}
}

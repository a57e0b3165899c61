package intent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/guruji/internal/llm"
)

func TestFromKeyword(t *testing.T) {
	cases := []struct {
		text string
		want Intent
		ok   bool
	}{
		{"GO", StartDrill, true},
		{"go", StartDrill, true},
		{"  lets go  ", StartDrill, true},
		{"Let's go!", StartDrill, true},
		{"practice", StartDrill, true},
		{"stats", CheckStats, true},
		{"my stats", CheckStats, true},
		{"HELP", Help, true},
		{"stop", Stop, true},
		{"Unsubscribe", Stop, true},
		{"hi", Greeting, true},
		{"namaste", Greeting, true},
		{"I messed up projectile motion again", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := FromKeyword(tc.text)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("FromKeyword(%q) = (%v, %v), want (%v, %v)", tc.text, got, ok, tc.want, tc.ok)
		}
	}
}

func TestClassifyKeywordSkipsModel(t *testing.T) {
	mock := llm.NewMockProvider()
	c := NewClassifier(mock)

	got := c.Classify(context.Background(), "stats")
	if got != CheckStats {
		t.Errorf("Classify = %v, want CHECK_STATS", got)
	}
	if mock.CallCount() != 0 {
		t.Errorf("model was called %d times for a keyword message", mock.CallCount())
	}
}

func TestClassifyUsesModel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"intent":"REPORT_MISTAKE","confidence":0.93}`),
	})
	c := NewClassifier(mock)

	got := c.Classify(context.Background(), "I keep getting sign errors in free body diagrams")
	if got != ReportMistake {
		t.Errorf("Classify = %v, want REPORT_MISTAKE", got)
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestClassifyLowConfidenceFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"intent":"START_DRILL","confidence":0.2}`),
	})
	c := NewClassifier(mock)

	if got := c.Classify(context.Background(), "hmm maybe"); got != Chitchat {
		t.Errorf("Classify = %v, want CHITCHAT", got)
	}
}

func TestClassifyModelErrorFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: errors.New("provider down"),
	})
	c := NewClassifier(mock)

	if got := c.Classify(context.Background(), "what even is torque"); got != Chitchat {
		t.Errorf("Classify = %v, want CHITCHAT", got)
	}
}

func TestClassifyNilProvider(t *testing.T) {
	c := NewClassifier(nil)

	if got := c.Classify(context.Background(), "random text"); got != Chitchat {
		t.Errorf("Classify = %v, want CHITCHAT", got)
	}
	if got := c.Classify(context.Background(), "go"); got != StartDrill {
		t.Errorf("Classify = %v, want START_DRILL from keyword", got)
	}
}

package drill

import (
	"encoding/json"
	"errors"
	"testing"
)

func validQuestion() Question {
	return Question{
		Text:     "A ball is thrown straight up. What is its acceleration at the peak?",
		Options:  []string{"Zero", "9.8 m/s^2 downward", "9.8 m/s^2 upward", "Depends on mass"},
		Correct:  "B",
		Solution: "Gravity acts throughout the flight; at the peak only velocity is zero.",
		Hints:    []string{"Velocity and acceleration are different things.", "What force acts at the peak?", "Does gravity switch off mid-flight?"},
	}
}

func TestNewSessionValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Question)
	}{
		{"three options", func(q *Question) { q.Options = q.Options[:3] }},
		{"five options", func(q *Question) { q.Options = append(q.Options, "extra") }},
		{"blank option", func(q *Question) { q.Options[2] = "  " }},
		{"bad correct letter", func(q *Question) { q.Correct = "E" }},
		{"lowercase correct letter", func(q *Question) { q.Correct = "b" }},
		{"empty text", func(q *Question) { q.Text = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			_, err := NewSession("m1", 0, q)
			var iq *InvalidQuestionError
			if !errors.As(err, &iq) {
				t.Fatalf("err = %v, want *InvalidQuestionError", err)
			}
		})
	}
}

func TestNewSessionStartsClean(t *testing.T) {
	s, err := NewSession("m1", 42, validQuestion())
	if err != nil {
		t.Fatal(err)
	}
	if s.Attempts != 0 || s.HintsGiven != 0 {
		t.Errorf("fresh session has attempts=%d hints=%d", s.Attempts, s.HintsGiven)
	}
	if s.MistakeID != "m1" || s.DrillID != 42 {
		t.Errorf("session bindings wrong: %+v", s)
	}
}

func TestSubmitCorrectFirstTry(t *testing.T) {
	s, _ := NewSession("m1", 0, validQuestion())
	res, err := s.Submit("B")
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != OutcomeCorrect || !res.Correct {
		t.Errorf("outcome = %+v, want correct", res)
	}
	if res.AttemptsUsed != 1 {
		t.Errorf("AttemptsUsed = %d, want 1", res.AttemptsUsed)
	}
}

func TestSubmitWrongGivesOneHintPerMiss(t *testing.T) {
	s, _ := NewSession("m1", 0, validQuestion())

	res, err := s.Submit("A")
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != OutcomeIncorrect {
		t.Fatalf("outcome = %v, want incorrect", res.Outcome)
	}
	if res.Hint != "Velocity and acceleration are different things." {
		t.Errorf("hint = %q, want first hint", res.Hint)
	}
	if s.HintsGiven != 1 {
		t.Errorf("HintsGiven = %d, want 1", s.HintsGiven)
	}

	res, _ = s.Submit("C")
	if res.Hint != "What force acts at the peak?" {
		t.Errorf("second hint = %q", res.Hint)
	}
	if s.HintsGiven != 2 || s.HintsGiven > s.Attempts {
		t.Errorf("HintsGiven = %d with Attempts = %d", s.HintsGiven, s.Attempts)
	}
}

func TestSubmitNoHintWhenExhaustedSupply(t *testing.T) {
	q := validQuestion()
	q.Hints = []string{"only hint"}
	s, _ := NewSession("m1", 0, q)

	res, _ := s.Submit("A")
	if res.Hint != "only hint" {
		t.Fatalf("first miss hint = %q", res.Hint)
	}
	res, _ = s.Submit("C")
	if res.Hint != "" {
		t.Errorf("second miss hint = %q, want none left", res.Hint)
	}
	if s.HintsGiven != 1 {
		t.Errorf("HintsGiven = %d, want 1", s.HintsGiven)
	}
}

func TestThirdWrongExhausts(t *testing.T) {
	s, _ := NewSession("m1", 0, validQuestion())

	s.Submit("A")
	s.Submit("C")
	res, err := s.Submit("D")
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != OutcomeExhausted {
		t.Fatalf("outcome = %v, want exhausted", res.Outcome)
	}
	if res.CorrectOption != "B" || res.Solution == "" {
		t.Errorf("exhausted result missing reveal: %+v", res)
	}
	if !s.Exhausted() {
		t.Error("session not marked exhausted after 3 misses")
	}
}

func TestInvalidLetterConsumesNothing(t *testing.T) {
	s, _ := NewSession("m1", 0, validQuestion())
	s.Submit("A")

	for _, bad := range []string{"Z", "", "1", "AB"} {
		_, err := s.Submit(bad)
		var ia *InvalidAnswerError
		if !errors.As(err, &ia) {
			t.Fatalf("Submit(%q) err = %v, want *InvalidAnswerError", bad, err)
		}
	}
	if s.Attempts != 1 || s.HintsGiven != 1 {
		t.Errorf("invalid letters changed state: attempts=%d hints=%d", s.Attempts, s.HintsGiven)
	}
}

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct{ in, want string }{
		{"a", "A"},
		{"  b  ", "B"},
		{"C) Zero", "C"},
		{"option d", "D"},
		{"OPTION A", "A"},
		{"maybe B?", "M"}, // normalization only; Submit rejects M
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeAnswer(tt.in); got != tt.want {
			t.Errorf("NormalizeAnswer(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// A session must survive the JSON round trip through conversation state
// with attempt and hint counters intact.
func TestSessionRoundTrip(t *testing.T) {
	s, _ := NewSession("m1", 7, validQuestion())
	s.Submit("A")
	s.Submit("C")

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	var got Session
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}

	if got.Attempts != s.Attempts || got.HintsGiven != s.HintsGiven {
		t.Errorf("round trip lost counters: %+v", got)
	}
	if got.Question.Correct != "B" || got.MistakeID != "m1" || got.DrillID != 7 {
		t.Errorf("round trip lost bindings: %+v", got)
	}
}

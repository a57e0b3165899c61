// Package drill holds the state machine for one in-progress multiple-choice
// drill: a bound question, an attempt counter capped at three, and hint
// disclosure that trails the attempt count.
package drill

import (
	"fmt"
	"strings"
)

// MaxAttempts is the hard cap per question. The third wrong answer ends
// the session with a forced reveal.
const MaxAttempts = 3

// Letters are the valid answer options, in presentation order.
var Letters = []string{"A", "B", "C", "D"}

// Question is the content a session is built from. Produced by the drill
// generator or loaded from a pre-generated drill row; opaque to scheduling.
type Question struct {
	Text     string   `json:"text"`
	Options  []string `json:"options"` // exactly 4, A through D
	Correct  string   `json:"correct"` // "A".."D"
	Solution string   `json:"solution"`
	Hints    []string `json:"hints,omitempty"` // 0-3, revealed per wrong answer
}

// Option returns the option text for a letter, or "" for an unknown letter.
func (q Question) Option(letter string) string {
	for i, l := range Letters {
		if l == letter && i < len(q.Options) {
			return q.Options[i]
		}
	}
	return ""
}

// Session is the ephemeral state of one drill. It lives inside the user's
// conversation state and is JSON round-tripped between messages.
type Session struct {
	MistakeID  string   `json:"mistake_id"`
	DrillID    int      `json:"drill_id,omitempty"` // pre-generated drill row, 0 if LLM-generated live
	Question   Question `json:"question"`
	Attempts   int      `json:"attempts"`
	HintsGiven int      `json:"hints_given"`
}

// Outcome classifies the result of one answer submission.
type Outcome int

const (
	// OutcomeCorrect: right answer, session over.
	OutcomeCorrect Outcome = iota
	// OutcomeIncorrect: wrong answer with attempts left; a hint may follow.
	OutcomeIncorrect
	// OutcomeExhausted: third wrong answer; reveal and defer to tomorrow.
	OutcomeExhausted
)

// Result is the full outcome of one Submit call.
type Result struct {
	Outcome       Outcome
	Correct       bool
	AttemptsUsed  int    // attempts consumed including this one
	Hint          string // set on Incorrect when a hint is available
	CorrectOption string // set on Exhausted
	Solution      string // set on Exhausted
}

// NewSession validates question content and builds a fresh session.
// It requires exactly 4 non-empty options, a correct letter in A-D, and
// at most 3 hints; anything else is an *InvalidQuestionError.
func NewSession(mistakeID string, drillID int, q Question) (*Session, error) {
	if len(q.Options) != len(Letters) {
		return nil, &InvalidQuestionError{Reason: fmt.Sprintf("got %d options, want %d", len(q.Options), len(Letters))}
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return nil, &InvalidQuestionError{Reason: fmt.Sprintf("option %s is empty", Letters[i])}
		}
	}
	if !ValidLetter(q.Correct) {
		return nil, &InvalidQuestionError{Reason: fmt.Sprintf("correct option %q not in A-D", q.Correct)}
	}
	if strings.TrimSpace(q.Text) == "" {
		return nil, &InvalidQuestionError{Reason: "question text is empty"}
	}
	if len(q.Hints) > MaxAttempts {
		q.Hints = q.Hints[:MaxAttempts]
	}

	return &Session{
		MistakeID: mistakeID,
		DrillID:   drillID,
		Question:  q,
	}, nil
}

// Submit scores one answer letter. The letter must already be normalized
// (trimmed, uppercased, first character); a letter outside A-D returns an
// *InvalidAnswerError without consuming an attempt, logging an attempt row,
// or touching the review scheduler.
//
// Each successful Submit consumes exactly one attempt, so the caller must
// apply the review scheduler exactly once per successful call.
func (s *Session) Submit(letter string) (Result, error) {
	if !ValidLetter(letter) {
		return Result{}, &InvalidAnswerError{Letter: letter}
	}

	s.Attempts++
	correct := letter == s.Question.Correct

	if correct {
		return Result{
			Outcome:      OutcomeCorrect,
			Correct:      true,
			AttemptsUsed: s.Attempts,
		}, nil
	}

	if s.Attempts >= MaxAttempts {
		return Result{
			Outcome:       OutcomeExhausted,
			AttemptsUsed:  s.Attempts,
			CorrectOption: s.Question.Correct,
			Solution:      s.Question.Solution,
		}, nil
	}

	res := Result{
		Outcome:      OutcomeIncorrect,
		AttemptsUsed: s.Attempts,
	}
	// Reveal at most one new hint per miss, never more hints than were
	// supplied and never more than attempts made.
	if s.HintsGiven < len(s.Question.Hints) && s.HintsGiven < s.Attempts {
		res.Hint = s.Question.Hints[s.HintsGiven]
		s.HintsGiven++
	}
	return res, nil
}

// Exhausted reports whether the session has consumed all attempts.
func (s *Session) Exhausted() bool {
	return s.Attempts >= MaxAttempts
}

// ValidLetter reports whether letter is one of A-D.
func ValidLetter(letter string) bool {
	for _, l := range Letters {
		if l == letter {
			return true
		}
	}
	return false
}

// NormalizeAnswer reduces a raw reply to an answer letter candidate:
// trims, uppercases, strips an "OPTION" prefix, and keeps the first rune.
// Validation stays in Submit; this only normalizes.
func NormalizeAnswer(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.TrimSpace(strings.TrimPrefix(s, "OPTION"))
	if s == "" {
		return ""
	}
	return s[:1]
}

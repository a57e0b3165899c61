package conversation

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/guruji/internal/drill"
)

// Phase is where the user is in the conversation.
type Phase string

const (
	PhaseOnboarding Phase = "onboarding"
	PhaseIdle       Phase = "idle"
	PhaseDrilling   Phase = "drilling"
	PhaseStopped    Phase = "stopped"
)

// State is everything the router remembers about a user between messages.
// It is persisted as a single JSON blob and written back at most once per
// inbound message.
type State struct {
	Phase Phase `json:"phase"`

	// ActiveDrill is set exactly when Phase == PhaseDrilling.
	ActiveDrill *drill.Session `json:"active_drill,omitempty"`

	// Daily counters, reset lazily on the first message of a new day.
	QuestionsToday int       `json:"questions_today"`
	CorrectToday   int       `json:"correct_today"`
	CounterDate    time.Time `json:"counter_date"`

	LastIntent string    `json:"last_intent,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewState returns the state for a first-contact user.
func NewState(now time.Time) *State {
	return &State{
		Phase:       PhaseOnboarding,
		CounterDate: dateOf(now),
		UpdatedAt:   now,
	}
}

// StartDrill moves into the drilling phase. The session invariant (phase
// drilling iff an active session exists) is kept here rather than at the
// call sites.
func (s *State) StartDrill(sess *drill.Session, now time.Time) {
	s.Phase = PhaseDrilling
	s.ActiveDrill = sess
	s.UpdatedAt = now
}

// ClearDrill ends the drilling phase.
func (s *State) ClearDrill(now time.Time) {
	s.Phase = PhaseIdle
	s.ActiveDrill = nil
	s.UpdatedAt = now
}

// Rollover zeroes the daily counters when the stored date is not today.
// Called on every message load so counters never need a scheduled reset.
func (s *State) Rollover(now time.Time) {
	today := dateOf(now)
	if !s.CounterDate.Equal(today) {
		s.QuestionsToday = 0
		s.CorrectToday = 0
		s.CounterDate = today
	}
}

// CountAnswer records one scored answer in today's counters.
func (s *State) CountAnswer(correct bool) {
	s.QuestionsToday++
	if correct {
		s.CorrectToday++
	}
}

// Drilling reports whether a drill session is in progress.
func (s *State) Drilling() bool {
	return s.Phase == PhaseDrilling && s.ActiveDrill != nil
}

// Marshal serializes the state for storage.
func (s *State) Marshal() (json.RawMessage, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal conversation state: %w", err)
	}
	return b, nil
}

// UnmarshalState loads a stored blob. Unknown or corrupt blobs come back
// as an error; the router treats that as a fresh idle state rather than
// dropping the user.
func UnmarshalState(raw json.RawMessage) (*State, error) {
	var s State
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("unmarshal conversation state: %w", err)
	}
	// A drilling phase without a session cannot be acted on; normalize it.
	if s.Phase == PhaseDrilling && s.ActiveDrill == nil {
		s.Phase = PhaseIdle
	}
	return &s, nil
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

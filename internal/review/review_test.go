package review

import (
	"testing"
	"time"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestNewState(t *testing.T) {
	s := NewState(now)

	if s.Easiness != 2.5 {
		t.Errorf("Easiness = %v, want 2.5", s.Easiness)
	}
	if s.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", s.IntervalDays)
	}
	if s.Repetition != 0 || s.TimesDrilled != 0 || s.Mastered {
		t.Errorf("fresh state not zeroed: %+v", s)
	}
	if !s.NextReviewAt.Equal(now) {
		t.Errorf("NextReviewAt = %v, want now (due immediately)", s.NextReviewAt)
	}
}

func TestUpdateFirstCorrect(t *testing.T) {
	s := Update(NewState(now), true, now)

	if s.Repetition != 1 {
		t.Errorf("Repetition = %d, want 1", s.Repetition)
	}
	if s.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", s.IntervalDays)
	}
	if s.Easiness != 2.5 {
		t.Errorf("Easiness = %v, want 2.5 (clamped at ceiling)", s.Easiness)
	}
	if s.Mastered {
		t.Error("mastered after a single drill")
	}
	if want := now.AddDate(0, 0, 1); !s.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", s.NextReviewAt, want)
	}
}

func TestUpdateWrongResets(t *testing.T) {
	s := Update(NewState(now), true, now) // drilled=1, correct=1
	s = Update(s, false, now)

	if s.Repetition != 0 {
		t.Errorf("Repetition = %d, want 0 after a miss", s.Repetition)
	}
	if s.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1 after a miss", s.IntervalDays)
	}
	if s.Easiness != 2.3 {
		t.Errorf("Easiness = %v, want 2.3", s.Easiness)
	}
	if s.TimesDrilled != 2 || s.TimesCorrect != 1 {
		t.Errorf("counts = %d/%d, want 2/1", s.TimesCorrect, s.TimesDrilled)
	}
	if s.MasteryScore != 0.5 {
		t.Errorf("MasteryScore = %v, want 0.5", s.MasteryScore)
	}
	if s.Mastered {
		t.Error("mastered at 50% accuracy")
	}
}

// A miss always resets the interval to one day, even deep into the
// schedule. This is the punitive variant, not textbook SM-2.
func TestUpdateWrongIgnoresHistory(t *testing.T) {
	s := State{
		TimesDrilled: 10,
		TimesCorrect: 9,
		Easiness:     2.5,
		IntervalDays: 40,
		Repetition:   5,
	}
	s = Update(s, false, now)

	if s.Repetition != 0 || s.IntervalDays != 1 {
		t.Errorf("got repetition=%d interval=%d, want full reset", s.Repetition, s.IntervalDays)
	}
}

func TestUpdateIntervalLadder(t *testing.T) {
	s := NewState(now)

	s = Update(s, true, now)
	if s.IntervalDays != 1 {
		t.Fatalf("rep 1 interval = %d, want 1", s.IntervalDays)
	}
	s = Update(s, true, now)
	if s.IntervalDays != 6 {
		t.Fatalf("rep 2 interval = %d, want 6", s.IntervalDays)
	}
	s = Update(s, true, now)
	// round(6 * 2.5) = 15
	if s.IntervalDays != 15 {
		t.Fatalf("rep 3 interval = %d, want 15", s.IntervalDays)
	}
}

func TestMasteryTransition(t *testing.T) {
	s := NewState(now)

	s = Update(s, true, now)
	s = Update(s, true, now)
	if s.Mastered {
		t.Fatal("mastered with only 2 drills")
	}

	s = Update(s, true, now)
	if !s.Mastered {
		t.Fatal("not mastered at 3/3")
	}
	if s.MasteryScore != 1.0 {
		t.Errorf("MasteryScore = %v, want 1.0", s.MasteryScore)
	}
	if s.MasteredAt.IsZero() {
		t.Error("MasteredAt not set on transition")
	}

	// Mastery is monotonic and MasteredAt is written once.
	at := s.MasteredAt
	later := now.Add(48 * time.Hour)
	s = Update(s, false, later)
	if !s.Mastered {
		t.Error("mastery lost after a later miss")
	}
	if !s.MasteredAt.Equal(at) {
		t.Error("MasteredAt rewritten after it was set")
	}
}

func TestMasteryNeedsRatioAndCount(t *testing.T) {
	// 2 correct out of 3 is 66%: enough drills, not enough accuracy.
	s := NewState(now)
	s = Update(s, true, now)
	s = Update(s, false, now)
	s = Update(s, true, now)
	if s.Mastered {
		t.Errorf("mastered at score %v", s.MasteryScore)
	}

	// 4/5 = 80% crosses the line.
	s = Update(s, true, now)
	s = Update(s, true, now)
	if !s.Mastered {
		t.Errorf("not mastered at score %v over %d drills", s.MasteryScore, s.TimesDrilled)
	}
}

func TestEasinessAlwaysInRange(t *testing.T) {
	for _, ef := range []float64{-3, 0, 1.0, 1.3, 1.35, 2.5, 3.1, 100} {
		for _, correct := range []bool{true, false} {
			s := State{Easiness: ef, IntervalDays: 1}
			got := Update(s, correct, now).Easiness
			if got < MinEasiness || got > MaxEasiness {
				t.Errorf("Update(ef=%v, correct=%v).Easiness = %v, out of [1.3, 2.5]", ef, correct, got)
			}
		}
	}
}

func TestUpdateIsPure(t *testing.T) {
	s := State{TimesDrilled: 4, TimesCorrect: 2, Easiness: 2.0, IntervalDays: 6, Repetition: 2}
	before := s

	a := Update(s, true, now)
	b := Update(s, true, now)

	if s != before {
		t.Error("Update mutated its input")
	}
	if a != b {
		t.Error("Update is not deterministic for the same snapshot and signal")
	}
}

func TestNextDue(t *testing.T) {
	cands := []Candidate{
		{ID: "c", NextReviewAt: now.Add(-time.Hour)},
		{ID: "a", NextReviewAt: now.Add(-time.Hour)},
		{ID: "b", NextReviewAt: now.Add(-2 * time.Hour)},
		{ID: "mastered", Mastered: true, NextReviewAt: now.Add(-90 * time.Hour)},
		{ID: "future", NextReviewAt: now.Add(time.Hour)},
	}

	id, ok := NextDue(cands, now)
	if !ok || id != "b" {
		t.Fatalf("NextDue = %q, %v; want \"b\", true", id, ok)
	}

	// Stable: same input, same answer.
	id2, _ := NextDue(cands, now)
	if id2 != id {
		t.Errorf("NextDue not stable: %q then %q", id, id2)
	}
}

func TestNextDueTieBreaksOnID(t *testing.T) {
	at := now.Add(-time.Minute)
	id, ok := NextDue([]Candidate{
		{ID: "m2", NextReviewAt: at},
		{ID: "m1", NextReviewAt: at},
	}, now)
	if !ok || id != "m1" {
		t.Errorf("NextDue = %q, want m1 on tie", id)
	}
}

func TestNextDueNoneDue(t *testing.T) {
	if _, ok := NextDue([]Candidate{{ID: "x", NextReviewAt: now.Add(time.Minute)}}, now); ok {
		t.Error("NextDue returned a candidate that is not yet due")
	}
	if _, ok := NextDue(nil, now); ok {
		t.Error("NextDue returned a candidate from an empty list")
	}
}

// A candidate due exactly now is due.
func TestNextDueBoundary(t *testing.T) {
	id, ok := NextDue([]Candidate{{ID: "edge", NextReviewAt: now}}, now)
	if !ok || id != "edge" {
		t.Errorf("candidate due exactly now not selected: %q, %v", id, ok)
	}
}

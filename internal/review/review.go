package review

import (
	"math"
	"time"
)

// Easiness factor bounds. The factor never leaves this range no matter
// what the stored row contains; out-of-range input is clamped, not rejected.
const (
	MinEasiness     = 1.3
	MaxEasiness     = 2.5
	InitialEasiness = 2.5
)

// InitialIntervalDays is the review interval for a freshly reported mistake.
const InitialIntervalDays = 1

// Mastery requires sustained correctness: at least MasteryMinDrills
// attempts with a correct ratio of MasteryThreshold or better.
const (
	MasteryThreshold = 0.8
	MasteryMinDrills = 3
)

// State is the scheduling state of one mistake. It is a value: Update
// returns a new State and never touches the input.
type State struct {
	TimesDrilled int       `json:"times_drilled"`
	TimesCorrect int       `json:"times_correct"`
	MasteryScore float64   `json:"mastery_score"`
	Mastered     bool      `json:"is_mastered"`
	MasteredAt   time.Time `json:"mastered_at,omitzero"`
	Easiness     float64   `json:"easiness_factor"`
	IntervalDays int       `json:"interval_days"`
	Repetition   int       `json:"repetition_count"`
	NextReviewAt time.Time `json:"next_review_at"`
}

// NewState returns the scheduling state for a just-reported mistake:
// due immediately, default easiness, one-day base interval.
func NewState(now time.Time) State {
	return State{
		Easiness:     InitialEasiness,
		IntervalDays: InitialIntervalDays,
		NextReviewAt: now,
	}
}

// Update applies one pass/fail signal and returns the next state.
//
// This is an SM-2 variant with two deliberate deviations: a wrong answer
// resets repetition to zero and the interval to one day regardless of
// history (standard SM-2 keeps some of it), and mastery is a separate
// ratio threshold on top of the interval schedule. Keep both as they are.
func Update(s State, correct bool, now time.Time) State {
	next := s

	next.TimesDrilled = s.TimesDrilled + 1
	if correct {
		next.TimesCorrect = s.TimesCorrect + 1
	}

	ef := clampEasiness(s.Easiness)
	if correct {
		ef += 0.1
	} else {
		ef -= 0.2
	}
	next.Easiness = clampEasiness(ef)

	if correct {
		next.Repetition = s.Repetition + 1
		switch next.Repetition {
		case 1:
			next.IntervalDays = 1
		case 2:
			next.IntervalDays = 6
		default:
			next.IntervalDays = roundInterval(float64(s.IntervalDays) * next.Easiness)
		}
	} else {
		next.Repetition = 0
		next.IntervalDays = 1
	}

	next.MasteryScore = float64(next.TimesCorrect) / float64(next.TimesDrilled)

	// Mastery is monotonic: once set it survives any later failures, and
	// MasteredAt is only written on the false -> true transition.
	if !s.Mastered && next.MasteryScore >= MasteryThreshold && next.TimesDrilled >= MasteryMinDrills {
		next.Mastered = true
		next.MasteredAt = now
	}

	next.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)

	return next
}

func clampEasiness(ef float64) float64 {
	if ef < MinEasiness {
		return MinEasiness
	}
	if ef > MaxEasiness {
		return MaxEasiness
	}
	return ef
}

func roundInterval(days float64) int {
	n := int(math.Round(days))
	if n < 1 {
		return 1
	}
	return n
}

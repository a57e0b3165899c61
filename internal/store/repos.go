package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/abhisek/guruji/internal/drill"
	"github.com/abhisek/guruji/internal/review"
)

// ErrNotFound is returned when a requested record does not exist.
// Callers degrade to a safe default response instead of retrying.
var ErrNotFound = errors.New("store: not found")

// User is one learner.
type User struct {
	ID            string
	PhoneNumber   string
	Name          string
	IsActive      bool
	CurrentStreak int
	LongestStreak int
	LastMessageAt time.Time
	LastActiveAt  time.Time
	CreatedAt     time.Time
}

// Mistake is one tracked misconception plus its scheduling state.
type Mistake struct {
	ID            string
	UserID        string
	Subject       string
	Chapter       string
	Topic         string
	MistakeType   string
	Misconception string
	ReportedText  string
	Review        review.State
	LastDrilledAt time.Time
	CreatedAt     time.Time
}

// Candidate converts a mistake to the review package's due-selection input.
func (m *Mistake) Candidate() review.Candidate {
	return review.Candidate{
		ID:           m.ID,
		Mastered:     m.Review.Mastered,
		NextReviewAt: m.Review.NextReviewAt,
	}
}

// Drill is one stored pre-generated question.
type Drill struct {
	ID         int
	MistakeID  string
	Question   drill.Question
	Difficulty int
	OrderIndex int
	IsUsed     bool
	CreatedAt  time.Time
}

// Attempt is one answer submission, append-only.
type Attempt struct {
	UserID        string
	MistakeID     string
	DrillID       int // 0 when the question was generated live
	StudentAnswer string
	CorrectAnswer string
	IsCorrect     bool
	HintsUsed     int
}

// LLMRequestEventData captures one LLM API call for the audit log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored audit row.
type LLMRequestEvent struct {
	ID int
	LLMRequestEventData
	CreatedAt time.Time
}

// UserRepo manages learner records.
type UserRepo interface {
	// GetOrCreate returns the user for a phone number, creating one on
	// first contact. The second result is true when the user was created.
	GetOrCreate(ctx context.Context, phoneNumber string) (*User, bool, error)
	Get(ctx context.Context, id string) (*User, error)
	// GetByPhone looks up without creating; ErrNotFound for strangers.
	GetByPhone(ctx context.Context, phoneNumber string) (*User, error)
	SetName(ctx context.Context, id, name string) error
	SetActive(ctx context.Context, id string, active bool) error
	// TouchLastMessage records an inbound contact for the 24-hour window.
	TouchLastMessage(ctx context.Context, id string, at time.Time) error
	// BumpStreak increments the streak (and longest when passed) or resets
	// it to zero. Returns the new streak.
	BumpStreak(ctx context.Context, id string, increment bool) (int, error)
	// ListInactiveSince returns active users whose last activity predates
	// cutoff; the nudge runner's audience.
	ListInactiveSince(ctx context.Context, cutoff time.Time) ([]*User, error)
}

// MistakeRepo manages mistakes and their scheduling state. ApplyReview is
// the only writer of scheduling fields, and it writes them together with
// the attempt row in one transaction.
type MistakeRepo interface {
	Create(ctx context.Context, m *Mistake) (*Mistake, error)
	Get(ctx context.Context, id string) (*Mistake, error)
	// Due returns the user's unmastered mistakes with next_review_at <= now,
	// ordered by next_review_at then id.
	Due(ctx context.Context, userID string, now time.Time) ([]*Mistake, error)
	// PendingCount counts unmastered mistakes regardless of due time.
	PendingCount(ctx context.Context, userID string) (int, error)
	// Counts returns (total, mastered) for the stats card.
	Counts(ctx context.Context, userID string) (int, int, error)
	// ApplyReview persists all scheduler-computed fields and appends the
	// attempt row atomically: both or neither.
	ApplyReview(ctx context.Context, mistakeID string, st review.State, att *Attempt, drilledAt time.Time) error
	// IDsNeedingDrills lists unmastered mistakes with no unused
	// pre-generated drill, oldest first, for the background sweep.
	IDsNeedingDrills(ctx context.Context, limit int) ([]string, error)
}

// DrillRepo manages pre-generated drill questions.
type DrillRepo interface {
	SaveGenerated(ctx context.Context, mistakeID string, q drill.Question, difficulty, orderIndex int) (int, error)
	// NextUnused returns the lowest order_index unused drill for a mistake,
	// or ErrNotFound.
	NextUnused(ctx context.Context, mistakeID string) (*Drill, error)
	MarkUsed(ctx context.Context, id int, at time.Time) error
}

// AttemptRepo reads the append-only attempt log. Writes happen through
// MistakeRepo.ApplyReview so they share the scheduler's transaction.
type AttemptRepo interface {
	// CountSince returns (total, correct) attempts since the given time.
	CountSince(ctx context.Context, userID string, since time.Time) (int, int, error)
}

// MessageRepo records message history and provides the dedup guard.
type MessageRepo interface {
	// RecordInbound inserts the inbound message keyed by the provider
	// message id. It is an atomic insert-if-absent: the returned bool is
	// true when the id was already recorded, in which case nothing was
	// written and the caller must drop the message.
	RecordInbound(ctx context.Context, userID, body, msgType, providerMsgID string) (bool, error)
	RecordOutbound(ctx context.Context, userID, body string) error
}

// StateRepo persists conversation state as one opaque blob per user,
// upserted wholesale.
type StateRepo interface {
	Get(ctx context.Context, userID string) (json.RawMessage, error)
	Upsert(ctx context.Context, userID string, data json.RawMessage) error
}

// EventRepo is the LLM request audit log.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, limit int) ([]*LLMRequestEvent, error)
}

// Repos bundles every repository. Constructed by Store.Repos in production
// and by hand-written mocks in tests.
type Repos struct {
	Users    UserRepo
	Mistakes MistakeRepo
	Drills   DrillRepo
	Attempts AttemptRepo
	Messages MessageRepo
	States   StateRepo
	Events   EventRepo
}

package nudge

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/guruji/internal/drill"
	"github.com/abhisek/guruji/internal/drillgen"
	"github.com/abhisek/guruji/internal/llm"
	"github.com/abhisek/guruji/internal/review"
	"github.com/abhisek/guruji/internal/store"
)

var testNow = time.Date(2026, 3, 10, 12, 30, 0, 0, time.UTC)

type stubUsers struct {
	store.UserRepo
	inactive []*store.User
}

func (s *stubUsers) ListInactiveSince(context.Context, time.Time) ([]*store.User, error) {
	return s.inactive, nil
}

type stubMistakes struct {
	store.MistakeRepo
	pending map[string]int
	byID    map[string]*store.Mistake
	needing []string
}

func (s *stubMistakes) PendingCount(_ context.Context, userID string) (int, error) {
	return s.pending[userID], nil
}

func (s *stubMistakes) Get(_ context.Context, id string) (*store.Mistake, error) {
	m, ok := s.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return m, nil
}

func (s *stubMistakes) IDsNeedingDrills(context.Context, int) ([]string, error) {
	return s.needing, nil
}

type stubDrills struct {
	store.DrillRepo
	saved []string
}

func (s *stubDrills) SaveGenerated(_ context.Context, mistakeID string, _ drill.Question, _, _ int) (int, error) {
	s.saved = append(s.saved, mistakeID)
	return len(s.saved), nil
}

type stubMessages struct {
	store.MessageRepo
	outbound []string
}

func (s *stubMessages) RecordOutbound(_ context.Context, _, body string) error {
	s.outbound = append(s.outbound, body)
	return nil
}

type stubSender struct {
	to   []string
	sent []string
}

func (s *stubSender) SendText(_ context.Context, to, text string) error {
	s.to = append(s.to, to)
	s.sent = append(s.sent, text)
	return nil
}

func testRunner(users *stubUsers, mistakes *stubMistakes, drills *stubDrills, msgs *stubMessages, snd *stubSender, gen *drillgen.Generator) *Runner {
	repos := store.Repos{
		Users:    users,
		Mistakes: mistakes,
		Drills:   drills,
		Messages: msgs,
	}
	r := NewRunner(repos, snd, gen, DefaultConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.now = func() time.Time { return testNow }
	return r
}

func TestDailyNudgeTargeting(t *testing.T) {
	users := &stubUsers{inactive: []*store.User{
		{ID: "u1", PhoneNumber: "911", Name: "Arjun", CurrentStreak: 4, LastMessageAt: testNow.Add(-2 * time.Hour)},
		{ID: "u2", PhoneNumber: "912", Name: "Meera", LastMessageAt: testNow.Add(-30 * time.Hour)}, // window closed
		{ID: "u3", PhoneNumber: "913", Name: "Dev", LastMessageAt: testNow.Add(-time.Hour)},        // nothing pending
	}}
	mistakes := &stubMistakes{pending: map[string]int{"u1": 5, "u2": 2, "u3": 0}}
	msgs := &stubMessages{}
	snd := &stubSender{}

	r := testRunner(users, mistakes, &stubDrills{}, msgs, snd, nil)
	r.sendDailyNudges(context.Background(), testNow)

	if len(snd.sent) != 1 {
		t.Fatalf("sent %d nudges, want 1: %v", len(snd.sent), snd.to)
	}
	if snd.to[0] != "911" {
		t.Errorf("nudged %q", snd.to[0])
	}
	if !strings.Contains(snd.sent[0], "4-day streak") || !strings.Contains(snd.sent[0], "5 mistakes") {
		t.Errorf("nudge text = %q", snd.sent[0])
	}
	if len(msgs.outbound) != 1 {
		t.Errorf("outbound history rows = %d, want 1", len(msgs.outbound))
	}
}

func TestStreakWarningsSkipShortStreaks(t *testing.T) {
	users := &stubUsers{inactive: []*store.User{
		{ID: "u1", PhoneNumber: "911", Name: "Arjun", CurrentStreak: 6, LastMessageAt: testNow.Add(-time.Hour)},
		{ID: "u2", PhoneNumber: "912", Name: "Meera", CurrentStreak: 1, LastMessageAt: testNow.Add(-time.Hour)},
	}}

	snd := &stubSender{}
	r := testRunner(users, &stubMistakes{}, &stubDrills{}, &stubMessages{}, snd, nil)
	r.sendStreakWarnings(context.Background(), testNow)

	if len(snd.sent) != 1 {
		t.Fatalf("sent %d warnings, want 1", len(snd.sent))
	}
	if !strings.Contains(snd.sent[0], "6-day streak") {
		t.Errorf("warning text = %q", snd.sent[0])
	}
}

func TestPregenerateSavesDrills(t *testing.T) {
	genJSON := `{
		"question_text": "Which way does friction act on a block sliding down?",
		"options": ["Up the incline", "Down the incline", "Into the surface", "Zero"],
		"correct_option": "A",
		"solution": "Kinetic friction opposes relative sliding, so it points up the incline.",
		"hints": ["Friction opposes relative motion."]
	}`
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(genJSON)},
		llm.MockResponse{Content: json.RawMessage(genJSON)},
	)
	gen := drillgen.New(provider, drillgen.DefaultConfig())

	mistakes := &stubMistakes{
		needing: []string{"m1", "m2"},
		byID: map[string]*store.Mistake{
			"m1": {ID: "m1", Subject: "physics", Misconception: "x", Review: review.State{TimesDrilled: 0}},
			"m2": {ID: "m2", Subject: "physics", Misconception: "y", Review: review.State{TimesDrilled: 5}},
		},
	}
	drills := &stubDrills{}

	r := testRunner(&stubUsers{}, mistakes, drills, &stubMessages{}, &stubSender{}, gen)
	r.pregenerate(context.Background())

	if len(drills.saved) != 2 {
		t.Fatalf("saved %d drills, want 2", len(drills.saved))
	}
}

func TestDifficultyRamp(t *testing.T) {
	cases := []struct{ drilled, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 2}, {4, 3}, {10, 3},
	}
	for _, tc := range cases {
		if got := difficultyFor(tc.drilled); got != tc.want {
			t.Errorf("difficultyFor(%d) = %d, want %d", tc.drilled, got, tc.want)
		}
	}
}

func TestSessionWindow(t *testing.T) {
	if withinSessionWindow(time.Time{}, testNow) {
		t.Error("zero last message treated as in-window")
	}
	if !withinSessionWindow(testNow.Add(-23*time.Hour), testNow) {
		t.Error("23h ago should be in-window")
	}
	if withinSessionWindow(testNow.Add(-25*time.Hour), testNow) {
		t.Error("25h ago should be out of window")
	}
}

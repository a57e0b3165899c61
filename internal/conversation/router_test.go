package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/guruji/internal/classify"
	"github.com/abhisek/guruji/internal/drill"
	"github.com/abhisek/guruji/internal/drillgen"
	"github.com/abhisek/guruji/internal/intent"
	"github.com/abhisek/guruji/internal/llm"
	"github.com/abhisek/guruji/internal/review"
	"github.com/abhisek/guruji/internal/store"
)

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

const testPhone = "919876543210"

func testRouter(fx *fixture, intentProvider, genProvider llm.Provider) *Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRouter(
		fx.repos(),
		intent.NewClassifier(intentProvider),
		classify.NewClassifier(nil, classify.DefaultClassifierConfig()),
		drillgen.New(genProvider, drillgen.DefaultConfig()),
		logger,
	)
	r.now = func() time.Time { return testNow }
	return r
}

var msgSeq int

func send(t *testing.T, r *Router, body string) string {
	t.Helper()
	msgSeq++
	reply, err := r.HandleMessage(context.Background(), Inbound{
		PhoneNumber:   testPhone,
		Body:          body,
		MsgType:       "text",
		ProviderMsgID: fmt.Sprintf("wamid-%d", msgSeq),
	})
	if err != nil {
		t.Fatalf("HandleMessage(%q): %v", body, err)
	}
	return reply
}

// onboard runs a user through name collection so tests start from idle.
func onboard(t *testing.T, r *Router) {
	t.Helper()
	send(t, r, "hi")
	send(t, r, "Arjun")
}

func testQuestion() drill.Question {
	return drill.Question{
		Text:     "A ball is thrown straight up. At the top of its flight, its acceleration is?",
		Options:  []string{"Zero", "9.8 m/s^2 downward", "9.8 m/s^2 upward", "Depends on speed"},
		Correct:  "B",
		Solution: "Gravity acts throughout the flight, so the acceleration stays 9.8 m/s^2 downward even when velocity is momentarily zero.",
		Hints:    []string{"What force acts on the ball at the top?", "Velocity and acceleration are different things."},
	}
}

// seedDueMistake creates a mistake due now with one stored drill.
func seedDueMistake(t *testing.T, fx *fixture, userID string) string {
	t.Helper()
	m, err := fx.mistakes.Create(context.Background(), &store.Mistake{
		UserID:        userID,
		Subject:       "physics",
		Chapter:       "Kinematics",
		Topic:         "Projectile motion",
		MistakeType:   "conceptual",
		Misconception: "Thinks acceleration is zero at the peak",
		Review:        review.NewState(testNow.Add(-24 * time.Hour)),
	})
	if err != nil {
		t.Fatalf("seed mistake: %v", err)
	}
	if _, err := fx.drills.SaveGenerated(context.Background(), m.ID, testQuestion(), 2, 0); err != nil {
		t.Fatalf("seed drill: %v", err)
	}
	return m.ID
}

func TestOnboardingFlow(t *testing.T) {
	fx := newFixture()
	r := testRouter(fx, nil, nil)

	got := send(t, r, "hi")
	if !strings.Contains(got, "what should I call you") {
		t.Errorf("greeting reply = %q", got)
	}

	got = send(t, r, "Arjun")
	if !strings.Contains(got, "Welcome Arjun") {
		t.Errorf("onboarding reply = %q", got)
	}

	u := fx.users.byPhone[testPhone]
	if u.Name != "Arjun" {
		t.Errorf("stored name = %q", u.Name)
	}
}

func TestOnboardingRejectsCommandsAsNames(t *testing.T) {
	fx := newFixture()
	r := testRouter(fx, nil, nil)
	send(t, r, "hi")

	send(t, r, "STATS")
	if got := fx.users.byPhone[testPhone].Name; got != "" {
		t.Errorf("command captured as name: %q", got)
	}

	if got := send(t, r, "X"); got != replyAskName() {
		t.Errorf("single-letter name reply = %q", got)
	}
}

func TestDuplicateMessageDropped(t *testing.T) {
	fx := newFixture()
	r := testRouter(fx, nil, nil)
	onboard(t, r)
	seedDueMistake(t, fx, fx.users.byPhone[testPhone].ID)
	send(t, r, "go")

	in := Inbound{
		PhoneNumber:   testPhone,
		Body:          "B",
		MsgType:       "text",
		ProviderMsgID: "dup-1",
	}
	first, err := r.HandleMessage(context.Background(), in)
	if err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	if first == "" {
		t.Fatal("first delivery should get a reply")
	}

	second, err := r.HandleMessage(context.Background(), in)
	if err != nil {
		t.Fatalf("second delivery: %v", err)
	}
	if second != "" {
		t.Errorf("duplicate delivery replied: %q", second)
	}
	if n := len(fx.mistakes.applied); n != 1 {
		t.Errorf("ApplyReview ran %d times, want 1", n)
	}
}

func TestConcurrentDuplicateDeliveries(t *testing.T) {
	fx := newFixture()
	r := testRouter(fx, nil, nil)
	onboard(t, r)
	seedDueMistake(t, fx, fx.users.byPhone[testPhone].ID)
	send(t, r, "go")

	writesBefore := fx.states.writes
	outboundBefore := len(fx.messages.outbound)
	in := Inbound{
		PhoneNumber:   testPhone,
		Body:          "B",
		MsgType:       "text",
		ProviderMsgID: "dup-race-1",
	}

	replies := make(chan string, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reply, err := r.HandleMessage(context.Background(), in)
			if err != nil {
				t.Errorf("HandleMessage: %v", err)
			}
			replies <- reply
		}()
	}
	wg.Wait()
	close(replies)

	nonEmpty := 0
	for reply := range replies {
		if reply != "" {
			nonEmpty++
		}
	}
	if nonEmpty != 1 {
		t.Errorf("%d deliveries replied, want exactly 1", nonEmpty)
	}
	if n := len(fx.mistakes.applied); n != 1 {
		t.Errorf("ApplyReview ran %d times, want 1", n)
	}
	if got := fx.states.writes - writesBefore; got != 1 {
		t.Errorf("state written %d times, want 1", got)
	}
	if got := len(fx.messages.outbound) - outboundBefore; got != 1 {
		t.Errorf("%d outbound messages recorded, want 1", got)
	}
}

func TestFailedReviewWriteDoesNotBurnAttempt(t *testing.T) {
	fx := newFixture()
	r := testRouter(fx, nil, nil)
	onboard(t, r)
	seedDueMistake(t, fx, fx.users.byPhone[testPhone].ID)
	send(t, r, "go")

	fx.mistakes.applyErr = errors.New("database is locked")
	if got := send(t, r, "A"); got != replyError() {
		t.Errorf("reply = %q", got)
	}
	if n := len(fx.mistakes.applied); n != 0 {
		t.Fatalf("ApplyReview recorded %d updates after a failed write, want 0", n)
	}

	// The persisted session is untouched: no attempt spent, no hint shown,
	// no answer counted.
	raw := fx.states.byUser[fx.users.byPhone[testPhone].ID]
	st, err := UnmarshalState(raw)
	if err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if !st.Drilling() || st.ActiveDrill.Attempts != 0 || st.ActiveDrill.HintsGiven != 0 {
		t.Errorf("persisted session = %+v, want untouched", st.ActiveDrill)
	}
	if st.QuestionsToday != 0 {
		t.Errorf("QuestionsToday = %d, want 0", st.QuestionsToday)
	}

	// Retrying the same answer succeeds and consumes exactly one attempt.
	if got := send(t, r, "A"); !strings.Contains(got, "*Hint:*") {
		t.Errorf("retry reply = %q", got)
	}
	if n := len(fx.mistakes.applied); n != 1 {
		t.Errorf("ApplyReview ran %d times after retry, want 1", n)
	}
	raw = fx.states.byUser[fx.users.byPhone[testPhone].ID]
	st, err = UnmarshalState(raw)
	if err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if st.ActiveDrill.Attempts != 1 || st.ActiveDrill.HintsGiven != 1 {
		t.Errorf("session after retry = %+v", st.ActiveDrill)
	}
}

func TestStartDrillUsesStoredQuestion(t *testing.T) {
	fx := newFixture()
	r := testRouter(fx, nil, nil)
	onboard(t, r)
	seedDueMistake(t, fx, fx.users.byPhone[testPhone].ID)

	got := send(t, r, "go")
	if !strings.Contains(got, "A ball is thrown straight up") {
		t.Errorf("drill reply missing question: %q", got)
	}
	if !strings.Contains(got, "*Drilling:* Projectile motion") {
		t.Errorf("drill reply missing topic header: %q", got)
	}
	if !fx.drills.byID[1].IsUsed {
		t.Error("stored drill not marked used")
	}
}

func TestStartDrillNothingTracked(t *testing.T) {
	fx := newFixture()
	r := testRouter(fx, nil, nil)
	onboard(t, r)

	if got := send(t, r, "go"); got != replyNothingToDrill() {
		t.Errorf("reply = %q", got)
	}
}

func TestStartDrillNoneDueYet(t *testing.T) {
	fx := newFixture()
	r := testRouter(fx, nil, nil)
	onboard(t, r)

	st := review.NewState(testNow)
	st.NextReviewAt = testNow.Add(48 * time.Hour)
	fx.mistakes.Create(context.Background(), &store.Mistake{
		UserID: fx.users.byPhone[testPhone].ID,
		Review: st,
	})

	got := send(t, r, "go")
	if !strings.Contains(got, "none are due for review yet") {
		t.Errorf("reply = %q", got)
	}
}

func TestStartDrillLiveGeneration(t *testing.T) {
	genJSON := `{
		"question_text": "Generated: net force on a block at constant velocity?",
		"options": ["Zero", "Forward", "Backward", "Upward"],
		"correct_option": "A",
		"solution": "Constant velocity means zero net force.",
		"hints": ["Think about acceleration."]
	}`
	gen := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(genJSON)})

	fx := newFixture()
	r := testRouter(fx, nil, gen)
	onboard(t, r)

	// Due mistake without any stored drill forces live generation.
	fx.mistakes.Create(context.Background(), &store.Mistake{
		UserID:        fx.users.byPhone[testPhone].ID,
		Topic:         "Laws of Motion",
		Misconception: "Motion needs force",
		Review:        review.NewState(testNow.Add(-time.Hour)),
	})

	got := send(t, r, "go")
	if !strings.Contains(got, "Generated: net force") {
		t.Errorf("reply = %q", got)
	}
}

func TestAnswerCorrectFirstTry(t *testing.T) {
	fx := newFixture()
	r := testRouter(fx, nil, nil)
	onboard(t, r)
	mistakeID := seedDueMistake(t, fx, fx.users.byPhone[testPhone].ID)
	send(t, r, "go")

	got := send(t, r, "B")
	if !strings.Contains(got, "Correct!") {
		t.Errorf("reply = %q", got)
	}

	if n := len(fx.mistakes.applied); n != 1 {
		t.Fatalf("ApplyReview ran %d times, want 1", n)
	}
	applied := fx.mistakes.applied[0]
	if applied.mistakeID != mistakeID {
		t.Errorf("applied to %q", applied.mistakeID)
	}
	if !applied.attempt.IsCorrect || applied.attempt.StudentAnswer != "B" {
		t.Errorf("attempt = %+v", applied.attempt)
	}
	if applied.state.Repetition != 1 || applied.state.TimesCorrect != 1 {
		t.Errorf("review state = %+v", applied.state)
	}
	if fx.users.byPhone[testPhone].CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1", fx.users.byPhone[testPhone].CurrentStreak)
	}

	// Session must be gone: another letter is no longer an answer.
	if got := send(t, r, "D"); strings.Contains(got, "Correct") || strings.Contains(got, "Hint") {
		t.Errorf("drill still active after correct answer: %q", got)
	}
}

func TestAnswerWrongThreeTimesRevealsSolution(t *testing.T) {
	fx := newFixture()
	r := testRouter(fx, nil, nil)
	onboard(t, r)
	seedDueMistake(t, fx, fx.users.byPhone[testPhone].ID)
	send(t, r, "go")

	first := send(t, r, "A")
	if !strings.Contains(first, "What force acts on the ball at the top?") {
		t.Errorf("first miss should carry hint 1: %q", first)
	}

	second := send(t, r, "C")
	if !strings.Contains(second, "Velocity and acceleration are different") {
		t.Errorf("second miss should carry hint 2: %q", second)
	}

	third := send(t, r, "D")
	if !strings.Contains(third, "The answer was *B*") || !strings.Contains(third, "*Solution:*") {
		t.Errorf("exhaustion should reveal answer and solution: %q", third)
	}

	if n := len(fx.mistakes.applied); n != 3 {
		t.Errorf("ApplyReview ran %d times, want 3 (one per scored attempt)", n)
	}
	for i, a := range fx.mistakes.applied {
		if a.attempt.IsCorrect {
			t.Errorf("attempt %d recorded as correct", i)
		}
		if a.state.Repetition != 0 || a.state.IntervalDays != 1 {
			t.Errorf("attempt %d: wrong answer must reset schedule, got %+v", i, a.state)
		}
	}
}

func TestInvalidLetterConsumesNothing(t *testing.T) {
	// LLM classifies a non-letter message as an answer; the state machine
	// must reject it without spending an attempt.
	intents := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"intent":"ANSWER_DRILL","confidence":0.9}`),
	})

	fx := newFixture()
	r := testRouter(fx, intents, nil)
	onboard(t, r)
	seedDueMistake(t, fx, fx.users.byPhone[testPhone].ID)
	send(t, r, "go")

	got := send(t, r, "zebra")
	if got != replyPickALetter() {
		t.Errorf("reply = %q", got)
	}
	if n := len(fx.mistakes.applied); n != 0 {
		t.Errorf("invalid letter triggered %d review updates", n)
	}

	// The session is intact with all three attempts left.
	raw := fx.states.byUser[fx.users.byPhone[testPhone].ID]
	st, err := UnmarshalState(raw)
	if err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if !st.Drilling() || st.ActiveDrill.Attempts != 0 {
		t.Errorf("session disturbed: %+v", st.ActiveDrill)
	}
}

func TestStopSilencesUntilStart(t *testing.T) {
	fx := newFixture()
	r := testRouter(fx, nil, nil)
	onboard(t, r)

	if got := send(t, r, "stop"); !strings.Contains(got, "unsubscribed") {
		t.Errorf("stop reply = %q", got)
	}
	if fx.users.byPhone[testPhone].IsActive {
		t.Error("user still active after STOP")
	}

	if got := send(t, r, "hello?"); got != "" {
		t.Errorf("stopped user got a reply: %q", got)
	}
	if got := send(t, r, "go"); got != "" {
		t.Errorf("stopped user got a reply to a command: %q", got)
	}

	if got := send(t, r, "START"); !strings.Contains(got, "Welcome back") {
		t.Errorf("START reply = %q", got)
	}
	if !fx.users.byPhone[testPhone].IsActive {
		t.Error("user not reactivated by START")
	}
}

func TestStatsReply(t *testing.T) {
	fx := newFixture()
	r := testRouter(fx, nil, nil)
	onboard(t, r)
	seedDueMistake(t, fx, fx.users.byPhone[testPhone].ID)
	send(t, r, "go")
	send(t, r, "B")

	got := send(t, r, "stats")
	if !strings.Contains(got, "*Arjun's Progress*") {
		t.Errorf("stats reply = %q", got)
	}
	if !strings.Contains(got, "Questions: 1") || !strings.Contains(got, "Correct: 1") {
		t.Errorf("daily counters missing: %q", got)
	}
	if !strings.Contains(got, "Accuracy: 100%") {
		t.Errorf("accuracy missing: %q", got)
	}
}

func TestReportMistakeWithoutModel(t *testing.T) {
	// No classify provider: intake still succeeds with the generic bucket.
	intents := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"intent":"REPORT_MISTAKE","confidence":0.95}`),
	})

	fx := newFixture()
	r := testRouter(fx, intents, nil)
	onboard(t, r)

	got := send(t, r, "I keep flipping signs in work-energy problems")
	if !strings.Contains(got, "Logged your mistake") {
		t.Errorf("reply = %q", got)
	}
	if len(fx.mistakes.byID) != 1 {
		t.Fatalf("mistakes stored = %d, want 1", len(fx.mistakes.byID))
	}
	for _, m := range fx.mistakes.byID {
		if m.ReportedText != "I keep flipping signs in work-energy problems" {
			t.Errorf("ReportedText = %q", m.ReportedText)
		}
		if m.Review.Easiness != review.InitialEasiness {
			t.Errorf("new mistake Easiness = %v", m.Review.Easiness)
		}
	}
}

func TestOneStateWritePerMessage(t *testing.T) {
	fx := newFixture()
	r := testRouter(fx, nil, nil)

	send(t, r, "hi")
	if fx.states.writes != 1 {
		t.Errorf("state writes = %d, want 1", fx.states.writes)
	}
	send(t, r, "Arjun")
	if fx.states.writes != 2 {
		t.Errorf("state writes = %d, want 2", fx.states.writes)
	}
}

func TestSessionSurvivesStateRoundTrip(t *testing.T) {
	fx := newFixture()
	r := testRouter(fx, nil, nil)
	onboard(t, r)
	seedDueMistake(t, fx, fx.users.byPhone[testPhone].ID)
	send(t, r, "go")
	send(t, r, "A") // one wrong answer, one hint

	raw := fx.states.byUser[fx.users.byPhone[testPhone].ID]
	st, err := UnmarshalState(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if st.ActiveDrill.Attempts != 1 || st.ActiveDrill.HintsGiven != 1 {
		t.Errorf("restored session = %+v", st.ActiveDrill)
	}

	// The restored session keeps working across the simulated restart.
	if got := send(t, r, "B"); !strings.Contains(got, "Correct!") {
		t.Errorf("answer after round trip = %q", got)
	}
}

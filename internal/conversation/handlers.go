package conversation

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/guruji/internal/drill"
	"github.com/abhisek/guruji/internal/drillgen"
	"github.com/abhisek/guruji/internal/review"
	"github.com/abhisek/guruji/internal/store"
)

func (r *Router) handleGreeting(ctx context.Context, user *store.User, st *State) string {
	if user.Name == "" {
		st.Phase = PhaseOnboarding
		return replyWelcomeNew()
	}
	st.Phase = PhaseIdle
	return replyWelcomeBack(user.Name, r.pendingCount(ctx, user.ID))
}

func (r *Router) handleOnboarding(ctx context.Context, user *store.User, st *State, name string) string {
	if len(name) < 2 || len(name) > 50 {
		return replyAskName()
	}

	if err := r.repos.Users.SetName(ctx, user.ID, name); err != nil {
		r.logger.Error("set name failed", "user", user.ID, "error", err)
		return replyError()
	}
	user.Name = name
	st.Phase = PhaseIdle

	return replyNamed(name, r.pendingCount(ctx, user.ID))
}

func (r *Router) handleReportMistake(ctx context.Context, user *store.User, st *State, report string, now time.Time) string {
	cls := r.classifier.Classify(ctx, report)

	m := &store.Mistake{
		UserID:        user.ID,
		Subject:       cls.Subject,
		Chapter:       cls.Chapter,
		Topic:         cls.Topic,
		MistakeType:   cls.MistakeType,
		Misconception: cls.Misconception,
		ReportedText:  report,
		Review:        review.NewState(now),
	}
	if _, err := r.repos.Mistakes.Create(ctx, m); err != nil {
		r.logger.Error("create mistake failed", "user", user.ID, "error", err)
		return replyError()
	}

	st.Phase = PhaseIdle
	return replyMistakeLogged(cls.Topic, cls.MistakeType, cls.Misconception)
}

func (r *Router) handleStartDrill(ctx context.Context, user *store.User, st *State, now time.Time) string {
	due, err := r.repos.Mistakes.Due(ctx, user.ID, now)
	if err != nil {
		r.logger.Error("query due mistakes failed", "user", user.ID, "error", err)
		return replyError()
	}
	if len(due) == 0 {
		pending := r.pendingCount(ctx, user.ID)
		if pending == 0 {
			return replyNothingToDrill()
		}
		return replyNoneDueYet(pending)
	}

	candidates := make([]review.Candidate, len(due))
	for i, m := range due {
		candidates[i] = m.Candidate()
	}
	nextID, _ := review.NextDue(candidates, now)

	var mistake *store.Mistake
	for _, m := range due {
		if m.ID == nextID {
			mistake = m
			break
		}
	}

	q, drillID, err := r.questionFor(ctx, mistake, now)
	if err != nil {
		r.logger.Error("no question available", "mistake", mistake.ID, "error", err)
		return replyDrillUnavailable()
	}

	sess, err := drill.NewSession(mistake.ID, drillID, q)
	if err != nil {
		r.logger.Error("invalid question", "mistake", mistake.ID, "error", err)
		return replyDrillUnavailable()
	}

	st.StartDrill(sess, now)

	topic := mistake.Topic
	if topic == "" {
		topic = mistake.Chapter
	}
	return replyQuestion(topic, mistake.Misconception, q)
}

// questionFor prefers a pre-generated drill and falls back to live
// generation. Returns the drill row id, or 0 for a live question.
func (r *Router) questionFor(ctx context.Context, mistake *store.Mistake, now time.Time) (drill.Question, int, error) {
	stored, err := r.repos.Drills.NextUnused(ctx, mistake.ID)
	switch {
	case err == nil:
		if markErr := r.repos.Drills.MarkUsed(ctx, stored.ID, now); markErr != nil {
			r.logger.Warn("mark drill used failed", "drill", stored.ID, "error", markErr)
		}
		return stored.Question, stored.ID, nil
	case !errors.Is(err, store.ErrNotFound):
		return drill.Question{}, 0, err
	}

	if r.generator == nil {
		return drill.Question{}, 0, errors.New("no question generator configured")
	}
	q, err := r.generator.Generate(ctx, drillgen.Input{
		Subject:       mistake.Subject,
		Chapter:       mistake.Chapter,
		Topic:         mistake.Topic,
		MistakeType:   mistake.MistakeType,
		Misconception: mistake.Misconception,
		Difficulty:    2,
	})
	if err != nil {
		return drill.Question{}, 0, err
	}
	return q, 0, nil
}

func (r *Router) handleAnswer(ctx context.Context, user *store.User, st *State, body string, now time.Time) string {
	if !st.Drilling() {
		return replyNoActiveQuestion()
	}
	sess := st.ActiveDrill

	// An attempt only counts once the scheduler update and the attempt row
	// land. If the store fails after Submit, the session reverts to these
	// values so the student can retry without losing an attempt.
	attemptsBefore, hintsBefore := sess.Attempts, sess.HintsGiven

	letter := drill.NormalizeAnswer(body)
	res, err := sess.Submit(letter)
	if err != nil {
		var invalid *drill.InvalidAnswerError
		if errors.As(err, &invalid) {
			return replyPickALetter()
		}
		r.logger.Error("submit answer failed", "user", user.ID, "error", err)
		return replyError()
	}

	mistake, err := r.repos.Mistakes.Get(ctx, sess.MistakeID)
	if err != nil {
		r.logger.Error("load mistake failed", "mistake", sess.MistakeID, "error", err)
		sess.Attempts, sess.HintsGiven = attemptsBefore, hintsBefore
		return replyError()
	}

	wasMastered := mistake.Review.Mastered
	next := review.Update(mistake.Review, res.Correct, now)

	att := &store.Attempt{
		UserID:        user.ID,
		MistakeID:     sess.MistakeID,
		DrillID:       sess.DrillID,
		StudentAnswer: letter,
		CorrectAnswer: sess.Question.Correct,
		IsCorrect:     res.Correct,
		HintsUsed:     sess.HintsGiven,
	}
	if err := r.repos.Mistakes.ApplyReview(ctx, sess.MistakeID, next, att, now); err != nil {
		r.logger.Error("apply review failed", "mistake", sess.MistakeID, "error", err)
		sess.Attempts, sess.HintsGiven = attemptsBefore, hintsBefore
		return replyError()
	}

	st.CountAnswer(res.Correct)

	switch res.Outcome {
	case drill.OutcomeCorrect:
		streak, err := r.repos.Users.BumpStreak(ctx, user.ID, true)
		if err != nil {
			r.logger.Warn("bump streak failed", "user", user.ID, "error", err)
		}
		st.ClearDrill(now)
		mastered := next.Mastered && !wasMastered
		return replyCorrect(streak, mastered, r.pendingCount(ctx, user.ID))

	case drill.OutcomeExhausted:
		st.ClearDrill(now)
		return replyExhausted(res.CorrectOption, res.Solution)

	default:
		return replyWrongWithHint(sess.Attempts, res.Hint)
	}
}

func (r *Router) handleStats(ctx context.Context, user *store.User, st *State) string {
	total, mastered, err := r.repos.Mistakes.Counts(ctx, user.ID)
	if err != nil {
		r.logger.Error("query mistake counts failed", "user", user.ID, "error", err)
		return replyError()
	}

	name := user.Name
	if name == "" {
		name = "Your"
	}
	return replyStats(name,
		user.CurrentStreak, user.LongestStreak,
		total, mastered, total-mastered,
		st.QuestionsToday, st.CorrectToday)
}

func (r *Router) handleStop(ctx context.Context, user *store.User, st *State) string {
	if err := r.repos.Users.SetActive(ctx, user.ID, false); err != nil {
		r.logger.Error("deactivate user failed", "user", user.ID, "error", err)
		return replyError()
	}
	user.IsActive = false
	st.Phase = PhaseStopped
	st.ActiveDrill = nil
	return replyStopped()
}

func (r *Router) handleChitchat(ctx context.Context, user *store.User) string {
	return replyChitchat(user.Name, r.pendingCount(ctx, user.ID))
}

// pendingCount tolerates store errors by reporting zero; the copy around
// it degrades gracefully.
func (r *Router) pendingCount(ctx context.Context, userID string) int {
	n, err := r.repos.Mistakes.PendingCount(ctx, userID)
	if err != nil {
		r.logger.Warn("pending count failed", "user", userID, "error", err)
		return 0
	}
	return n
}

// Package conversation routes inbound WhatsApp messages: dedup first,
// then per-user state, then intent dispatch. Each message produces at
// most one reply and exactly one state write.
package conversation

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/guruji/internal/classify"
	"github.com/abhisek/guruji/internal/drillgen"
	"github.com/abhisek/guruji/internal/intent"
	"github.com/abhisek/guruji/internal/store"
)

// Inbound is one delivered message.
type Inbound struct {
	PhoneNumber   string
	Body          string
	MsgType       string
	ProviderMsgID string
}

// Router owns the message lifecycle. All dependencies are interfaces or
// nil-tolerant, so tests run it against in-memory fakes.
type Router struct {
	repos      store.Repos
	intents    *intent.Classifier
	classifier *classify.Classifier
	generator  *drillgen.Generator

	locks  *keyMutex
	logger *slog.Logger
	now    func() time.Time
}

// NewRouter wires a Router.
func NewRouter(repos store.Repos, intents *intent.Classifier, classifier *classify.Classifier, generator *drillgen.Generator, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		repos:      repos,
		intents:    intents,
		classifier: classifier,
		generator:  generator,
		locks:      newKeyMutex(),
		logger:     logger,
		now:        time.Now,
	}
}

// messages that must not be mistaken for a name during onboarding.
var notNames = map[string]bool{
	"GO": true, "STATS": true, "HELP": true, "STOP": true, "START": true,
	"HI": true, "HELLO": true, "HEY": true, "HOLA": true, "YO": true,
	"SUP": true, "NAMASTE": true,
}

// HandleMessage processes one inbound message and returns the reply to
// send, or "" for silence. Duplicate deliveries are dropped before any
// handler logic runs: a crash mid-handling loses at most the reply,
// never processes a message twice.
func (r *Router) HandleMessage(ctx context.Context, in Inbound) (string, error) {
	unlock := r.locks.Lock(in.PhoneNumber)
	defer unlock()

	now := r.now()

	user, created, err := r.repos.Users.GetOrCreate(ctx, in.PhoneNumber)
	if err != nil {
		return "", err
	}

	seen, err := r.repos.Messages.RecordInbound(ctx, user.ID, in.Body, in.MsgType, in.ProviderMsgID)
	if err != nil {
		return "", err
	}
	if seen {
		r.logger.Info("duplicate message dropped", "user", user.ID, "msg_id", in.ProviderMsgID)
		return "", nil
	}

	if err := r.repos.Users.TouchLastMessage(ctx, user.ID, now); err != nil {
		r.logger.Warn("touch last message failed", "user", user.ID, "error", err)
	}

	st := r.loadState(ctx, user, created, now)
	st.Rollover(now)

	reply := r.dispatch(ctx, user, st, in.Body, now)

	st.UpdatedAt = now
	if err := r.saveState(ctx, user.ID, st); err != nil {
		r.logger.Error("save conversation state failed", "user", user.ID, "error", err)
		return "", err
	}

	if reply != "" {
		if err := r.repos.Messages.RecordOutbound(ctx, user.ID, reply); err != nil {
			r.logger.Warn("record outbound failed", "user", user.ID, "error", err)
		}
	}
	return reply, nil
}

// dispatch picks and runs the handler. It mutates st; the caller persists
// it exactly once afterwards.
func (r *Router) dispatch(ctx context.Context, user *store.User, st *State, body string, now time.Time) string {
	trimmed := strings.TrimSpace(body)
	upper := strings.ToUpper(trimmed)

	// A stopped user hears nothing except the answer to START.
	if !user.IsActive {
		if upper == "START" {
			if err := r.repos.Users.SetActive(ctx, user.ID, true); err != nil {
				r.logger.Error("reactivate user failed", "user", user.ID, "error", err)
				return replyError()
			}
			user.IsActive = true
			st.Phase = PhaseIdle
			return replyResumed()
		}
		return ""
	}

	// Onboarding: an unnamed user's first free-text message is their name.
	if st.Phase == PhaseOnboarding && user.Name == "" {
		if !notNames[upper] && !strings.HasPrefix(upper, "HI ") && !strings.HasPrefix(upper, "HELLO ") {
			return r.handleOnboarding(ctx, user, st, trimmed)
		}
	}

	// An active drill claims letter-shaped messages before classification.
	if st.Drilling() {
		if first := firstLetter(upper); first != "" {
			st.LastIntent = string(intent.AnswerDrill)
			return r.handleAnswer(ctx, user, st, body, now)
		}
	}

	it := r.intents.Classify(ctx, body)
	st.LastIntent = string(it)

	switch it {
	case intent.Greeting:
		return r.handleGreeting(ctx, user, st)
	case intent.ReportMistake:
		return r.handleReportMistake(ctx, user, st, trimmed, now)
	case intent.StartDrill:
		return r.handleStartDrill(ctx, user, st, now)
	case intent.AnswerDrill:
		return r.handleAnswer(ctx, user, st, body, now)
	case intent.CheckStats:
		return r.handleStats(ctx, user, st)
	case intent.Help:
		return replyHelp()
	case intent.Stop:
		return r.handleStop(ctx, user, st)
	default:
		return r.handleChitchat(ctx, user)
	}
}

// loadState fetches the user's state, creating a fresh one for new users
// and normalizing corrupt blobs instead of failing the message.
func (r *Router) loadState(ctx context.Context, user *store.User, created bool, now time.Time) *State {
	if created {
		return NewState(now)
	}

	raw, err := r.repos.States.Get(ctx, user.ID)
	if errors.Is(err, store.ErrNotFound) {
		st := NewState(now)
		if user.Name != "" {
			st.Phase = PhaseIdle
		}
		return st
	}
	if err != nil {
		r.logger.Error("load conversation state failed", "user", user.ID, "error", err)
		st := NewState(now)
		st.Phase = PhaseIdle
		return st
	}

	st, err := UnmarshalState(raw)
	if err != nil {
		r.logger.Error("corrupt conversation state reset", "user", user.ID, "error", err)
		st = NewState(now)
		st.Phase = PhaseIdle
	}
	return st
}

func (r *Router) saveState(ctx context.Context, userID string, st *State) error {
	raw, err := st.Marshal()
	if err != nil {
		return err
	}
	return r.repos.States.Upsert(ctx, userID, raw)
}

// firstLetter returns the leading A-D of an uppercased message, or "".
func firstLetter(upper string) string {
	if upper == "" {
		return ""
	}
	switch upper[:1] {
	case "A", "B", "C", "D":
		return upper[:1]
	}
	return ""
}

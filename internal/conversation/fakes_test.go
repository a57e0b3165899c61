package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/guruji/internal/drill"
	"github.com/abhisek/guruji/internal/review"
	"github.com/abhisek/guruji/internal/store"
)

// In-memory repositories for router tests. Single-goroutine use only.

type fakeUsers struct {
	byPhone map[string]*store.User
	nextID  int
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byPhone: make(map[string]*store.User)}
}

func (f *fakeUsers) GetOrCreate(_ context.Context, phone string) (*store.User, bool, error) {
	if u, ok := f.byPhone[phone]; ok {
		cp := *u
		return &cp, false, nil
	}
	f.nextID++
	u := &store.User{
		ID:          fmt.Sprintf("user-%d", f.nextID),
		PhoneNumber: phone,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	f.byPhone[phone] = u
	cp := *u
	return &cp, true, nil
}

func (f *fakeUsers) find(id string) *store.User {
	for _, u := range f.byPhone {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (f *fakeUsers) GetByPhone(_ context.Context, phone string) (*store.User, error) {
	if u, ok := f.byPhone[phone]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) Get(_ context.Context, id string) (*store.User, error) {
	if u := f.find(id); u != nil {
		cp := *u
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) SetName(_ context.Context, id, name string) error {
	f.find(id).Name = name
	return nil
}

func (f *fakeUsers) SetActive(_ context.Context, id string, active bool) error {
	f.find(id).IsActive = active
	return nil
}

func (f *fakeUsers) TouchLastMessage(_ context.Context, id string, at time.Time) error {
	u := f.find(id)
	u.LastMessageAt = at
	u.LastActiveAt = at
	return nil
}

func (f *fakeUsers) BumpStreak(_ context.Context, id string, increment bool) (int, error) {
	u := f.find(id)
	if increment {
		u.CurrentStreak++
		if u.CurrentStreak > u.LongestStreak {
			u.LongestStreak = u.CurrentStreak
		}
	} else {
		u.CurrentStreak = 0
	}
	return u.CurrentStreak, nil
}

func (f *fakeUsers) ListInactiveSince(_ context.Context, cutoff time.Time) ([]*store.User, error) {
	var out []*store.User
	for _, u := range f.byPhone {
		if u.IsActive && u.LastActiveAt.Before(cutoff) {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeMistakes struct {
	byID    map[string]*store.Mistake
	nextID  int
	applied []appliedReview

	// applyErr is returned by the next ApplyReview call, then cleared.
	applyErr error
}

type appliedReview struct {
	mistakeID string
	state     review.State
	attempt   store.Attempt
}

func newFakeMistakes() *fakeMistakes {
	return &fakeMistakes{byID: make(map[string]*store.Mistake)}
}

func (f *fakeMistakes) Create(_ context.Context, m *store.Mistake) (*store.Mistake, error) {
	f.nextID++
	cp := *m
	cp.ID = fmt.Sprintf("mistake-%d", f.nextID)
	f.byID[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeMistakes) Get(_ context.Context, id string) (*store.Mistake, error) {
	m, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMistakes) Due(_ context.Context, userID string, now time.Time) ([]*store.Mistake, error) {
	var out []*store.Mistake
	for _, m := range f.byID {
		if m.UserID == userID && !m.Review.Mastered && !m.Review.NextReviewAt.After(now) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeMistakes) PendingCount(_ context.Context, userID string) (int, error) {
	n := 0
	for _, m := range f.byID {
		if m.UserID == userID && !m.Review.Mastered {
			n++
		}
	}
	return n, nil
}

func (f *fakeMistakes) Counts(_ context.Context, userID string) (int, int, error) {
	total, mastered := 0, 0
	for _, m := range f.byID {
		if m.UserID == userID {
			total++
			if m.Review.Mastered {
				mastered++
			}
		}
	}
	return total, mastered, nil
}

func (f *fakeMistakes) ApplyReview(_ context.Context, mistakeID string, st review.State, att *store.Attempt, drilledAt time.Time) error {
	if f.applyErr != nil {
		err := f.applyErr
		f.applyErr = nil
		return err
	}
	m, ok := f.byID[mistakeID]
	if !ok {
		return store.ErrNotFound
	}
	m.Review = st
	m.LastDrilledAt = drilledAt
	f.applied = append(f.applied, appliedReview{mistakeID: mistakeID, state: st, attempt: *att})
	return nil
}

func (f *fakeMistakes) IDsNeedingDrills(_ context.Context, limit int) ([]string, error) {
	var out []string
	for id, m := range f.byID {
		if !m.Review.Mastered {
			out = append(out, id)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type fakeDrills struct {
	byID   map[int]*store.Drill
	nextID int
}

func newFakeDrills() *fakeDrills {
	return &fakeDrills{byID: make(map[int]*store.Drill)}
}

func (f *fakeDrills) SaveGenerated(_ context.Context, mistakeID string, q drill.Question, difficulty, orderIndex int) (int, error) {
	f.nextID++
	f.byID[f.nextID] = &store.Drill{
		ID:         f.nextID,
		MistakeID:  mistakeID,
		Question:   q,
		Difficulty: difficulty,
		OrderIndex: orderIndex,
	}
	return f.nextID, nil
}

func (f *fakeDrills) NextUnused(_ context.Context, mistakeID string) (*store.Drill, error) {
	var best *store.Drill
	for _, d := range f.byID {
		if d.MistakeID != mistakeID || d.IsUsed {
			continue
		}
		if best == nil || d.OrderIndex < best.OrderIndex {
			best = d
		}
	}
	if best == nil {
		return nil, store.ErrNotFound
	}
	cp := *best
	return &cp, nil
}

func (f *fakeDrills) MarkUsed(_ context.Context, id int, _ time.Time) error {
	f.byID[id].IsUsed = true
	return nil
}

type fakeAttempts struct{}

func (fakeAttempts) CountSince(context.Context, string, time.Time) (int, int, error) {
	return 0, 0, nil
}

type fakeMessages struct {
	seen     map[string]bool
	inbound  int
	outbound []string
}

func newFakeMessages() *fakeMessages {
	return &fakeMessages{seen: make(map[string]bool)}
}

func (f *fakeMessages) RecordInbound(_ context.Context, _, _, _, providerMsgID string) (bool, error) {
	if providerMsgID != "" && f.seen[providerMsgID] {
		return true, nil
	}
	if providerMsgID != "" {
		f.seen[providerMsgID] = true
	}
	f.inbound++
	return false, nil
}

func (f *fakeMessages) RecordOutbound(_ context.Context, _, body string) error {
	f.outbound = append(f.outbound, body)
	return nil
}

type fakeStates struct {
	byUser map[string]json.RawMessage
	writes int
}

func newFakeStates() *fakeStates {
	return &fakeStates{byUser: make(map[string]json.RawMessage)}
}

func (f *fakeStates) Get(_ context.Context, userID string) (json.RawMessage, error) {
	raw, ok := f.byUser[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return raw, nil
}

func (f *fakeStates) Upsert(_ context.Context, userID string, data json.RawMessage) error {
	f.byUser[userID] = data
	f.writes++
	return nil
}

type fakeEvents struct{}

func (fakeEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (fakeEvents) QueryLLMEvents(context.Context, int) ([]*store.LLMRequestEvent, error) {
	return nil, nil
}

type fixture struct {
	users    *fakeUsers
	mistakes *fakeMistakes
	drills   *fakeDrills
	messages *fakeMessages
	states   *fakeStates
}

func (fx *fixture) repos() store.Repos {
	return store.Repos{
		Users:    fx.users,
		Mistakes: fx.mistakes,
		Drills:   fx.drills,
		Attempts: fakeAttempts{},
		Messages: fx.messages,
		States:   fx.states,
		Events:   fakeEvents{},
	}
}

func newFixture() *fixture {
	return &fixture{
		users:    newFakeUsers(),
		mistakes: newFakeMistakes(),
		drills:   newFakeDrills(),
		messages: newFakeMessages(),
		states:   newFakeStates(),
	}
}

// Package nudge runs the background jobs: daily practice reminders,
// streak warnings, and drill pre-generation.
package nudge

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/guruji/internal/drillgen"
	"github.com/abhisek/guruji/internal/store"
	"github.com/abhisek/guruji/internal/wa"
)

// Config tunes the runner.
type Config struct {
	// NudgeHour is the UTC hour for the daily reminder.
	NudgeHour int
	// WarnHour is the UTC hour for streak-break warnings.
	WarnHour int
	// MinWarnStreak is the streak below which no warning is sent.
	MinWarnStreak int
	// SweepInterval is how often the drill pre-generation sweep runs.
	SweepInterval time.Duration
	// SweepBatch caps mistakes handled per sweep.
	SweepBatch int
}

// DefaultConfig returns the defaults: reminders at 12:30 UTC (6 PM IST),
// warnings at 15:30 UTC (9 PM IST), a sweep every ten minutes.
func DefaultConfig() Config {
	return Config{
		NudgeHour:     12,
		WarnHour:      15,
		MinWarnStreak: 3,
		SweepInterval: 10 * time.Minute,
		SweepBatch:    8,
	}
}

// Runner owns the background jobs. One goroutine, cancel-aware.
type Runner struct {
	repos     store.Repos
	sender    wa.Sender
	generator *drillgen.Generator
	cfg       Config
	logger    *slog.Logger
	now       func() time.Time

	lastNudgeDay time.Time
	lastWarnDay  time.Time
}

// NewRunner wires a Runner.
func NewRunner(repos store.Repos, sender wa.Sender, generator *drillgen.Generator, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		repos:     repos,
		sender:    sender,
		generator: generator,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Run blocks until ctx is cancelled. A sweep runs once at startup so a
// fresh deployment backfills drills immediately.
func (r *Runner) Run(ctx context.Context) {
	r.pregenerate(ctx)

	tick := time.NewTicker(time.Minute)
	defer tick.Stop()

	lastSweep := r.now()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("nudge runner stopped")
			return
		case <-tick.C:
			now := r.now().UTC()

			if now.Hour() == r.cfg.NudgeHour && !sameDay(r.lastNudgeDay, now) {
				r.lastNudgeDay = now
				r.sendDailyNudges(ctx, now)
			}
			if now.Hour() == r.cfg.WarnHour && !sameDay(r.lastWarnDay, now) {
				r.lastWarnDay = now
				r.sendStreakWarnings(ctx, now)
			}
			if now.Sub(lastSweep) >= r.cfg.SweepInterval {
				lastSweep = now
				r.pregenerate(ctx)
			}
		}
	}
}

// sendDailyNudges reminds users who have not practiced today and still
// have pending mistakes. Users outside the 24-hour customer service
// window are skipped; free-form sends would bounce.
func (r *Runner) sendDailyNudges(ctx context.Context, now time.Time) {
	users, err := r.repos.Users.ListInactiveSince(ctx, startOfDay(now))
	if err != nil {
		r.logger.Error("list users for nudge failed", "error", err)
		return
	}

	sent := 0
	for _, u := range users {
		pending, err := r.repos.Mistakes.PendingCount(ctx, u.ID)
		if err != nil || pending == 0 {
			continue
		}
		if !withinSessionWindow(u.LastMessageAt, now) {
			continue
		}

		msg := nudgeText(u.Name, u.CurrentStreak, pending)
		if err := r.sender.SendText(ctx, u.PhoneNumber, msg); err != nil {
			r.logger.Warn("nudge send failed", "user", u.ID, "error", err)
			continue
		}
		if err := r.repos.Messages.RecordOutbound(ctx, u.ID, msg); err != nil {
			r.logger.Warn("record nudge failed", "user", u.ID, "error", err)
		}
		sent++
	}
	r.logger.Info("daily nudges sent", "count", sent, "candidates", len(users))
}

// sendStreakWarnings targets users about to lose a streak worth keeping.
func (r *Runner) sendStreakWarnings(ctx context.Context, now time.Time) {
	users, err := r.repos.Users.ListInactiveSince(ctx, startOfDay(now))
	if err != nil {
		r.logger.Error("list users for streak warning failed", "error", err)
		return
	}

	sent := 0
	for _, u := range users {
		if u.CurrentStreak < r.cfg.MinWarnStreak {
			continue
		}
		if !withinSessionWindow(u.LastMessageAt, now) {
			continue
		}

		msg := streakWarningText(u.Name, u.CurrentStreak)
		if err := r.sender.SendText(ctx, u.PhoneNumber, msg); err != nil {
			r.logger.Warn("streak warning send failed", "user", u.ID, "error", err)
			continue
		}
		if err := r.repos.Messages.RecordOutbound(ctx, u.ID, msg); err != nil {
			r.logger.Warn("record streak warning failed", "user", u.ID, "error", err)
		}
		sent++
	}
	r.logger.Info("streak warnings sent", "count", sent)
}

// pregenerate builds one drill ahead of time for each unmastered mistake
// with no unused question, so the next GO answers instantly.
func (r *Runner) pregenerate(ctx context.Context) {
	if r.generator == nil {
		return
	}

	ids, err := r.repos.Mistakes.IDsNeedingDrills(ctx, r.cfg.SweepBatch)
	if err != nil {
		r.logger.Error("list mistakes needing drills failed", "error", err)
		return
	}

	generated := 0
	for _, id := range ids {
		select {
		case <-ctx.Done():
			return
		default:
		}

		m, err := r.repos.Mistakes.Get(ctx, id)
		if err != nil {
			r.logger.Warn("load mistake for pregen failed", "mistake", id, "error", err)
			continue
		}

		q, err := r.generator.Generate(ctx, drillgen.Input{
			Subject:       m.Subject,
			Chapter:       m.Chapter,
			Topic:         m.Topic,
			MistakeType:   m.MistakeType,
			Misconception: m.Misconception,
			Difficulty:    difficultyFor(m.Review.TimesDrilled),
		})
		if err != nil {
			r.logger.Warn("drill pregen failed", "mistake", id, "error", err)
			continue
		}

		if _, err := r.repos.Drills.SaveGenerated(ctx, id, q, difficultyFor(m.Review.TimesDrilled), m.Review.TimesDrilled); err != nil {
			r.logger.Warn("save pregenerated drill failed", "mistake", id, "error", err)
			continue
		}
		generated++
	}
	if generated > 0 {
		r.logger.Info("drills pre-generated", "count", generated)
	}
}

// difficultyFor ramps difficulty with drill history: direct checks first,
// multi-step once the mistake keeps coming back.
func difficultyFor(timesDrilled int) int {
	switch {
	case timesDrilled < 2:
		return 1
	case timesDrilled < 4:
		return 2
	default:
		return 3
	}
}

// withinSessionWindow reports whether a free-form message is allowed:
// the user wrote to us within the last 24 hours.
func withinSessionWindow(lastMessageAt, now time.Time) bool {
	if lastMessageAt.IsZero() {
		return false
	}
	return now.Sub(lastMessageAt) < 24*time.Hour
}

func nudgeText(name string, streak, pending int) string {
	if name == "" {
		name = "there"
	}
	if streak > 0 {
		return fmt.Sprintf("Hey %s! Your %d-day streak is waiting.\n\n%d mistakes due for review. Reply *GO* to keep it alive!", name, streak, pending)
	}
	return fmt.Sprintf("Hey %s! You have %d mistakes due for review.\n\nReply *GO* for a quick drill. Five minutes now saves marks later!", name, pending)
}

func streakWarningText(name string, streak int) string {
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf("%s, your %d-day streak ends at midnight!\n\nOne question is all it takes. Reply *GO* now.", name, streak)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/guruji/ent"
	entdrill "github.com/abhisek/guruji/ent/drill"
	entmistake "github.com/abhisek/guruji/ent/mistake"
	"github.com/abhisek/guruji/internal/review"
)

type mistakeRepo struct {
	client *ent.Client
}

func (r *mistakeRepo) Create(ctx context.Context, m *Mistake) (*Mistake, error) {
	builder := r.client.Mistake.Create().
		SetUserID(m.UserID).
		SetSubject(m.Subject).
		SetChapter(m.Chapter).
		SetTopic(m.Topic).
		SetMistakeType(m.MistakeType).
		SetMisconception(m.Misconception).
		SetReportedText(m.ReportedText).
		SetEasinessFactor(m.Review.Easiness).
		SetIntervalDays(m.Review.IntervalDays).
		SetRepetitionCount(m.Review.Repetition).
		SetNextReviewAt(m.Review.NextReviewAt)

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create mistake: %w", err)
	}
	return toMistake(row), nil
}

func (r *mistakeRepo) Get(ctx context.Context, id string) (*Mistake, error) {
	row, err := r.client.Mistake.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get mistake: %w", err)
	}
	return toMistake(row), nil
}

func (r *mistakeRepo) Due(ctx context.Context, userID string, now time.Time) ([]*Mistake, error) {
	rows, err := r.client.Mistake.Query().
		Where(
			entmistake.UserID(userID),
			entmistake.IsMastered(false),
			entmistake.NextReviewAtLTE(now),
		).
		Order(ent.Asc(entmistake.FieldNextReviewAt), ent.Asc(entmistake.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due mistakes: %w", err)
	}

	out := make([]*Mistake, len(rows))
	for i, row := range rows {
		out[i] = toMistake(row)
	}
	return out, nil
}

func (r *mistakeRepo) PendingCount(ctx context.Context, userID string) (int, error) {
	n, err := r.client.Mistake.Query().
		Where(entmistake.UserID(userID), entmistake.IsMastered(false)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count pending mistakes: %w", err)
	}
	return n, nil
}

func (r *mistakeRepo) Counts(ctx context.Context, userID string) (int, int, error) {
	total, err := r.client.Mistake.Query().
		Where(entmistake.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count mistakes: %w", err)
	}
	mastered, err := r.client.Mistake.Query().
		Where(entmistake.UserID(userID), entmistake.IsMastered(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count mastered mistakes: %w", err)
	}
	return total, mastered, nil
}

// ApplyReview writes the scheduler output and the attempt row in one
// transaction. No other code path updates scheduling fields.
func (r *mistakeRepo) ApplyReview(ctx context.Context, mistakeID string, st review.State, att *Attempt, drilledAt time.Time) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	upd := tx.Mistake.UpdateOneID(mistakeID).
		SetTimesDrilled(st.TimesDrilled).
		SetTimesCorrect(st.TimesCorrect).
		SetMasteryScore(st.MasteryScore).
		SetIsMastered(st.Mastered).
		SetEasinessFactor(st.Easiness).
		SetIntervalDays(st.IntervalDays).
		SetRepetitionCount(st.Repetition).
		SetNextReviewAt(st.NextReviewAt).
		SetLastDrilledAt(drilledAt)
	if !st.MasteredAt.IsZero() {
		upd = upd.SetMasteredAt(st.MasteredAt)
	}
	if err := upd.Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("update mistake review: %w", err))
	}

	create := tx.Attempt.Create().
		SetUserID(att.UserID).
		SetMistakeID(att.MistakeID).
		SetStudentAnswer(att.StudentAnswer).
		SetCorrectAnswer(att.CorrectAnswer).
		SetIsCorrect(att.IsCorrect).
		SetHintsUsed(att.HintsUsed)
	if att.DrillID != 0 {
		create = create.SetDrillID(att.DrillID)
	}
	if _, err := create.Save(ctx); err != nil {
		return rollback(tx, fmt.Errorf("append attempt: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit review: %w", err)
	}
	return nil
}

func (r *mistakeRepo) IDsNeedingDrills(ctx context.Context, limit int) ([]string, error) {
	covered, err := r.client.Drill.Query().
		Where(entdrill.IsUsed(false)).
		Select(entdrill.FieldMistakeID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query covered mistakes: %w", err)
	}

	q := r.client.Mistake.Query().
		Where(entmistake.IsMastered(false))
	if len(covered) > 0 {
		q = q.Where(entmistake.IDNotIn(covered...))
	}

	ids, err := q.Order(ent.Asc(entmistake.FieldCreatedAt)).
		Limit(limit).
		Select(entmistake.FieldID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mistakes needing drills: %w", err)
	}
	return ids, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rollback failed: %v", err, rerr)
	}
	return err
}

func toMistake(row *ent.Mistake) *Mistake {
	m := &Mistake{
		ID:            row.ID,
		UserID:        row.UserID,
		Subject:       row.Subject,
		Chapter:       row.Chapter,
		Topic:         row.Topic,
		MistakeType:   row.MistakeType,
		Misconception: row.Misconception,
		ReportedText:  row.ReportedText,
		Review: review.State{
			TimesDrilled: row.TimesDrilled,
			TimesCorrect: row.TimesCorrect,
			MasteryScore: row.MasteryScore,
			Mastered:     row.IsMastered,
			Easiness:     row.EasinessFactor,
			IntervalDays: row.IntervalDays,
			Repetition:   row.RepetitionCount,
			NextReviewAt: row.NextReviewAt,
		},
		CreatedAt: row.CreatedAt,
	}
	if row.MasteredAt != nil {
		m.Review.MasteredAt = *row.MasteredAt
	}
	if row.LastDrilledAt != nil {
		m.LastDrilledAt = *row.LastDrilledAt
	}
	return m
}

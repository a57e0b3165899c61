package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/guruji/ent"
	entdrill "github.com/abhisek/guruji/ent/drill"
	"github.com/abhisek/guruji/internal/drill"
)

type drillRepo struct {
	client *ent.Client
}

func (r *drillRepo) SaveGenerated(ctx context.Context, mistakeID string, q drill.Question, difficulty, orderIndex int) (int, error) {
	if len(q.Options) != 4 {
		return 0, fmt.Errorf("save drill: got %d options, want 4", len(q.Options))
	}

	builder := r.client.Drill.Create().
		SetMistakeID(mistakeID).
		SetQuestionText(q.Text).
		SetOptionA(q.Options[0]).
		SetOptionB(q.Options[1]).
		SetOptionC(q.Options[2]).
		SetOptionD(q.Options[3]).
		SetCorrectOption(q.Correct).
		SetSolution(q.Solution).
		SetDifficulty(difficulty).
		SetOrderIndex(orderIndex)

	if len(q.Hints) > 0 {
		builder = builder.SetHint1(q.Hints[0])
	}
	if len(q.Hints) > 1 {
		builder = builder.SetHint2(q.Hints[1])
	}
	if len(q.Hints) > 2 {
		builder = builder.SetHint3(q.Hints[2])
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save drill: %w", err)
	}
	return row.ID, nil
}

func (r *drillRepo) NextUnused(ctx context.Context, mistakeID string) (*Drill, error) {
	row, err := r.client.Drill.Query().
		Where(entdrill.MistakeID(mistakeID), entdrill.IsUsed(false)).
		Order(ent.Asc(entdrill.FieldOrderIndex), ent.Asc(entdrill.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query unused drill: %w", err)
	}
	return toDrill(row), nil
}

func (r *drillRepo) MarkUsed(ctx context.Context, id int, at time.Time) error {
	err := r.client.Drill.UpdateOneID(id).
		SetIsUsed(true).
		SetUsedAt(at).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("mark drill used: %w", err)
	}
	return nil
}

func toDrill(row *ent.Drill) *Drill {
	var hints []string
	for _, h := range []string{row.Hint1, row.Hint2, row.Hint3} {
		if h != "" {
			hints = append(hints, h)
		}
	}
	return &Drill{
		ID:        row.ID,
		MistakeID: row.MistakeID,
		Question: drill.Question{
			Text:     row.QuestionText,
			Options:  []string{row.OptionA, row.OptionB, row.OptionC, row.OptionD},
			Correct:  row.CorrectOption,
			Solution: row.Solution,
			Hints:    hints,
		},
		Difficulty: row.Difficulty,
		OrderIndex: row.OrderIndex,
		IsUsed:     row.IsUsed,
		CreatedAt:  row.CreatedAt,
	}
}

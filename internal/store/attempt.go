package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/guruji/ent"
	entattempt "github.com/abhisek/guruji/ent/attempt"
)

type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) CountSince(ctx context.Context, userID string, since time.Time) (total, correct int, err error) {
	base := r.client.Attempt.Query().
		Where(entattempt.UserID(userID), entattempt.CreatedAtGTE(since))

	total, err = base.Clone().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count attempts: %w", err)
	}
	correct, err = base.Clone().Where(entattempt.IsCorrect(true)).Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct attempts: %w", err)
	}
	return total, correct, nil
}

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/guruji/ent"
	"github.com/abhisek/guruji/ent/conversationstate"
)

type stateRepo struct {
	client *ent.Client
}

func (r *stateRepo) Get(ctx context.Context, userID string) (json.RawMessage, error) {
	row, err := r.client.ConversationState.Query().
		Where(conversationstate.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load conversation state: %w", err)
	}
	return row.Data, nil
}

func (r *stateRepo) Upsert(ctx context.Context, userID string, data json.RawMessage) error {
	err := r.client.ConversationState.Create().
		SetUserID(userID).
		SetData(data).
		OnConflictColumns(conversationstate.FieldUserID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert conversation state: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"fmt"

	"github.com/abhisek/guruji/ent"
)

type messageRepo struct {
	client *ent.Client
}

// RecordInbound inserts an inbound message keyed by the provider's message
// id. The unique constraint on provider_msg_id makes this an atomic
// insert-if-absent: a duplicate delivery reports seen=true and writes
// nothing.
func (r *messageRepo) RecordInbound(ctx context.Context, userID, body, msgType, providerMsgID string) (bool, error) {
	builder := r.client.Message.Create().
		SetUserID(userID).
		SetDirection("inbound").
		SetBody(body).
		SetMsgType(msgType)
	if providerMsgID != "" {
		builder = builder.SetProviderMsgID(providerMsgID)
	}

	if err := builder.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return true, nil
		}
		return false, fmt.Errorf("record inbound message: %w", err)
	}
	return false, nil
}

func (r *messageRepo) RecordOutbound(ctx context.Context, userID, body string) error {
	err := r.client.Message.Create().
		SetUserID(userID).
		SetDirection("outbound").
		SetBody(body).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("record outbound message: %w", err)
	}
	return nil
}

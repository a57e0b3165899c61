package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/guruji/ent"
	entuser "github.com/abhisek/guruji/ent/user"
)

type userRepo struct {
	client *ent.Client
}

func (r *userRepo) GetOrCreate(ctx context.Context, phoneNumber string) (*User, bool, error) {
	u, err := r.client.User.Query().
		Where(entuser.PhoneNumber(phoneNumber)).
		Only(ctx)
	if err == nil {
		return toUser(u), false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("query user by phone: %w", err)
	}

	created, err := r.client.User.Create().
		SetPhoneNumber(phoneNumber).
		Save(ctx)
	if err != nil {
		// Lost a create race with a concurrent first message; re-read.
		if ent.IsConstraintError(err) {
			u, qerr := r.client.User.Query().
				Where(entuser.PhoneNumber(phoneNumber)).
				Only(ctx)
			if qerr != nil {
				return nil, false, fmt.Errorf("re-query user after conflict: %w", qerr)
			}
			return toUser(u), false, nil
		}
		return nil, false, fmt.Errorf("create user: %w", err)
	}
	return toUser(created), true, nil
}

func (r *userRepo) GetByPhone(ctx context.Context, phoneNumber string) (*User, error) {
	u, err := r.client.User.Query().
		Where(entuser.PhoneNumber(phoneNumber)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by phone: %w", err)
	}
	return toUser(u), nil
}

func (r *userRepo) Get(ctx context.Context, id string) (*User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return toUser(u), nil
}

func (r *userRepo) SetName(ctx context.Context, id, name string) error {
	err := r.client.User.UpdateOneID(id).SetName(name).Exec(ctx)
	if err != nil {
		return fmt.Errorf("set user name: %w", err)
	}
	return nil
}

func (r *userRepo) SetActive(ctx context.Context, id string, active bool) error {
	err := r.client.User.UpdateOneID(id).SetIsActive(active).Exec(ctx)
	if err != nil {
		return fmt.Errorf("set user active: %w", err)
	}
	return nil
}

func (r *userRepo) TouchLastMessage(ctx context.Context, id string, at time.Time) error {
	err := r.client.User.UpdateOneID(id).
		SetLastMessageAt(at).
		SetLastActiveAt(at).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("touch last message: %w", err)
	}
	return nil
}

func (r *userRepo) BumpStreak(ctx context.Context, id string, increment bool) (int, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("get user for streak: %w", err)
	}

	streak := 0
	longest := u.LongestStreak
	if increment {
		streak = u.CurrentStreak + 1
		if streak > longest {
			longest = streak
		}
	}

	err = r.client.User.UpdateOneID(id).
		SetCurrentStreak(streak).
		SetLongestStreak(longest).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("update streak: %w", err)
	}
	return streak, nil
}

func (r *userRepo) ListInactiveSince(ctx context.Context, cutoff time.Time) ([]*User, error) {
	rows, err := r.client.User.Query().
		Where(
			entuser.IsActive(true),
			entuser.Or(
				entuser.LastActiveAtLT(cutoff),
				entuser.LastActiveAtIsNil(),
			),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inactive users: %w", err)
	}

	users := make([]*User, len(rows))
	for i, u := range rows {
		users[i] = toUser(u)
	}
	return users, nil
}

func toUser(u *ent.User) *User {
	out := &User{
		ID:            u.ID,
		PhoneNumber:   u.PhoneNumber,
		Name:          u.Name,
		IsActive:      u.IsActive,
		CurrentStreak: u.CurrentStreak,
		LongestStreak: u.LongestStreak,
		CreatedAt:     u.CreatedAt,
	}
	if u.LastMessageAt != nil {
		out.LastMessageAt = *u.LastMessageAt
	}
	if u.LastActiveAt != nil {
		out.LastActiveAt = *u.LastActiveAt
	}
	return out
}

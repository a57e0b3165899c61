package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/guruji/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <phone>",
	Short: "Show a student's progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repos := s.Repos()

		u, err := repos.Users.GetByPhone(ctx, args[0])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no student with phone %s", args[0])
			}
			return fmt.Errorf("look up student: %w", err)
		}

		total, mastered, err := repos.Mistakes.Counts(ctx, u.ID)
		if err != nil {
			return fmt.Errorf("count mistakes: %w", err)
		}

		weekAgo := time.Now().AddDate(0, 0, -7)
		attempts, correct, err := repos.Attempts.CountSince(ctx, u.ID, weekAgo)
		if err != nil {
			return fmt.Errorf("count attempts: %w", err)
		}

		name := u.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("Student:    %s  (%s)\n", name, u.PhoneNumber)
		fmt.Printf("Active:     %v\n", u.IsActive)
		fmt.Printf("Streak:     %d (best %d)\n", u.CurrentStreak, u.LongestStreak)
		fmt.Printf("Mistakes:   %d tracked, %d mastered, %d pending\n", total, mastered, total-mastered)
		if attempts > 0 {
			fmt.Printf("This week:  %d/%d correct (%.0f%%)\n", correct, attempts, 100*float64(correct)/float64(attempts))
		} else {
			fmt.Println("This week:  no drills attempted")
		}
		if !u.LastMessageAt.IsZero() {
			fmt.Printf("Last seen:  %s\n", u.LastMessageAt.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

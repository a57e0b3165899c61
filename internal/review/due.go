package review

import "time"

// Candidate is the slice of a mistake the due-selection needs.
type Candidate struct {
	ID           string
	Mastered     bool
	NextReviewAt time.Time
}

// NextDue picks the mistake to drill next: the unmastered candidate with
// the earliest NextReviewAt at or before now. Equal review times fall back
// to the lower ID so the choice is stable between calls. Returns false
// when nothing is due.
func NextDue(candidates []Candidate, now time.Time) (string, bool) {
	var (
		bestID string
		bestAt time.Time
		found  bool
	)
	for _, c := range candidates {
		if c.Mastered || c.NextReviewAt.After(now) {
			continue
		}
		if !found || c.NextReviewAt.Before(bestAt) ||
			(c.NextReviewAt.Equal(bestAt) && c.ID < bestID) {
			bestID = c.ID
			bestAt = c.NextReviewAt
			found = true
		}
	}
	return bestID, found
}

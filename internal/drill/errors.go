package drill

import (
	"errors"
	"fmt"
)

// ErrNoActiveSession is returned when an answer arrives with no drill in
// progress. The router normally short-circuits this case before dispatch.
var ErrNoActiveSession = errors.New("no active drill session")

// InvalidQuestionError means the supplied question content cannot back a
// session: wrong option count, blank options, or a bad correct letter.
type InvalidQuestionError struct {
	Reason string
}

func (e *InvalidQuestionError) Error() string {
	return fmt.Sprintf("invalid drill question: %s", e.Reason)
}

// InvalidAnswerError means the submitted letter is not one of A-D.
// The attempt does not count; the caller re-prompts.
type InvalidAnswerError struct {
	Letter string
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("invalid answer %q: want A, B, C or D", e.Letter)
}

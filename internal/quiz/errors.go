package quiz

import (
	"errors"
	"fmt"
)

// ErrEmptyQuiz is returned when a session is started with no questions.
var ErrEmptyQuiz = errors.New("quiz has no questions")

// InvalidStateError reports an operation attempted in a session state
// that does not permit it.
type InvalidStateError struct {
	Op    string
	State State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s not allowed in state %q", e.Op, e.State)
}

// DuplicateAnswerError reports an attempt to re-answer a question that
// already has a recorded answer.
type DuplicateAnswerError struct {
	QuestionID string
}

func (e *DuplicateAnswerError) Error() string {
	return fmt.Sprintf("question %s already answered", e.QuestionID)
}

// InvalidQuestionError reports malformed question data discovered during
// scoring or generation.
type InvalidQuestionError struct {
	QuestionID string
	Reason     string
}

func (e *InvalidQuestionError) Error() string {
	return fmt.Sprintf("invalid question %s: %s", e.QuestionID, e.Reason)
}

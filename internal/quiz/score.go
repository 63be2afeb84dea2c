package quiz

import "strings"

// ScoreResult is the outcome of scoring a single answer.
type ScoreResult struct {
	Correct bool
	Points  int
}

// ScoreAnswer grades a raw answer against a question. Pure: no side effects,
// deterministic for a given question and answer. For option-based
// variants the raw answer is the selected option id; for fill-blank it
// is free text matched case-insensitively after trimming.
func ScoreAnswer(q Question, raw string) (ScoreResult, error) {
	switch q := q.(type) {
	case MultipleChoice:
		return scoreOptions(q.QuestionID, q.Options, raw, q.PointValue)
	case FillBlank:
		return scoreFillBlank(q, raw)
	case MatchSituation:
		return scoreOptions(q.QuestionID, q.Options, raw, q.PointValue)
	case Audio:
		return scoreOptions(q.QuestionID, q.Options, raw, q.PointValue)
	default:
		return ScoreResult{}, &InvalidQuestionError{QuestionID: q.ID(), Reason: "unknown question variant"}
	}
}

func scoreOptions(id string, options []Option, selected string, points int) (ScoreResult, error) {
	if len(options) == 0 {
		return ScoreResult{}, &InvalidQuestionError{QuestionID: id, Reason: "no options"}
	}
	correctSeen := false
	for _, o := range options {
		if o.Correct {
			correctSeen = true
			break
		}
	}
	if !correctSeen {
		return ScoreResult{}, &InvalidQuestionError{QuestionID: id, Reason: "no correct option"}
	}

	for _, o := range options {
		if o.ID == selected {
			if o.Correct {
				return ScoreResult{Correct: true, Points: points}, nil
			}
			return ScoreResult{}, nil
		}
	}
	// Unknown option id counts as a wrong answer, not malformed data.
	return ScoreResult{}, nil
}

func scoreFillBlank(q FillBlank, raw string) (ScoreResult, error) {
	if len(q.CorrectAnswers) == 0 {
		return ScoreResult{}, &InvalidQuestionError{QuestionID: q.QuestionID, Reason: "no accepted answers"}
	}
	got := normalizeAnswer(raw)
	for _, want := range q.CorrectAnswers {
		if got == normalizeAnswer(want) {
			return ScoreResult{Correct: true, Points: q.PointValue}, nil
		}
	}
	return ScoreResult{}, nil
}

// normalizeAnswer lowercases, trims, and collapses inner whitespace.
func normalizeAnswer(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

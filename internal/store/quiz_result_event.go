package store

import (
	"context"
	"fmt"

	"github.com/abhisek/idiomaster/ent"
	"github.com/abhisek/idiomaster/ent/quizresultevent"
)

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizResultEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizResultEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetQuizType(data.QuizType).
		SetDifficulty(data.Difficulty).
		SetCorrect(data.Correct).
		SetTotal(data.Total).
		SetPercentage(data.Percentage).
		SetPoints(data.Points).
		SetGrade(data.Grade).
		SetPassed(data.Passed).
		SetXpEarned(data.XPEarned).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz result event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizResults(ctx context.Context, userID string, opts QueryOpts) ([]QuizResultRecord, error) {
	q := r.client.QuizResultEvent.Query().
		Where(quizresultevent.UserID(userID))

	if opts.After > 0 {
		q = q.Where(quizresultevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(quizresultevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(quizresultevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(quizresultevent.TimestampLTE(opts.To))
	}

	q = q.Order(ent.Desc(quizresultevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}

	records := make([]QuizResultRecord, 0, len(events))
	for _, e := range events {
		records = append(records, QuizResultRecord{
			QuizResultEventData: QuizResultEventData{
				SessionID:    e.SessionID,
				UserID:       e.UserID,
				QuizType:     e.QuizType,
				Difficulty:   e.Difficulty,
				Correct:      e.Correct,
				Total:        e.Total,
				Percentage:   e.Percentage,
				Points:       e.Points,
				Grade:        e.Grade,
				Passed:       e.Passed,
				XPEarned:     e.XpEarned,
				DurationSecs: e.DurationSecs,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	}
	return records, nil
}

// Code generated by ent, DO NOT EDIT.

package quizresultevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/idiomaster/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldUserID, v))
}

// QuizType applies equality check predicate on the "quiz_type" field. It's identical to QuizTypeEQ.
func QuizType(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldQuizType, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldDifficulty, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldCorrect, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTotal, v))
}

// Percentage applies equality check predicate on the "percentage" field. It's identical to PercentageEQ.
func Percentage(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldPercentage, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldPoints, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldGrade, v))
}

// Passed applies equality check predicate on the "passed" field. It's identical to PassedEQ.
func Passed(v bool) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldPassed, v))
}

// XpEarned applies equality check predicate on the "xp_earned" field. It's identical to XpEarnedEQ.
func XpEarned(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldXpEarned, v))
}

// DurationSecs applies equality check predicate on the "duration_secs" field. It's identical to DurationSecsEQ.
func DurationSecs(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContainsFold(FieldUserID, v))
}

// QuizTypeEQ applies the EQ predicate on the "quiz_type" field.
func QuizTypeEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldQuizType, v))
}

// QuizTypeNEQ applies the NEQ predicate on the "quiz_type" field.
func QuizTypeNEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldQuizType, v))
}

// QuizTypeIn applies the In predicate on the "quiz_type" field.
func QuizTypeIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldQuizType, vs...))
}

// QuizTypeNotIn applies the NotIn predicate on the "quiz_type" field.
func QuizTypeNotIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldQuizType, vs...))
}

// QuizTypeGT applies the GT predicate on the "quiz_type" field.
func QuizTypeGT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldQuizType, v))
}

// QuizTypeGTE applies the GTE predicate on the "quiz_type" field.
func QuizTypeGTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldQuizType, v))
}

// QuizTypeLT applies the LT predicate on the "quiz_type" field.
func QuizTypeLT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldQuizType, v))
}

// QuizTypeLTE applies the LTE predicate on the "quiz_type" field.
func QuizTypeLTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldQuizType, v))
}

// QuizTypeContains applies the Contains predicate on the "quiz_type" field.
func QuizTypeContains(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContains(FieldQuizType, v))
}

// QuizTypeHasPrefix applies the HasPrefix predicate on the "quiz_type" field.
func QuizTypeHasPrefix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasPrefix(FieldQuizType, v))
}

// QuizTypeHasSuffix applies the HasSuffix predicate on the "quiz_type" field.
func QuizTypeHasSuffix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasSuffix(FieldQuizType, v))
}

// QuizTypeEqualFold applies the EqualFold predicate on the "quiz_type" field.
func QuizTypeEqualFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEqualFold(FieldQuizType, v))
}

// QuizTypeContainsFold applies the ContainsFold predicate on the "quiz_type" field.
func QuizTypeContainsFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContainsFold(FieldQuizType, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldCorrect, v))
}

// CorrectIn applies the In predicate on the "correct" field.
func CorrectIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldCorrect, vs...))
}

// CorrectNotIn applies the NotIn predicate on the "correct" field.
func CorrectNotIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldCorrect, vs...))
}

// CorrectGT applies the GT predicate on the "correct" field.
func CorrectGT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldCorrect, v))
}

// CorrectGTE applies the GTE predicate on the "correct" field.
func CorrectGTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldCorrect, v))
}

// CorrectLT applies the LT predicate on the "correct" field.
func CorrectLT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldCorrect, v))
}

// CorrectLTE applies the LTE predicate on the "correct" field.
func CorrectLTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldCorrect, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldTotal, v))
}

// PercentageEQ applies the EQ predicate on the "percentage" field.
func PercentageEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldPercentage, v))
}

// PercentageNEQ applies the NEQ predicate on the "percentage" field.
func PercentageNEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldPercentage, v))
}

// PercentageIn applies the In predicate on the "percentage" field.
func PercentageIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldPercentage, vs...))
}

// PercentageNotIn applies the NotIn predicate on the "percentage" field.
func PercentageNotIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldPercentage, vs...))
}

// PercentageGT applies the GT predicate on the "percentage" field.
func PercentageGT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldPercentage, v))
}

// PercentageGTE applies the GTE predicate on the "percentage" field.
func PercentageGTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldPercentage, v))
}

// PercentageLT applies the LT predicate on the "percentage" field.
func PercentageLT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldPercentage, v))
}

// PercentageLTE applies the LTE predicate on the "percentage" field.
func PercentageLTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldPercentage, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldPoints, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldContainsFold(FieldGrade, v))
}

// PassedEQ applies the EQ predicate on the "passed" field.
func PassedEQ(v bool) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldPassed, v))
}

// PassedNEQ applies the NEQ predicate on the "passed" field.
func PassedNEQ(v bool) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldPassed, v))
}

// XpEarnedEQ applies the EQ predicate on the "xp_earned" field.
func XpEarnedEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldXpEarned, v))
}

// XpEarnedNEQ applies the NEQ predicate on the "xp_earned" field.
func XpEarnedNEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldXpEarned, v))
}

// XpEarnedIn applies the In predicate on the "xp_earned" field.
func XpEarnedIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldXpEarned, vs...))
}

// XpEarnedNotIn applies the NotIn predicate on the "xp_earned" field.
func XpEarnedNotIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldXpEarned, vs...))
}

// XpEarnedGT applies the GT predicate on the "xp_earned" field.
func XpEarnedGT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldXpEarned, v))
}

// XpEarnedGTE applies the GTE predicate on the "xp_earned" field.
func XpEarnedGTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldXpEarned, v))
}

// XpEarnedLT applies the LT predicate on the "xp_earned" field.
func XpEarnedLT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldXpEarned, v))
}

// XpEarnedLTE applies the LTE predicate on the "xp_earned" field.
func XpEarnedLTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldXpEarned, v))
}

// DurationSecsEQ applies the EQ predicate on the "duration_secs" field.
func DurationSecsEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldEQ(FieldDurationSecs, v))
}

// DurationSecsNEQ applies the NEQ predicate on the "duration_secs" field.
func DurationSecsNEQ(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNEQ(FieldDurationSecs, v))
}

// DurationSecsIn applies the In predicate on the "duration_secs" field.
func DurationSecsIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldIn(FieldDurationSecs, vs...))
}

// DurationSecsNotIn applies the NotIn predicate on the "duration_secs" field.
func DurationSecsNotIn(vs ...int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldNotIn(FieldDurationSecs, vs...))
}

// DurationSecsGT applies the GT predicate on the "duration_secs" field.
func DurationSecsGT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGT(FieldDurationSecs, v))
}

// DurationSecsGTE applies the GTE predicate on the "duration_secs" field.
func DurationSecsGTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldGTE(FieldDurationSecs, v))
}

// DurationSecsLT applies the LT predicate on the "duration_secs" field.
func DurationSecsLT(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLT(FieldDurationSecs, v))
}

// DurationSecsLTE applies the LTE predicate on the "duration_secs" field.
func DurationSecsLTE(v int) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.FieldLTE(FieldDurationSecs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizResultEvent) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizResultEvent) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizResultEvent) predicate.QuizResultEvent {
	return predicate.QuizResultEvent(sql.NotPredicates(p))
}

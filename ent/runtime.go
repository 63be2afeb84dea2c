// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/idiomaster/ent/achievementevent"
	"github.com/abhisek/idiomaster/ent/quizresultevent"
	"github.com/abhisek/idiomaster/ent/schema"
	"github.com/abhisek/idiomaster/ent/sessionevent"
	"github.com/abhisek/idiomaster/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementeventMixin := schema.AchievementEvent{}.Mixin()
	achievementeventMixinFields0 := achievementeventMixin[0].Fields()
	_ = achievementeventMixinFields0
	achievementeventFields := schema.AchievementEvent{}.Fields()
	_ = achievementeventFields
	// achievementeventDescTimestamp is the schema descriptor for timestamp field.
	achievementeventDescTimestamp := achievementeventMixinFields0[1].Descriptor()
	// achievementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	achievementevent.DefaultTimestamp = achievementeventDescTimestamp.Default.(func() time.Time)
	// achievementeventDescAchievementID is the schema descriptor for achievement_id field.
	achievementeventDescAchievementID := achievementeventFields[0].Descriptor()
	// achievementevent.AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	achievementevent.AchievementIDValidator = achievementeventDescAchievementID.Validators[0].(func(string) error)
	// achievementeventDescUserID is the schema descriptor for user_id field.
	achievementeventDescUserID := achievementeventFields[1].Descriptor()
	// achievementevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	achievementevent.UserIDValidator = achievementeventDescUserID.Validators[0].(func(string) error)
	// achievementeventDescName is the schema descriptor for name field.
	achievementeventDescName := achievementeventFields[2].Descriptor()
	// achievementevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	achievementevent.NameValidator = achievementeventDescName.Validators[0].(func(string) error)
	// achievementeventDescRarity is the schema descriptor for rarity field.
	achievementeventDescRarity := achievementeventFields[3].Descriptor()
	// achievementevent.RarityValidator is a validator for the "rarity" field. It is called by the builders before save.
	achievementevent.RarityValidator = achievementeventDescRarity.Validators[0].(func(string) error)
	// achievementeventDescXpReward is the schema descriptor for xp_reward field.
	achievementeventDescXpReward := achievementeventFields[4].Descriptor()
	// achievementevent.DefaultXpReward holds the default value on creation for the xp_reward field.
	achievementevent.DefaultXpReward = achievementeventDescXpReward.Default.(int)
	quizresulteventMixin := schema.QuizResultEvent{}.Mixin()
	quizresulteventMixinFields0 := quizresulteventMixin[0].Fields()
	_ = quizresulteventMixinFields0
	quizresulteventFields := schema.QuizResultEvent{}.Fields()
	_ = quizresulteventFields
	// quizresulteventDescTimestamp is the schema descriptor for timestamp field.
	quizresulteventDescTimestamp := quizresulteventMixinFields0[1].Descriptor()
	// quizresultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizresultevent.DefaultTimestamp = quizresulteventDescTimestamp.Default.(func() time.Time)
	// quizresulteventDescSessionID is the schema descriptor for session_id field.
	quizresulteventDescSessionID := quizresulteventFields[0].Descriptor()
	// quizresultevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizresultevent.SessionIDValidator = quizresulteventDescSessionID.Validators[0].(func(string) error)
	// quizresulteventDescUserID is the schema descriptor for user_id field.
	quizresulteventDescUserID := quizresulteventFields[1].Descriptor()
	// quizresultevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	quizresultevent.UserIDValidator = quizresulteventDescUserID.Validators[0].(func(string) error)
	// quizresulteventDescQuizType is the schema descriptor for quiz_type field.
	quizresulteventDescQuizType := quizresulteventFields[2].Descriptor()
	// quizresultevent.QuizTypeValidator is a validator for the "quiz_type" field. It is called by the builders before save.
	quizresultevent.QuizTypeValidator = quizresulteventDescQuizType.Validators[0].(func(string) error)
	// quizresulteventDescDifficulty is the schema descriptor for difficulty field.
	quizresulteventDescDifficulty := quizresulteventFields[3].Descriptor()
	// quizresultevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	quizresultevent.DefaultDifficulty = quizresulteventDescDifficulty.Default.(string)
	// quizresulteventDescGrade is the schema descriptor for grade field.
	quizresulteventDescGrade := quizresulteventFields[8].Descriptor()
	// quizresultevent.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	quizresultevent.GradeValidator = quizresulteventDescGrade.Validators[0].(func(string) error)
	// quizresulteventDescDurationSecs is the schema descriptor for duration_secs field.
	quizresulteventDescDurationSecs := quizresulteventFields[11].Descriptor()
	// quizresultevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	quizresultevent.DefaultDurationSecs = quizresulteventDescDurationSecs.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuizType is the schema descriptor for quiz_type field.
	sessioneventDescQuizType := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQuizType holds the default value on creation for the quiz_type field.
	sessionevent.DefaultQuizType = sessioneventDescQuizType.Default.(string)
	// sessioneventDescQuestions is the schema descriptor for questions field.
	sessioneventDescQuestions := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestions holds the default value on creation for the questions field.
	sessionevent.DefaultQuestions = sessioneventDescQuestions.Default.(int)
	// sessioneventDescCorrect is the schema descriptor for correct field.
	sessioneventDescCorrect := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrect holds the default value on creation for the correct field.
	sessionevent.DefaultCorrect = sessioneventDescCorrect.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	// sessioneventDescTimedOut is the schema descriptor for timed_out field.
	sessioneventDescTimedOut := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultTimedOut holds the default value on creation for the timed_out field.
	sessionevent.DefaultTimedOut = sessioneventDescTimedOut.Default.(bool)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescUserID is the schema descriptor for user_id field.
	snapshotDescUserID := snapshotFields[0].Descriptor()
	// snapshot.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	snapshot.UserIDValidator = snapshotDescUserID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}

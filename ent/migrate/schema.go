// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementEventsColumns holds the columns for the "achievement_events" table.
	AchievementEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "achievement_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "rarity", Type: field.TypeString},
		{Name: "xp_reward", Type: field.TypeInt, Default: 0},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// AchievementEventsTable holds the schema information for the "achievement_events" table.
	AchievementEventsTable = &schema.Table{
		Name:       "achievement_events",
		Columns:    AchievementEventsColumns,
		PrimaryKey: []*schema.Column{AchievementEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievementevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[1]},
			},
			{
				Name:    "achievementevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[2]},
			},
			{
				Name:    "achievementevent_achievement_id",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[3]},
			},
			{
				Name:    "achievementevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[4]},
			},
			{
				Name:    "achievementevent_rarity",
				Unique:  false,
				Columns: []*schema.Column{AchievementEventsColumns[6]},
			},
		},
	}
	// QuizResultEventsColumns holds the columns for the "quiz_result_events" table.
	QuizResultEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "quiz_type", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "percentage", Type: field.TypeInt},
		{Name: "points", Type: field.TypeInt},
		{Name: "grade", Type: field.TypeString},
		{Name: "passed", Type: field.TypeBool},
		{Name: "xp_earned", Type: field.TypeInt},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// QuizResultEventsTable holds the schema information for the "quiz_result_events" table.
	QuizResultEventsTable = &schema.Table{
		Name:       "quiz_result_events",
		Columns:    QuizResultEventsColumns,
		PrimaryKey: []*schema.Column{QuizResultEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizresultevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizResultEventsColumns[1]},
			},
			{
				Name:    "quizresultevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizResultEventsColumns[2]},
			},
			{
				Name:    "quizresultevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{QuizResultEventsColumns[4]},
			},
			{
				Name:    "quizresultevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuizResultEventsColumns[3]},
			},
			{
				Name:    "quizresultevent_quiz_type",
				Unique:  false,
				Columns: []*schema.Column{QuizResultEventsColumns[5]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "quiz_type", Type: field.TypeString, Default: ""},
		{Name: "questions", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "timed_out", Type: field.TypeBool, Default: false},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementEventsTable,
		QuizResultEventsTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records quiz session lifecycle events
// (start/complete/abandon).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("user_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start, complete, or abandon"),
		field.String("quiz_type").
			Default(""),
		field.Int("questions").
			Default(0).
			Comment("Question count (on complete only)"),
		field.Int("correct").
			Default(0).
			Comment("Correct answers (on complete only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Active duration in seconds (on complete/abandon)"),
		field.Bool("timed_out").
			Default(false).
			Comment("Completion was forced by a deadline"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("action"),
	}
}

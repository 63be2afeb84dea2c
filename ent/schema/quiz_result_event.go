package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizResultEvent records the final score of a completed quiz.
type QuizResultEvent struct {
	ent.Schema
}

func (QuizResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
		field.String("quiz_type").
			NotEmpty(),
		field.String("difficulty").
			Default(""),
		field.Int("correct"),
		field.Int("total"),
		field.Int("percentage"),
		field.Int("points"),
		field.String("grade").
			NotEmpty(),
		field.Bool("passed"),
		field.Int("xp_earned"),
		field.Int("duration_secs").
			Default(0),
	}
}

func (QuizResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("session_id"),
		index.Fields("quiz_type"),
	}
}

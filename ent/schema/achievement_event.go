package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AchievementEvent records an achievement unlock.
type AchievementEvent struct {
	ent.Schema
}

func (AchievementEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AchievementEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("achievement_id").
			NotEmpty(),
		field.String("user_id").
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.String("rarity").
			NotEmpty(),
		field.Int("xp_reward").
			Default(0),
		field.String("session_id").
			Optional().
			Nillable().
			Comment("Session whose completion triggered the unlock, if any"),
	}
}

func (AchievementEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("achievement_id"),
		index.Fields("user_id"),
		index.Fields("rarity"),
	}
}

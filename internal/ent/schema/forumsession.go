package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// ForumSession holds the schema definition for the ForumSession entity.
type ForumSession struct {
	ent.Schema
}

func (ForumSession) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the ForumSession.
func (ForumSession) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("chat_id").Comment("发起会话的群组ID"),
		field.Time("started_at").Comment("征集开始时间"),
		field.Time("closed_at").Optional().Comment("会话结束时间"),
		field.Int("topic_count").Default(0).Comment("征集到的议题数"),
		field.Int("event_count").Default(0).Comment("排期成功的会议数"),
		field.Enum("status").
			Values("gathering", "voting", "completed", "cancelled").
			Default("gathering").
			Comment("会话状态：gathering=征集中, voting=投票中, completed=已完成, cancelled=已取消"),
	}
}

// Indexes of the ForumSession.
func (ForumSession) Indexes() []ent.Index {
	return []ent.Index{
		// 索引：按群组查询历史会话
		index.Fields("chat_id"),
		index.Fields("status"),
	}
}

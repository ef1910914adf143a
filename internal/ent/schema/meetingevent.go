package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// MeetingEvent holds the schema definition for the MeetingEvent entity.
type MeetingEvent struct {
	ent.Schema
}

func (MeetingEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the MeetingEvent.
func (MeetingEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("chat_id").Comment("所属群组ID"),
		field.String("topic_text").Comment("议题内容"),
		field.Int64("author_id").Comment("议题提交者ID"),
		field.Int("votes").Default(0).Comment("得票数"),
		field.Time("start_time").Comment("会议开始时间"),
		field.Time("end_time").Comment("会议结束时间"),
		field.String("event_id").Optional().Comment("日历网关返回的事件ID"),
		field.String("web_link").Optional().Comment("日历事件的网页链接"),
		field.String("attendees").Optional().Comment("参会用户ID列表，逗号分隔"),
	}
}

// Indexes of the MeetingEvent.
func (MeetingEvent) Indexes() []ent.Index {
	return []ent.Index{
		// 索引：按群组查询近期会议
		index.Fields("chat_id", "start_time"),
	}
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ForumSessionsColumns holds the columns for the "forum_sessions" table.
	ForumSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "chat_id", Type: field.TypeInt64},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "closed_at", Type: field.TypeTime, Nullable: true},
		{Name: "topic_count", Type: field.TypeInt, Default: 0},
		{Name: "event_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"gathering", "voting", "completed", "cancelled"}, Default: "gathering"},
	}
	// ForumSessionsTable holds the schema information for the "forum_sessions" table.
	ForumSessionsTable = &schema.Table{
		Name:       "forum_sessions",
		Columns:    ForumSessionsColumns,
		PrimaryKey: []*schema.Column{ForumSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "forumsession_chat_id",
				Unique:  false,
				Columns: []*schema.Column{ForumSessionsColumns[3]},
			},
			{
				Name:    "forumsession_status",
				Unique:  false,
				Columns: []*schema.Column{ForumSessionsColumns[8]},
			},
		},
	}
	// MeetingEventsColumns holds the columns for the "meeting_events" table.
	MeetingEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "chat_id", Type: field.TypeInt64},
		{Name: "topic_text", Type: field.TypeString},
		{Name: "author_id", Type: field.TypeInt64},
		{Name: "votes", Type: field.TypeInt, Default: 0},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeString, Nullable: true},
		{Name: "web_link", Type: field.TypeString, Nullable: true},
		{Name: "attendees", Type: field.TypeString, Nullable: true},
	}
	// MeetingEventsTable holds the schema information for the "meeting_events" table.
	MeetingEventsTable = &schema.Table{
		Name:       "meeting_events",
		Columns:    MeetingEventsColumns,
		PrimaryKey: []*schema.Column{MeetingEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "meetingevent_chat_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{MeetingEventsColumns[3], MeetingEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ForumSessionsTable,
		MeetingEventsTable,
	}
)

func init() {
}

// Code generated by ent, DO NOT EDIT.

package meetingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the meetingevent type in the database.
	Label = "meeting_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreateTime holds the string denoting the create_time field in the database.
	FieldCreateTime = "create_time"
	// FieldUpdateTime holds the string denoting the update_time field in the database.
	FieldUpdateTime = "update_time"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldTopicText holds the string denoting the topic_text field in the database.
	FieldTopicText = "topic_text"
	// FieldAuthorID holds the string denoting the author_id field in the database.
	FieldAuthorID = "author_id"
	// FieldVotes holds the string denoting the votes field in the database.
	FieldVotes = "votes"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldWebLink holds the string denoting the web_link field in the database.
	FieldWebLink = "web_link"
	// FieldAttendees holds the string denoting the attendees field in the database.
	FieldAttendees = "attendees"
	// Table holds the table name of the meetingevent in the database.
	Table = "meeting_events"
)

// Columns holds all SQL columns for meetingevent fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldChatID,
	FieldTopicText,
	FieldAuthorID,
	FieldVotes,
	FieldStartTime,
	FieldEndTime,
	FieldEventID,
	FieldWebLink,
	FieldAttendees,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreateTime holds the default value on creation for the "create_time" field.
	DefaultCreateTime func() time.Time
	// DefaultUpdateTime holds the default value on creation for the "update_time" field.
	DefaultUpdateTime func() time.Time
	// UpdateDefaultUpdateTime holds the default value on update for the "update_time" field.
	UpdateDefaultUpdateTime func() time.Time
	// DefaultVotes holds the default value on creation for the "votes" field.
	DefaultVotes int
)

// OrderOption defines the ordering options for the MeetingEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreateTime orders the results by the create_time field.
func ByCreateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreateTime, opts...).ToFunc()
}

// ByUpdateTime orders the results by the update_time field.
func ByUpdateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdateTime, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// ByTopicText orders the results by the topic_text field.
func ByTopicText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicText, opts...).ToFunc()
}

// ByAuthorID orders the results by the author_id field.
func ByAuthorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorID, opts...).ToFunc()
}

// ByVotes orders the results by the votes field.
func ByVotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVotes, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByWebLink orders the results by the web_link field.
func ByWebLink(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWebLink, opts...).ToFunc()
}

// ByAttendees orders the results by the attendees field.
func ByAttendees(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttendees, opts...).ToFunc()
}
